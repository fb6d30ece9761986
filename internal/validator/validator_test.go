package validator

import (
	"testing"

	"agm_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Type  models.NotificationType `json:"type" validate:"required,notification_type"`
	Title string                  `json:"title" validate:"required,max=5"`
	Page  int                     `form:"page" validate:"omitempty,min=1"`
	Owner *uint                   `json:"ownerId" validate:"omitempty,min=1"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Type: models.NotificationTypeVotingResult, Title: "ok"}))

	zero := uint(0)
	err := v.Validate(&sample{Type: "BIRTHDAY", Title: "far too long", Page: -1, Owner: &zero})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors["type"], "REGISTRATION_APPROVED")
	assert.Equal(t, "Must be at most 5 items/characters long", vErr.Errors["title"])
	assert.Equal(t, "Must be at least 1", vErr.Errors["page"])
	assert.Equal(t, "Must be at least 1", vErr.Errors["ownerId"])
	assert.Contains(t, vErr.Error(), "field 'ownerId'")

	err = v.Validate(&sample{})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This field is required", vErr.Errors["type"])
	assert.Equal(t, "This field is required", vErr.Errors["title"])
}
