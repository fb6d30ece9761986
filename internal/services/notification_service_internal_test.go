package services

import (
	"strings"
	"testing"

	"agm_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLeavesNoRecipient(t *testing.T) {
	id := uint(3)
	withUser := &models.Notification{UserID: &id}

	assert.False(t, leavesNoRecipient(withUser, map[string]interface{}{}))
	assert.True(t, leavesNoRecipient(withUser, map[string]interface{}{"user_id": nil}))
	assert.False(t, leavesNoRecipient(withUser, map[string]interface{}{"user_id": nil, "shareholder_id": id}))
	assert.True(t, leavesNoRecipient(&models.Notification{}, map[string]interface{}{"shareholder_id": (*uint)(nil)}))
}

func TestCheckText(t *testing.T) {
	assert.NoError(t, checkTitle("x<y & 5 > 3"))
	assert.NoError(t, checkMessage("<b>bold</b>"))
	assert.Error(t, checkTitle(" \t"))
	assert.Error(t, checkMessage(""))
	assert.NoError(t, checkTitle(strings.Repeat("é", maxTitleLength)))
	assert.Error(t, checkTitle(strings.Repeat("é", maxTitleLength+1)))
}
