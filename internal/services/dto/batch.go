package dto

import (
	"agm_backend/pkg/apperrors"
	"agm_backend/pkg/i18n"

	"golang.org/x/text/language"
)

const MaxBatchSize = 100

// BatchResult summarises a batch create. Items fail independently; Errors
// holds one line per failed item.
type BatchResult struct {
	Total                int                     `json:"total"`
	Success              int                     `json:"success"`
	Errors               []string                `json:"errors"`
	CreatedNotifications []*NotificationResponse `json:"createdNotifications"`

	failures []batchFailure
}

type batchFailure struct {
	position int
	err      error
}

func NewBatchResult(total int) *BatchResult {
	return &BatchResult{
		Total:                total,
		Errors:               []string{},
		CreatedNotifications: []*NotificationResponse{},
	}
}

func (r *BatchResult) AddCreated(n *NotificationResponse) {
	r.Success++
	r.CreatedNotifications = append(r.CreatedNotifications, n)
}

// AddFailure records item position (1-based) as failed.
func (r *BatchResult) AddFailure(position int, err error) {
	r.failures = append(r.failures, batchFailure{position: position, err: err})
	r.Errors = append(r.Errors, failureMessage(language.English, position, err))
}

// Localize rewrites Errors in the given language.
func (r *BatchResult) Localize(tag language.Tag) {
	errs := make([]string, 0, len(r.failures))
	for _, f := range r.failures {
		errs = append(errs, failureMessage(tag, f.position, f.err))
	}
	r.Errors = errs
}

func failureMessage(tag language.Tag, position int, err error) string {
	text := err.Error()
	if appErr, ok := apperrors.AsAppError(err); ok {
		text = appErr.Localize(tag)
		// Persistence failures report the driver's message.
		if appErr.HTTPCode >= 500 && appErr.Err != nil {
			text = appErr.Err.Error()
		}
	}
	return i18n.Sprintf(tag, i18n.MsgBatchItemFailed, position, text)
}
