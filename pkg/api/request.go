package api

import "interest-form/pkg/models"

// FormatRequest carries the raw text of one field after a keystroke
type FormatRequest struct {
	Field models.Field `json:"field" binding:"required"`
	Value string       `json:"value"`
}

// FormatResponse carries the masked display value
type FormatResponse struct {
	Field models.Field `json:"field"`
	Value string       `json:"value"`
}

// SubmissionResponse acknowledges an accepted form
type SubmissionResponse struct {
	Status  string `json:"status"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists the inline field messages. Errors carries
// the phone and PIN length messages, Fields any missing or malformed field.
type ValidationErrorResponse struct {
	Errors models.ErrorMap    `json:"errors"`
	Fields models.FieldIssues `json:"fields,omitempty"`
}
