package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"interest-form/pkg/logger"
	"interest-form/pkg/models"
	"interest-form/pkg/utils"
)

// Sink receives accepted submissions. No response is expected beyond an error.
type Sink interface {
	Deliver(ctx context.Context, submission models.Submission) error
}

// LogSink records each submission as one structured log entry. The phone
// number is hashed and the PIN is masked before logging.
type LogSink struct {
	logger *logger.Logger
}

// NewLogSink creates a sink writing to logger
func NewLogSink(logger *logger.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the submission
func (s *LogSink) Deliver(ctx context.Context, submission models.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	form := submission.Form
	s.logger.WithFields(logrus.Fields{
		"submission_id": submission.ID,
		"received_at":   submission.ReceivedAt,
		"first_name":    form.FirstName,
		"last_name":     form.LastName,
		"email":         form.Email,
		"cost_guess":    form.CostGuess,
		"phone_hash":    utils.HashPhone(form.Phone),
		"spidr_pin":     utils.MaskPin(form.SpidrPin),
	}).Info("Form data submitted")

	return nil
}
