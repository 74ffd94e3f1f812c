package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interest-form/pkg/format"
	"interest-form/pkg/models"
	"interest-form/pkg/validation"
)

// ErrInvalidForm is returned when a submission fails field validation
var ErrInvalidForm = errors.New("form failed validation")

// LandingSubmissionService defines the interface for handling form submissions
type LandingSubmissionService interface {
	// ProcessLandingSubmission validates data and hands its formatted form to
	// the sink. On validation failure it returns the field messages and
	// ErrInvalidForm.
	ProcessLandingSubmission(ctx context.Context, data models.FormState) (models.Submission, models.Problems, error)
}

type landingSubmissionServiceImpl struct {
	sink  Sink
	now   func() time.Time
	newID func() string
}

// NewLandingSubmissionService creates a new submission service
func NewLandingSubmissionService(sink Sink) LandingSubmissionService {
	return &landingSubmissionServiceImpl{
		sink:  sink,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ProcessLandingSubmission handles the entire submission workflow.
// Digit counts are checked on data as received, so a 14-digit phone is
// rejected rather than truncated by the mask. Accepted data is stored in the
// same masked form the terminal form produces.
func (s *landingSubmissionServiceImpl) ProcessLandingSubmission(ctx context.Context, data models.FormState) (models.Submission, models.Problems, error) {
	if problems := validation.Check(data); !problems.Empty() {
		return models.Submission{}, problems, ErrInvalidForm
	}

	// masking can empty a field, e.g. a price guess with no digits
	normalized := format.Form(data)
	if problems := validation.Check(normalized); !problems.Empty() {
		return models.Submission{}, problems, ErrInvalidForm
	}

	submission := models.Submission{
		ID:         s.newID(),
		ReceivedAt: s.now().UTC(),
		Form:       normalized,
	}

	if err := s.sink.Deliver(ctx, submission); err != nil {
		return models.Submission{}, models.Problems{}, fmt.Errorf("error delivering submission %s: %w", submission.ID, err)
	}

	return submission, models.Problems{}, nil
}
