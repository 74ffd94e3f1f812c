package models

import "time"

// Field identifies one input of the interest form
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldCostGuess Field = "costGuess"
	FieldSpidrPin  Field = "spidrPin"
)

// Fields lists every form field in display order
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldCostGuess,
	FieldSpidrPin,
}

// Valid reports whether f is one of the known form fields
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Represents the display values of the interest form.
// Phone, CostGuess and SpidrPin always hold masked strings.
type FormState struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"digitcount=10"`
	Email     string `json:"email" validate:"required,email"`
	CostGuess string `json:"costGuess" validate:"required"`
	SpidrPin  string `json:"spidrPin" validate:"digitcount=16"`
}

// Get returns the display value of a field
func (s FormState) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return s.FirstName
	case FieldLastName:
		return s.LastName
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldCostGuess:
		return s.CostGuess
	case FieldSpidrPin:
		return s.SpidrPin
	}
	return ""
}

// With returns a copy of s with field f set to value
func (s FormState) With(f Field, value string) FormState {
	switch f {
	case FieldFirstName:
		s.FirstName = value
	case FieldLastName:
		s.LastName = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldCostGuess:
		s.CostGuess = value
	case FieldSpidrPin:
		s.SpidrPin = value
	}
	return s
}

// IsEmpty reports whether every field is blank
func (s FormState) IsEmpty() bool {
	return s == FormState{}
}

// ErrorMap holds the inline messages produced by a submit attempt.
// Only phone and PIN can fail.
type ErrorMap struct {
	Phone    string `json:"phone,omitempty"`
	SpidrPin string `json:"spidrPin,omitempty"`
}

// For returns the message attached to a field, if any
func (e ErrorMap) For(f Field) string {
	switch f {
	case FieldPhone:
		return e.Phone
	case FieldSpidrPin:
		return e.SpidrPin
	}
	return ""
}

// Empty reports whether the form is eligible for submission
func (e ErrorMap) Empty() bool {
	return e.Phone == "" && e.SpidrPin == ""
}

// FieldIssues holds required-field and email-format messages. They are kept
// apart from ErrorMap, which only ever carries the two length messages.
type FieldIssues map[Field]string

// Problems is the outcome of checking a form before submit
type Problems struct {
	Errors ErrorMap    `json:"errors"`
	Fields FieldIssues `json:"fields,omitempty"`
}

// Empty reports whether nothing blocks the submission
func (p Problems) Empty() bool {
	return p.Errors.Empty() && len(p.Fields) == 0
}

// Submission is an accepted form handed to the submission sink
type Submission struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
	Form       FormState `json:"form"`
}
