package validation

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"interest-form/pkg/format"
	"interest-form/pkg/models"
)

const (
	// PhoneLengthMessage is shown when the phone number is not 10 digits
	PhoneLengthMessage = "Phone number must be exactly 10 digits."
	// PinLengthMessage is shown when the Spidr PIN is not 16 digits
	PinLengthMessage = "Spidr PIN must be exactly 16 digits."

	RequiredMessage = "Please fill out this field."
	EmailMessage    = "Please enter a valid email address."
)

var (
	validate *validator.Validate
	once     sync.Once
)

var structFields = map[string]models.Field{
	"FirstName": models.FieldFirstName,
	"LastName":  models.FieldLastName,
	"Email":     models.FieldEmail,
	"Phone":     models.FieldPhone,
	"CostGuess": models.FieldCostGuess,
	"SpidrPin":  models.FieldSpidrPin,
}

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// digitcount=N passes when the field holds exactly N digits once
		// separators are removed
		err := validate.RegisterValidation("digitcount", func(fl validator.FieldLevel) bool {
			want, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return format.DigitCount(fl.Field().String()) == want
		})
		if err != nil {
			panic(fmt.Sprintf("error registering digitcount validation: %v", err))
		}
	})
	return validate
}

// Check runs every submit-time rule on the form. The phone and PIN length
// rules land in Errors; required fields and the email format land in Fields.
func Check(state models.FormState) models.Problems {
	return collect(instance().Struct(state))
}

// Validate checks the phone and PIN lengths. An empty ErrorMap means both
// have the expected digit count.
func Validate(state models.FormState) models.ErrorMap {
	return Check(state).Errors
}

func collect(err error) models.Problems {
	var p models.Problems
	if err == nil {
		return p
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// validation itself broke, so nothing may pass
		return models.Problems{
			Errors: models.ErrorMap{Phone: PhoneLengthMessage, SpidrPin: PinLengthMessage},
		}
	}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "digitcount":
			switch fe.StructField() {
			case "Phone":
				p.Errors.Phone = PhoneLengthMessage
			case "SpidrPin":
				p.Errors.SpidrPin = PinLengthMessage
			}
		case "email":
			issue(&p, fe.StructField(), EmailMessage)
		default:
			issue(&p, fe.StructField(), RequiredMessage)
		}
	}
	return p
}

func issue(p *models.Problems, structField, message string) {
	f, ok := structFields[structField]
	if !ok {
		return
	}
	if p.Fields == nil {
		p.Fields = models.FieldIssues{}
	}
	p.Fields[f] = message
}
