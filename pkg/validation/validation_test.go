package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"interest-form/pkg/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		state     models.FormState
		wantPhone string
		wantPin   string
	}{
		{
			name:  "valid phone and pin",
			state: models.FormState{Phone: "123-456-7890", SpidrPin: "1111-2222-3333-4444"},
		},
		{
			name:      "short phone and pin",
			state:     models.FormState{Phone: "123-456", SpidrPin: "1111"},
			wantPhone: PhoneLengthMessage,
			wantPin:   PinLengthMessage,
		},
		{
			name:      "empty form",
			state:     models.FormState{},
			wantPhone: PhoneLengthMessage,
			wantPin:   PinLengthMessage,
		},
		{
			name:      "only phone invalid",
			state:     models.FormState{Phone: "123-456-789", SpidrPin: "1111-2222-3333-4444"},
			wantPhone: PhoneLengthMessage,
		},
		{
			name:    "only pin invalid",
			state:   models.FormState{Phone: "123-456-7890", SpidrPin: "1111-2222-3333-444"},
			wantPin: PinLengthMessage,
		},
		{
			name:  "unformatted digits still count",
			state: models.FormState{Phone: "1234567890", SpidrPin: "1111222233334444"},
		},
		{
			name: "other fields are not checked",
			state: models.FormState{
				FirstName: "",
				Email:     "not-an-email",
				CostGuess: "",
				Phone:     "123-456-7890",
				SpidrPin:  "1111-2222-3333-4444",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.state)
			assert.Equal(t, tt.wantPhone, errs.Phone)
			assert.Equal(t, tt.wantPin, errs.SpidrPin)
			assert.Equal(t, tt.wantPhone == "" && tt.wantPin == "", errs.Empty())
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Phone number must be exactly 10 digits.", PhoneLengthMessage)
	assert.Equal(t, "Spidr PIN must be exactly 16 digits.", PinLengthMessage)
}

func TestCheck(t *testing.T) {
	complete := models.FormState{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "123-456-7890",
		CostGuess: "299.99",
		SpidrPin:  "1111-2222-3333-4444",
	}

	t.Run("complete form passes", func(t *testing.T) {
		assert.True(t, Check(complete).Empty())
	})

	t.Run("missing fields are reported", func(t *testing.T) {
		state := complete
		state.FirstName = ""
		state.CostGuess = ""

		p := Check(state)
		assert.False(t, p.Empty())
		assert.True(t, p.Errors.Empty())
		assert.Equal(t, models.FieldIssues{
			models.FieldFirstName: RequiredMessage,
			models.FieldCostGuess: RequiredMessage,
		}, p.Fields)
	})

	t.Run("malformed email is reported", func(t *testing.T) {
		state := complete
		state.Email = "not-an-email"

		p := Check(state)
		assert.Equal(t, models.FieldIssues{models.FieldEmail: EmailMessage}, p.Fields)
	})

	t.Run("length errors and field issues together", func(t *testing.T) {
		p := Check(models.FormState{Phone: "123"})
		assert.Equal(t, PhoneLengthMessage, p.Errors.Phone)
		assert.Equal(t, PinLengthMessage, p.Errors.SpidrPin)
		assert.Len(t, p.Fields, 4)
		assert.Equal(t, RequiredMessage, p.Fields[models.FieldEmail])
	})
}

func TestCollect_UnexpectedErrorFailsClosed(t *testing.T) {
	p := collect(errors.New("validator misconfigured"))

	assert.False(t, p.Empty())
	assert.Equal(t, PhoneLengthMessage, p.Errors.Phone)
	assert.Equal(t, PinLengthMessage, p.Errors.SpidrPin)
}

func TestInstanceRegistersDigitCount(t *testing.T) {
	assert.NotPanics(t, func() { instance() })
	assert.NoError(t, instance().Var("123-456-7890", "digitcount=10"))
	assert.Error(t, instance().Var("123-456", "digitcount=10"))
}
