package models

// Icon is the glyph drawn in front of an input
type Icon string

const (
	IconUser     Icon = "user"
	IconMail     Icon = "mail"
	IconPhone    Icon = "phone"
	IconCurrency Icon = "currency"
	IconKey      Icon = "key"
)

// InputType mirrors the kind of control a field is rendered as
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputTel      InputType = "tel"
	InputPassword InputType = "password"
)

// FieldSpec describes how a field is presented
type FieldSpec struct {
	Field       Field     `json:"field"`
	Label       string    `json:"label"`
	Icon        Icon      `json:"icon"`
	Placeholder string    `json:"placeholder"`
	Type        InputType `json:"type"`
	MaxLength   int       `json:"maxLength,omitempty"` // 0 means unlimited
}

var fieldSpecs = []FieldSpec{
	{Field: FieldFirstName, Label: "First Name", Icon: IconUser, Placeholder: "Enter your first name", Type: InputText},
	{Field: FieldLastName, Label: "Last Name", Icon: IconUser, Placeholder: "Enter your last name", Type: InputText},
	{Field: FieldEmail, Label: "Email Address", Icon: IconMail, Placeholder: "your.email@example.com", Type: InputEmail},
	{Field: FieldPhone, Label: "Phone Number", Icon: IconPhone, Placeholder: "123-456-7890", Type: InputTel, MaxLength: 12},
	{Field: FieldCostGuess, Label: "Guess the Price", Icon: IconCurrency, Placeholder: "299.99", Type: InputText},
	{Field: FieldSpidrPin, Label: "Secret 16-Digit Spidr PIN", Icon: IconKey, Placeholder: "####-####-####-####", Type: InputPassword, MaxLength: 19},
}

// FieldSpecs returns the presentation of every field in display order
func FieldSpecs() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// SpecFor returns the presentation of a single field
func SpecFor(f Field) (FieldSpec, bool) {
	for _, spec := range fieldSpecs {
		if spec.Field == f {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
