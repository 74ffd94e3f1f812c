// Package form holds the state of one interest form and the single reducer
// step that applies a user event to it.
//
// Reduce never mutates the View it is given.
package form

import (
	"interest-form/pkg/format"
	"interest-form/pkg/models"
	"interest-form/pkg/validation"
)

// View is everything a renderer needs to draw the form
type View struct {
	State   models.FormState
	Errors  models.ErrorMap
	Issues  models.FieldIssues // required fields and email format
	Focused models.Field       // empty when no field has focus

	// Acknowledged is set after a successful submit and cleared by the
	// next keystroke.
	Acknowledged bool

	revealed map[models.Field]bool
}

// New returns an empty, unfocused form
func New() View {
	return View{}
}

// Event is a user action on the form
type Event interface {
	event()
}

// Input carries the raw text of a field after a keystroke
type Input struct {
	Field models.Field
	Raw   string
}

// Focus moves focus to a field
type Focus struct {
	Field models.Field
}

// Blur removes focus from whatever field has it
type Blur struct{}

// ToggleReveal flips a password field between masked and revealed
type ToggleReveal struct {
	Field models.Field
}

// Submit asks for the form to be validated and accepted
type Submit struct{}

func (Input) event()        {}
func (Focus) event()        {}
func (Blur) event()         {}
func (ToggleReveal) event() {}
func (Submit) event()       {}

// Reduce applies one event to the view. When a Submit is accepted the
// submitted state is returned alongside the reset view; otherwise the
// second result is nil.
func Reduce(v View, ev Event) (View, *models.FormState) {
	switch e := ev.(type) {
	case Input:
		if !e.Field.Valid() {
			return v, nil
		}
		v.State = v.State.With(e.Field, format.Field(e.Field, e.Raw))
		v.Acknowledged = false

	case Focus:
		if e.Field.Valid() {
			v.Focused = e.Field
		}

	case Blur:
		v.Focused = ""

	case ToggleReveal:
		if !isPassword(e.Field) {
			return v, nil
		}
		revealed := make(map[models.Field]bool, len(v.revealed)+1)
		for f, on := range v.revealed {
			revealed[f] = on
		}
		revealed[e.Field] = !revealed[e.Field]
		v.revealed = revealed

	case Submit:
		problems := validation.Check(v.State)
		v.Errors = problems.Errors
		v.Issues = problems.Fields
		if !problems.Empty() {
			v.Acknowledged = false
			return v, nil
		}
		accepted := v.State
		v.State = models.FormState{}
		v.Errors = models.ErrorMap{}
		v.Issues = nil
		v.Acknowledged = true
		return v, &accepted
	}

	return v, nil
}

// IsFocused reports whether f currently has focus
func (v View) IsFocused(f models.Field) bool {
	return f != "" && v.Focused == f
}

// HasValue reports whether f holds any text
func (v View) HasValue(f models.Field) bool {
	return v.State.Get(f) != ""
}

// LabelVisible reports whether the field label is drawn. Labels only
// appear on the focused field.
func (v View) LabelVisible(f models.Field) bool {
	return v.IsFocused(f)
}

// LabelFloated reports whether the label sits above the input
func (v View) LabelFloated(f models.Field) bool {
	return v.IsFocused(f) || v.HasValue(f)
}

// PlaceholderVisible reports whether the placeholder is drawn
func (v View) PlaceholderVisible(f models.Field) bool {
	return !v.IsFocused(f)
}

// Revealed reports whether a password field is showing its value
func (v View) Revealed(f models.Field) bool {
	return v.revealed[f]
}

// Masked reports whether the field's value is hidden from display
func (v View) Masked(f models.Field) bool {
	return isPassword(f) && !v.revealed[f]
}

// InputType is the control type a field is currently rendered as.
// A revealed password field renders as text.
func (v View) InputType(f models.Field) models.InputType {
	spec, ok := models.SpecFor(f)
	if !ok {
		return models.InputText
	}
	if spec.Type == models.InputPassword && v.revealed[f] {
		return models.InputText
	}
	return spec.Type
}

// Step returns the field delta positions away from f in display order,
// wrapping at both ends. An empty f steps from before the first field.
func Step(f models.Field, delta int) models.Field {
	n := len(models.Fields)
	idx := -1
	for i, known := range models.Fields {
		if known == f {
			idx = i
			break
		}
	}
	if idx == -1 && delta < 0 {
		idx = 0
	}
	return models.Fields[((idx+delta)%n+n)%n]
}

func isPassword(f models.Field) bool {
	spec, ok := models.SpecFor(f)
	return ok && spec.Type == models.InputPassword
}
