// Package tui renders the interest form in a terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"interest-form/pkg/form"
	"interest-form/pkg/models"
	"interest-form/pkg/services"
)

const (
	submittedMessage  = "Interest submitted! Check the log for your data."
	submittingMessage = "Submitting..."
)

type submittedMsg struct {
	id  string
	err error
}

// Model is the bubbletea model of the interest form
type Model struct {
	ctx     context.Context
	service services.LandingSubmissionService

	view   form.View
	inputs []textinput.Model // indexed like models.Fields
	specs  []models.FieldSpec

	status   string
	failed   bool
	quitting bool

	styles Styles
}

// New creates a form model with the first field focused
func New(ctx context.Context, service services.LandingSubmissionService) Model {
	specs := models.FieldSpecs()
	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = spec.MaxLength
		in.Width = 32
		in.EchoCharacter = '•'
		inputs[i] = in
	}

	m := Model{
		ctx:     ctx,
		service: service,
		view:    form.New(),
		inputs:  inputs,
		specs:   specs,
		styles:  DefaultStyles(),
	}
	m, _ = m.focus(models.Fields[0])
	return m
}

// Run starts the terminal form and blocks until the user quits
func Run(ctx context.Context, service services.LandingSubmissionService) error {
	_, err := tea.NewProgram(New(ctx, service), tea.WithContext(ctx)).Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		if msg.err != nil {
			m.status = "Submission failed: " + msg.err.Error()
			m.failed = true
		} else {
			m.status = submittedMessage
			m.failed = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			return m.focus(form.Step(m.view.Focused, 1))
		case "shift+tab", "up":
			return m.focus(form.Step(m.view.Focused, -1))
		case "ctrl+r":
			m.view, _ = form.Reduce(m.view, form.ToggleReveal{Field: m.view.Focused})
			m.sync()
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.view.Focused == models.Fields[len(models.Fields)-1] {
				return m.submit()
			}
			return m.focus(form.Step(m.view.Focused, 1))
		}
		return m.input(msg)
	}

	// cursor blink and other control messages belong to the focused input
	idx := indexOf(m.view.Focused)
	if idx < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// input feeds a keystroke to the focused control and stores the formatted
// result back into it
func (m Model) input(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := indexOf(m.view.Focused)
	if idx < 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.view, _ = form.Reduce(m.view, form.Input{Field: m.view.Focused, Raw: m.inputs[idx].Value()})
	if !m.view.Acknowledged {
		m.status = ""
	}
	m.sync()
	return m, cmd
}

func (m Model) focus(f models.Field) (Model, tea.Cmd) {
	m.view, _ = form.Reduce(m.view, form.Blur{})
	m.view, _ = form.Reduce(m.view, form.Focus{Field: f})

	var cmd tea.Cmd
	for i, field := range models.Fields {
		if field == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.sync()
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	var accepted *models.FormState
	m.view, accepted = form.Reduce(m.view, form.Submit{})
	m.sync()
	if accepted == nil {
		m.status = ""
		return m, nil
	}

	m.status = submittingMessage
	m.failed = false
	ctx, service, data := m.ctx, m.service, *accepted
	return m, func() tea.Msg {
		sub, _, err := service.ProcessLandingSubmission(ctx, data)
		return submittedMsg{id: sub.ID, err: err}
	}
}

// sync copies the view state into the text inputs
func (m *Model) sync() {
	for i, f := range models.Fields {
		in := &m.inputs[i]
		if value := m.view.State.Get(f); in.Value() != value {
			in.SetValue(value)
			in.CursorEnd()
		}

		if m.view.PlaceholderVisible(f) {
			in.Placeholder = m.specs[i].Placeholder
		} else {
			in.Placeholder = ""
		}

		if m.view.Masked(f) {
			in.EchoMode = textinput.EchoPassword
		} else {
			in.EchoMode = textinput.EchoNormal
		}
	}
}

// View renders the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Revolutionary Air Fryer"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Be among the first to experience the future of cooking. Submit your interest below and get exclusive early access."))
	b.WriteString("\n\n")

	for i, f := range models.Fields {
		spec := m.specs[i]

		if m.view.LabelVisible(f) {
			b.WriteString("  " + m.styles.Label.Render(spec.Label))
		}
		b.WriteString("\n")

		style := m.styles.Field
		switch {
		case m.view.IsFocused(f):
			style = m.styles.Focused
		case m.view.HasValue(f):
			style = m.styles.Filled
		}
		line := glyph(spec.Icon) + " " + m.inputs[i].View()
		if spec.Type == models.InputPassword {
			if m.view.Revealed(f) {
				line += "  [hide]"
			} else {
				line += "  [show]"
			}
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if msg := m.view.Errors.For(f); msg != "" {
			b.WriteString("  " + m.styles.Error.Render(msg) + "\n")
		}
		if msg := m.view.Issues[f]; msg != "" {
			b.WriteString("  " + m.styles.Error.Render(msg) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Button.Render("Submit Interest"))
	b.WriteString("\n")
	if m.status != "" {
		style := m.styles.Status
		if m.failed {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.Help.Render("By submitting, you agree to receive updates about our revolutionary air fryer."))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab/↓ next • shift+tab/↑ previous • ctrl+r show/hide PIN • ctrl+s submit • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func indexOf(f models.Field) int {
	for i, known := range models.Fields {
		if known == f {
			return i
		}
	}
	return -1
}
