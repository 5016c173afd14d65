package tui

import (
	"context"
	"strings"

	"ovies_landing_go/models"
	"ovies_landing_go/services"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 56

// FormModel is a terminal view over a LeadFormController. It owns no form
// state of its own: every keystroke is pushed into the controller and every
// frame is rendered from the controller's snapshot.
type FormModel struct {
	controller *services.LeadFormController
	offer      models.Offer
	ctx        context.Context

	inputs  []textinput.Model // fullName, email, company
	goal    textarea.Model
	focus   int  // index into models.FieldKeys
	pending bool // submit command in flight
}

// NewFormModel creates the terminal form. ctx is used for submissions and may
// carry services.LeadMetadata.
func NewFormModel(ctx context.Context, controller *services.LeadFormController, offer models.Offer) FormModel {
	fields := []models.FieldCopy{offer.Fields.FullName, offer.Fields.Email, offer.Fields.Company}
	inputs := make([]textinput.Model, len(fields))
	for i, fc := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fc.Placeholder
		ti.Width = inputWidth
		inputs[i] = ti
	}

	goal := textarea.New()
	goal.Placeholder = offer.Fields.Goal.Placeholder
	goal.ShowLineNumbers = false
	goal.SetWidth(inputWidth + 2)
	goal.SetHeight(4)

	m := FormModel{
		controller: controller,
		offer:      offer,
		ctx:        ctx,
		inputs:     inputs,
		goal:       goal,
	}
	m.syncFromController()
	m.setFocus(0)
	return m
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitResultMsg:
		m.pending = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and other component messages
	return m.updateFocused(msg)
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	if m.submitted() {
		if msg.String() == "ctrl+r" {
			m.controller.Reset()
			m.syncFromController()
			m.setFocus(0)
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.setFocus((m.focus + 1) % len(models.FieldKeys))
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + len(models.FieldKeys) - 1) % len(models.FieldKeys))
		return m, nil
	case "enter":
		if m.focus < len(m.inputs) {
			m.setFocus(m.focus + 1)
			return m, nil
		}
	case "ctrl+s":
		return m.submit()
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused input and pushes any change
// into the controller
func (m FormModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	key := models.FieldKeys[m.focus]
	var cmd tea.Cmd
	var value string

	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		value = m.inputs[m.focus].Value()
	} else {
		m.goal, cmd = m.goal.Update(msg)
		value = m.goal.Value()
	}

	if value != m.controller.Form().Get(key) {
		m.controller.UpdateField(key, value)
	}
	return m, cmd
}

func (m FormModel) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	// Validation failures resolve immediately and need no spinner
	if !m.controller.CanSubmit() {
		_ = m.controller.Submit(m.ctx)
		return m, nil
	}

	m.pending = true
	controller, ctx := m.controller, m.ctx
	return m, func() tea.Msg {
		return SubmitResultMsg{Err: controller.Submit(ctx)}
	}
}

func (m *FormModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	if i == len(m.inputs) {
		m.goal.Focus()
	} else {
		m.goal.Blur()
	}
}

// syncFromController copies the controller's values into the inputs
func (m *FormModel) syncFromController() {
	form := m.controller.Form()
	for i := range m.inputs {
		m.inputs[i].SetValue(form.Get(models.FieldKeys[i]))
	}
	m.goal.SetValue(form.Goal)
}

func (m FormModel) submitted() bool {
	return m.controller.Submission().Status == models.SubmissionSubmitted
}

// View implements tea.Model
func (m FormModel) View() string {
	snapshot := m.controller.Snapshot()
	if snapshot.Submission.Status == models.SubmissionSubmitted {
		return m.thankYouView()
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.offer.Title))
	b.WriteString("  " + MutedStyle.Render(m.offer.Turnaround) + "\n")
	b.WriteString(MutedStyle.Render(m.offer.Subtitle) + "\n\n")

	labels := []string{m.offer.Fields.FullName.Label, m.offer.Fields.Email.Label, m.offer.Fields.Company.Label}
	for i, input := range m.inputs {
		b.WriteString(m.label(i, labels[i]) + "\n")
		b.WriteString(input.View() + "\n")
		if models.FieldKeys[i] == models.FieldEmail {
			hint := ""
			if snapshot.ShowEmailHint {
				hint = services.EmailHintMessage
			}
			b.WriteString(HintStyle.Render(hint))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.label(len(m.inputs), m.offer.Fields.Goal.Label) + "\n")
	b.WriteString(m.goal.View() + "\n\n")

	if snapshot.Error != "" {
		b.WriteString(ErrorStyle.Render(snapshot.Error) + "\n\n")
	}

	b.WriteString(m.button(snapshot) + "\n\n")
	b.WriteString(MutedStyle.Render(m.offer.Disclaimer) + "\n")
	b.WriteString(HelpStyle.Render("tab/shift+tab: move • ctrl+s: submit • esc: quit"))

	return CardStyle.Render(b.String())
}

func (m FormModel) label(i int, text string) string {
	if i == m.focus {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}

func (m FormModel) button(snapshot models.LeadSnapshot) string {
	if m.pending || snapshot.Submission.IsSubmitting() {
		return DisabledButtonStyle.Render("Submitting...")
	}
	if !snapshot.CanSubmit {
		return DisabledButtonStyle.Render(m.offer.SubmitLabel)
	}
	return ButtonStyle.Render(m.offer.SubmitLabel)
}

func (m FormModel) thankYouView() string {
	ty := m.offer.ThankYou
	body := lipgloss.JoinVertical(lipgloss.Left,
		SuccessStyle.Render(ty.Eyebrow),
		TitleStyle.Render(ty.Title),
		"",
		lipgloss.NewStyle().Width(inputWidth).Render(ty.Body),
		"",
		HelpStyle.Render("ctrl+r: "+strings.ToLower(ty.BackCTA)+" • esc: quit"),
	)
	return CardStyle.Render(body)
}
