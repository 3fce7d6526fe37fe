package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-access-keeper/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormModel collects the inputs of one operation, runs it asynchronously and
// shows the outcome. Enter on the last field submits the form.
type FormModel struct {
	ctx context.Context
	svc service.AccessService
	op  operation

	inputs     []textinput.Model
	focus      int
	submitting bool
	result     *operationDoneMsg
	status     string

	copyToClipboard func(string) error
}

func NewFormModel(ctx context.Context, svc service.AccessService, op operation) *FormModel {
	m := &FormModel{
		ctx:             ctx,
		svc:             svc,
		op:              op,
		copyToClipboard: clipboard.WriteAll,
	}
	m.reset()

	return m
}

func (m *FormModel) reset() {
	m.inputs = make([]textinput.Model, len(m.op.fields))
	for i, f := range m.op.fields {
		input := textinput.New()
		input.Placeholder = strings.ToLower(f.label)
		input.CharLimit = 256
		input.Width = 40
		if f.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		m.inputs[i] = input
	}

	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	m.submitting = false
	m.result = nil
	m.status = ""
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case operationDoneMsg:
		m.submitting = false
		m.result = &msg
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Token copied to clipboard"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.result != nil {
		return m, m.updateResult(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateToMenu
	case key.Matches(keyMsg, keys.tab):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(keyMsg, keys.backtab):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		if m.focus < len(m.inputs)-1 {
			return m, m.setFocus(m.focus + 1)
		}
		m.submitting = true
		return m, m.cmdSubmit()
	}

	if m.submitting || len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) updateResult(keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		return navigateToMenu
	case key.Matches(keyMsg, keys.copy) && m.result.token != "":
		token := m.result.token
		copyFn := m.copyToClipboard
		return func() tea.Msg { return copiedMsg{err: copyFn(token)} }
	}

	return nil
}

func (m *FormModel) cmdSubmit() tea.Cmd {
	ctx, svc, run := m.ctx, m.svc, m.op.run

	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		if m.op.fields[i].secret {
			values[i] = input.Value()
		} else {
			values[i] = strings.TrimSpace(input.Value())
		}
	}

	return func() tea.Msg {
		return run(ctx, svc, values)
	}
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}

	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *FormModel) View() string {
	if m.result != nil {
		return m.viewResult()
	}

	labelWidth := 0
	for _, f := range m.op.fields {
		labelWidth = max(labelWidth, len(f.label))
	}

	var b strings.Builder
	for i, f := range m.op.fields {
		b.WriteString(f.label)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", labelWidth-len(f.label)))
		b.WriteString("[")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Submitting...]")
	} else {
		b.WriteString("\n[Submit]")
	}

	return renderPage(strings.ToUpper(m.op.title), b.String(), "esc: back │ tab: next field │ enter: confirm")
}

func (m *FormModel) viewResult() string {
	var b strings.Builder

	if m.result.failed {
		b.WriteString(errorStyle.Render(m.result.text))
	} else {
		b.WriteString(successStyle.Render(m.result.text))
	}
	b.WriteString("\n")

	for _, line := range m.result.details {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "enter/esc: back to menu"
	if m.result.token != "" {
		hotKeys += " │ c: copy token"
	}

	return renderPage(strings.ToUpper(m.op.title), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func navigateToMenu() tea.Msg {
	return NavigateTo{Page: menuPage}
}
