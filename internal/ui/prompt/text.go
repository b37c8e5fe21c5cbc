package prompt

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mirakui/gj/internal/ui/styles"
)

// TextResult holds the result of a text input prompt.
type TextResult struct {
	Value     string
	Cancelled bool
}

type textModel struct {
	prompt    string
	input     textinput.Model
	validate  func(string) error
	errMsg    string
	done      bool
	cancelled bool
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = "Value cannot be empty"
				return m, nil
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	var b strings.Builder
	b.WriteString(m.prompt + "\n")
	b.WriteString(m.input.View())
	if m.errMsg != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.errMsg))
	}
	return tea.NewView(b.String())
}

// Text shows a single-line text input prompt. An optional validate
// function rejects values before the prompt closes.
func Text(prompt, placeholder string, validate func(string) error) (TextResult, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.SetWidth(40)
	ti.Focus()

	tiStyles := ti.Styles()
	tiStyles.Cursor.Shape = tea.CursorBar
	tiStyles.Cursor.Blink = true
	ti.SetStyles(tiStyles)

	model := textModel{
		prompt:   prompt,
		input:    ti,
		validate: validate,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return TextResult{}, err
	}
	m := finalModel.(textModel)

	if m.cancelled {
		return TextResult{Cancelled: true}, nil
	}
	return TextResult{Value: strings.TrimSpace(m.input.Value())}, nil
}
