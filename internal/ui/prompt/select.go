package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mirakui/gj/internal/ui/styles"
)

// Option is one selectable entry. Detail, when set, is rendered as a
// muted second line under the label (the worktree picker puts the
// branch and age there).
type Option struct {
	Label  string
	Detail string
}

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	option Option
	index  int
}

func (i listItem) Title() string       { return i.option.Label }
func (i listItem) Description() string { return i.option.Detail }
func (i listItem) FilterValue() string { return i.option.Label }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// selectSize derives the list dimensions from the options so short
// pickers don't fill the terminal.
func selectSize(options []Option, showDetails bool) (width, height int) {
	width = 60
	for _, opt := range options {
		for _, s := range []string{opt.Label, opt.Detail} {
			if len(s)+8 > width {
				width = len(s) + 8
			}
		}
	}
	if width > 100 {
		width = 100
	}

	rows := len(options)
	if showDetails {
		rows *= 2
	}
	height = min(rows+6, 24)
	return width, height
}

// Select shows a filterable list prompt and returns the selection.
func Select(prompt string, options []Option) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	showDetails := false
	items := make([]list.Item, len(options))
	for i, opt := range options {
		if opt.Detail != "" {
			showDetails = true
		}
		items[i] = listItem{option: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = showDetails
	if !showDetails {
		delegate.SetSpacing(0)
	}
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(styles.Muted)

	width, height := selectSize(options, showDetails)
	l := list.New(items, delegate, width, height)
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	model := selectModel{
		list:     l,
		selected: -1,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}

	return SelectResult{
		Value: options[m.selected].Label,
		Index: m.selected,
	}, nil
}
