package prompt

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: rune(key[0])}
	}
}

func TestConfirmModelUpdate(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		confirmed bool
		done      bool
		cancelled bool
	}{
		{"y confirms", "y", true, true, false},
		{"Y confirms", "Y", true, true, false},
		{"n declines", "n", false, true, false},
		{"enter defaults to no", "enter", false, true, false},
		{"ctrl+c cancels", "ctrl+c", false, true, true},
		{"esc cancels", "esc", false, true, true},
		{"q cancels", "q", false, true, true},
		{"other keys are ignored", "x", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := confirmModel{prompt: "Discard uncommitted changes?"}
			updated, cmd := m.Update(keyPress(tt.key))
			um := updated.(confirmModel)

			if um.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", um.confirmed, tt.confirmed)
			}
			if um.done != tt.done {
				t.Errorf("done = %v, want %v", um.done, tt.done)
			}
			if um.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", um.cancelled, tt.cancelled)
			}
			if tt.done && cmd == nil {
				t.Error("terminal keys should quit the program")
			}
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	m := confirmModel{prompt: "Discard uncommitted changes?"}
	if view := m.View(); !strings.Contains(fmt.Sprint(view.Content), "[y/N]") {
		t.Errorf("view missing the y/N hint: %q", fmt.Sprint(view.Content))
	}

	m.done = true
	if view := m.View(); fmt.Sprint(view.Content) != "" {
		t.Errorf("done view should be empty, got %q", fmt.Sprint(view.Content))
	}
}
