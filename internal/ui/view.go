package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is a screen or modal with its own Elm-style update loop.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// inputCapturer is implemented by views that own a focused text input.
// While capturing, printable keys go to the view instead of keybindings.
type inputCapturer interface {
	CapturingInput() bool
}

// helper is implemented by views that advertise their own single-key
// bindings in the footer.
type helper interface {
	ShortHelp() []key.Binding
}

func capturing(v View) bool {
	c, ok := v.(inputCapturer)
	return ok && c.CapturingInput()
}
