package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp renders the transient hint bar shown after SPC, listing
// the keys that may follow the pending sequence in mode.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || h.Registry == nil {
		return ""
	}
	seq := h.Sequence()
	if seq == "SPC" {
		seq = ""
	}
	hints := h.Registry.LeaderHints(seq, mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	prefix := h.Sequence()
	if prefix == "" {
		prefix = "SPC"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Hint.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings))
}

// renderViewHelp renders a view's own single-key bindings.
func renderViewHelp(v View) string {
	h, ok := v.(helper)
	if !ok {
		return ""
	}
	bindings := h.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	return newHelpModel().ShortHelpView(bindings)
}
