package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space notation to normalize to SPC")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " ".
	consumed, cmd := h.Handle(keyMsg(" "), ModeOrganizations)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"), ModeOrganizations)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected bound command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeOrganizations)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), ModeOrganizations)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SubmenuWaitsForNextKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC r r", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), ModeOrganizations)
	consumed, cmd := h.Handle(keyMsg("r"), ModeOrganizations)
	if !consumed || cmd != nil {
		t.Errorf("SPC r: consumed=%v cmd=%v", consumed, cmd)
	}
	if got := h.Sequence(); got != "SPC r" {
		t.Errorf("Sequence() = %q, want %q", got, "SPC r")
	}
	_, cmd = h.Handle(keyMsg("r"), ModeOrganizations)
	if cmd == nil {
		t.Error("expected SPC r r to resolve")
	}
}

func TestKeyHandler_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForModes("SPC r x", tea.Quit, "Export roster", ModeRoster)
	h := NewKeyHandler(reg)

	for _, k := range []string{" ", "r", "x"} {
		if _, cmd := h.Handle(keyMsg(k), ModeOrganizations); cmd != nil {
			t.Fatalf("SPC r x should not fire outside the roster (key %q)", k)
		}
	}
	var cmd tea.Cmd
	for _, k := range []string{" ", "r", "x"} {
		_, cmd = h.Handle(keyMsg(k), ModeRoster)
	}
	if cmd == nil {
		t.Error("SPC r x should fire in the roster")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeOrganizations)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), ModeOrganizations)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestLeaderHints_LabelsSubmenusAndFiltersModes(t *testing.T) {
	reg := newRegistry()

	hints := reg.LeaderHints("", ModeOrganizations)
	if hints["r"] != "Roster" {
		t.Errorf("hint for r = %q, want Roster", hints["r"])
	}
	if hints["a"] != "Analytics" {
		t.Errorf("hint for a = %q, want Analytics", hints["a"])
	}

	sub := reg.LeaderHints("SPC r", ModeOrganizations)
	if _, ok := sub["x"]; ok {
		t.Error("export should only be hinted in the roster")
	}
	sub = reg.LeaderHints("SPC r", ModeRoster)
	if sub["x"] != "Export roster" {
		t.Errorf("hint for SPC r x = %q, want Export roster", sub["x"])
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to update one rune at a time.
func typeText(update func(tea.Msg), s string) {
	for _, r := range s {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
