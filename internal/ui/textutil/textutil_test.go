package textutil

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.w); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("7", 3); got != "  7" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcdef", 4); runewidth.StringWidth(got) != 4 {
		t.Errorf("PadRight width = %d", runewidth.StringWidth(got))
	}
}

func TestBar(t *testing.T) {
	if got := Bar(0, 10, 20); got != "" {
		t.Errorf("zero value bar = %q", got)
	}
	if got := Bar(10, 10, 20); runewidth.StringWidth(got) != 20 {
		t.Errorf("full bar width = %d", runewidth.StringWidth(got))
	}
	if got := Bar(1, 1000, 20); got != BarRune {
		t.Errorf("tiny value should get one cell, got %q", got)
	}
	if got := Bar(5, 10, 20); runewidth.StringWidth(got) != 10 {
		t.Errorf("half bar width = %d", runewidth.StringWidth(got))
	}
}

func TestLabelWidth(t *testing.T) {
	if got := LabelWidth([]string{"a", "abcd", "ab"}, 0); got != 4 {
		t.Errorf("LabelWidth = %d", got)
	}
	if got := LabelWidth([]string{"abcdefgh"}, 5); got != 5 {
		t.Errorf("capped LabelWidth = %d", got)
	}
}
