package roster

import (
	"regexp"
	"strings"
)

var studentIDPattern = regexp.MustCompile(`^\d{2}-\d{4}$`)

// NormalizeStudentID keeps the digits of raw, caps them at six and inserts a
// dash after the second one: "2012345" becomes "20-1234", "2a0b1" "20-1".
// It is applied on every keystroke, so partial input stays partial.
func NormalizeStudentID(raw string) string {
	var b strings.Builder
	n := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if n == 6 {
			break
		}
		if n == 2 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// ValidStudentID reports whether id has the dd-dddd shape.
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}
