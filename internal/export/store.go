// Package export writes roster spreadsheets to the local export directory.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DirEnv overrides the export directory (used by tests and the CLI).
const DirEnv = "ACCREDASH_EXPORT_DIR"

// DefaultDir is the export directory relative to the user's home.
const DefaultDir = ".accredash/exports"

// Store places exported files under one base directory.
type Store struct {
	baseDir string
}

// NewStore roots a store at dir. An empty dir falls back to $ACCREDASH_EXPORT_DIR
// and then to ~/.accredash/exports.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, DefaultDir)
	}
	return &Store{baseDir: dir}, nil
}

// Dir returns the base directory.
func (s *Store) Dir() string { return s.baseDir }

// RosterPath returns where the roster of orgName is written, e.g.
// "Computer Society (CS)" -> <base>/computer-society-cs-roster.xlsx.
func (s *Store) RosterPath(orgName string) string {
	return filepath.Join(s.baseDir, slug(orgName)+"-roster.xlsx")
}

// slug lowercases name, keeps letters and digits and collapses everything
// else into single hyphens.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "organization"
	}
	return out
}
