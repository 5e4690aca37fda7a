package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"accredash/internal/domain"
)

// ErrEmptyRoster is returned when there are no members to export. No file
// is written in that case.
var ErrEmptyRoster = errors.New("roster has no members to export")

// Columns are the fixed roster spreadsheet headers.
var Columns = []string{"Name", "Position", "Email", "Contact", "Address", "Birth Date", "Status"}

const defaultSheet = "Sheet1"

// maxSheetName is the Excel limit on worksheet name length.
const maxSheetName = 31

// RosterWorkbook builds a workbook with one header row and one row per
// member, in roster order. The caller closes the returned file.
func RosterWorkbook(sheet string, members []domain.RosterMember) (*excelize.File, error) {
	if len(members) == 0 {
		return nil, ErrEmptyRoster
	}
	sheet = sheetName(sheet)

	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	for i, m := range members {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		row := []any{m.FullName(), m.Position, m.Email, m.ContactNumber, m.Address, m.BirthDate, m.Status}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "G", 18)
	return f, nil
}

// WriteRoster exports members of orgName into the store and returns the
// written path.
func (s *Store) WriteRoster(orgName string, members []domain.RosterMember) (string, error) {
	f, err := RosterWorkbook(orgName, members)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := s.RosterPath(orgName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

// sheetName trims name to a valid worksheet name.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, strings.TrimSpace(name))
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	// Sheet names may not start or end with a single quote.
	name = strings.Trim(name, "' ")
	if name == "" {
		return "Roster"
	}
	return name
}
