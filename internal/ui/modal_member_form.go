package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/domain"
	"accredash/internal/roster"
)

// memberField is one row of the add-member form. Choice fields cycle
// through options with left/right; the rest are free text.
type memberField struct {
	key     string
	label   string
	input   textinput.Model
	options func(m *AddMemberModal) []string
	choice  string
}

func (f *memberField) value() string {
	if f.options != nil {
		return f.choice
	}
	return f.input.Value()
}

// AddMemberModal collects a new roster member. Validation runs locally on
// submit and errors are shown under each field; nothing is sent while any
// field fails.
type AddMemberModal struct {
	OrgID  string
	Errors roster.FieldErrors
	// SubmitErr is a non-field failure reported by the API.
	SubmitErr string

	fields     []*memberField
	focus      *FocusRing
	submitting bool
}

var _ View = (*AddMemberModal)(nil)

// NewAddMemberModal creates the form for org, defaulting the department to
// the organization's own.
func NewAddMemberModal(org domain.OrganizationProfile) *AddMemberModal {
	m := &AddMemberModal{OrgID: org.ID}
	text := func(key, label, placeholder string) *memberField {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.Width = 36
		return &memberField{key: key, label: label, input: ti}
	}
	choice := func(key, label string, opts func(*AddMemberModal) []string) *memberField {
		return &memberField{key: key, label: label, options: opts}
	}

	m.fields = []*memberField{
		text("student_id", "Student ID", "20-1234"),
		text("first_name", "First name", ""),
		text("middle_name", "Middle name", "optional"),
		text("last_name", "Last name", ""),
		choice("base_position", "Base position", func(*AddMemberModal) []string {
			return []string{domain.BasePositionMember, domain.BasePositionOfficer}
		}),
		text("position", "Position", "e.g. President"),
		text("email", "Email", "name@school.edu"),
		text("contact_number", "Contact", "+63 912 345 6789"),
		text("address", "Address", ""),
		text("birth_date", "Birth date", "2004-01-31"),
		choice("department", "Department", func(*AddMemberModal) []string { return domain.Departments() }),
		choice("course", "Course", func(m *AddMemberModal) []string { return domain.Programs(m.field("department").choice) }),
		choice("year_level", "Year level", func(*AddMemberModal) []string { return []string{"1", "2", "3", "4", "5"} }),
		text("profile_picture", "Profile picture", "path to image, optional"),
	}

	ids := make([]string, len(m.fields))
	for i, f := range m.fields {
		ids[i] = f.key
		if f.options != nil {
			if opts := f.options(m); len(opts) > 0 {
				f.choice = opts[0]
			}
		}
	}
	if domain.HasDepartment(org.Department) {
		m.field("department").choice = org.Department
		m.resetCourse()
		if domain.HasCourse(org.Department, org.Program) {
			m.field("course").choice = org.Program
		}
	}
	m.focus = NewFocusRing(ids...)
	m.focusCurrent()
	return m
}

func (m *AddMemberModal) field(key string) *memberField {
	for _, f := range m.fields {
		if f.key == key {
			return f
		}
	}
	return nil
}

// SetValue fills a field; used by tests and to prefill.
func (m *AddMemberModal) SetValue(key, val string) {
	f := m.field(key)
	if f == nil {
		return
	}
	if f.options != nil {
		f.choice = val
		if key == "department" {
			m.resetCourse()
		}
		return
	}
	f.input.SetValue(val)
}

// Focused returns the key of the focused field.
func (m *AddMemberModal) Focused() string { return m.focus.Current() }

// Form assembles the current values.
func (m *AddMemberModal) Form() roster.MemberForm {
	v := func(k string) string { return m.field(k).value() }
	return roster.MemberForm{
		StudentID:     v("student_id"),
		FirstName:     v("first_name"),
		MiddleName:    v("middle_name"),
		LastName:      v("last_name"),
		BasePosition:  v("base_position"),
		Position:      v("position"),
		Email:         v("email"),
		ContactNumber: v("contact_number"),
		Address:       v("address"),
		BirthDate:     v("birth_date"),
		Department:    v("department"),
		Course:        v("course"),
		YearLevel:     v("year_level"),
		PictureName:   v("profile_picture"),
	}
}

// SetResult reports a failed submission back to the form.
func (m *AddMemberModal) SetResult(err error) {
	m.submitting = false
	var fe roster.FieldErrors
	if errors.As(err, &fe) {
		m.Errors = fe
		m.SubmitErr = ""
		return
	}
	if err != nil {
		m.SubmitErr = err.Error()
	}
}

func (m *AddMemberModal) positionFixed() bool {
	return m.field("base_position").choice == domain.BasePositionMember
}

func (m *AddMemberModal) resetCourse() {
	course := m.field("course")
	opts := course.options(m)
	course.choice = ""
	if len(opts) > 0 {
		course.choice = opts[0]
	}
}

// Init implements View.
func (m *AddMemberModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *AddMemberModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.submitting {
		return m, nil
	}
	switch km.String() {
	case "esc":
		return m, func() tea.Msg { return DismissModalMsg{} }
	case "ctrl+s":
		return m, m.submit()
	case "enter":
		if m.focus.Index() == len(m.fields)-1 {
			return m, m.submit()
		}
		m.move(1)
		return m, nil
	case "tab", "down":
		m.move(1)
		return m, nil
	case "shift+tab", "up":
		m.move(-1)
		return m, nil
	}

	f := m.field(m.focus.Current())
	if f.options != nil {
		switch km.String() {
		case "left", "h":
			m.cycle(f, -1)
		case "right", "l", " ":
			m.cycle(f, 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(km)
	if f.key == "student_id" {
		if n := roster.NormalizeStudentID(f.input.Value()); n != f.input.Value() {
			f.input.SetValue(n)
			f.input.CursorEnd()
		}
	}
	return m, cmd
}

func (m *AddMemberModal) cycle(f *memberField, dir int) {
	opts := f.options(m)
	if len(opts) == 0 {
		return
	}
	idx := 0
	for i, o := range opts {
		if o == f.choice {
			idx = i
		}
	}
	f.choice = opts[(idx+dir+len(opts))%len(opts)]
	if f.key == "department" {
		m.resetCourse()
	}
}

// move shifts focus by dir, skipping the position field while it is fixed.
func (m *AddMemberModal) move(dir int) {
	for range m.fields {
		if dir > 0 {
			m.focus.Next()
		} else {
			m.focus.Prev()
		}
		if !(m.focus.Is("position") && m.positionFixed()) {
			break
		}
	}
	m.focusCurrent()
}

func (m *AddMemberModal) focusCurrent() {
	for _, f := range m.fields {
		if f.options != nil {
			continue
		}
		if f.key == m.focus.Current() {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
}

// submit validates locally and, when clean, hands the form to the app.
func (m *AddMemberModal) submit() tea.Cmd {
	form := m.Form()
	errs, ok := form.Ok()
	m.SubmitErr = ""
	if !ok {
		m.Errors = errs
		for _, f := range m.fields {
			if _, bad := errs[f.key]; bad {
				m.focus.Set(f.key)
				m.focusCurrent()
				break
			}
		}
		return nil
	}
	m.Errors = nil
	m.SetValue("student_id", form.StudentID)
	m.submitting = true
	return func() tea.Msg { return SubmitMemberMsg{Form: form} }
}

// View implements View.
func (m *AddMemberModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Add member") + "\n\n")
	for _, f := range m.fields {
		label := f.label
		if m.focus.Is(f.key) {
			label = Styles.Selected.Render("› " + label)
		} else {
			label = Styles.Normal.Render("  " + label)
		}
		var val string
		switch {
		case f.key == "position" && m.positionFixed():
			val = Styles.Muted.Render(domain.BasePositionMember + " (fixed)")
		case f.options != nil:
			val = "‹ " + f.choice + " ›"
			if f.choice == "" {
				val = Styles.Muted.Render("none available")
			}
		default:
			val = f.input.View()
		}
		b.WriteString(label + "\n    " + val + "\n")
		if msg, bad := m.Errors[f.key]; bad {
			b.WriteString("    " + Styles.Error.Render(msg) + "\n")
		}
	}
	if m.SubmitErr != "" {
		b.WriteString("\n" + Styles.Error.Render(m.SubmitErr) + "\n")
	}
	help := "Tab/↓: next  ←/→: choose  Ctrl+S: save  Esc: cancel"
	if m.submitting {
		help = "Saving…"
	}
	b.WriteString("\n" + Styles.Hint.Render(help))
	return Styles.Box.Render(b.String())
}
