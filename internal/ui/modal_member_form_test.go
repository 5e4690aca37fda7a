package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/domain"
	"accredash/internal/roster"
)

func filledModal() *AddMemberModal {
	m := NewAddMemberModal(testOrgs()[1])
	m.SetValue("student_id", "201234")
	m.SetValue("first_name", "Ana")
	m.SetValue("last_name", "Reyes")
	m.SetValue("email", "ana@school.edu")
	m.SetValue("contact_number", "+63 912 345 6789")
	m.SetValue("address", "Quezon City")
	m.SetValue("birth_date", "2004-01-31")
	return m
}

func TestAddMemberModal_DefaultsFromOrganization(t *testing.T) {
	m := NewAddMemberModal(testOrgs()[1])
	f := m.Form()
	if f.Department != "CCS" || f.Course != "BSIT" {
		t.Errorf("department/course = %s/%s, want CCS/BSIT", f.Department, f.Course)
	}
	if f.BasePosition != domain.BasePositionMember {
		t.Errorf("base position = %q, want Member", f.BasePosition)
	}
	if m.Focused() != "student_id" {
		t.Errorf("focused = %q, want student_id", m.Focused())
	}
}

func TestAddMemberModal_StudentIDNormalizedWhileTyping(t *testing.T) {
	m := NewAddMemberModal(testOrgs()[0])
	typeText(func(msg tea.Msg) { m.Update(msg) }, "20x12345")
	if got := m.Form().StudentID; got != "20-1234" {
		t.Errorf("student id = %q, want 20-1234", got)
	}
}

func TestAddMemberModal_InvalidFormIsNotSent(t *testing.T) {
	m := NewAddMemberModal(testOrgs()[0])
	m.SetValue("first_name", "Ana")

	_, cmd := m.Update(keyMsg("ctrl+s"))
	if cmd != nil {
		t.Fatal("invalid form must not be submitted")
	}
	for _, k := range []string{"student_id", "last_name", "email", "contact_number", "address", "birth_date"} {
		if _, ok := m.Errors[k]; !ok {
			t.Errorf("expected error for %s, got %v", k, m.Errors)
		}
	}
	if _, ok := m.Errors["first_name"]; ok {
		t.Error("first_name is valid")
	}
	if m.Focused() != "student_id" {
		t.Errorf("focus should jump to the first invalid field, got %q", m.Focused())
	}
	if !strings.Contains(m.View(), m.Errors["email"]) {
		t.Error("errors should render inline")
	}
}

func TestAddMemberModal_SubmitSendsNormalizedForm(t *testing.T) {
	m := filledModal()
	_, cmd := m.Update(keyMsg("ctrl+s"))
	msg := firstOf[SubmitMemberMsg](t, cmd)
	if msg.Form.StudentID != "20-1234" {
		t.Errorf("student id = %q", msg.Form.StudentID)
	}
	if msg.Form.Position != domain.BasePositionMember {
		t.Errorf("position = %q, want Member for plain members", msg.Form.Position)
	}
	if _, cmd := m.Update(keyMsg("ctrl+s")); cmd != nil {
		t.Error("no second submit while saving")
	}
}

func TestAddMemberModal_OfficerNeedsTitle(t *testing.T) {
	m := filledModal()
	m.SetValue("base_position", domain.BasePositionOfficer)
	if _, cmd := m.Update(keyMsg("ctrl+s")); cmd != nil {
		t.Fatal("officer without a title must not be submitted")
	}
	if _, ok := m.Errors["position"]; !ok {
		t.Errorf("expected position error, got %v", m.Errors)
	}
	if m.Focused() != "position" {
		t.Errorf("focused = %q, want position", m.Focused())
	}
}

func TestAddMemberModal_PositionSkippedForMembers(t *testing.T) {
	m := NewAddMemberModal(testOrgs()[0])
	for range 4 {
		m.Update(keyMsg("tab"))
	}
	if m.Focused() != "base_position" {
		t.Fatalf("focused = %q, want base_position", m.Focused())
	}
	m.Update(keyMsg("tab"))
	if m.Focused() != "email" {
		t.Errorf("focused = %q, want position skipped", m.Focused())
	}
	m.Update(keyMsg("shift+tab"))
	m.Update(keyMsg("right"))
	m.Update(keyMsg("tab"))
	if m.Focused() != "position" {
		t.Errorf("focused = %q, want position for officers", m.Focused())
	}
}

func TestAddMemberModal_DepartmentResetsCourse(t *testing.T) {
	m := NewAddMemberModal(testOrgs()[0])
	m.SetValue("department", "CBA")
	f := m.Form()
	if !domain.HasCourse("CBA", f.Course) {
		t.Errorf("course %q is not offered by CBA", f.Course)
	}
}

func TestAddMemberModal_SetResult(t *testing.T) {
	m := filledModal()
	m.Update(keyMsg("ctrl+s"))

	m.SetResult(fmt.Errorf("add member: %w", roster.FieldErrors{"email": "already registered"}))
	if m.Errors["email"] != "already registered" {
		t.Errorf("Errors = %v", m.Errors)
	}

	m.SetResult(fmt.Errorf("add member: server unavailable"))
	if m.SubmitErr == "" {
		t.Error("expected a form-level error")
	}
	if _, cmd := m.Update(keyMsg("esc")); cmd == nil {
		t.Error("esc should dismiss after a failed save")
	}
}
