package domain

import "testing"

func TestTaxonomy_ProgramsBelongToDepartment(t *testing.T) {
	for _, d := range Departments() {
		for _, p := range Programs(d) {
			if !HasCourse(d, p) {
				t.Errorf("HasCourse(%q, %q) = false, want true", d, p)
			}
			if got := DepartmentOf(p); got != d {
				t.Errorf("DepartmentOf(%q) = %q, want %q", p, got, d)
			}
		}
	}
}

func TestTaxonomy_UnknownInputs(t *testing.T) {
	if HasDepartment("NOPE") {
		t.Error("unknown department reported as known")
	}
	if Programs("NOPE") != nil {
		t.Error("expected nil programs for unknown department")
	}
	if HasCourse("CCS", "BSA") {
		t.Error("BSA is not offered by CCS")
	}
	if Specializations("CCS", "BSIS") != nil {
		t.Error("BSIS has no specializations")
	}
}

func TestRosterMember_FullName(t *testing.T) {
	m := RosterMember{FirstName: " Ana ", LastName: "Reyes"}
	if got := m.FullName(); got != "Ana Reyes" {
		t.Fatalf("FullName() = %q, want %q", got, "Ana Reyes")
	}
}

func TestScope_Toggle(t *testing.T) {
	if ScopeLocal.Toggle() != ScopeSystemWide || ScopeSystemWide.Toggle() != ScopeLocal {
		t.Fatal("Toggle should flip between local and system-wide")
	}
	if ScopeSystemWide.String() != "system-wide" {
		t.Fatalf("String() = %q", ScopeSystemWide.String())
	}
}
