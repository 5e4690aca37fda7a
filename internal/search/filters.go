// Package search holds the state behind the organization search list:
// categorical filters, free-text debouncing and response sequencing.
package search

import (
	"strings"

	"accredash/internal/api"
	"accredash/internal/domain"
)

// Filters is the current organization search criteria.
//
// Department, Program and Specialization form a dependent chain in the
// taxonomy, so changing a level clears every level below it. Changing the
// scope clears all three. In local scope the department is pinned to the
// home department and Department is ignored.
type Filters struct {
	Scope          domain.Scope
	Department     string
	Program        string
	Specialization string
	Query          string

	home string
}

// NewFilters starts in local scope pinned to home.
func NewFilters(home string) Filters {
	return Filters{Scope: domain.ScopeLocal, home: strings.ToUpper(strings.TrimSpace(home))}
}

// SetScope switches scope and clears department, program and
// specialization, even when s is already the current scope.
func (f *Filters) SetScope(s domain.Scope) {
	f.Scope = s
	f.Department = ""
	f.Program = ""
	f.Specialization = ""
}

// ToggleScope flips between local and system-wide.
func (f *Filters) ToggleScope() { f.SetScope(f.Scope.Toggle()) }

// SetDepartment changes the department filter. It reports false and does
// nothing in local scope.
func (f *Filters) SetDepartment(dept string) bool {
	if f.Scope == domain.ScopeLocal {
		return false
	}
	f.Department = dept
	f.Program = ""
	f.Specialization = ""
	return true
}

// SetProgram changes the program filter and clears the specialization.
func (f *Filters) SetProgram(program string) {
	f.Program = program
	f.Specialization = ""
}

// SetSpecialization changes the specialization filter.
func (f *Filters) SetSpecialization(spec string) { f.Specialization = spec }

// SetQuery replaces the free-text query.
func (f *Filters) SetQuery(q string) { f.Query = q }

// Clear resets every filter except the scope.
func (f *Filters) Clear() {
	f.SetScope(f.Scope)
	f.Query = ""
}

// EffectiveDepartment is the department actually searched: the home
// department in local scope, the chosen one otherwise.
func (f Filters) EffectiveDepartment() string {
	if f.Scope == domain.ScopeLocal {
		return f.home
	}
	return f.Department
}

// DepartmentOptions lists selectable departments. Empty in local scope.
func (f Filters) DepartmentOptions() []string {
	if f.Scope == domain.ScopeLocal {
		return nil
	}
	return domain.Departments()
}

// ProgramOptions lists programs under the effective department, or every
// program when no department is chosen.
func (f Filters) ProgramOptions() []string {
	if d := f.EffectiveDepartment(); d != "" {
		return domain.Programs(d)
	}
	return domain.AllPrograms()
}

// SpecializationOptions lists specializations of the chosen program.
func (f Filters) SpecializationOptions() []string {
	if f.Program == "" {
		return nil
	}
	dept := f.EffectiveDepartment()
	if dept == "" {
		dept = domain.DepartmentOf(f.Program)
	}
	return domain.Specializations(dept, f.Program)
}

// CycleDepartment advances to the next department option, wrapping to
// "all" after the last one.
func (f *Filters) CycleDepartment() bool {
	return f.SetDepartment(next(f.DepartmentOptions(), f.Department))
}

// CycleProgram advances to the next program option.
func (f *Filters) CycleProgram() {
	f.SetProgram(next(f.ProgramOptions(), f.Program))
}

// CycleSpecialization advances to the next specialization option.
func (f *Filters) CycleSpecialization() {
	f.SetSpecialization(next(f.SpecializationOptions(), f.Specialization))
}

// next returns the option after cur, "" after the last one, and the first
// option when cur is "" or unknown.
func next(options []string, cur string) string {
	if len(options) == 0 {
		return ""
	}
	if cur == "" {
		return options[0]
	}
	for i, o := range options {
		if o == cur {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return options[0]
}

// Request builds the API query for the current filters.
func (f Filters) Request() api.OrganizationQuery {
	return api.OrganizationQuery{
		Query:          strings.TrimSpace(f.Query),
		Scope:          f.Scope.String(),
		Department:     f.EffectiveDepartment(),
		Program:        f.Program,
		Specialization: f.Specialization,
	}
}

// Summary renders the active filters for a status line.
func (f Filters) Summary() string {
	parts := []string{f.Scope.String()}
	if d := f.EffectiveDepartment(); d != "" {
		parts = append(parts, d)
	}
	if f.Program != "" {
		parts = append(parts, f.Program)
	}
	if f.Specialization != "" {
		parts = append(parts, f.Specialization)
	}
	return strings.Join(parts, " › ")
}
