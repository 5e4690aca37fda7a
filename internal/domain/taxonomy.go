package domain

import "sort"

// Program is a degree program (course) offered by a department, with its
// specialization tracks.
type Program struct {
	Code            string
	Specializations []string
}

// taxonomy is the fixed department -> program -> specialization tree used by
// search filters and by the roster member form.
var taxonomy = map[string][]Program{
	"CCS": {
		{Code: "BSCS", Specializations: []string{"Data Science", "Software Engineering"}},
		{Code: "BSIT", Specializations: []string{"Network Administration", "Web Development"}},
		{Code: "BSIS"},
	},
	"CBA": {
		{Code: "BSA"},
		{Code: "BSBA", Specializations: []string{"Financial Management", "Marketing Management", "Human Resource Management"}},
	},
	"CEA": {
		{Code: "BSCE", Specializations: []string{"Structural", "Transportation"}},
		{Code: "BSEE"},
		{Code: "BSME"},
	},
	"CAS": {
		{Code: "BAComm"},
		{Code: "BSPsych"},
		{Code: "BSBio", Specializations: []string{"Medical Biology", "Ecology"}},
	},
	"CTE": {
		{Code: "BEEd"},
		{Code: "BSEd", Specializations: []string{"English", "Mathematics", "Science"}},
	},
}

// Departments returns the department codes in sorted order.
func Departments() []string {
	out := make([]string, 0, len(taxonomy))
	for d := range taxonomy {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// HasDepartment reports whether dept is a known department code.
func HasDepartment(dept string) bool {
	_, ok := taxonomy[dept]
	return ok
}

// Programs returns the program codes of a department in taxonomy order.
// Unknown departments yield nil.
func Programs(dept string) []string {
	programs := taxonomy[dept]
	if len(programs) == 0 {
		return nil
	}
	out := make([]string, len(programs))
	for i, p := range programs {
		out[i] = p.Code
	}
	return out
}

// HasCourse reports whether course is offered by dept.
func HasCourse(dept, course string) bool {
	for _, p := range taxonomy[dept] {
		if p.Code == course {
			return true
		}
	}
	return false
}

// Specializations returns the specialization tracks of a program.
func Specializations(dept, program string) []string {
	for _, p := range taxonomy[dept] {
		if p.Code == program {
			return append([]string(nil), p.Specializations...)
		}
	}
	return nil
}

// AllPrograms returns every program code across departments, sorted. Used when
// no department filter is active.
func AllPrograms() []string {
	var out []string
	for _, d := range Departments() {
		out = append(out, Programs(d)...)
	}
	sort.Strings(out)
	return out
}

// DepartmentOf returns the department offering program, or "" when unknown.
func DepartmentOf(program string) string {
	for _, d := range Departments() {
		if HasCourse(d, program) {
			return d
		}
	}
	return ""
}
