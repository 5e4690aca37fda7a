// Package domain holds the records mirrored from the accreditation API.
// None of these types are owned by this application; they are decoded from
// API responses and re-fetched after every mutation.
package domain

import "strings"

// Scope selects the breadth of an organization search.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeSystemWide
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeSystemWide:
		return "system-wide"
	default:
		return "unknown"
	}
}

// Toggle returns the other scope.
func (s Scope) Toggle() Scope {
	if s == ScopeLocal {
		return ScopeSystemWide
	}
	return ScopeLocal
}

// OrganizationProfile identifies a registered student organization and its
// department/program/specialization classification.
type OrganizationProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Acronym        string `json:"acronym"`
	Department     string `json:"department"`
	Program        string `json:"program"`
	Specialization string `json:"specialization"`
	Logo           string `json:"logo"`
	Status         string `json:"status"`
}

// DisplayName prefers "Name (ACR)" when an acronym is set.
func (o OrganizationProfile) DisplayName() string {
	name := strings.TrimSpace(o.Name)
	if o.Acronym != "" && name != "" {
		return name + " (" + o.Acronym + ")"
	}
	if name == "" {
		return o.Acronym
	}
	return name
}

// Classification renders the department/program/specialization path,
// skipping empty levels.
func (o OrganizationProfile) Classification() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{o.Department, o.Program, o.Specialization} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " / ")
}
