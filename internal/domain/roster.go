package domain

import "strings"

// Base positions a roster member can hold.
const (
	BasePositionOfficer = "Officer"
	BasePositionMember  = "Member"
)

// Roster statuses reported by the API.
const (
	RosterStatusIncomplete = "Incomplete"
	RosterStatusForReview  = "For Review"
	RosterStatusApproved   = "Approved"
)

// RosterRecord is the roster header of one organization and its ordered members.
type RosterRecord struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id"`
	IsComplete     bool           `json:"is_complete"`
	Status         string         `json:"status"`
	Members        []RosterMember `json:"members"`
}

// RosterMember is one named member of a roster.
type RosterMember struct {
	ID             string `json:"id"`
	StudentID      string `json:"student_id"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	BasePosition   string `json:"base_position"`
	Position       string `json:"position"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contact_number"`
	Address        string `json:"address"`
	BirthDate      string `json:"birth_date"`
	Department     string `json:"department"`
	Course         string `json:"course"`
	YearLevel      string `json:"year_level"`
	Status         string `json:"status"`
	ProfilePicture string `json:"profile_picture"`
}

// FullName joins the non-empty name parts with single spaces.
func (m RosterMember) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{m.FirstName, m.MiddleName, m.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
