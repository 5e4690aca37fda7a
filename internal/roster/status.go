package roster

import (
	"errors"

	"accredash/internal/domain"
)

// ErrAlreadySubmitted is returned when a roster that is already complete or
// under review is submitted again.
var ErrAlreadySubmitted = errors.New("roster already submitted")

// ErrNoMembers is returned when an empty roster is submitted.
var ErrNoMembers = errors.New("roster has no members")

// CanSubmit reports whether rec may be submitted for completion.
func CanSubmit(rec *domain.RosterRecord) error {
	if rec == nil {
		return ErrNoMembers
	}
	if rec.IsComplete || rec.Status == domain.RosterStatusForReview || rec.Status == domain.RosterStatusApproved {
		return ErrAlreadySubmitted
	}
	if len(rec.Members) == 0 {
		return ErrNoMembers
	}
	return nil
}

// Officers counts members holding an officer base position.
func Officers(members []domain.RosterMember) int {
	n := 0
	for _, m := range members {
		if m.BasePosition == domain.BasePositionOfficer {
			n++
		}
	}
	return n
}
