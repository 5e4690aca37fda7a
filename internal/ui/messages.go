package ui

import (
	"accredash/internal/api"
	"accredash/internal/domain"
	"accredash/internal/roster"
)

// searchDebounceMsg fires when a free-text debounce timer elapses.
type searchDebounceMsg struct {
	Token uint64
}

// SearchRequestMsg asks the app to run an organization search. Seq is
// stamped by the search view's sequencer.
type SearchRequestMsg struct {
	Seq   uint64
	Query api.OrganizationQuery
}

// OrganizationsLoadedMsg carries a search response for request Seq.
type OrganizationsLoadedMsg struct {
	Seq           uint64
	Organizations []domain.OrganizationProfile
	Err           error
}

// OrganizationToggledMsg is sent when enter is pressed on a search result.
// Toggling the selected organization clears the selection.
type OrganizationToggledMsg struct {
	Organization domain.OrganizationProfile
}

// ProfileLoadedMsg carries the refreshed profile of the selected organization.
type ProfileLoadedMsg struct {
	OrgID        string
	Organization *domain.OrganizationProfile
	Err          error
}

// ShowOrganizationsMsg switches to the search screen.
type ShowOrganizationsMsg struct{}

// ShowRosterMsg opens the roster of the selected organization.
type ShowRosterMsg struct{}

// ShowAnalyticsMsg opens the accomplishment analytics.
type ShowAnalyticsMsg struct{}

// RefreshMsg reloads whatever the current screen shows.
type RefreshMsg struct{}

// RosterLoadedMsg carries the roster of OrgID.
type RosterLoadedMsg struct {
	OrgID  string
	Record *domain.RosterRecord
	Err    error
}

// ShowAddMemberMsg opens the add-member form.
type ShowAddMemberMsg struct{}

// SubmitMemberMsg is sent by the add-member form once it validates.
type SubmitMemberMsg struct {
	Form roster.MemberForm
}

// MemberAddedMsg carries the result of an add-member request.
type MemberAddedMsg struct {
	OrgID  string
	Member *domain.RosterMember
	Err    error
}

// ExportRosterMsg exports the open roster to a spreadsheet.
type ExportRosterMsg struct{}

// RosterExportedMsg carries the result of an export.
type RosterExportedMsg struct {
	Path string
	Err  error
}

// ShowSubmitRosterMsg asks for confirmation before submitting the roster.
type ShowSubmitRosterMsg struct{}

// SubmitRosterMsg submits the roster of OrgID for completion review.
type SubmitRosterMsg struct {
	OrgID string
}

// RosterSubmittedMsg carries the result of a completion request.
type RosterSubmittedMsg struct {
	OrgID  string
	Record *domain.RosterRecord
	Err    error
}

// CloseRosterMsg closes Roster once the completion delay has elapsed. A
// roster reopened in the meantime is a different view and stays open.
type CloseRosterMsg struct {
	Roster *RosterView
}

// AccomplishmentsLoadedMsg carries every organization's accomplishments.
type AccomplishmentsLoadedMsg struct {
	Bundles []*domain.AccomplishmentBundle
	Err     error
}

// RetryMsg re-issues the failed fetch of the current screen.
type RetryMsg struct{}

// DismissModalMsg closes the top modal.
type DismissModalMsg struct{}
