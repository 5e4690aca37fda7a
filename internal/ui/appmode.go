package ui

// AppMode is the top-level screen shown by the dashboard.
type AppMode int

const (
	ModeOrganizations AppMode = iota
	ModeRoster
	ModeAnalytics
)

func (m AppMode) String() string {
	switch m {
	case ModeOrganizations:
		return "Organizations"
	case ModeRoster:
		return "Roster"
	case ModeAnalytics:
		return "Analytics"
	default:
		return "Unknown"
	}
}
