package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/domain"
	"accredash/internal/ui/textutil"
)

const profileWidth = 40

// ProfileView is the side panel describing the selected organization.
type ProfileView struct {
	Org     domain.OrganizationProfile
	LogoURL string
	Err     error
}

var _ View = (*ProfileView)(nil)

// NewProfileView shows org until a fresh profile arrives.
func NewProfileView(org domain.OrganizationProfile, logoURL string) *ProfileView {
	return &ProfileView{Org: org, LogoURL: logoURL}
}

// Init implements View.
func (p *ProfileView) Init() tea.Cmd { return nil }

// Update implements View. Profile refreshes are applied by the app.
func (p *ProfileView) Update(tea.Msg) (View, tea.Cmd) { return p, nil }

// View implements View.
func (p *ProfileView) View() string {
	inner := profileWidth - 4
	row := func(label, value string) string {
		if value == "" {
			value = "—"
		}
		return Styles.Muted.Render(textutil.PadRight(label, 14)) + textutil.Truncate(value, inner-14)
	}

	lines := []string{
		Styles.Title.Render(textutil.Truncate(p.Org.DisplayName(), inner)),
		"",
		row("Department", p.Org.Department),
		row("Program", p.Org.Program),
		row("Specialization", p.Org.Specialization),
		row("Status", p.Org.Status),
		row("Logo", p.LogoURL),
	}
	if p.Err != nil {
		lines = append(lines, "", Styles.Error.Render("Profile may be stale."), Styles.Hint.Render("SPC g to refresh"))
	}
	lines = append(lines, "", Styles.Hint.Render("SPC r r  roster"), Styles.Hint.Render("enter    deselect"))
	return Styles.Panel.Width(profileWidth).Render(strings.Join(lines, "\n"))
}
