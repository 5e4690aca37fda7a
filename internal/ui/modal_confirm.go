package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"accredash/internal/domain"
)

// ConfirmModal asks before an action that cannot be undone from the
// dashboard. Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string
	OnConfirm func() tea.Msg

	box   lipgloss.Style
	title lipgloss.Style
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
		box:       Styles.BoxDanger,
		title:     Styles.TitleWarning,
	}
}

// WithDetails adds a highlighted note below the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewSubmitRosterConfirmModal confirms submitting org's roster for review.
func NewSubmitRosterConfirmModal(org domain.OrganizationProfile, members int) *ConfirmModal {
	orgID := org.ID
	return NewConfirmModal(
		"Submit roster for completion?",
		fmt.Sprintf("%s · %d members", org.DisplayName(), members),
		func() tea.Msg { return SubmitRosterMsg{OrgID: orgID} },
	).WithDetails("The roster moves to " + domain.RosterStatusForReview + " and can no longer be edited here.")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "esc", "n":
		return m, func() tea.Msg { return DismissModalMsg{} }
	case "enter", "y":
		if m.OnConfirm != nil {
			return m, m.OnConfirm
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.title.Render(m.Title) + "\n\n" + Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  n/Esc: cancel")
	return m.box.Render(content)
}
