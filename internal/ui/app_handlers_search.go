package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleOrganizationsLoaded forwards a search response to the search view.
// Failures leave the list empty; they are only logged.
func (a *appModelAdapter) handleOrganizationsLoaded(msg OrganizationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Logger.WithError(msg.Err).WithField("seq", msg.Seq).Warn("organization search failed")
	}
	_, cmd := a.Search.Update(msg)
	return a, cmd
}

// handleOrganizationToggled selects an organization, or clears the
// selection when the selected one is toggled again.
func (a *appModelAdapter) handleOrganizationToggled(msg OrganizationToggledMsg) (tea.Model, tea.Cmd) {
	if a.Selected != nil && a.Selected.ID == msg.Organization.ID {
		a.Selected = nil
		a.Profile = nil
		a.Search.SetSelected("")
		a.resize()
		return a, nil
	}
	org := msg.Organization
	a.Selected = &org
	a.Profile = NewProfileView(org, a.Backend.AssetURL(org.ID, org.Logo))
	a.Search.SetSelected(org.ID)
	a.resize()
	a.Logger.WithField("org_id", org.ID).Debug("organization selected")
	return a, loadProfileCmd(a.Ctx, a.Backend, org.ID)
}

// handleProfileLoaded refreshes the side panel. Responses for an
// organization that is no longer selected are dropped.
func (a *appModelAdapter) handleProfileLoaded(msg ProfileLoadedMsg) (tea.Model, tea.Cmd) {
	if a.Selected == nil || a.Selected.ID != msg.OrgID || a.Profile == nil {
		return a, nil
	}
	if msg.Err != nil {
		a.Logger.WithError(msg.Err).WithField("org_id", msg.OrgID).Warn("profile refresh failed")
		a.Profile.Err = msg.Err
		return a, nil
	}
	if msg.Organization == nil {
		return a, nil
	}
	org := *msg.Organization
	a.Selected = &org
	a.Profile.Org = org
	a.Profile.LogoURL = a.Backend.AssetURL(org.ID, org.Logo)
	a.Profile.Err = nil
	return a, nil
}

// handleRefresh re-issues the fetch behind the current screen.
func (a *appModelAdapter) handleRefresh() (tea.Model, tea.Cmd) {
	switch a.Mode {
	case ModeRoster:
		if a.Roster == nil || a.Roster.Submitted {
			return a, nil
		}
		return a, tea.Batch(a.Roster.SetLoading(), loadRosterCmd(a.Ctx, a.Backend, a.Roster.OrgID()))
	case ModeAnalytics:
		if a.Analytics == nil {
			return a, nil
		}
		return a, tea.Batch(a.Analytics.SetLoading(), loadAccomplishmentsCmd(a.Ctx, a.Backend))
	}
	cmds := []tea.Cmd{a.Search.requestNow()}
	if a.Selected != nil {
		cmds = append(cmds, loadProfileCmd(a.Ctx, a.Backend, a.Selected.ID))
	}
	return a, tea.Batch(cmds...)
}
