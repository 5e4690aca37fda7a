package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/export"
	"accredash/internal/roster"
	"accredash/internal/timeouts"
)

// handleShowRoster opens the selected organization's roster, fetching it
// fresh every time.
func (a *appModelAdapter) handleShowRoster() (tea.Model, tea.Cmd) {
	if a.Selected == nil {
		a.setError("Select an organization first")
		return a, nil
	}
	a.Mode = ModeRoster
	a.Roster = NewRosterView(*a.Selected)
	a.resize()
	return a, tea.Batch(a.Roster.Init(), loadRosterCmd(a.Ctx, a.Backend, a.Selected.ID))
}

func (a *appModelAdapter) handleRosterLoaded(msg RosterLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Logger.WithError(msg.Err).WithField("org_id", msg.OrgID).Warn("roster fetch failed")
	}
	if a.Roster == nil {
		return a, nil
	}
	_, cmd := a.Roster.Update(msg)
	return a, cmd
}

// rosterReady returns the open roster when it is loaded and still editable.
func (a *appModelAdapter) rosterReady() *RosterView {
	r := a.Roster
	if a.Mode != ModeRoster || r == nil || r.Loading() || r.Err != nil || r.Submitted {
		return nil
	}
	return r
}

func (a *appModelAdapter) handleShowAddMember() (tea.Model, tea.Cmd) {
	r := a.rosterReady()
	if r == nil {
		return a, nil
	}
	modal := NewAddMemberModal(r.Org)
	a.Overlays.Push(modal)
	return a, modal.Init()
}

func (a *appModelAdapter) handleSubmitMember(msg SubmitMemberMsg) (tea.Model, tea.Cmd) {
	if a.Roster == nil {
		return a, nil
	}
	return a, addMemberCmd(a.Ctx, a.Backend, a.Roster.OrgID(), msg.Form)
}

// handleMemberAdded closes the form and re-fetches the roster on success.
// Failures go back to the form, which stays open.
func (a *appModelAdapter) handleMemberAdded(msg MemberAddedMsg) (tea.Model, tea.Cmd) {
	modal := a.memberModal()
	if msg.Err != nil {
		a.Logger.WithError(msg.Err).WithField("org_id", msg.OrgID).Warn("add member failed")
		if modal != nil {
			modal.SetResult(msg.Err)
		} else {
			a.setError(fmt.Sprintf("Add member: %v", msg.Err))
		}
		return a, nil
	}
	if modal != nil {
		a.Overlays.Pop()
	}
	name := "member"
	if msg.Member != nil {
		name = msg.Member.FullName()
	}
	a.setStatus("Added " + name)
	if a.Roster == nil || a.Roster.OrgID() != msg.OrgID {
		return a, nil
	}
	return a, tea.Batch(a.Roster.SetLoading(), loadRosterCmd(a.Ctx, a.Backend, msg.OrgID))
}

func (a *appModelAdapter) memberModal() *AddMemberModal {
	top, ok := a.Overlays.Peek()
	if !ok {
		return nil
	}
	m, _ := top.(*AddMemberModal)
	return m
}

// handleExportRoster writes every fetched member, not just the filtered
// rows, to a spreadsheet.
func (a *appModelAdapter) handleExportRoster() (tea.Model, tea.Cmd) {
	r := a.rosterReady()
	if r == nil {
		return a, nil
	}
	return a, exportRosterCmd(a.Exports, r.Org.DisplayName(), r.Members())
}

func (a *appModelAdapter) handleRosterExported(msg RosterExportedMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, export.ErrEmptyRoster):
		a.setError("Roster is empty; nothing to export")
	case msg.Err != nil:
		a.Logger.WithError(msg.Err).Warn("roster export failed")
		a.setError(fmt.Sprintf("Export failed: %v", msg.Err))
	default:
		a.Logger.WithField("path", msg.Path).Info("roster exported")
		a.setStatus("Exported roster to " + msg.Path)
	}
	return a, nil
}

// handleShowSubmitRoster asks for confirmation, refusing rosters that are
// empty or already submitted.
func (a *appModelAdapter) handleShowSubmitRoster() (tea.Model, tea.Cmd) {
	r := a.rosterReady()
	if r == nil {
		return a, nil
	}
	switch err := roster.CanSubmit(r.Record); {
	case errors.Is(err, roster.ErrAlreadySubmitted):
		a.setError("Roster has already been submitted")
		return a, nil
	case errors.Is(err, roster.ErrNoMembers):
		a.setError("Add at least one member before submitting")
		return a, nil
	}
	a.Overlays.Push(NewSubmitRosterConfirmModal(r.Org, len(r.Members())))
	return a, nil
}

func (a *appModelAdapter) handleSubmitRoster(msg SubmitRosterMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	a.setStatus("Submitting roster…")
	return a, submitRosterCmd(a.Ctx, a.Backend, msg.OrgID)
}

// handleRosterSubmitted shows the confirmation and schedules the roster to
// close after the completion delay.
func (a *appModelAdapter) handleRosterSubmitted(msg RosterSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Logger.WithError(msg.Err).WithField("org_id", msg.OrgID).Warn("roster submission failed")
		a.setError(fmt.Sprintf("Submit failed: %v", msg.Err))
		return a, nil
	}
	a.Logger.WithField("org_id", msg.OrgID).Info("roster submitted for completion")
	a.setStatus("Roster submitted for review")
	if a.Roster == nil || a.Roster.OrgID() != msg.OrgID {
		return a, nil
	}
	a.Roster.Update(msg)
	return a, closeRosterAfter(timeouts.CompletionClose, a.Roster)
}

// handleCloseRoster returns to the organization list unless the submitted
// roster has since been closed or reopened.
func (a *appModelAdapter) handleCloseRoster(msg CloseRosterMsg) (tea.Model, tea.Cmd) {
	if a.Roster == nil || a.Roster != msg.Roster {
		return a, nil
	}
	orgID := a.Roster.OrgID()
	if a.Mode == ModeRoster {
		a.Mode = ModeOrganizations
	}
	a.Roster = nil
	if a.Selected != nil && a.Selected.ID == orgID {
		return a, loadProfileCmd(a.Ctx, a.Backend, orgID)
	}
	return a, nil
}
