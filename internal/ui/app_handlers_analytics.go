package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleShowAnalytics opens the analytics screen and fetches every
// organization's accomplishments.
func (a *appModelAdapter) handleShowAnalytics() (tea.Model, tea.Cmd) {
	a.Mode = ModeAnalytics
	a.Analytics = NewAnalyticsView()
	a.resize()
	return a, tea.Batch(a.Analytics.Init(), loadAccomplishmentsCmd(a.Ctx, a.Backend))
}

func (a *appModelAdapter) handleAccomplishmentsLoaded(msg AccomplishmentsLoadedMsg) (tea.Model, tea.Cmd) {
	if a.Analytics == nil {
		return a, nil
	}
	if msg.Err != nil {
		a.Logger.WithError(msg.Err).Warn("accomplishments fetch failed")
	}
	_, cmd := a.Analytics.Update(msg)
	return a, cmd
}
