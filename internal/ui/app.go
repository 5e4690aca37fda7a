package ui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"accredash/internal/domain"
	"accredash/internal/export"
)

// AppModel is the root model. It owns the three screens, the modal overlay
// stack and the global keybindings, and turns view messages into API calls.
type AppModel struct {
	Mode      AppMode
	Search    *OrgSearchView
	Roster    *RosterView    // nil until a roster is opened
	Analytics *AnalyticsView // nil until analytics is opened
	Profile   *ProfileView   // nil while nothing is selected

	Overlays   OverlayStack
	KeyHandler *KeyHandler

	Backend Backend
	Exports *export.Store
	Logger  logrus.FieldLogger
	Ctx     context.Context

	// Selected is the organization picked in the search list; roster
	// commands act on it.
	Selected *domain.OrganizationProfile

	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. home is the department local-scope
// searches are pinned to.
func NewAppModel(ctx context.Context, backend Backend, exports *export.Store, logger logrus.FieldLogger, home string) *AppModel {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &AppModel{
		Mode:       ModeOrganizations,
		Search:     NewOrgSearchView(home),
		KeyHandler: NewKeyHandler(newRegistry()),
		Backend:    backend,
		Exports:    exports,
		Logger:     logger,
		Ctx:        ctx,
	}
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC o", func() tea.Msg { return ShowOrganizationsMsg{} }, "Organizations")
	reg.BindWithDesc("SPC a", func() tea.Msg { return ShowAnalyticsMsg{} }, "Analytics")
	reg.BindWithDesc("SPC g", func() tea.Msg { return RefreshMsg{} }, "Refresh")
	reg.BindWithDesc("SPC r r", func() tea.Msg { return ShowRosterMsg{} }, "Open roster")
	reg.BindForModes("SPC r a", func() tea.Msg { return ShowAddMemberMsg{} }, "Add member", ModeRoster)
	reg.BindForModes("SPC r x", func() tea.Msg { return ExportRosterMsg{} }, "Export roster", ModeRoster)
	reg.BindForModes("SPC r s", func() tea.Msg { return ShowSubmitRosterMsg{} }, "Submit roster", ModeRoster)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Search.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)

	case SearchRequestMsg:
		return a, searchCmd(a.Ctx, a.Backend, msg)
	case OrganizationsLoadedMsg:
		return a.handleOrganizationsLoaded(msg)
	case OrganizationToggledMsg:
		return a.handleOrganizationToggled(msg)
	case ProfileLoadedMsg:
		return a.handleProfileLoaded(msg)

	case ShowOrganizationsMsg:
		a.Mode = ModeOrganizations
		return a, nil
	case ShowRosterMsg:
		return a.handleShowRoster()
	case RosterLoadedMsg:
		return a.handleRosterLoaded(msg)
	case ShowAddMemberMsg:
		return a.handleShowAddMember()
	case SubmitMemberMsg:
		return a.handleSubmitMember(msg)
	case MemberAddedMsg:
		return a.handleMemberAdded(msg)
	case ExportRosterMsg:
		return a.handleExportRoster()
	case RosterExportedMsg:
		return a.handleRosterExported(msg)
	case ShowSubmitRosterMsg:
		return a.handleShowSubmitRoster()
	case SubmitRosterMsg:
		return a.handleSubmitRoster(msg)
	case RosterSubmittedMsg:
		return a.handleRosterSubmitted(msg)
	case CloseRosterMsg:
		return a.handleCloseRoster(msg)

	case ShowAnalyticsMsg:
		return a.handleShowAnalytics()
	case AccomplishmentsLoadedMsg:
		return a.handleAccomplishmentsLoaded(msg)

	case RetryMsg, RefreshMsg:
		return a.handleRefresh()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case spinner.TickMsg:
		return a, a.handleSpinnerTick(msg)
	}

	return a, a.updateCurrent(msg)
}

// handleKey routes a key press: ctrl+c always quits, then the top modal,
// then a view with a focused text input, then global keybindings, then the
// current view.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	cur := a.currentView()
	if capturing(cur) {
		return a, a.updateCurrent(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
	}
	if msg.String() == "esc" && a.Mode != ModeOrganizations {
		a.Mode = ModeOrganizations
		return a, nil
	}
	return a, a.updateCurrent(msg)
}

func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-4, 5)}
	search := inner
	if a.Profile != nil {
		search.Width = max(msg.Width-profileWidth-2, 20)
	}
	a.Search.Update(search)
	if a.Roster != nil {
		a.Roster.Update(inner)
	}
	if a.Analytics != nil {
		a.Analytics.Update(inner)
	}
	return a, nil
}

// resize replays the last window size to views created since.
func (a *appModelAdapter) resize() {
	if a.width > 0 {
		a.handleWindowSize(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
}

// handleSpinnerTick feeds every loading view, not just the visible one, so
// a spinner keeps its tick chain while the user is on another screen. Each
// spinner ignores ticks carrying another spinner's ID.
func (a *appModelAdapter) handleSpinnerTick(msg spinner.TickMsg) tea.Cmd {
	var cmds []tea.Cmd
	if a.Roster != nil {
		_, cmd := a.Roster.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.Analytics != nil {
		_, cmd := a.Analytics.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeRoster:
		if a.Roster != nil {
			return a.Roster
		}
	case ModeAnalytics:
		if a.Analytics != nil {
			return a.Analytics
		}
	}
	return a.Search
}

func (a *appModelAdapter) updateCurrent(msg tea.Msg) tea.Cmd {
	_, cmd := a.currentView().Update(msg)
	return cmd
}

func (a *appModelAdapter) setStatus(s string) {
	a.Status = s
	a.StatusIsError = false
}

func (a *appModelAdapter) setError(s string) {
	a.Status = s
	a.StatusIsError = true
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderTabs() + "\n")

	body := a.currentView().View()
	if a.Mode == ModeOrganizations && a.Profile != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", a.Profile.View())
	}
	if top, ok := a.Overlays.Peek(); ok {
		body = top.View()
	}
	b.WriteString(body + "\n")

	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		b.WriteString("\n" + style.Render(a.Status))
	}
	if a.Overlays.Len() == 0 {
		if h := renderViewHelp(a.currentView()); h != "" {
			b.WriteString("\n" + h)
		}
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return b.String()
}

func (a *appModelAdapter) renderTabs() string {
	tabs := []AppMode{ModeOrganizations, ModeRoster, ModeAnalytics}
	parts := make([]string, len(tabs))
	for i, m := range tabs {
		label := m.String()
		if m == ModeRoster && a.Selected == nil {
			label = Styles.Muted.Render(label)
		} else if m == a.Mode {
			label = Styles.Selected.Render("[" + label + "]")
		} else {
			label = Styles.Normal.Render(label)
		}
		parts[i] = label
	}
	return strings.Join(parts, "  ")
}
