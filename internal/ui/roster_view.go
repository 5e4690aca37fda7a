package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/domain"
	"accredash/internal/roster"
	"accredash/internal/ui/textutil"
)

// RosterView shows the roster of one organization as a table with a local
// member search. Searching never re-fetches.
type RosterView struct {
	Org     domain.OrganizationProfile
	Record  *domain.RosterRecord
	Err     error
	Visible []domain.RosterMember

	// Submitted is set once completion succeeds; the view closes after the
	// completion delay.
	Submitted bool

	input   textinput.Model
	table   table.Model
	spinner spinner.Model
	loading bool
	width   int
}

var _ View = (*RosterView)(nil)

var rosterColumns = []struct {
	title string
	min   int
}{
	{"Name", 22},
	{"Student ID", 10},
	{"Position", 14},
	{"Email", 24},
	{"Status", 10},
}

// NewRosterView creates a roster view for org in the loading state.
func NewRosterView(org domain.OrganizationProfile) *RosterView {
	ti := textinput.New()
	ti.Placeholder = "filter members"
	ti.Prompt = "/ "
	ti.Width = 30

	t := table.New(table.WithFocused(true), table.WithHeight(15))
	t.SetStyles(NewTableStyles())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	v := &RosterView{Org: org, input: ti, table: t, spinner: s, loading: true}
	v.resize(100)
	return v
}

// Init starts the loading spinner.
func (v *RosterView) Init() tea.Cmd {
	return v.spinner.Tick
}

// OrgID returns the organization this roster belongs to.
func (v *RosterView) OrgID() string { return v.Org.ID }

// Loading reports whether the roster is being fetched.
func (v *RosterView) Loading() bool { return v.loading }

// SetLoading puts the view back into the loading state for a refetch.
func (v *RosterView) SetLoading() tea.Cmd {
	v.loading = true
	v.Err = nil
	return v.spinner.Tick
}

// CapturingInput reports whether the member filter has focus.
func (v *RosterView) CapturingInput() bool { return v.input.Focused() }

// Members returns every fetched member in roster order.
func (v *RosterView) Members() []domain.RosterMember {
	if v.Record == nil {
		return nil
	}
	return v.Record.Members
}

// Update implements View.
func (v *RosterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width)
		v.table.SetHeight(max(msg.Height-8, 3))
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case RosterLoadedMsg:
		if msg.OrgID != v.Org.ID {
			return v, nil
		}
		v.loading = false
		v.Err = msg.Err
		if msg.Err == nil {
			v.Record = msg.Record
		}
		v.applyFilter()
		return v, nil
	case RosterSubmittedMsg:
		if msg.OrgID == v.Org.ID && msg.Err == nil {
			v.Submitted = true
			if msg.Record != nil {
				msg.Record.Members = v.Members()
				v.Record = msg.Record
			}
		}
		return v, nil
	case tea.KeyMsg:
		if v.input.Focused() {
			return v.updateFilter(msg)
		}
		return v.updateTable(msg)
	}
	return v, nil
}

func (v *RosterView) updateFilter(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		v.input.Blur()
		v.table.Focus()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.applyFilter()
	return v, cmd
}

func (v *RosterView) updateTable(msg tea.KeyMsg) (View, tea.Cmd) {
	if v.Submitted {
		return v, nil
	}
	switch msg.String() {
	case "r":
		if v.Err != nil {
			return v, func() tea.Msg { return RetryMsg{} }
		}
		return v, nil
	}
	if v.loading || v.Err != nil {
		return v, nil
	}
	switch msg.String() {
	case "/":
		v.table.Blur()
		return v, v.input.Focus()
	case "a":
		return v, func() tea.Msg { return ShowAddMemberMsg{} }
	case "x":
		return v, func() tea.Msg { return ExportRosterMsg{} }
	case "S":
		return v, func() tea.Msg { return ShowSubmitRosterMsg{} }
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// applyFilter recomputes the visible members from the filter text.
func (v *RosterView) applyFilter() {
	v.Visible = roster.SearchMembers(v.Members(), v.input.Value())
	rows := make([]table.Row, len(v.Visible))
	for i, m := range v.Visible {
		rows[i] = table.Row{m.FullName(), m.StudentID, m.Position, m.Email, m.Status}
	}
	v.table.SetRows(rows)
	if len(rows) > 0 && v.table.Cursor() >= len(rows) {
		v.table.SetCursor(0)
	}
}

// resize spreads the available width over the columns; Name and Email
// take the slack.
func (v *RosterView) resize(width int) {
	v.width = width
	total := 0
	for _, c := range rosterColumns {
		total += c.min + 2
	}
	extra := max(width-total, 0)
	cols := make([]table.Column, len(rosterColumns))
	for i, c := range rosterColumns {
		w := c.min
		if c.title == "Name" || c.title == "Email" {
			w += extra / 2
		}
		cols[i] = table.Column{Title: c.title, Width: w}
	}
	v.table.SetColumns(cols)
}

// ShortHelp lists the view's own keys.
func (v *RosterView) ShortHelp() []key.Binding {
	switch {
	case v.input.Focused():
		return []key.Binding{key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done"))}
	case v.Err != nil:
		return []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"))}
	case v.Submitted || v.loading:
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add member")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// View implements View.
func (v *RosterView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Roster · "+textutil.Truncate(v.Org.DisplayName(), 60)) + "\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " Loading roster…")
		return b.String()
	case v.Err != nil:
		b.WriteString(Styles.Error.Render("Failed to load the roster.") + " " +
			Styles.Hint.Render("Press r to retry."))
		return b.String()
	}

	status := domain.RosterStatusIncomplete
	if v.Record != nil && v.Record.Status != "" {
		status = v.Record.Status
	}
	members := v.Members()
	b.WriteString(Styles.Hint.Render(fmt.Sprintf("Status: %s · %d members · %d officers",
		status, len(members), roster.Officers(members))) + "\n")

	if v.Submitted {
		b.WriteString("\n" + Styles.Success.Render("Roster submitted for review. Closing…"))
		return b.String()
	}

	b.WriteString(v.input.View() + "\n\n")
	switch {
	case len(members) == 0:
		b.WriteString(Styles.Empty.Render("No members yet. Press a to add one."))
	case len(v.Visible) == 0:
		b.WriteString(Styles.Empty.Render("No members match the filter."))
	default:
		b.WriteString(v.table.View())
	}
	return b.String()
}
