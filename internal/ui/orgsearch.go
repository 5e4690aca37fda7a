package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/domain"
	"accredash/internal/search"
	"accredash/internal/timeouts"
)

const (
	focusQuery   = "query"
	focusResults = "results"
)

// orgItem implements list.Item for an organization search result.
type orgItem struct {
	org      domain.OrganizationProfile
	selected bool
}

func (i orgItem) FilterValue() string { return i.org.Name }

func (i orgItem) Title() string {
	marker := "  "
	if i.selected {
		marker = "● "
	}
	return marker + i.org.DisplayName()
}

func (i orgItem) Description() string {
	desc := i.org.Classification()
	if i.org.Status != "" {
		if desc != "" {
			desc += " · "
		}
		desc += i.org.Status
	}
	return "  " + desc
}

// OrgSearchView is the filtered, paginated organization list.
//
// Categorical filter keys issue a request immediately. Typing in the query
// box schedules a debounced request; only the last query typed within the
// debounce interval is sent. Responses are sequenced so a slow, older
// response never replaces a newer one.
type OrgSearchView struct {
	Filters       search.Filters
	Organizations []domain.OrganizationProfile
	SelectedID    string

	input    textinput.Model
	list     list.Model
	focus    *FocusRing
	debounce *search.Debouncer
	seq      search.Sequencer
	loading  bool
}

var _ View = (*OrgSearchView)(nil)

// NewOrgSearchView creates the search view with local scope pinned to home.
func NewOrgSearchView(home string) *OrgSearchView {
	ti := textinput.New()
	ti.Placeholder = "search organizations"
	ti.Prompt = "/ "
	ti.Width = 40

	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return &OrgSearchView{
		Filters:  search.NewFilters(home),
		input:    ti,
		list:     l,
		focus:    NewFocusRing(focusResults, focusQuery),
		debounce: search.NewDebouncer(timeouts.SearchDebounce),
	}
}

// Init issues the first search.
func (v *OrgSearchView) Init() tea.Cmd {
	return v.requestNow()
}

// CapturingInput reports whether the query box has focus.
func (v *OrgSearchView) CapturingInput() bool {
	return v.focus.Is(focusQuery)
}

// Loading reports whether a search is in flight.
func (v *OrgSearchView) Loading() bool { return v.loading }

// SetSelected marks id as the selected organization ("" for none).
func (v *OrgSearchView) SetSelected(id string) {
	v.SelectedID = id
	v.refreshItems()
}

// requestNow sends the current filters right away and drops any pending
// debounced request.
func (v *OrgSearchView) requestNow() tea.Cmd {
	v.debounce.Cancel()
	v.loading = true
	msg := SearchRequestMsg{Seq: v.seq.Next(), Query: v.Filters.Request()}
	return func() tea.Msg { return msg }
}

func (v *OrgSearchView) scheduleDebounce() tea.Cmd {
	token := v.debounce.Bump()
	return tea.Tick(v.debounce.Delay(), func(time.Time) tea.Msg {
		return searchDebounceMsg{Token: token}
	})
}

// Update implements View.
func (v *OrgSearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(max(msg.Height-5, 3))
		v.input.Width = max(msg.Width-4, 10)
		return v, nil
	case searchDebounceMsg:
		if v.debounce.Fire(msg.Token) {
			v.loading = true
			req := SearchRequestMsg{Seq: v.seq.Next(), Query: v.Filters.Request()}
			return v, func() tea.Msg { return req }
		}
		return v, nil
	case OrganizationsLoadedMsg:
		if !v.seq.Accept(msg.Seq) {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.Organizations = nil
		} else {
			v.Organizations = msg.Organizations
		}
		v.refreshItems()
		v.list.Select(0)
		return v, nil
	case tea.KeyMsg:
		if v.focus.Is(focusQuery) {
			return v.updateQuery(msg)
		}
		return v.updateResults(msg)
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *OrgSearchView) updateQuery(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab", "down":
		v.blurQuery()
		return v, nil
	case "enter":
		v.blurQuery()
		if v.debounce.Pending() {
			return v, v.requestNow()
		}
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}
	v.Filters.SetQuery(v.input.Value())
	return v, tea.Batch(cmd, v.scheduleDebounce())
}

func (v *OrgSearchView) updateResults(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "/", "tab":
		v.focus.Set(focusQuery)
		return v, v.input.Focus()
	case "s":
		v.Filters.ToggleScope()
		return v, v.requestNow()
	case "d":
		if !v.Filters.CycleDepartment() {
			return v, nil
		}
		return v, v.requestNow()
	case "p":
		v.Filters.CycleProgram()
		return v, v.requestNow()
	case "z":
		before := v.Filters.Specialization
		v.Filters.CycleSpecialization()
		if v.Filters.Specialization == before {
			return v, nil
		}
		return v, v.requestNow()
	case "c":
		v.Filters.Clear()
		v.input.SetValue("")
		return v, v.requestNow()
	case "enter":
		item, ok := v.list.SelectedItem().(orgItem)
		if !ok {
			return v, nil
		}
		org := item.org
		return v, func() tea.Msg { return OrganizationToggledMsg{Organization: org} }
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *OrgSearchView) blurQuery() {
	v.input.Blur()
	v.focus.Set(focusResults)
}

func (v *OrgSearchView) refreshItems() {
	items := make([]list.Item, len(v.Organizations))
	for i, o := range v.Organizations {
		items[i] = orgItem{org: o, selected: o.ID != "" && o.ID == v.SelectedID}
	}
	v.list.SetItems(items)
}

// ShortHelp lists the view's own keys.
func (v *OrgSearchView) ShortHelp() []key.Binding {
	if v.CapturingInput() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "results")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scope")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "department")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "program")),
		key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "specialization")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	}
}

// View implements View.
func (v *OrgSearchView) View() string {
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(20)
	}

	var b strings.Builder
	title := fmt.Sprintf("Organizations (%d)", len(v.Organizations))
	if v.loading {
		title += " " + Styles.Muted.Render("searching…")
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(Styles.Hint.Render("Filters: "+v.Filters.Summary()) + "\n")
	b.WriteString(v.input.View() + "\n\n")
	if len(v.Organizations) == 0 && !v.loading {
		b.WriteString(Styles.Empty.Render("No organizations match."))
		return b.String()
	}
	b.WriteString(v.list.View())
	return b.String()
}
