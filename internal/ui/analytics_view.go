package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"accredash/internal/analytics"
	"accredash/internal/ui/textutil"
)

const (
	chartLabelWidth = 22
	chartBarWidth   = 30
)

// AnalyticsView renders accomplishment aggregates as text bar charts.
type AnalyticsView struct {
	Summary analytics.Summary
	Err     error

	spinner spinner.Model
	loading bool
	width   int
}

var _ View = (*AnalyticsView)(nil)

// NewAnalyticsView creates the view in the loading state.
func NewAnalyticsView() *AnalyticsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	return &AnalyticsView{spinner: s, loading: true, width: 80}
}

// Init starts the loading spinner.
func (v *AnalyticsView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Loading reports whether accomplishments are being fetched.
func (v *AnalyticsView) Loading() bool { return v.loading }

// SetLoading puts the view back into the loading state for a refetch.
func (v *AnalyticsView) SetLoading() tea.Cmd {
	v.loading = true
	v.Err = nil
	return v.spinner.Tick
}

// Update implements View.
func (v *AnalyticsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case AccomplishmentsLoadedMsg:
		v.loading = false
		v.Err = msg.Err
		if msg.Err == nil {
			v.Summary = analytics.Summarize(msg.Bundles)
		}
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "r" && v.Err != nil {
			return v, func() tea.Msg { return RetryMsg{} }
		}
	}
	return v, nil
}

// ShortHelp lists the view's own keys.
func (v *AnalyticsView) ShortHelp() []key.Binding {
	if v.Err != nil {
		return []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"))}
	}
	return []key.Binding{key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))}
}

// View implements View.
func (v *AnalyticsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Accomplishments") + "\n")

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " Loading accomplishments…")
		return b.String()
	case v.Err != nil:
		b.WriteString(Styles.Error.Render("Failed to load accomplishments.") + " " +
			Styles.Hint.Render("Press r to retry."))
		return b.String()
	}

	s := v.Summary
	switch s.State() {
	case analytics.StateNoOrganizations:
		b.WriteString(Styles.Empty.Render("No organizations have been registered yet."))
		return b.String()
	case analytics.StateNoAccomplishments:
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("%d organizations · 0 accomplishments", s.Organizations)) + "\n\n")
		b.WriteString(Styles.Empty.Render("No accomplishments have been logged yet."))
		return b.String()
	}

	b.WriteString(Styles.Hint.Render(fmt.Sprintf("%d organizations · %d accomplishments · %d points",
		s.Organizations, s.Accomplishments, s.TotalPoints)) + "\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderChart("By category", s.ByCategory),
		renderChart("Points by organization", s.PointsByOrganization),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderChart("Documents by label", s.DocumentsByLabel),
		renderChart("Organizations by points", s.Histogram),
	)
	if v.width >= 2*(chartLabelWidth+chartBarWidth+12) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, left, right))
	}
	return b.String()
}

// renderChart draws one aggregate as labelled horizontal bars.
func renderChart(title string, counts []analytics.Count) string {
	var b strings.Builder
	b.WriteString("\n" + Styles.Section.Render(title) + "\n")
	if len(counts) == 0 {
		b.WriteString(Styles.Empty.Render("  none") + "\n")
		return b.String()
	}
	labels := make([]string, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
	}
	lw := textutil.LabelWidth(labels, chartLabelWidth)
	top := analytics.Max(counts)
	for _, c := range counts {
		b.WriteString("  " + textutil.PadRight(c.Label, lw) + " " +
			textutil.PadLeft(fmt.Sprint(c.Value), 4) + " " +
			Styles.Bar.Render(textutil.Bar(c.Value, top, chartBarWidth)) + "\n")
	}
	return b.String()
}
