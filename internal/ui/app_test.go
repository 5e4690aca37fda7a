package ui

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/api"
	"accredash/internal/config"
	"accredash/internal/domain"
	"accredash/internal/export"
	"accredash/internal/roster"
)

type fakeBackend struct {
	orgs       []domain.OrganizationProfile
	roster     *domain.RosterRecord
	rosterErr  error
	uploads    []api.MemberUpload
	addErr     error
	submitted  []string
	bundles    []*domain.AccomplishmentBundle
	bundlesErr error
}

func (f *fakeBackend) SearchOrganizations(context.Context, api.OrganizationQuery) ([]domain.OrganizationProfile, error) {
	return f.orgs, nil
}

func (f *fakeBackend) GetOrganization(_ context.Context, id string) (*domain.OrganizationProfile, error) {
	for _, o := range f.orgs {
		if o.ID == id {
			o.Status = "Accredited"
			return &o, nil
		}
	}
	return nil, &api.StatusError{Status: 404, Message: "not found"}
}

func (f *fakeBackend) GetRoster(context.Context, string) (*domain.RosterRecord, error) {
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	rec := *f.roster
	return &rec, nil
}

func (f *fakeBackend) AddMember(_ context.Context, _ string, m api.MemberUpload) (*domain.RosterMember, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.uploads = append(f.uploads, m)
	return &domain.RosterMember{ID: "new", FirstName: m.Fields.Get("first_name"), LastName: m.Fields.Get("last_name")}, nil
}

func (f *fakeBackend) SubmitRosterCompletion(_ context.Context, orgID string) (*domain.RosterRecord, error) {
	f.submitted = append(f.submitted, orgID)
	return &domain.RosterRecord{ID: f.roster.ID, OrganizationID: orgID, Status: domain.RosterStatusForReview}, nil
}

func (f *fakeBackend) ListAccomplishments(context.Context) ([]*domain.AccomplishmentBundle, error) {
	return f.bundles, f.bundlesErr
}

func (f *fakeBackend) AssetURL(orgID, filename string) string {
	if filename == "" {
		return ""
	}
	return "https://assets.test/uploads/" + orgID + "/" + filename
}

func newTestApp(t *testing.T, b *fakeBackend) *appModelAdapter {
	t.Helper()
	store, err := export.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	m := NewAppModel(context.Background(), b, store, config.DiscardLogger(), "CCS")
	return m.AsTeaModel().(*appModelAdapter)
}

// send delivers msg and returns the command it produced.
func send(a *appModelAdapter, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

// openRoster selects the first organization and loads its roster.
func openRoster(t *testing.T, a *appModelAdapter) {
	t.Helper()
	send(a, OrganizationToggledMsg{Organization: testOrgs()[0]})
	loaded := firstOf[RosterLoadedMsg](t, send(a, ShowRosterMsg{}))
	send(a, loaded)
	if a.Mode != ModeRoster || a.Roster == nil || a.Roster.Loading() {
		t.Fatalf("roster not open: mode=%v", a.Mode)
	}
}

func TestApp_InitSearchesAndLoadsResults(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs()}
	a := newTestApp(t, b)

	req := firstOf[SearchRequestMsg](t, a.Init())
	loaded := firstOf[OrganizationsLoadedMsg](t, send(a, req))
	send(a, loaded)
	if len(a.Search.Organizations) != 2 {
		t.Errorf("got %d organizations, want 2", len(a.Search.Organizations))
	}
}

func TestApp_ToggleSelection(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs()}
	a := newTestApp(t, b)
	org := testOrgs()[0]
	org.Logo = "logo.png"

	profile := firstOf[ProfileLoadedMsg](t, send(a, OrganizationToggledMsg{Organization: org}))
	if a.Selected == nil || a.Selected.ID != "1" || a.Profile == nil {
		t.Fatal("expected organization 1 selected")
	}
	if a.Profile.LogoURL != "https://assets.test/uploads/1/logo.png" {
		t.Errorf("LogoURL = %q", a.Profile.LogoURL)
	}
	send(a, profile)
	if a.Selected.Status != "Accredited" {
		t.Errorf("profile not refreshed: %+v", a.Selected)
	}

	send(a, OrganizationToggledMsg{Organization: org})
	if a.Selected != nil || a.Profile != nil || a.Search.SelectedID != "" {
		t.Error("toggling the selected organization should clear the selection")
	}
}

func TestApp_StaleProfileDropped(t *testing.T) {
	a := newTestApp(t, &fakeBackend{orgs: testOrgs()})
	send(a, OrganizationToggledMsg{Organization: testOrgs()[0]})
	send(a, OrganizationToggledMsg{Organization: testOrgs()[1]})

	stale := testOrgs()[0]
	send(a, ProfileLoadedMsg{OrgID: "1", Organization: &stale})
	if a.Selected.ID != "2" || a.Profile.Org.ID != "2" {
		t.Errorf("stale profile replaced the selection: %+v", a.Selected)
	}
}

func TestApp_RosterRequiresSelection(t *testing.T) {
	a := newTestApp(t, &fakeBackend{})
	if cmd := send(a, ShowRosterMsg{}); cmd != nil {
		t.Error("no fetch without a selection")
	}
	if a.Mode != ModeOrganizations || !a.StatusIsError {
		t.Errorf("mode=%v status=%q", a.Mode, a.Status)
	}
}

func TestApp_TypedKeysDoNotTriggerBindings(t *testing.T) {
	a := newTestApp(t, &fakeBackend{})
	a.Init()
	send(a, keyMsg("/"))
	send(a, keyMsg("q"))
	if a.Search.Filters.Query != "q" {
		t.Errorf("query = %q, want q typed into the search box", a.Search.Filters.Query)
	}

	cmd := send(a, keyMsg("ctrl+c"))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should always quit")
	}
}

func TestApp_LeaderOpensAnalytics(t *testing.T) {
	a := newTestApp(t, &fakeBackend{})
	send(a, keyMsg(" "))
	if !a.KeyHandler.LeaderWaiting || !strings.Contains(a.View(), "SPC") {
		t.Error("expected leader hints")
	}
	show := firstOf[ShowAnalyticsMsg](t, send(a, keyMsg("a")))
	loaded := firstOf[AccomplishmentsLoadedMsg](t, send(a, show))
	send(a, loaded)

	if a.Mode != ModeAnalytics {
		t.Fatalf("mode = %v", a.Mode)
	}
	if !strings.Contains(a.View(), "No organizations have been registered yet.") {
		t.Errorf("unexpected analytics view:\n%s", a.View())
	}

	send(a, keyMsg("esc"))
	if a.Mode != ModeOrganizations {
		t.Error("esc should return to the organization list")
	}
}

func TestApp_AnalyticsRetry(t *testing.T) {
	b := &fakeBackend{bundlesErr: errors.New("unavailable")}
	a := newTestApp(t, b)
	send(a, firstOf[AccomplishmentsLoadedMsg](t, send(a, ShowAnalyticsMsg{})))

	retry := firstOf[RetryMsg](t, send(a, keyMsg("r")))
	b.bundlesErr = nil
	b.bundles = []*domain.AccomplishmentBundle{{Organization: testOrgs()[0]}}
	send(a, firstOf[AccomplishmentsLoadedMsg](t, send(a, retry)))

	if a.Analytics.Err != nil || a.Analytics.Summary.Organizations != 1 {
		t.Errorf("retry did not reload: err=%v summary=%+v", a.Analytics.Err, a.Analytics.Summary)
	}
}

func TestApp_ExportEmptyRoster(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: &domain.RosterRecord{ID: "r1"}}
	a := newTestApp(t, b)
	openRoster(t, a)

	send(a, firstOf[RosterExportedMsg](t, send(a, ExportRosterMsg{})))
	if a.Status != "Roster is empty; nothing to export" {
		t.Errorf("status = %q", a.Status)
	}
	entries, _ := os.ReadDir(a.Exports.Dir())
	if len(entries) != 0 {
		t.Errorf("expected no files, got %d", len(entries))
	}
}

func TestApp_ExportRoster(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: testRoster()}
	a := newTestApp(t, b)
	openRoster(t, a)

	exported := firstOf[RosterExportedMsg](t, send(a, ExportRosterMsg{}))
	if exported.Err != nil {
		t.Fatalf("export: %v", exported.Err)
	}
	send(a, exported)
	if !strings.Contains(a.Status, exported.Path) {
		t.Errorf("status = %q, want path", a.Status)
	}
	if _, err := os.Stat(exported.Path); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestApp_AddMember(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: testRoster()}
	a := newTestApp(t, b)
	openRoster(t, a)

	send(a, ShowAddMemberMsg{})
	if a.Overlays.Len() != 1 || a.memberModal() == nil {
		t.Fatal("expected add-member modal")
	}
	form := filledModal().Form()
	form.Ok()

	added := firstOf[MemberAddedMsg](t, send(a, SubmitMemberMsg{Form: form}))
	cmd := send(a, added)
	if a.Overlays.Len() != 0 {
		t.Error("modal should close after a successful add")
	}
	if a.Status != "Added Ana Reyes" {
		t.Errorf("status = %q", a.Status)
	}
	if len(b.uploads) != 1 || b.uploads[0].Fields.Get("student_id") != "20-1234" {
		t.Errorf("uploads = %+v", b.uploads)
	}
	firstOf[RosterLoadedMsg](t, cmd)
}

func TestApp_AddMemberServerValidation(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: testRoster(), addErr: roster.FieldErrors{"email": "already registered"}}
	a := newTestApp(t, b)
	openRoster(t, a)
	send(a, ShowAddMemberMsg{})

	form := filledModal().Form()
	form.Ok()
	send(a, firstOf[MemberAddedMsg](t, send(a, SubmitMemberMsg{Form: form})))

	modal := a.memberModal()
	if modal == nil {
		t.Fatal("modal should stay open after a failed add")
	}
	if modal.Errors["email"] != "already registered" {
		t.Errorf("Errors = %v", modal.Errors)
	}
}

func TestApp_SubmitRosterClosesAfterDelay(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: testRoster()}
	a := newTestApp(t, b)
	openRoster(t, a)

	send(a, ShowSubmitRosterMsg{})
	top, ok := a.Overlays.Peek()
	if _, isConfirm := top.(*ConfirmModal); !ok || !isConfirm {
		t.Fatalf("expected confirmation modal, got %T", top)
	}

	submit := firstOf[SubmitRosterMsg](t, send(a, keyMsg("y")))
	done := firstOf[RosterSubmittedMsg](t, send(a, submit))
	if a.Overlays.Len() != 0 {
		t.Error("confirmation should close once submitted")
	}
	if cmd := send(a, done); cmd == nil {
		t.Error("expected delayed close to be scheduled")
	}
	if !a.Roster.Submitted || a.Mode != ModeRoster {
		t.Fatal("roster should show the confirmation until the delay elapses")
	}
	if len(b.submitted) != 1 || b.submitted[0] != "1" {
		t.Errorf("submitted = %v", b.submitted)
	}

	send(a, CloseRosterMsg{Roster: a.Roster})
	if a.Mode != ModeOrganizations || a.Roster != nil {
		t.Errorf("roster not closed: mode=%v", a.Mode)
	}
}

func TestApp_ReopenedRosterSurvivesPendingClose(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: testRoster()}
	a := newTestApp(t, b)
	openRoster(t, a)

	send(a, ShowSubmitRosterMsg{})
	submit := firstOf[SubmitRosterMsg](t, send(a, keyMsg("y")))
	send(a, firstOf[RosterSubmittedMsg](t, send(a, submit)))
	submitted := a.Roster

	send(a, keyMsg("esc"))
	send(a, firstOf[RosterLoadedMsg](t, send(a, ShowRosterMsg{})))
	reopened := a.Roster
	if reopened == submitted {
		t.Fatal("reopening should create a fresh roster view")
	}

	send(a, CloseRosterMsg{Roster: submitted})
	if a.Mode != ModeRoster || a.Roster != reopened {
		t.Errorf("reopened roster was closed: mode=%v", a.Mode)
	}
}

func TestApp_SpinnerTicksReachHiddenViews(t *testing.T) {
	a := newTestApp(t, &fakeBackend{orgs: testOrgs(), roster: testRoster()})
	send(a, OrganizationToggledMsg{Organization: testOrgs()[0]})
	send(a, ShowRosterMsg{})
	send(a, ShowAnalyticsMsg{})
	if a.Mode != ModeAnalytics || !a.Roster.Loading() {
		t.Fatalf("expected analytics over a loading roster: mode=%v", a.Mode)
	}

	before := a.Roster.spinner.View()
	if cmd := send(a, a.Roster.spinner.Tick()); cmd == nil {
		t.Error("roster spinner should schedule its next tick")
	}
	if a.Roster.spinner.View() == before {
		t.Error("roster spinner did not advance while hidden")
	}
}

func TestApp_SubmitRefusedLocally(t *testing.T) {
	for name, rec := range map[string]*domain.RosterRecord{
		"empty":     {ID: "r1"},
		"in review": {ID: "r1", Status: domain.RosterStatusForReview, Members: testRoster().Members},
	} {
		t.Run(name, func(t *testing.T) {
			a := newTestApp(t, &fakeBackend{orgs: testOrgs(), roster: rec})
			openRoster(t, a)
			send(a, ShowSubmitRosterMsg{})
			if a.Overlays.Len() != 0 {
				t.Error("no confirmation for a roster that cannot be submitted")
			}
			if !a.StatusIsError {
				t.Errorf("status = %q, want an error", a.Status)
			}
		})
	}
}

func TestApp_RosterRetry(t *testing.T) {
	b := &fakeBackend{orgs: testOrgs(), roster: testRoster(), rosterErr: errors.New("timeout")}
	a := newTestApp(t, b)
	send(a, OrganizationToggledMsg{Organization: testOrgs()[0]})
	send(a, firstOf[RosterLoadedMsg](t, send(a, ShowRosterMsg{})))
	if a.Roster.Err == nil {
		t.Fatal("expected roster error")
	}

	b.rosterErr = nil
	retry := firstOf[RetryMsg](t, send(a, keyMsg("r")))
	send(a, firstOf[RosterLoadedMsg](t, send(a, retry)))
	if a.Roster.Err != nil || len(a.Roster.Members()) != 2 {
		t.Errorf("retry did not reload: err=%v", a.Roster.Err)
	}
}
