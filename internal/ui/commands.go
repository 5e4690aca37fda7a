package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"accredash/internal/api"
	"accredash/internal/domain"
	"accredash/internal/export"
	"accredash/internal/roster"
)

// Backend is the API surface the dashboard needs. *api.Client implements it.
type Backend interface {
	SearchOrganizations(ctx context.Context, q api.OrganizationQuery) ([]domain.OrganizationProfile, error)
	GetOrganization(ctx context.Context, id string) (*domain.OrganizationProfile, error)
	GetRoster(ctx context.Context, orgID string) (*domain.RosterRecord, error)
	AddMember(ctx context.Context, orgID string, m api.MemberUpload) (*domain.RosterMember, error)
	SubmitRosterCompletion(ctx context.Context, orgID string) (*domain.RosterRecord, error)
	ListAccomplishments(ctx context.Context) ([]*domain.AccomplishmentBundle, error)
	AssetURL(orgID, filename string) string
}

var _ Backend = (*api.Client)(nil)

func searchCmd(ctx context.Context, b Backend, msg SearchRequestMsg) tea.Cmd {
	return func() tea.Msg {
		orgs, err := b.SearchOrganizations(ctx, msg.Query)
		if err != nil {
			err = fmt.Errorf("search organizations: %w", err)
		}
		return OrganizationsLoadedMsg{Seq: msg.Seq, Organizations: orgs, Err: err}
	}
}

func loadProfileCmd(ctx context.Context, b Backend, orgID string) tea.Cmd {
	return func() tea.Msg {
		org, err := b.GetOrganization(ctx, orgID)
		if err != nil {
			err = fmt.Errorf("load profile: %w", err)
		}
		return ProfileLoadedMsg{OrgID: orgID, Organization: org, Err: err}
	}
}

func loadRosterCmd(ctx context.Context, b Backend, orgID string) tea.Cmd {
	return func() tea.Msg {
		rec, err := b.GetRoster(ctx, orgID)
		if err != nil {
			err = fmt.Errorf("load roster: %w", err)
		}
		return RosterLoadedMsg{OrgID: orgID, Record: rec, Err: err}
	}
}

// addMemberCmd reads the optional profile picture and posts the member.
// An unreadable picture is reported as a field error.
func addMemberCmd(ctx context.Context, b Backend, orgID string, form roster.MemberForm) tea.Cmd {
	return func() tea.Msg {
		if form.PictureName != "" && len(form.Picture) == 0 {
			data, err := os.ReadFile(form.PictureName)
			if err != nil {
				return MemberAddedMsg{OrgID: orgID, Err: roster.FieldErrors{"profile_picture": "cannot be read"}}
			}
			form.Picture = data
		}
		m, err := b.AddMember(ctx, orgID, form.Upload())
		if err != nil {
			err = fmt.Errorf("add member: %w", err)
		}
		return MemberAddedMsg{OrgID: orgID, Member: m, Err: err}
	}
}

func exportRosterCmd(store *export.Store, orgName string, members []domain.RosterMember) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return RosterExportedMsg{Err: fmt.Errorf("export directory not configured")}
		}
		path, err := store.WriteRoster(orgName, members)
		return RosterExportedMsg{Path: path, Err: err}
	}
}

func submitRosterCmd(ctx context.Context, b Backend, orgID string) tea.Cmd {
	return func() tea.Msg {
		rec, err := b.SubmitRosterCompletion(ctx, orgID)
		if err != nil {
			err = fmt.Errorf("submit roster: %w", err)
		}
		return RosterSubmittedMsg{OrgID: orgID, Record: rec, Err: err}
	}
}

// closeRosterAfter closes r after delay.
func closeRosterAfter(delay time.Duration, r *RosterView) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CloseRosterMsg{Roster: r}
	})
}

func loadAccomplishmentsCmd(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		bundles, err := b.ListAccomplishments(ctx)
		if err != nil {
			err = fmt.Errorf("load accomplishments: %w", err)
		}
		return AccomplishmentsLoadedMsg{Bundles: bundles, Err: err}
	}
}
