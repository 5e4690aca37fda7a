// Package analytics derives chart aggregates from accomplishment bundles.
package analytics

import (
	"sort"
	"strings"

	"accredash/internal/domain"
)

// Histogram bucket labels, in display order.
var BucketLabels = []string{"0–5", "6–10", "11–20", "21+"}

// State selects how the analytics view renders.
type State int

const (
	StateNoOrganizations State = iota
	StateNoAccomplishments
	StateFull
)

func (s State) String() string {
	switch s {
	case StateNoOrganizations:
		return "no-organizations"
	case StateNoAccomplishments:
		return "no-accomplishments"
	default:
		return "full"
	}
}

// Count is one labelled value of an aggregate.
type Count struct {
	Label string
	Value int
}

// Summary holds the four aggregates plus headline counts.
type Summary struct {
	Organizations   int
	Accomplishments int
	TotalPoints     int

	ByCategory           []Count
	PointsByOrganization []Count
	DocumentsByLabel     []Count
	// Histogram always has one entry per BucketLabels element.
	Histogram []Count
}

// State reports which of the three render states s falls into.
func (s Summary) State() State {
	switch {
	case s.Organizations == 0:
		return StateNoOrganizations
	case s.Accomplishments == 0:
		return StateNoAccomplishments
	default:
		return StateFull
	}
}

// Sanitize drops malformed entries: nil bundles, bundles without an
// organization ID, nil accomplishments, accomplishments with an empty
// category or negative points, and documents without a label. The input is
// not modified.
func Sanitize(bundles []*domain.AccomplishmentBundle) []*domain.AccomplishmentBundle {
	out := make([]*domain.AccomplishmentBundle, 0, len(bundles))
	for _, b := range bundles {
		if b == nil || strings.TrimSpace(b.Organization.ID) == "" {
			continue
		}
		clean := &domain.AccomplishmentBundle{Organization: b.Organization}
		for _, a := range b.Accomplishments {
			if a == nil || strings.TrimSpace(a.Category) == "" || a.Points < 0 {
				continue
			}
			acc := *a
			acc.Category = strings.TrimSpace(a.Category)
			acc.Documents = nil
			for _, d := range a.Documents {
				if d == nil || strings.TrimSpace(d.Label) == "" {
					continue
				}
				acc.Documents = append(acc.Documents, d)
			}
			clean.Accomplishments = append(clean.Accomplishments, &acc)
		}
		out = append(out, clean)
	}
	return out
}

// Summarize sanitizes bundles and computes the aggregates.
func Summarize(bundles []*domain.AccomplishmentBundle) Summary {
	bundles = Sanitize(bundles)

	byCategory := map[string]int{}
	byOrg := map[string]int{}
	orgs := map[string]domain.OrganizationProfile{}
	byLabel := map[string]int{}
	hist := make([]int, len(BucketLabels))

	s := Summary{Organizations: len(bundles)}
	for _, b := range bundles {
		total := 0
		for _, a := range b.Accomplishments {
			s.Accomplishments++
			byCategory[a.Category]++
			total += a.Points
			for _, d := range a.Documents {
				byLabel[strings.TrimSpace(d.Label)]++
			}
		}
		byOrg[b.Organization.ID] += total
		orgs[b.Organization.ID] = b.Organization
		s.TotalPoints += total
		hist[bucket(total)]++
	}

	s.ByCategory = sorted(byCategory)
	s.PointsByOrganization = sorted(relabel(byOrg, orgs))
	s.DocumentsByLabel = sorted(byLabel)
	s.Histogram = make([]Count, len(BucketLabels))
	for i, l := range BucketLabels {
		s.Histogram[i] = Count{Label: l, Value: hist[i]}
	}
	return s
}

func orgLabel(o domain.OrganizationProfile) string {
	if o.Acronym != "" {
		return o.Acronym
	}
	if name := strings.TrimSpace(o.Name); name != "" {
		return name
	}
	return o.ID
}

// relabel rekeys per-ID totals by display label. Organizations sharing a
// label get their ID appended so each keeps its own row.
func relabel(byID map[string]int, orgs map[string]domain.OrganizationProfile) map[string]int {
	seen := map[string]int{}
	for id := range byID {
		seen[orgLabel(orgs[id])]++
	}
	out := make(map[string]int, len(byID))
	for id, v := range byID {
		label := orgLabel(orgs[id])
		if seen[label] > 1 && label != id {
			label += " #" + id
		}
		out[label] = v
	}
	return out
}

// bucket maps a point total to its histogram index.
func bucket(points int) int {
	switch {
	case points <= 5:
		return 0
	case points <= 10:
		return 1
	case points <= 20:
		return 2
	default:
		return 3
	}
}

func sorted(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Label: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Max returns the largest value in counts, or 0.
func Max(counts []Count) int {
	m := 0
	for _, c := range counts {
		if c.Value > m {
			m = c.Value
		}
	}
	return m
}
