package roster

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"accredash/internal/domain"
)

// SearchMembers filters members by a fuzzy, case- and accent-insensitive
// match against name, student ID, position and email. Matches are ranked by
// their closest field; ties keep roster order. An empty query returns
// members unchanged.
func SearchMembers(members []domain.RosterMember, query string) []domain.RosterMember {
	query = strings.TrimSpace(query)
	if query == "" {
		return members
	}

	words := make([]string, 0, len(members)*4)
	owner := make([]int, 0, len(members)*4)
	for i, m := range members {
		for _, field := range searchFields(m) {
			if field == "" {
				continue
			}
			words = append(words, field)
			owner = append(owner, i)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, words)
	best := make(map[int]int, len(ranks))
	for _, r := range ranks {
		idx := owner[r.OriginalIndex]
		if d, ok := best[idx]; !ok || r.Distance < d {
			best[idx] = r.Distance
		}
	}

	hits := make([]int, 0, len(best))
	for idx := range best {
		hits = append(hits, idx)
	}
	sort.Slice(hits, func(a, b int) bool {
		da, db := best[hits[a]], best[hits[b]]
		if da != db {
			return da < db
		}
		return hits[a] < hits[b]
	})

	out := make([]domain.RosterMember, len(hits))
	for i, idx := range hits {
		out[i] = members[idx]
	}
	return out
}

func searchFields(m domain.RosterMember) []string {
	return []string{m.FullName(), m.StudentID, m.Position, m.Email}
}
