// Package match resolves a free-text student name to a roster address.
//
// Matching is heuristic, applied as an ordered chain of tiers with the
// first hit winning; within a tier, roster order breaks ties. The
// containment tier can pick the wrong person when one name is a
// substring of another ("Ana" inside "Anabel"). That is a known limit
// of the heuristic, accepted for determinism over ranking.
package match

import (
	"strings"

	"labreport/internal/models"
)

type tier struct {
	name    string
	resolve func(query string, roster []models.RosterEntry) (string, bool)
}

// tiers in priority order: exact, containment, token overlap.
var tiers = []tier{
	{name: "exact", resolve: exact},
	{name: "containment", resolve: containment},
	{name: "token-overlap", resolve: tokenOverlap},
}

// Resolve returns the roster address for a student name, or false when
// no tier produces a hit. An unmatched name is an expected outcome, not
// an error.
func Resolve(name string, roster []models.RosterEntry) (string, bool) {
	query := normalize(name)
	if query == "" {
		return "", false
	}
	for _, t := range tiers {
		if email, ok := t.resolve(query, roster); ok {
			return email, ok
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func exact(query string, roster []models.RosterEntry) (string, bool) {
	for _, e := range roster {
		if name := normalize(e.FullName); name != "" && name == query {
			return e.Email, true
		}
	}
	return "", false
}

func containment(query string, roster []models.RosterEntry) (string, bool) {
	for _, e := range roster {
		if name := normalize(e.FullName); name != "" && strings.Contains(name, query) {
			return e.Email, true
		}
	}
	return "", false
}

// tokenOverlap matches when at least two name parts are shared, which
// tolerates middle names present on one side only ("Bernice Mawuena"
// vs "Bernice Adime Mawuena").
func tokenOverlap(query string, roster []models.RosterEntry) (string, bool) {
	qtokens := make(map[string]bool)
	for _, t := range strings.Fields(query) {
		qtokens[t] = true
	}
	for _, e := range roster {
		seen := make(map[string]bool)
		for _, t := range strings.Fields(normalize(e.FullName)) {
			if qtokens[t] {
				seen[t] = true
			}
		}
		if len(seen) >= 2 {
			return e.Email, true
		}
	}
	return "", false
}
