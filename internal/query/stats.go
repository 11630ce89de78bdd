package query

import (
	"sort"

	"depotlog/internal/domain"
)

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalRegistrations int                        `json:"totalRegistrations"`
	UniqueUsers        int                        `json:"uniqueUsers"`
	UniqueProducts     int                        `json:"uniqueProducts"`
	TopUsers           []NameCount                `json:"topUsers"`
	TopProducts        []NameCount                `json:"topProducts"`
	TopLocations       []NameCount                `json:"topLocations"`
	RecentActivity     []domain.RegistrationEntry `json:"recentActivity"`
}

// Summarize computes the dashboard numbers in single linear passes. It is
// total: an empty log yields zeroes and empty slices, never an error.
func Summarize(entries []domain.RegistrationEntry) Summary {
	users := make(map[string]struct{})
	products := make(map[string]struct{})
	for _, e := range entries {
		users[e.User] = struct{}{}
		products[e.Product] = struct{}{}
	}

	recent := append([]domain.RegistrationEntry(nil), entries...)
	sort.SliceStable(recent, func(i, j int) bool {
		return parseInstant(recent[i].Timestamp).After(parseInstant(recent[j].Timestamp))
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return Summary{
		TotalRegistrations: len(entries),
		UniqueUsers:        len(users),
		UniqueProducts:     len(products),
		TopUsers:           topN(entries, func(e domain.RegistrationEntry) string { return e.User }, 5),
		TopProducts:        topN(entries, func(e domain.RegistrationEntry) string { return e.Product }, 5),
		TopLocations:       topN(entries, func(e domain.RegistrationEntry) string { return e.Location }, 5),
		RecentActivity:     recent,
	}
}

// topN counts occurrences of a field and keeps the n most frequent. Ties
// keep the order in which the value was first seen, which the dashboard
// relies on for stable output.
func topN(entries []domain.RegistrationEntry, field func(domain.RegistrationEntry) string, n int) []NameCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		k := field(e)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]NameCount, 0, len(order))
	for _, k := range order {
		out = append(out, NameCount{Name: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
