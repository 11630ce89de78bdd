package query

import (
	"sort"
	"strings"
	"time"

	"depotlog/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter selects and orders registration entries. All active predicates are
// ANDed; Search alone is an OR over the five text fields. Zero values mean
// "no constraint" ("all" is accepted as the same for User/Location).
type Filter struct {
	Search    string
	User      string
	Product   string
	Location  string
	DateFrom  string // calendar date, 2006-01-02
	DateTo    string // inclusive through 23:59:59 of that day
	SortBy    string // date | user | product (default date)
	SortOrder string // asc | desc (default desc)
}

// Apply is pure: it never mutates its input and can be recomputed on every
// call with no side effects. Unparseable timestamps compare as the zero
// instant rather than failing.
func (f Filter) Apply(entries []domain.RegistrationEntry) []domain.RegistrationEntry {
	var from, to time.Time
	hasFrom, hasTo := false, false
	if d, err := time.Parse("2006-01-02", f.DateFrom); err == nil {
		from, hasFrom = d, true
	}
	if d, err := time.Parse("2006-01-02", f.DateTo); err == nil {
		to = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
		hasTo = true
	}

	search := strings.ToLower(f.Search)
	out := make([]domain.RegistrationEntry, 0, len(entries))
	for _, e := range entries {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if f.User != "" && f.User != "all" && e.User != f.User {
			continue
		}
		if f.Product != "" && !strings.Contains(strings.ToLower(e.Product), strings.ToLower(f.Product)) {
			continue
		}
		if f.Location != "" && f.Location != "all" && e.Location != f.Location {
			continue
		}
		if hasFrom || hasTo {
			ts := parseInstant(e.Timestamp)
			if hasFrom && ts.Before(from) {
				continue
			}
			if hasTo && ts.After(to) {
				continue
			}
		}
		out = append(out, e)
	}

	col := collate.New(language.Dutch)
	asc := f.SortOrder == "asc"
	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch f.SortBy {
		case "user":
			cmp = col.CompareString(out[i].User, out[j].User)
		case "product":
			cmp = col.CompareString(out[i].Product, out[j].Product)
		default: // date
			a := parseInstant(out[i].Timestamp).UnixMilli()
			b := parseInstant(out[j].Timestamp).UnixMilli()
			switch {
			case a < b:
				cmp = -1
			case a > b:
				cmp = 1
			}
		}
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})

	return out
}

// Active reports whether any of the text predicates narrow the view; the
// export uses this to suffix the download filename. The date range does
// not count, only search/user/product/location do.
func (f Filter) Active() bool {
	return f.Search != "" ||
		(f.User != "" && f.User != "all") ||
		f.Product != "" ||
		(f.Location != "" && f.Location != "all")
}

func matchesSearch(e domain.RegistrationEntry, q string) bool {
	return strings.Contains(strings.ToLower(e.User), q) ||
		strings.Contains(strings.ToLower(e.Product), q) ||
		strings.Contains(strings.ToLower(e.Location), q) ||
		strings.Contains(strings.ToLower(e.Purpose), q) ||
		(e.QRCode != "" && strings.Contains(strings.ToLower(e.QRCode), q))
}

func parseInstant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
