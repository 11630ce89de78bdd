package query_test

import (
	"reflect"
	"testing"

	"depotlog/internal/domain"
	"depotlog/internal/query"
)

func entry(user, product, location, purpose, qr, ts string) domain.RegistrationEntry {
	return domain.RegistrationEntry{
		User: user, Product: product, Location: location, Purpose: purpose,
		QRCode: qr, Timestamp: ts,
	}
}

func sample() []domain.RegistrationEntry {
	return []domain.RegistrationEntry{
		entry("Jan", "Oil", "Depot", "Test", "OIL-1", "2024-01-01T10:00:00Z"),
		entry("Marie", "Oil", "Depot", "Demo", "OIL-1", "2024-01-02T10:00:00Z"),
		entry("Piet", "Grease", "Warehouse", "Repair", "", "2024-01-03T10:00:00Z"),
	}
}

func TestFilterByUserExact(t *testing.T) {
	got := query.Filter{User: "Jan"}.Apply(sample())
	if len(got) != 1 || got[0].User != "Jan" {
		t.Fatalf("want exactly the Jan entry, got %+v", got)
	}

	// "all" and "" mean no constraint
	if n := len(query.Filter{User: "all"}.Apply(sample())); n != 3 {
		t.Fatalf("user=all should keep everything, got %d", n)
	}
}

func TestSortByDateAsc(t *testing.T) {
	got := query.Filter{SortBy: "date", SortOrder: "asc"}.Apply(sample())
	if got[0].User != "Jan" || got[1].User != "Marie" || got[2].User != "Piet" {
		t.Fatalf("bad asc order: %+v", got)
	}
}

func TestSortDescIsReverseOfAsc(t *testing.T) {
	asc := query.Filter{SortBy: "date", SortOrder: "asc"}.Apply(sample())
	desc := query.Filter{SortBy: "date", SortOrder: "desc"}.Apply(sample())
	if len(asc) != len(desc) {
		t.Fatalf("length mismatch: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if !reflect.DeepEqual(asc[i], desc[len(desc)-1-i]) {
			t.Fatalf("desc is not the reverse of asc at %d", i)
		}
	}
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	in := sample()
	f := query.Filter{Search: "oil", SortBy: "user", SortOrder: "asc"}
	first := f.Apply(in)
	second := f.Apply(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same filter on same input gave different output")
	}
	// input untouched
	if !reflect.DeepEqual(in, sample()) {
		t.Fatal("Apply mutated its input")
	}
}

func TestSearchMatchesAnyOfFiveFields(t *testing.T) {
	e := entry("Jan", "Oil", "Depot", "Maintenance", "QR-77", "2024-01-01T10:00:00Z")
	in := []domain.RegistrationEntry{e}

	for _, q := range []string{"jan", "OIL", "depot", "mainten", "qr-77"} {
		if got := (query.Filter{Search: q}).Apply(in); len(got) != 1 {
			t.Fatalf("query %q should match, got %d results", q, len(got))
		}
	}
	if got := (query.Filter{Search: "nowhere"}).Apply(in); len(got) != 0 {
		t.Fatalf("non-matching query kept %d entries", len(got))
	}
}

func TestDateRangeInclusiveThroughEndOfDay(t *testing.T) {
	in := []domain.RegistrationEntry{
		entry("A", "P", "L", "X", "", "2024-01-05T23:59:59Z"),
		entry("B", "P", "L", "X", "", "2024-01-05T23:59:59.001Z"),
	}
	got := query.Filter{DateTo: "2024-01-05"}.Apply(in)
	if len(got) != 1 || got[0].User != "A" {
		t.Fatalf("23:59:59 must be in, one ms later out; got %+v", got)
	}

	got = query.Filter{DateFrom: "2024-01-06"}.Apply(in)
	if len(got) != 1 || got[0].User != "B" {
		t.Fatalf("from-filter should keep only the later entry, got %+v", got)
	}
}

func TestProductSubstringFilter(t *testing.T) {
	got := query.Filter{Product: "grea"}.Apply(sample())
	if len(got) != 1 || got[0].Product != "Grease" {
		t.Fatalf("want the Grease entry, got %+v", got)
	}
}

func TestFilterActive(t *testing.T) {
	if (query.Filter{}).Active() {
		t.Fatal("empty filter should not be active")
	}
	if (query.Filter{User: "all", Location: "all"}).Active() {
		t.Fatal("all-sentinels are not constraints")
	}
	if !(query.Filter{Search: "x"}).Active() {
		t.Fatal("search should mark the filter active")
	}
	if (query.Filter{DateFrom: "2024-01-01", DateTo: "2024-01-31"}).Active() {
		t.Fatal("a date range alone does not mark the filter active")
	}
	if !(query.Filter{Location: "Warehouse"}).Active() {
		t.Fatal("a location constraint should mark the filter active")
	}
}

func TestEmptyCollectionYieldsEmpty(t *testing.T) {
	if got := (query.Filter{Search: "x"}).Apply(nil); len(got) != 0 {
		t.Fatalf("nil input should give empty output, got %d", len(got))
	}
}
