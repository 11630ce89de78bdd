package csvio_test

import (
	"strings"
	"testing"
	"time"

	"depotlog/internal/csvio"
	"depotlog/internal/domain"
)

func TestExportRowFormat(t *testing.T) {
	got := csvio.ExportRegistrations([]domain.RegistrationEntry{{
		Date: "1-1-2024", Time: "10:00",
		User: "Jan", Product: "Oil, Can", QRCode: "", Location: "Depot", Purpose: "Test",
	}})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != csvio.Header {
		t.Fatalf("bad header: %q", lines[0])
	}
	want := `1-1-2024,10:00,"Jan","Oil, Can","","Depot","Test"`
	if lines[1] != want {
		t.Fatalf("row:\n got %q\nwant %q", lines[1], want)
	}
}

func TestExportLeavesEmbeddedQuotesAlone(t *testing.T) {
	got := csvio.ExportRegistrations([]domain.RegistrationEntry{{
		Date: "1-1-2024", Time: "10:00",
		User: `Jan "JJ" Janssen`, Product: "Oil", Location: "Depot", Purpose: "Test",
	}})
	if !strings.Contains(got, `"Jan "JJ" Janssen"`) {
		t.Fatalf("embedded quotes must pass through untouched:\n%s", got)
	}
	if strings.Contains(got, `""JJ""`) {
		t.Fatalf("quotes must not be doubled:\n%s", got)
	}
}

func TestExportEmptyIsHeaderOnly(t *testing.T) {
	if got := csvio.ExportRegistrations(nil); got != csvio.Header {
		t.Fatalf("empty export should be the bare header, got %q", got)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	if got := csvio.ExportFilename(false, now); got != "product-registraties-2024-03-07.csv" {
		t.Fatalf("unfiltered: %q", got)
	}
	if got := csvio.ExportFilename(true, now); got != "product-registraties-gefilterd-2024-03-07.csv" {
		t.Fatalf("filtered: %q", got)
	}
}
