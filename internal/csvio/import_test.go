package csvio_test

import (
	"reflect"
	"testing"

	"depotlog/internal/csvio"
)

func TestParseNamesPlainLines(t *testing.T) {
	got := csvio.ParseNames("Alice\nBob\n\nAlice\n")
	want := []string{"Alice", "Bob", "Alice"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v (in-file duplicates stay)", got, want)
	}
}

func TestParseNamesFirstColumnQuotesStripped(t *testing.T) {
	got := csvio.ParseNames("\"Jan Janssen\",extra,columns\r\nMarie,x\n")
	want := []string{"Jan Janssen", "Marie"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseProducts(t *testing.T) {
	got := csvio.ParseProducts("Laptop,LAP-01\n\"Monitor\",\"MON-02\"\nonly-a-name\n,QR-ONLY\n")
	if len(got) != 2 {
		t.Fatalf("want 2 products, got %d: %v", len(got), got)
	}
	if got[0].Name != "Laptop" || got[0].QRCode != "LAP-01" {
		t.Fatalf("first product: %+v", got[0])
	}
	if got[1].Name != "Monitor" || got[1].QRCode != "MON-02" {
		t.Fatalf("second product: %+v", got[1])
	}
}

func TestTemplateKinds(t *testing.T) {
	for _, kind := range []string{"users", "products", "locations", "purposes"} {
		name, content, ok := csvio.Template(kind)
		if !ok || name == "" || content == "" {
			t.Fatalf("kind %q should have a template", kind)
		}
	}
	if _, _, ok := csvio.Template("gadgets"); ok {
		t.Fatal("unknown kind must not resolve")
	}
}
