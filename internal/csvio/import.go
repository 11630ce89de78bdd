package csvio

import (
	"strings"

	"depotlog/internal/domain"
)

// ParseNames reads a names upload for the users/locations/purposes lists.
// Accepted flavors: one name per line, or CSV where the first column is the
// name (quotes stripped). Blank lines are dropped; duplicates within the
// file are kept so the import can count them as skipped.
func ParseNames(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name := line
		if i := strings.Index(line, ","); i >= 0 {
			name = line[:i]
		}
		name = strings.TrimSpace(strings.ReplaceAll(name, `"`, ""))
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ParseProducts reads a two-column name,qrcode CSV. Lines missing either
// column are ignored, as in the original importer.
func ParseProducts(text string) []domain.Product {
	var out []domain.Product
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(parts[0], `"`, ""))
		qr := strings.TrimSpace(strings.ReplaceAll(parts[1], `"`, ""))
		if name == "" || qr == "" {
			continue
		}
		out = append(out, domain.Product{Name: name, QRCode: qr})
	}
	return out
}
