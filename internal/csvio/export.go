package csvio

import (
	"strings"
	"time"

	"depotlog/internal/domain"
)

// Header matches the columns of the history table.
const Header = "Datum,Tijd,Gebruiker,Product,QR Code,Locatie,Doel"

// ExportRegistrations renders entries (already filtered/sorted by the
// caller) as CSV. Date and time are written bare; the text fields are
// wrapped in double quotes. Embedded quotes are NOT escaped — the original
// exporter behaves this way and downstream consumers depend on the exact
// format, so the quirk is preserved rather than fixed.
func ExportRegistrations(entries []domain.RegistrationEntry) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, e := range entries {
		b.WriteByte('\n')
		b.WriteString(e.Date)
		b.WriteByte(',')
		b.WriteString(e.Time)
		b.WriteString(`,"` + e.User + `","` + e.Product + `","` + e.QRCode + `","` + e.Location + `","` + e.Purpose + `"`)
	}
	return b.String()
}

// ExportFilename builds the download name, with a -gefilterd suffix when
// the export does not cover the whole log.
func ExportFilename(filtered bool, now time.Time) string {
	suffix := ""
	if filtered {
		suffix = "-gefilterd"
	}
	return "product-registraties" + suffix + "-" + now.Format("2006-01-02") + ".csv"
}
