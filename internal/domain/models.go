package domain

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"-"`
}

type Product struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	QRCode     string `db:"qrcode" json:"qrcode"`
	CategoryID string `db:"category_id" json:"categoryId,omitempty"`
	CreatedAt  string `db:"created_at" json:"-"`
}

// RegistrationEntry is one row of the usage log. The user/product/location/
// purpose fields are the display names as typed at creation time, not live
// references: renaming or deleting the referenced item later must not touch
// existing rows. Date and Time are rendered once from Timestamp (nl-NL) and
// never recomputed; Timestamp is the only input to time-based filtering.
type RegistrationEntry struct {
	ID        string `db:"id" json:"id"`
	User      string `db:"user" json:"user"`
	Product   string `db:"product" json:"product"`
	Location  string `db:"location" json:"location"`
	Purpose   string `db:"purpose" json:"purpose"`
	Timestamp string `db:"timestamp" json:"timestamp"`
	Date      string `db:"date" json:"date"`
	Time      string `db:"time" json:"time"`
	QRCode    string `db:"qrcode" json:"qrcode"`
	CreatedAt string `db:"created_at" json:"created_at,omitempty"`
}
