package services

import (
	"errors"

	"depotlog/internal/csvio"
	"depotlog/internal/store"
)

var ErrNoItems = errors.New("no valid items found in file")

// ImportService runs the CSV/text bulk imports. Items already present in
// the target collection are skipped and counted; per-item insert failures
// also count as skipped so the report always adds up to the line total.
type ImportService struct {
	Store *store.Store
}

func NewImportService(st *store.Store) *ImportService { return &ImportService{Store: st} }

// ImportNames imports into users, locations or purposes.
func (s *ImportService) ImportNames(kind, text string) (saved, skipped int, err error) {
	var col *store.Collection[string]
	switch kind {
	case "users":
		col = s.Store.Users
	case "locations":
		col = s.Store.Locations
	case "purposes":
		col = s.Store.Purposes
	default:
		return 0, 0, errors.New("unknown import kind: " + kind)
	}

	names := csvio.ParseNames(text)
	if len(names) == 0 {
		return 0, 0, ErrNoItems
	}

	for _, name := range names {
		if containsName(col.Items(), name) {
			skipped++
			continue
		}
		if _, err := col.Create(name); err != nil {
			skipped++
			continue
		}
		saved++
	}
	return saved, skipped, nil
}

// ImportProducts imports a name,qrcode CSV. Both the name and the qrcode
// are checked against existing products.
func (s *ImportService) ImportProducts(text string) (saved, skipped int, err error) {
	items := csvio.ParseProducts(text)
	if len(items) == 0 {
		return 0, 0, ErrNoItems
	}

	for _, item := range items {
		dup := false
		for _, p := range s.Store.Products.Items() {
			if p.Name == item.Name || p.QRCode == item.QRCode {
				dup = true
				break
			}
		}
		if dup {
			skipped++
			continue
		}
		if _, err := s.Store.Products.Create(item); err != nil {
			skipped++
			continue
		}
		saved++
	}
	return saved, skipped, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
