package store

import (
	"depotlog/internal/domain"
	"depotlog/internal/repos"

	"github.com/jmoiron/sqlx"
)

// Store owns the six mirrored collections. It is constructed once at
// startup by the application root and closed at shutdown; nothing lives at
// package scope.
type Store struct {
	Users         *Collection[string]
	Locations     *Collection[string]
	Purposes      *Collection[string]
	Categories    *Collection[domain.Category]
	Products      *Collection[domain.Product]
	Registrations *Collection[domain.RegistrationEntry]
}

func New(db *sqlx.DB) *Store {
	self := func(s string) string { return s }
	return &Store{
		Users:      NewCollection("users", repos.NewNameRepo(db, "users"), self, false),
		Locations:  NewCollection("locations", repos.NewNameRepo(db, "locations"), self, false),
		Purposes:   NewCollection("purposes", repos.NewNameRepo(db, "purposes"), self, false),
		Categories: NewCollection("categories", repos.NewCategoryRepo(db), func(c domain.Category) string { return c.ID }, false),
		Products:   NewCollection("products", repos.NewProductRepo(db), func(p domain.Product) string { return p.ID }, true),
		Registrations: NewCollection("registrations", repos.NewRegistrationRepo(db),
			func(e domain.RegistrationEntry) string { return e.ID }, true),
	}
}

// MockCategories is the degraded fallback when the categories table is
// missing, mirroring the demo data the original deployment shipped with.
func MockCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Smeermiddelen"},
		{ID: "2", Name: "Reinigers"},
		{ID: "3", Name: "Onderhoud"},
	}
}

// LoadAll performs the startup fetch for every collection. A missing table
// is recoverable: the affected collection falls back to an empty list
// (categories to the mock list) and the rest of the application keeps
// working. The first non-recoverable error is returned.
func (s *Store) LoadAll() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && !repos.IsTableMissing(err) && firstErr == nil {
			firstErr = err
		}
	}

	if _, err := s.Users.FetchAll(); err != nil {
		keep(err)
	}
	if _, err := s.Locations.FetchAll(); err != nil {
		keep(err)
	}
	if _, err := s.Purposes.FetchAll(); err != nil {
		keep(err)
	}
	if _, err := s.Products.FetchAll(); err != nil {
		keep(err)
	}
	if _, err := s.Registrations.FetchAll(); err != nil {
		keep(err)
	}
	if _, err := s.Categories.FetchAll(); err != nil {
		if repos.IsTableMissing(err) {
			s.Categories.Replace(MockCategories())
		} else {
			keep(err)
		}
	}
	return firstErr
}

// Close stops every reconciler. Safe to call more than once.
func (s *Store) Close() {
	s.Users.Close()
	s.Locations.Close()
	s.Purposes.Close()
	s.Categories.Close()
	s.Products.Close()
	s.Registrations.Close()
}
