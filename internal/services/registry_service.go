package services

import (
	"errors"
	"strings"
	"time"

	"depotlog/internal/domain"
	"depotlog/internal/store"
)

var (
	ErrMissingField = errors.New("user, product, location and purpose are required")
	ErrDuplicate    = errors.New("item already exists")
)

// RegistryService owns the registration flow and the duplicate pre-checks
// for the entity lists. The pre-checks are linear scans over current local
// state done right before the insert: best-effort under concurrent clients,
// not a guarantee (the store accepts the race by design).
type RegistryService struct {
	Store *store.Store
	Now   func() time.Time
}

func NewRegistryService(st *store.Store) *RegistryService {
	return &RegistryService{Store: st, Now: time.Now}
}

// Register appends one entry to the usage log. The four names are copied
// as typed; the product's current qrcode is snapshotted alongside. Date and
// time are rendered once, Dutch style, from the same instant as Timestamp.
func (s *RegistryService) Register(user, product, location, purpose string) (domain.RegistrationEntry, error) {
	user, product = strings.TrimSpace(user), strings.TrimSpace(product)
	location, purpose = strings.TrimSpace(location), strings.TrimSpace(purpose)
	if user == "" || product == "" || location == "" || purpose == "" {
		return domain.RegistrationEntry{}, ErrMissingField
	}

	qr := ""
	if p, ok := s.productByName(product); ok {
		qr = p.QRCode
	}

	now := s.Now()
	e := domain.RegistrationEntry{
		User:      user,
		Product:   product,
		Location:  location,
		Purpose:   purpose,
		Timestamp: now.UTC().Format(time.RFC3339),
		Date:      now.Format("2-1-2006"),
		Time:      now.Format("15:04"),
		QRCode:    qr,
	}
	return s.Store.Registrations.Create(e)
}

func (s *RegistryService) AddUser(name string) (string, error) {
	return s.addName(s.Store.Users, name)
}

func (s *RegistryService) AddLocation(name string) (string, error) {
	return s.addName(s.Store.Locations, name)
}

func (s *RegistryService) AddPurpose(name string) (string, error) {
	return s.addName(s.Store.Purposes, name)
}

func (s *RegistryService) addName(col *store.Collection[string], name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrMissingField
	}
	for _, existing := range col.Items() {
		if existing == name {
			return "", ErrDuplicate
		}
	}
	return col.Create(name)
}

// AddProduct refuses a duplicate name, and a duplicate qrcode when one is
// given (soft uniqueness, checked here rather than enforced by the store).
func (s *RegistryService) AddProduct(name, qrcode, categoryID string) (domain.Product, error) {
	name, qrcode = strings.TrimSpace(name), strings.TrimSpace(qrcode)
	if name == "" {
		return domain.Product{}, ErrMissingField
	}
	for _, p := range s.Store.Products.Items() {
		if p.Name == name || (qrcode != "" && p.QRCode == qrcode) {
			return domain.Product{}, ErrDuplicate
		}
	}
	return s.Store.Products.Create(domain.Product{Name: name, QRCode: qrcode, CategoryID: categoryID})
}

// AddCategory enforces name uniqueness at the application layer.
func (s *RegistryService) AddCategory(name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, ErrMissingField
	}
	for _, c := range s.Store.Categories.Items() {
		if strings.EqualFold(c.Name, name) {
			return domain.Category{}, ErrDuplicate
		}
	}
	return s.Store.Categories.Create(domain.Category{Name: name})
}

// FindByQR resolves a scanned or typed code to a product. This is the
// whole of the QR flow server-side: no decoding happens anywhere.
func (s *RegistryService) FindByQR(code string) (domain.Product, bool) {
	for _, p := range s.Store.Products.Items() {
		if p.QRCode != "" && p.QRCode == code {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *RegistryService) productByName(name string) (domain.Product, bool) {
	for _, p := range s.Store.Products.Items() {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Product{}, false
}
