package repos

import (
	"depotlog/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type RegistrationRepo struct{ db *sqlx.DB }

func NewRegistrationRepo(db *sqlx.DB) *RegistrationRepo { return &RegistrationRepo{db: db} }

// List returns the full log newest-first.
func (r *RegistrationRepo) List() ([]domain.RegistrationEntry, error) {
	var out []domain.RegistrationEntry
	err := r.db.Select(&out, `
	  SELECT id, user, product, location, purpose, timestamp, date, time, qrcode,
	         COALESCE(created_at,'') AS created_at
	  FROM registrations
	  ORDER BY rowid DESC
	`)
	return out, Tag(err)
}

func (r *RegistrationRepo) Insert(e domain.RegistrationEntry) (domain.RegistrationEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, err := r.db.Exec(`
	  INSERT INTO registrations(id,user,product,location,purpose,timestamp,date,time,qrcode)
	  VALUES(?,?,?,?,?,?,?,?,?)`,
		e.ID, e.User, e.Product, e.Location, e.Purpose, e.Timestamp, e.Date, e.Time, e.QRCode); err != nil {
		return domain.RegistrationEntry{}, Tag(err)
	}
	return e, nil
}

// The log is an audit trail: no update, no delete.
func (r *RegistrationRepo) Update(domain.RegistrationEntry) (domain.RegistrationEntry, error) {
	return domain.RegistrationEntry{}, ErrAppendOnly
}

func (r *RegistrationRepo) Delete(string) error { return ErrAppendOnly }
