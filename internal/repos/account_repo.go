package repos

import (
	"depotlog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AccountRepo struct{ DB *sqlx.DB }

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{DB: db} }

func (r *AccountRepo) ByEmail(email string) (*domain.Account, error) {
	var a domain.Account
	err := r.DB.Get(&a, `SELECT id,email,name,password_hash,role FROM accounts WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) Create(a domain.Account) error {
	_, err := r.DB.Exec(`INSERT INTO accounts(id,email,name,password_hash,role) VALUES(?,?,?,?,?)`,
		a.ID, a.Email, a.Name, a.Hash, a.Role)
	return err
}

func (r *AccountRepo) BindSession(sid, accountID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,account_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET account_id=excluded.account_id,last_seen=CURRENT_TIMESTAMP`, sid, accountID)
	return err
}

func (r *AccountRepo) SessionAccount(sid string) (*domain.Account, error) {
	var a domain.Account
	err := r.DB.Get(&a, `
      SELECT a.id,a.email,a.name,a.password_hash,a.role
      FROM sessions s
      JOIN accounts a ON a.id=s.account_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET account_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
