package repos

import "github.com/jmoiron/sqlx"

// NameRepo backs the users/locations/purposes lists: bare display names
// where the name itself is the key.
type NameRepo struct {
	db    *sqlx.DB
	table string
}

func NewNameRepo(db *sqlx.DB, table string) *NameRepo { return &NameRepo{db: db, table: table} }

// List returns all names in insertion order.
func (r *NameRepo) List() ([]string, error) {
	var out []string
	err := r.db.Select(&out, `SELECT name FROM `+r.table+` ORDER BY rowid`)
	return out, Tag(err)
}

func (r *NameRepo) Insert(name string) (string, error) {
	if _, err := r.db.Exec(`INSERT INTO `+r.table+`(name) VALUES(?)`, name); err != nil {
		return "", Tag(err)
	}
	return name, nil
}

// Update is refused: a name list entry is removed and re-added, never edited.
func (r *NameRepo) Update(name string) (string, error) { return "", ErrImmutable }

func (r *NameRepo) Delete(name string) error {
	_, err := r.db.Exec(`DELETE FROM `+r.table+` WHERE name=?`, name)
	return Tag(err)
}
