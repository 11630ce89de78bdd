package repos

import (
	"depotlog/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(created_at,'') AS created_at
	  FROM categories
	  ORDER BY name
	`)
	return out, Tag(err)
}

func (r *CategoryRepo) Insert(c domain.Category) (domain.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := r.db.Exec(`INSERT INTO categories(id,name) VALUES(?,?)`, c.ID, c.Name); err != nil {
		return domain.Category{}, Tag(err)
	}
	return c, nil
}

func (r *CategoryRepo) Update(c domain.Category) (domain.Category, error) {
	if _, err := r.db.Exec(`UPDATE categories SET name=? WHERE id=?`, c.Name, c.ID); err != nil {
		return domain.Category{}, Tag(err)
	}
	return c, nil
}

// Delete removes the category only. Products referencing it keep their
// category_id; the reference is weak (no cascade, no block).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id=?`, id)
	return Tag(err)
}
