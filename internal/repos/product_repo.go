package repos

import (
	"depotlog/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns all products newest-first. rowid keeps the order stable
// when created_at ties within the same second.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, qrcode, category_id, COALESCE(created_at,'') AS created_at
	  FROM products
	  ORDER BY rowid DESC
	`)
	return out, Tag(err)
}

func (r *ProductRepo) Insert(p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.db.Exec(`INSERT INTO products(id,name,qrcode,category_id) VALUES(?,?,?,?)`,
		p.ID, p.Name, p.QRCode, p.CategoryID); err != nil {
		return domain.Product{}, Tag(err)
	}
	return p, nil
}

func (r *ProductRepo) Update(p domain.Product) (domain.Product, error) {
	if _, err := r.db.Exec(`UPDATE products SET name=?, qrcode=?, category_id=? WHERE id=?`,
		p.Name, p.QRCode, p.CategoryID, p.ID); err != nil {
		return domain.Product{}, Tag(err)
	}
	return p, nil
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	return Tag(err)
}
