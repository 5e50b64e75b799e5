package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, title, category, price, rent_per_day, img, rating, description,
  tags_json, availability, stock, created_at, COALESCE(updated_at,'') AS updated_at`

// likeEscaper quotes LIKE metacharacters so search terms stay literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List returns products matching the optional category and search filters.
// A category of "All" (or empty) matches everything. The search term is a
// case-insensitive substring match against title, description, or any tag.
func (r *ProductRepo) List(category, search string) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if category != "" && category != "All" {
		where += ` AND category = ?`
		args = append(args, category)
	}
	if search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		where += ` AND (LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'
		  OR EXISTS (SELECT 1 FROM json_each(products.tags_json) WHERE LOWER(json_each.value) LIKE ? ESCAPE '\'))`
		args = append(args, like, like, like)
	}

	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE `+where, args...)
	if err != nil {
		return nil, err
	}
	for i := range out {
		decodeTags(&out[i])
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, err
	}
	decodeTags(&p)
	return p, nil
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,title,category,price,rent_per_day,img,rating,description,tags_json,availability,stock,created_at,updated_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Title, p.Category, p.Price, p.RentPerDay, p.Img, p.Rating, p.Description,
		encodeTags(p.Tags), p.Availability, p.Stock, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET title=?, category=?, price=?, rent_per_day=?, img=?, rating=?, description=?,
	      tags_json=?, availability=?, stock=?, updated_at=?
	  WHERE id=?
	`, p.Title, p.Category, p.Price, p.RentPerDay, p.Img, p.Rating, p.Description,
		encodeTags(p.Tags), p.Availability, p.Stock, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

func decodeTags(p *domain.Product) {
	if err := json.Unmarshal([]byte(p.TagsJSON), &p.Tags); err != nil || p.Tags == nil {
		p.Tags = []string{}
	}
}

func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}
