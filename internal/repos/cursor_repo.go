package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
)

type CursorRepo struct{ db *sqlx.DB }

func NewCursorRepo(db *sqlx.DB) *CursorRepo { return &CursorRepo{db: db} }

func (r *CursorRepo) Insert(cp domain.CursorPosition) error {
	_, err := r.db.Exec(`
	  INSERT INTO cursor_positions(id,user_id,x,y,page,timestamp)
	  VALUES(?,?,?,?,?,?)
	`, cp.ID, cp.UserID, cp.X, cp.Y, cp.Page, cp.Timestamp)
	return err
}

// Timestamps are RFC3339 UTC strings, so lexicographic comparison orders
// them correctly. Every read takes a "since" cutoff; rows at or before it
// are treated as expired and never returned.

func (r *CursorRepo) ListByUser(userID, since string) ([]domain.CursorPosition, error) {
	out := []domain.CursorPosition{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, x, y, page, timestamp FROM cursor_positions
	  WHERE user_id = ? AND timestamp > ?
	  ORDER BY timestamp DESC
	`, userID, since)
	return out, err
}

func (r *CursorRepo) ListByPage(page, since string) ([]domain.CursorPosition, error) {
	out := []domain.CursorPosition{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, x, y, page, timestamp FROM cursor_positions
	  WHERE page = ? AND timestamp > ?
	  ORDER BY timestamp DESC
	`, page, since)
	return out, err
}

func (r *CursorRepo) ListAll(since string) ([]domain.CursorPosition, error) {
	out := []domain.CursorPosition{}
	err := r.db.Select(&out, `
	  SELECT id, user_id, x, y, page, timestamp FROM cursor_positions
	  WHERE timestamp > ?
	  ORDER BY timestamp DESC
	`, since)
	return out, err
}

func (r *CursorRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM cursor_positions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired physically removes rows the read cutoff already hides.
func (r *CursorRepo) DeleteExpired(before string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM cursor_positions WHERE timestamp <= ?`, before)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
