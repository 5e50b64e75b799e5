package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/repos"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/validate"
)

// CursorTTL is how long a cursor-position record stays readable.
const CursorTTL = 300 * time.Second

type CursorService struct {
	Cursors *repos.CursorRepo
}

func NewCursorService(cursors *repos.CursorRepo) *CursorService {
	return &CursorService{Cursors: cursors}
}

// Record validates and stores a cursor position. x and y are pointers so a
// missing coordinate is rejected rather than silently becoming zero.
func (s *CursorService) Record(userID string, x, y *float64, page string) (domain.CursorPosition, error) {
	if err := validate.CursorPosition(userID, x, y, page); err != nil {
		return domain.CursorPosition{}, err
	}
	cp := domain.CursorPosition{
		ID:        uuid.NewString(),
		UserID:    userID,
		X:         *x,
		Y:         *y,
		Page:      page,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Cursors.Insert(cp); err != nil {
		return domain.CursorPosition{}, err
	}
	return cp, nil
}

func (s *CursorService) ByUser(userID string) ([]domain.CursorPosition, error) {
	return s.Cursors.ListByUser(userID, s.cutoff())
}

func (s *CursorService) ByPage(page string) ([]domain.CursorPosition, error) {
	return s.Cursors.ListByPage(page, s.cutoff())
}

func (s *CursorService) All() ([]domain.CursorPosition, error) {
	return s.Cursors.ListAll(s.cutoff())
}

func (s *CursorService) Delete(id string) error {
	return s.Cursors.Delete(id)
}

// Sweep deletes rows older than the TTL and returns how many went.
func (s *CursorService) Sweep() (int64, error) {
	return s.Cursors.DeleteExpired(s.cutoff())
}

func (s *CursorService) cutoff() string {
	return time.Now().UTC().Add(-CursorTTL).Format(time.RFC3339)
}
