package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/domain"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/repos"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/validate"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List(category, search string) ([]domain.Product, error) {
	return s.Prods.List(category, search)
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Create validates the product, assigns a generated id and timestamps, and
// persists it. Nothing is written when validation fails. The input arrives
// as a patch so absent fields take their schema defaults (availability true,
// stock 1) instead of Go zero values.
func (s *CatalogService) Create(fields domain.ProductPatch) (domain.Product, error) {
	p := domain.Product{Availability: true, Stock: 1, Tags: []string{}}
	applyPatch(&p, fields)
	if err := validate.Product(p); err != nil {
		return domain.Product{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Prods.Create(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update applies a partial patch to an existing product and re-validates the
// merged record as on create. Concurrent updates are last-write-wins.
func (s *CatalogService) Update(id string, patch domain.ProductPatch) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return domain.Product{}, err
	}
	applyPatch(&p, patch)
	if err := validate.Product(p); err != nil {
		return domain.Product{}, err
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) Delete(id string) error {
	return s.Prods.Delete(id)
}

func applyPatch(p *domain.Product, patch domain.ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.RentPerDay != nil {
		p.RentPerDay = *patch.RentPerDay
	}
	if patch.Img != nil {
		p.Img = *patch.Img
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Availability != nil {
		p.Availability = *patch.Availability
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
}
