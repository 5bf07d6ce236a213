package catalog

import (
	"context"
	"errors"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")

// Service answers catalog queries. Every call re-reads the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.All(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Search matches keyword against product names, ignoring case. An empty
// keyword matches everything.
func (s *Service) Search(ctx context.Context, keyword string) ([]Product, error) {
	kw := strings.ToLower(keyword)
	return s.filter(ctx, func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), kw)
	})
}

func (s *Service) FilterByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.filter(ctx, func(p Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

// FilterByPriceRange keeps products with minPrice <= price <= maxPrice.
func (s *Service) FilterByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Product, error) {
	return s.filter(ctx, func(p Product) bool {
		return minPrice <= p.Price && p.Price <= maxPrice
	})
}

func (s *Service) filter(ctx context.Context, keep func(Product) bool) ([]Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
