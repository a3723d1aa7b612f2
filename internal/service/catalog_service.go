package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mfreitas/ecopontos/internal/domain"
)

// itemRepository is the subset of store.ItemStore that CatalogService requires.
type itemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
}

// CatalogService serves the read-only item catalog. Item rows hold bare
// filenames; the service resolves them against the configured asset base URL.
type CatalogService struct {
	items        itemRepository
	assetBaseURL string
}

func NewCatalogService(items itemRepository, assetBaseURL string) *CatalogService {
	return &CatalogService{
		items:        items,
		assetBaseURL: strings.TrimRight(assetBaseURL, "/"),
	}
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.ItemView, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	views := make([]domain.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, domain.ItemView{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: fmt.Sprintf("%s/%s", s.assetBaseURL, item.Image),
		})
	}

	return views, nil
}
