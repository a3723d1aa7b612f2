package store

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/mfreitas/ecopontos/internal/domain"
)

type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

// List returns every item in insertion order. An empty table yields an empty
// slice, not an error.
func (s *ItemStore) List(ctx context.Context) ([]domain.Item, error) {
	query, args, err := dialect.From("items").
		Select("id", "title", "image").
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build items query: %w", err)
	}

	var items []domain.Item
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}
