package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/mfreitas/ecopontos/internal/domain"
)

type PointStore struct {
	db *sqlx.DB
}

func NewPointStore(db *sqlx.DB) *PointStore {
	return &PointStore{db: db}
}

var pointColumns = []any{
	goqu.I("points.id"),
	goqu.I("points.image"),
	goqu.I("points.name"),
	goqu.I("points.email"),
	goqu.I("points.whatsapp"),
	goqu.I("points.latitude"),
	goqu.I("points.longitude"),
	goqu.I("points.city"),
	goqu.I("points.uf"),
}

// Filter returns the points in the given city and uf that accept at least
// one of the requested items. The join against point_items would yield one
// row per matching item, so the projection is DISTINCT over point columns.
// An empty itemIDs set matches nothing, mirroring an IN clause over an
// empty set.
func (s *PointStore) Filter(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error) {
	if len(itemIDs) == 0 {
		return []domain.Point{}, nil
	}

	query, args, err := dialect.From("points").
		Join(
			goqu.T("point_items"),
			goqu.On(goqu.I("points.id").Eq(goqu.I("point_items.point_id"))),
		).
		Where(
			goqu.I("point_items.item_id").In(itemIDs),
			goqu.I("points.city").Eq(city),
			goqu.I("points.uf").Eq(uf),
		).
		SelectDistinct(pointColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build points filter query: %w", err)
	}

	points := []domain.Point{}
	if err := s.db.SelectContext(ctx, &points, query, args...); err != nil {
		return nil, fmt.Errorf("failed to filter points: %w", err)
	}

	return points, nil
}

// GetByID returns the point with the given id, or nil when no such point
// exists.
func (s *PointStore) GetByID(ctx context.Context, id int64) (*domain.Point, error) {
	query, args, err := dialect.From("points").
		Select(pointColumns...).
		Where(goqu.I("points.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build point query: %w", err)
	}

	var point domain.Point
	if err := s.db.GetContext(ctx, &point, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get point: %w", err)
	}

	return &point, nil
}

// ItemTitles returns the titles of every item associated with the given
// point, in no particular order.
func (s *PointStore) ItemTitles(ctx context.Context, pointID int64) ([]string, error) {
	query, args, err := dialect.From("items").
		Join(
			goqu.T("point_items"),
			goqu.On(goqu.I("items.id").Eq(goqu.I("point_items.item_id"))),
		).
		Where(goqu.I("point_items.point_id").Eq(pointID)).
		Select(goqu.I("items.title")).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build item titles query: %w", err)
	}

	titles := []string{}
	if err := s.db.SelectContext(ctx, &titles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list item titles: %w", err)
	}

	return titles, nil
}

// CreateWithItems inserts the point and one point_items row per item id as a
// single transaction. The point insert must complete first: its generated id
// is a data dependency of the join rows. Any failure rolls back the whole
// unit, so a point is never observable without its full item set.
//
// Item ids are not pre-checked against the items table; the declared foreign
// key rejects unknown ids and aborts the transaction. An empty itemIDs is
// legal and produces a point that accepts nothing.
func (s *PointStore) CreateWithItems(ctx context.Context, point domain.Point, itemIDs []int64) (*domain.Point, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op once Commit has succeeded.
	defer func() { _ = tx.Rollback() }()

	insertSQL, args, err := dialect.Insert("points").
		Rows(goqu.Record{
			"image":     point.Image,
			"name":      point.Name,
			"email":     point.Email,
			"whatsapp":  point.Whatsapp,
			"latitude":  point.Latitude,
			"longitude": point.Longitude,
			"city":      point.City,
			"uf":        point.UF,
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build point insert: %w", err)
	}

	result, err := tx.ExecContext(ctx, insertSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert point: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	if len(itemIDs) > 0 {
		rows := make([]any, 0, len(itemIDs))
		for _, itemID := range itemIDs {
			rows = append(rows, goqu.Record{"point_id": id, "item_id": itemID})
		}

		joinSQL, joinArgs, err := dialect.Insert("point_items").
			Rows(rows...).
			Prepared(true).
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("failed to build point items insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, joinSQL, joinArgs...); err != nil {
			return nil, fmt.Errorf("failed to insert point items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit point creation: %w", err)
	}

	point.ID = id
	return &point, nil
}
