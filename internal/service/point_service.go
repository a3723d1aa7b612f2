package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfreitas/ecopontos/internal/domain"
)

// pointRepository is the subset of store.PointStore that PointService requires.
type pointRepository interface {
	Filter(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error)
	GetByID(ctx context.Context, id int64) (*domain.Point, error)
	ItemTitles(ctx context.Context, pointID int64) ([]string, error)
	CreateWithItems(ctx context.Context, point domain.Point, itemIDs []int64) (*domain.Point, error)
}

// CreatePointInput carries the caller-supplied point attributes. The image is
// not among them: every point gets the configured placeholder at creation.
type CreatePointInput struct {
	Name      string
	Email     string
	Whatsapp  string
	City      string
	UF        string
	Latitude  float64
	Longitude float64
}

type PointService struct {
	points        pointRepository
	pointImageURL string
	logger        *slog.Logger
}

func NewPointService(points pointRepository, pointImageURL string, logger *slog.Logger) *PointService {
	return &PointService{
		points:        points,
		pointImageURL: pointImageURL,
		logger:        logger,
	}
}

// FindPoints returns the points in city/uf accepting any of the requested
// items. City and uf are matched by exact string equality. An empty itemIDs
// matches no points.
func (s *PointService) FindPoints(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error) {
	return s.points.Filter(ctx, city, uf, itemIDs)
}

// GetPoint returns the point with the titles of its accepted items. A
// missing point yields domain.ErrPointNotFound; a point accepting nothing
// yields an empty Items slice.
func (s *PointService) GetPoint(ctx context.Context, id int64) (*domain.PointDetail, error) {
	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get point: %w", err)
	}
	if point == nil {
		return nil, domain.ErrPointNotFound
	}

	titles, err := s.points.ItemTitles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get point items: %w", err)
	}

	return &domain.PointDetail{Point: *point, Items: titles}, nil
}

// CreatePoint registers a new point accepting the given items as one atomic
// unit and returns it with its generated id.
func (s *PointService) CreatePoint(ctx context.Context, input CreatePointInput, itemIDs []int64) (*domain.Point, error) {
	point := domain.Point{
		Image:     s.pointImageURL,
		Name:      input.Name,
		Email:     input.Email,
		Whatsapp:  input.Whatsapp,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		City:      input.City,
		UF:        input.UF,
	}

	created, err := s.points.CreateWithItems(ctx, point, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create point: %w", err)
	}

	s.logger.Info("point created", "point_id", created.ID, "city", created.City, "uf", created.UF, "items", len(itemIDs))
	return created, nil
}
