package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

// LocationRepository reads the campus location reference list.
type LocationRepository interface {
	ListActive(ctx context.Context) ([]domain.Location, error)
}

type locationRepository struct {
	pool *pgxpool.Pool
}

// NewLocationRepository constructs repository.
func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &locationRepository{pool: pool}
}

func (r *locationRepository) ListActive(ctx context.Context) ([]domain.Location, error) {
	const query = `
        SELECT id, name, is_active, display_order
        FROM locations WHERE is_active = TRUE
        ORDER BY display_order`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.IsActive, &loc.DisplayOrder); err != nil {
			return nil, err
		}
		result = append(result, loc)
	}
	return result, rows.Err()
}
