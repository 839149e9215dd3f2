package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsSummary aggregates the admin dashboard counters.
type StatsSummary struct {
	Users         int64
	Items         int64
	LostItems     int64
	FoundItems    int64
	OpenItems     int64
	PendingClaims int64
	ResolvedItems int64
}

// StatsRepository computes the admin counters. Each counter is an independent
// count query, mirroring the dashboard's refresh behavior.
type StatsRepository interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository constructs repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) Summary(ctx context.Context) (*StatsSummary, error) {
	type counter struct {
		query string
		dest  *int64
	}

	var summary StatsSummary
	counters := []counter{
		{`SELECT COUNT(*) FROM users`, &summary.Users},
		{`SELECT COUNT(*) FROM items`, &summary.Items},
		{`SELECT COUNT(*) FROM items WHERE type='Lost'`, &summary.LostItems},
		{`SELECT COUNT(*) FROM items WHERE type='Found'`, &summary.FoundItems},
		{`SELECT COUNT(*) FROM items WHERE status='Open'`, &summary.OpenItems},
		{`SELECT COUNT(*) FROM claims WHERE status='Pending'`, &summary.PendingClaims},
		{`SELECT COUNT(*) FROM items WHERE status='Resolved'`, &summary.ResolvedItems},
	}

	for _, c := range counters {
		if err := r.pool.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return &summary, nil
}
