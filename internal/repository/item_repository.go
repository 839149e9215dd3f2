package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

// ItemRepository encapsulates item persistence.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListOpen(ctx context.Context) ([]domain.ItemListing, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Item, error)
	ListAll(ctx context.Context) ([]domain.ItemListing, error)
	Delete(ctx context.Context, id string) error
	Resolve(ctx context.Context, id string) error
}

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository instantiates repository.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

const itemColumns = `id, user_id, title, description, category, location_id, location_text,
               type, contact_info, image_url, color, found_date, status, created_at, resolved_at`

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
        INSERT INTO items (user_id, title, description, category, location_id, location_text, type, contact_info, image_url, color, found_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, status, created_at`
	return r.pool.QueryRow(ctx, query,
		item.UserID,
		item.Title,
		item.Description,
		item.Category,
		item.LocationID,
		item.LocationText,
		item.Type,
		item.ContactInfo,
		item.ImageURL,
		item.Color,
		item.FoundDate,
	).Scan(&item.ID, &item.Status, &item.CreatedAt)
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id=$1`
	var item domain.Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.Description,
		&item.Category,
		&item.LocationID,
		&item.LocationText,
		&item.Type,
		&item.ContactInfo,
		&item.ImageURL,
		&item.Color,
		&item.FoundDate,
		&item.Status,
		&item.CreatedAt,
		&item.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListOpen(ctx context.Context) ([]domain.ItemListing, error) {
	const query = `
        SELECT i.id, i.user_id, i.title, i.description, i.category, i.location_id, i.location_text,
               i.type, i.contact_info, i.image_url, i.color, i.found_date, i.status, i.created_at, i.resolved_at,
               u.name, u.email, l.name
        FROM items i
        JOIN users u ON i.user_id = u.id
        LEFT JOIN locations l ON i.location_id = l.id
        WHERE i.status = 'Open'
        ORDER BY i.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItemListings(rows)
}

func (r *itemRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.LocationID,
			&item.LocationText,
			&item.Type,
			&item.ContactInfo,
			&item.ImageURL,
			&item.Color,
			&item.FoundDate,
			&item.Status,
			&item.CreatedAt,
			&item.ResolvedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *itemRepository) ListAll(ctx context.Context) ([]domain.ItemListing, error) {
	const query = `
        SELECT i.id, i.user_id, i.title, i.description, i.category, i.location_id, i.location_text,
               i.type, i.contact_info, i.image_url, i.color, i.found_date, i.status, i.created_at, i.resolved_at,
               u.name, u.email, l.name
        FROM items i
        LEFT JOIN users u ON i.user_id = u.id
        LEFT JOIN locations l ON i.location_id = l.id
        ORDER BY i.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItemListings(rows)
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) Resolve(ctx context.Context, id string) error {
	const query = `UPDATE items SET status='Resolved', resolved_at=NOW() WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanItemListings(rows pgx.Rows) ([]domain.ItemListing, error) {
	var result []domain.ItemListing
	for rows.Next() {
		var listing domain.ItemListing
		if err := rows.Scan(
			&listing.ID,
			&listing.UserID,
			&listing.Title,
			&listing.Description,
			&listing.Category,
			&listing.LocationID,
			&listing.LocationText,
			&listing.Type,
			&listing.ContactInfo,
			&listing.ImageURL,
			&listing.Color,
			&listing.FoundDate,
			&listing.Status,
			&listing.CreatedAt,
			&listing.ResolvedAt,
			&listing.ReporterName,
			&listing.ReporterEmail,
			&listing.LocationName,
		); err != nil {
			return nil, err
		}
		result = append(result, listing)
	}
	return result, rows.Err()
}
