package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

// ClaimRepository encapsulates claim persistence. Approve and Reject run the
// terminal state transition in a single transaction with the claim row locked,
// so a claim reaches a terminal status at most once even under concurrent
// approve/reject calls.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, id string) (*domain.Claim, error)
	ListForItem(ctx context.Context, itemID string) ([]domain.ClaimListing, error)
	ListAll(ctx context.Context) ([]domain.ClaimListing, error)
	// Approve transitions a Pending claim to Approved and its item to
	// Resolved. The returned flag reports whether this call performed the
	// transition; a claim already in a terminal state is returned unchanged.
	Approve(ctx context.Context, claimID string) (*domain.Claim, bool, error)
	// Reject transitions a Pending claim to Rejected. The item is untouched.
	Reject(ctx context.Context, claimID string) (*domain.Claim, bool, error)
}

type claimRepository struct {
	pool *pgxpool.Pool
}

// NewClaimRepository instantiates repository.
func NewClaimRepository(pool *pgxpool.Pool) ClaimRepository {
	return &claimRepository{pool: pool}
}

const claimColumns = `id, item_id, claimant_user_id, message, proof_image, status, created_at, resolved_at`

func (r *claimRepository) Create(ctx context.Context, claim *domain.Claim) error {
	const query = `
        INSERT INTO claims (item_id, claimant_user_id, message, proof_image)
        VALUES ($1,$2,$3,$4)
        RETURNING id, status, created_at`
	return r.pool.QueryRow(ctx, query,
		claim.ItemID,
		claim.ClaimantID,
		claim.Message,
		claim.ProofImage,
	).Scan(&claim.ID, &claim.Status, &claim.CreatedAt)
}

func (r *claimRepository) GetByID(ctx context.Context, id string) (*domain.Claim, error) {
	const query = `SELECT ` + claimColumns + ` FROM claims WHERE id=$1`
	var claim domain.Claim
	if err := scanClaim(r.pool.QueryRow(ctx, query, id), &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) Approve(ctx context.Context, claimID string) (*domain.Claim, bool, error) {
	return r.resolve(ctx, claimID, domain.ClaimStatusApproved)
}

func (r *claimRepository) Reject(ctx context.Context, claimID string) (*domain.Claim, bool, error) {
	return r.resolve(ctx, claimID, domain.ClaimStatusRejected)
}

func (r *claimRepository) resolve(ctx context.Context, claimID string, target domain.ClaimStatus) (*domain.Claim, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const lockQuery = `SELECT ` + claimColumns + ` FROM claims WHERE id=$1 FOR UPDATE`
	var claim domain.Claim
	if err := scanClaim(tx.QueryRow(ctx, lockQuery, claimID), &claim); err != nil {
		return nil, false, err
	}

	if claim.Status != domain.ClaimStatusPending {
		// Terminal already; report the existing state without re-writing.
		return &claim, false, tx.Commit(ctx)
	}

	const updateClaim = `UPDATE claims SET status=$1, resolved_at=NOW() WHERE id=$2 RETURNING resolved_at`
	if err := tx.QueryRow(ctx, updateClaim, target, claimID).Scan(&claim.ResolvedAt); err != nil {
		return nil, false, err
	}
	claim.Status = target

	if target == domain.ClaimStatusApproved {
		const updateItem = `UPDATE items SET status='Resolved', resolved_at=NOW() WHERE id=$1`
		cmd, err := tx.Exec(ctx, updateItem, claim.ItemID)
		if err != nil {
			return nil, false, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, false, fmt.Errorf("claim %s references missing item %s: %w", claimID, claim.ItemID, pgx.ErrNoRows)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return &claim, true, nil
}

func (r *claimRepository) ListForItem(ctx context.Context, itemID string) ([]domain.ClaimListing, error) {
	const query = `
        SELECT c.id, c.item_id, c.claimant_user_id, c.message, c.proof_image, c.status, c.created_at, c.resolved_at,
               u.name, u.email
        FROM claims c
        JOIN users u ON c.claimant_user_id = u.id
        WHERE c.item_id = $1
        ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClaimListing
	for rows.Next() {
		var listing domain.ClaimListing
		if err := rows.Scan(
			&listing.ID,
			&listing.ItemID,
			&listing.ClaimantID,
			&listing.Message,
			&listing.ProofImage,
			&listing.Status,
			&listing.CreatedAt,
			&listing.ResolvedAt,
			&listing.ClaimantName,
			&listing.ClaimantEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, listing)
	}
	return result, rows.Err()
}

func (r *claimRepository) ListAll(ctx context.Context) ([]domain.ClaimListing, error) {
	const query = `
        SELECT c.id, c.item_id, c.claimant_user_id, c.message, c.proof_image, c.status, c.created_at, c.resolved_at,
               u.name, u.email, i.title, i.type, owner.name
        FROM claims c
        JOIN users u ON c.claimant_user_id = u.id
        JOIN items i ON c.item_id = i.id
        JOIN users owner ON i.user_id = owner.id
        ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClaimListing
	for rows.Next() {
		var listing domain.ClaimListing
		if err := rows.Scan(
			&listing.ID,
			&listing.ItemID,
			&listing.ClaimantID,
			&listing.Message,
			&listing.ProofImage,
			&listing.Status,
			&listing.CreatedAt,
			&listing.ResolvedAt,
			&listing.ClaimantName,
			&listing.ClaimantEmail,
			&listing.ItemTitle,
			&listing.ItemType,
			&listing.ItemOwnerName,
		); err != nil {
			return nil, err
		}
		result = append(result, listing)
	}
	return result, rows.Err()
}

func scanClaim(row pgx.Row, claim *domain.Claim) error {
	return row.Scan(
		&claim.ID,
		&claim.ItemID,
		&claim.ClaimantID,
		&claim.Message,
		&claim.ProofImage,
		&claim.Status,
		&claim.CreatedAt,
		&claim.ResolvedAt,
	)
}
