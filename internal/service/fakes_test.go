package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/repository"
)

// In-memory repository fakes backing the service tests. They mimic the
// Postgres implementations' error contract: pgx.ErrNoRows for missing rows
// and pgconn.PgError 23505 for unique violations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*domain.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) || existing.UCID == user.UCID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUCID(_ context.Context, ucid string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.UCID == ucid {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) TouchLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			now := time.Now()
			user.LastLogin = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		result = append(result, *r.users[i])
	}
	return result, nil
}

type fakeItemRepo struct {
	mu    sync.Mutex
	items []*domain.Item
	users *fakeUserRepo
	seq   int
}

func newFakeItemRepo(users *fakeUserRepo) *fakeItemRepo {
	return &fakeItemRepo{users: users}
}

func (r *fakeItemRepo) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	item.ID = fmt.Sprintf("item-%d", r.seq)
	item.Status = domain.ItemStatusOpen
	item.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *item
	r.items = append(r.items, &clone)
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.find(id)
	if item == nil {
		return nil, pgx.ErrNoRows
	}
	clone := *item
	return &clone, nil
}

func (r *fakeItemRepo) ListOpen(ctx context.Context) ([]domain.ItemListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ItemListing
	for i := len(r.items) - 1; i >= 0; i-- {
		item := r.items[i]
		if item.Status != domain.ItemStatusOpen {
			continue
		}
		result = append(result, r.listing(ctx, item))
	}
	return result, nil
}

func (r *fakeItemRepo) ListByOwner(_ context.Context, userID string) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Item
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID == userID {
			result = append(result, *r.items[i])
		}
	}
	return result, nil
}

func (r *fakeItemRepo) ListAll(ctx context.Context) ([]domain.ItemListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ItemListing
	for i := len(r.items) - 1; i >= 0; i-- {
		result = append(result, r.listing(ctx, r.items[i]))
	}
	return result, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeItemRepo) Resolve(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.find(id)
	if item == nil {
		return pgx.ErrNoRows
	}
	now := time.Now()
	item.Status = domain.ItemStatusResolved
	item.ResolvedAt = &now
	return nil
}

func (r *fakeItemRepo) find(id string) *domain.Item {
	for _, item := range r.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (r *fakeItemRepo) listing(ctx context.Context, item *domain.Item) domain.ItemListing {
	listing := domain.ItemListing{Item: *item}
	if r.users != nil {
		if user, err := r.users.GetByID(ctx, item.UserID); err == nil {
			listing.ReporterName = user.Name
			listing.ReporterEmail = user.Email
		}
	}
	return listing
}

type fakeClaimRepo struct {
	mu     sync.Mutex
	claims []*domain.Claim
	items  *fakeItemRepo
	users  *fakeUserRepo
	seq    int
}

func newFakeClaimRepo(items *fakeItemRepo, users *fakeUserRepo) *fakeClaimRepo {
	return &fakeClaimRepo{items: items, users: users}
}

func (r *fakeClaimRepo) Create(_ context.Context, claim *domain.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	claim.ID = fmt.Sprintf("claim-%d", r.seq)
	claim.Status = domain.ClaimStatusPending
	claim.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *claim
	r.claims = append(r.claims, &clone)
	return nil
}

func (r *fakeClaimRepo) GetByID(_ context.Context, id string) (*domain.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	claim := r.find(id)
	if claim == nil {
		return nil, pgx.ErrNoRows
	}
	clone := *claim
	return &clone, nil
}

func (r *fakeClaimRepo) Approve(ctx context.Context, claimID string) (*domain.Claim, bool, error) {
	r.mu.Lock()
	claim := r.find(claimID)
	if claim == nil {
		r.mu.Unlock()
		return nil, false, pgx.ErrNoRows
	}
	if claim.Status != domain.ClaimStatusPending {
		clone := *claim
		r.mu.Unlock()
		return &clone, false, nil
	}
	now := time.Now()
	claim.Status = domain.ClaimStatusApproved
	claim.ResolvedAt = &now
	clone := *claim
	r.mu.Unlock()

	if err := r.items.Resolve(ctx, claim.ItemID); err != nil {
		return nil, false, err
	}
	return &clone, true, nil
}

func (r *fakeClaimRepo) Reject(_ context.Context, claimID string) (*domain.Claim, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	claim := r.find(claimID)
	if claim == nil {
		return nil, false, pgx.ErrNoRows
	}
	if claim.Status != domain.ClaimStatusPending {
		clone := *claim
		return &clone, false, nil
	}
	now := time.Now()
	claim.Status = domain.ClaimStatusRejected
	claim.ResolvedAt = &now
	clone := *claim
	return &clone, true, nil
}

func (r *fakeClaimRepo) ListForItem(ctx context.Context, itemID string) ([]domain.ClaimListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ClaimListing
	for i := len(r.claims) - 1; i >= 0; i-- {
		if r.claims[i].ItemID == itemID {
			result = append(result, r.listing(ctx, r.claims[i]))
		}
	}
	return result, nil
}

func (r *fakeClaimRepo) ListAll(ctx context.Context) ([]domain.ClaimListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ClaimListing
	for i := len(r.claims) - 1; i >= 0; i-- {
		result = append(result, r.listing(ctx, r.claims[i]))
	}
	return result, nil
}

func (r *fakeClaimRepo) find(id string) *domain.Claim {
	for _, claim := range r.claims {
		if claim.ID == id {
			return claim
		}
	}
	return nil
}

func (r *fakeClaimRepo) listing(ctx context.Context, claim *domain.Claim) domain.ClaimListing {
	listing := domain.ClaimListing{Claim: *claim}
	if r.users != nil {
		if user, err := r.users.GetByID(ctx, claim.ClaimantID); err == nil {
			listing.ClaimantName = user.Name
			listing.ClaimantEmail = user.Email
		}
	}
	return listing
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = fmt.Sprintf("notification-%d", r.seq)
	notification.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *notification
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) ListForUser(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID {
			result = append(result, *r.notifications[i])
		}
	}
	return result, nil
}

// fakeStatsRepo derives the counters from the other fakes, so stats tests see
// the same state the services mutate.
type fakeStatsRepo struct {
	users  *fakeUserRepo
	items  *fakeItemRepo
	claims *fakeClaimRepo
}

func newFakeStatsRepo(users *fakeUserRepo, items *fakeItemRepo, claims *fakeClaimRepo) *fakeStatsRepo {
	return &fakeStatsRepo{users: users, items: items, claims: claims}
}

func (r *fakeStatsRepo) Summary(_ context.Context) (*repository.StatsSummary, error) {
	var summary repository.StatsSummary

	r.users.mu.Lock()
	summary.Users = int64(len(r.users.users))
	r.users.mu.Unlock()

	r.items.mu.Lock()
	for _, item := range r.items.items {
		summary.Items++
		if item.Type == domain.ItemTypeLost {
			summary.LostItems++
		}
		if item.Type == domain.ItemTypeFound {
			summary.FoundItems++
		}
		if item.Status == domain.ItemStatusOpen {
			summary.OpenItems++
		}
		if item.Status == domain.ItemStatusResolved {
			summary.ResolvedItems++
		}
	}
	r.items.mu.Unlock()

	r.claims.mu.Lock()
	for _, claim := range r.claims.claims {
		if claim.Status == domain.ClaimStatusPending {
			summary.PendingClaims++
		}
	}
	r.claims.mu.Unlock()

	return &summary, nil
}
