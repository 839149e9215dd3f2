package service

import (
	"context"

	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/repository"
)

// AdminService exposes the read-only aggregation views for the admin console.
type AdminService struct {
	stats  repository.StatsRepository
	items  repository.ItemRepository
	claims repository.ClaimRepository
	users  repository.UserRepository
}

// AdminDependencies bundles repositories for admin service.
type AdminDependencies struct {
	StatsRepo repository.StatsRepository
	ItemRepo  repository.ItemRepository
	ClaimRepo repository.ClaimRepository
	UserRepo  repository.UserRepository
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		stats:  deps.StatsRepo,
		items:  deps.ItemRepo,
		claims: deps.ClaimRepo,
		users:  deps.UserRepo,
	}
}

// Stats returns the dashboard counters.
func (s *AdminService) Stats(ctx context.Context) (*repository.StatsSummary, error) {
	return s.stats.Summary(ctx)
}

// ListItems returns all items with reporter and location names, newest first.
func (s *AdminService) ListItems(ctx context.Context) ([]domain.ItemListing, error) {
	return s.items.ListAll(ctx)
}

// ListClaims returns all claims joined with claimant and item data, newest first.
func (s *AdminService) ListClaims(ctx context.Context) ([]domain.ClaimListing, error) {
	return s.claims.ListAll(ctx)
}

// ListUsers returns all users, newest first. Password hashes never leave the
// handler layer.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}
