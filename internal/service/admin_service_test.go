package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

func TestAdminStatsTrackClaimLifecycle(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	adminService := NewAdminService(AdminDependencies{
		StatsRepo: newFakeStatsRepo(f.users, f.items, f.claims),
		ItemRepo:  f.items,
		ClaimRepo: f.claims,
		UserRepo:  f.users,
	})

	owner := f.addUser(t, "Finder", "finder@spit.ac.in", domain.RoleStudent)
	claimant := f.addUser(t, "Loser", "loser@spit.ac.in", domain.RoleStudent)
	found := f.addFoundItem(t, owner, "Laptop Sleeve")
	_, err := f.itemService.Create(ctx, claimant.ID, ItemCreateInput{
		Title:       "Laptop Sleeve",
		Type:        domain.ItemTypeLost,
		ContactInfo: "loser@spit.ac.in",
	})
	require.NoError(t, err)

	claim, err := f.claimService.Submit(ctx, claimant.ID, ClaimSubmitInput{ItemID: found.ID})
	require.NoError(t, err)

	before, err := adminService.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), before.Users)
	assert.Equal(t, int64(2), before.Items)
	assert.Equal(t, int64(1), before.LostItems)
	assert.Equal(t, int64(1), before.FoundItems)
	assert.Equal(t, int64(2), before.OpenItems)
	assert.Equal(t, int64(1), before.PendingClaims)
	assert.Equal(t, int64(0), before.ResolvedItems)

	_, err = f.claimService.Approve(ctx, owner, claim.ID)
	require.NoError(t, err)

	after, err := adminService.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), after.PendingClaims)
	assert.Equal(t, int64(1), after.OpenItems)
	assert.Equal(t, int64(1), after.ResolvedItems)
}

func TestAdminListingsJoinIdentity(t *testing.T) {
	f := newClaimFixture(t)
	ctx := context.Background()

	adminService := NewAdminService(AdminDependencies{
		StatsRepo: newFakeStatsRepo(f.users, f.items, f.claims),
		ItemRepo:  f.items,
		ClaimRepo: f.claims,
		UserRepo:  f.users,
	})

	owner := f.addUser(t, "Finder", "finder@spit.ac.in", domain.RoleStudent)
	claimant := f.addUser(t, "Loser", "loser@spit.ac.in", domain.RoleStudent)
	item := f.addFoundItem(t, owner, "Spectacles")
	_, err := f.claimService.Submit(ctx, claimant.ID, ClaimSubmitInput{ItemID: item.ID})
	require.NoError(t, err)

	items, err := adminService.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Finder", items[0].ReporterName)
	assert.Equal(t, "finder@spit.ac.in", items[0].ReporterEmail)

	claims, err := adminService.ListClaims(ctx)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "Loser", claims[0].ClaimantName)

	users, err := adminService.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Newest first.
	assert.Equal(t, claimant.ID, users[0].ID)
	assert.Equal(t, owner.ID, users[1].ID)
}
