package domain

import "time"

// ItemType distinguishes lost postings from found postings.
type ItemType string

const (
	ItemTypeLost  ItemType = "Lost"
	ItemTypeFound ItemType = "Found"
)

// ItemStatus enumerates posting lifecycle states. Resolved is terminal and
// is reached either through an approved claim or an owner-initiated resolve.
type ItemStatus string

const (
	ItemStatusOpen     ItemStatus = "Open"
	ItemStatusResolved ItemStatus = "Resolved"
)

// Item is a lost-or-found posting.
type Item struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	Category     string
	LocationID   *string
	LocationText string
	Type         ItemType
	ContactInfo  string
	ImageURL     *string
	Color        *string
	FoundDate    *time.Time
	Status       ItemStatus
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

// ItemListing is an item joined with its reporter and location names for
// browse and admin views.
type ItemListing struct {
	Item
	ReporterName  string
	ReporterEmail string
	LocationName  *string
}
