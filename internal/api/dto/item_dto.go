package dto

import (
	"time"

	"github.com/spitlabs/lostfound-service/internal/domain"
)

const dateLayout = "2006-01-02"

// CreateItemRequest payload for new postings.
type CreateItemRequest struct {
	UserID       string  `json:"user_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	LocationID   *string `json:"location_id"`
	LocationText string  `json:"location_text"`
	Type         string  `json:"type"`
	ContactInfo  string  `json:"contact_info"`
	ImageURL     *string `json:"image_url"`
	Color        *string `json:"color"`
	FoundDate    string  `json:"found_date"`
}

// ParseFoundDate interprets the optional found_date field.
func (r CreateItemRequest) ParseFoundDate() (*time.Time, error) {
	if r.FoundDate == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, r.FoundDate)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ItemView is the posting projection returned to clients.
type ItemView struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	LocationID   *string    `json:"location_id,omitempty"`
	LocationText string     `json:"location_text"`
	Type         string     `json:"type"`
	ContactInfo  string     `json:"contact_info"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Color        *string    `json:"color,omitempty"`
	FoundDate    string     `json:"found_date,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

// ItemListingView extends ItemView with the joined reporter/location names.
type ItemListingView struct {
	ItemView
	ReporterName string  `json:"reporter_name"`
	UserEmail    string  `json:"user_email,omitempty"`
	LocationName *string `json:"location_name"`
}

// NewItemView maps a domain item.
func NewItemView(item domain.Item) ItemView {
	view := ItemView{
		ID:           item.ID,
		UserID:       item.UserID,
		Title:        item.Title,
		Description:  item.Description,
		Category:     item.Category,
		LocationID:   item.LocationID,
		LocationText: item.LocationText,
		Type:         string(item.Type),
		ContactInfo:  item.ContactInfo,
		ImageURL:     item.ImageURL,
		Color:        item.Color,
		Status:       string(item.Status),
		CreatedAt:    item.CreatedAt,
		ResolvedAt:   item.ResolvedAt,
	}
	if item.FoundDate != nil {
		view.FoundDate = item.FoundDate.Format(dateLayout)
	}
	return view
}

// NewItemListingView maps a joined item listing.
func NewItemListingView(listing domain.ItemListing) ItemListingView {
	return ItemListingView{
		ItemView:     NewItemView(listing.Item),
		ReporterName: listing.ReporterName,
		UserEmail:    listing.ReporterEmail,
		LocationName: listing.LocationName,
	}
}

// LocationView is the reference list projection.
type LocationView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// NewLocationView maps a location.
func NewLocationView(loc domain.Location) LocationView {
	return LocationView{ID: loc.ID, Name: loc.Name, DisplayOrder: loc.DisplayOrder}
}
