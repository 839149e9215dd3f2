package domain

// Location is a campus location reference entry. The list is read-only from
// the application's perspective.
type Location struct {
	ID           string
	Name         string
	IsActive     bool
	DisplayOrder int
}
