package models

// Venue is a shared location record. Venues are globally visible and carry no
// owner.
type Venue struct {
	ID       int
	Name     string
	Location string
}
