package models

// Task is one schedule entry owned by exactly one user. Date, Time, and Notes
// are optional; nil means the column is NULL (empty form fields are never
// stored as empty strings).
type Task struct {
	ID     int
	UserID int
	Title  string
	Date   *string
	Time   *string
	Notes  *string
}
