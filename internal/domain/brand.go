package domain

import "time"

// Brand represents a car manufacturer in the catalog.
type Brand struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
