package domain

import "time"

// Post is an "Insights" blog entry.
type Post struct {
	ID        uint
	Title     string
	Slug      string
	Body      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
