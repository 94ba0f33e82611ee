package domain

import (
	"strings"
	"time"
)

type Product struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	Category    string
	Tags        []string
	FileURL     string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
