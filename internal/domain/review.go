package domain

import "time"

type Review struct {
	ID        uint
	ProductID uint
	UserID    uint
	Rating    int
	Body      string
	Approved  bool
	CreatedAt time.Time
}
