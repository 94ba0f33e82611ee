package admin

import "time"

type MonthBucket struct {
	Month  string  `json:"month"`
	Total  float64 `json:"total"`
	Height float64 `json:"height"`
}

type RevenueStatsResponse struct {
	Lifetime         float64       `json:"lifetime"`
	PendingClearance float64       `json:"pendingClearance"`
	AvailablePayout  float64       `json:"availablePayout"`
	Chart            []MonthBucket `json:"chart"`
}

type Notification struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Desc  string    `json:"desc"`
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
}
