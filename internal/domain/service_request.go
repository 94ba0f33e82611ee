package domain

import "time"

type ServiceRequest struct {
	ID        uint
	Name      string
	Email     string
	Subject   string
	Body      string
	Handled   bool
	CreatedAt time.Time
}
