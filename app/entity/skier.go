package entity

import "time"

type Skier struct {
	ID             uint64
	FirstName      string
	LastName       string
	DateOfBirth    *time.Time
	City           string
	SubscriptionID *uint64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
