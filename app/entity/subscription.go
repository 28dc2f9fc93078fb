package entity

import "time"

type SubscriptionType string

const (
	SubscriptionTypeMonthly    SubscriptionType = "MONTHLY"
	SubscriptionTypeSemestriel SubscriptionType = "SEMESTRIEL"
	SubscriptionTypeAnnual     SubscriptionType = "ANNUAL"
)

func ParseSubscriptionType(value string) (SubscriptionType, bool) {
	switch SubscriptionType(value) {
	case SubscriptionTypeMonthly, SubscriptionTypeSemestriel, SubscriptionTypeAnnual:
		return SubscriptionType(value), true
	default:
		return "", false
	}
}

type Subscription struct {
	ID        uint64
	StartDate time.Time
	EndDate   time.Time
	Price     float64
	Type      SubscriptionType
	CreatedAt time.Time
	UpdatedAt time.Time
}
