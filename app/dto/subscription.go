package dto

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SubscriptionResponse struct {
	ID        uint64  `json:"id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
	Type      string  `json:"type"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type SubscriptionEnvelopeResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
}

type ListSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}
