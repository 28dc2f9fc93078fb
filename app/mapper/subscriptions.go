package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-ski-station/app/dto"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/types"
)

// AddSubscriptionRequestToEntity assumes the request passed Validate;
// the date parse can no longer fail here.
func AddSubscriptionRequestToEntity(req *types.AddSubscriptionRequest) *entity.Subscription {
	startDate, _ := time.Parse(time.DateOnly, req.StartDate)
	subscriptionType, _ := entity.ParseSubscriptionType(req.Type)

	return &entity.Subscription{
		StartDate: startDate,
		Price:     req.Price,
		Type:      subscriptionType,
	}
}

func UpdateSubscriptionRequestToEntity(req *types.UpdateSubscriptionRequest) *entity.Subscription {
	startDate, _ := time.Parse(time.DateOnly, req.StartDate)
	endDate, _ := time.Parse(time.DateOnly, req.EndDate)
	subscriptionType, _ := entity.ParseSubscriptionType(req.Type)

	return &entity.Subscription{
		ID:        req.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Price:     req.Price,
		Type:      subscriptionType,
	}
}

func SubscriptionToResponse(item *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:        item.ID,
		StartDate: item.StartDate.Format(time.DateOnly),
		EndDate:   item.EndDate.Format(time.DateOnly),
		Price:     item.Price,
		Type:      string(item.Type),
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func SubscriptionsToResponse(items []*entity.Subscription) []dto.SubscriptionResponse {
	result := make([]dto.SubscriptionResponse, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionToResponse(item))
	}
	return result
}
