package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/repository"
)

type subscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	FindByID(ctx context.Context, id uint64) (*entity.Subscription, error)
	FindByTypeOrderByStartDateAsc(ctx context.Context, subscriptionType entity.SubscriptionType) ([]*entity.Subscription, error)
	FindByStartDateBetween(ctx context.Context, from, to time.Time) ([]*entity.Subscription, error)
	FindDistinctOrderByEndDateAsc(ctx context.Context) ([]*entity.Subscription, error)
	SumPriceByType(ctx context.Context, subscriptionType entity.SubscriptionType) (*float64, error)
}

type SubscriptionService struct {
	subscriptionRepo subscriptionRepository
}

func NewSubscriptionService(subscriptionRepo subscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptionRepo: subscriptionRepo}
}

// AddSubscription derives the end date from the start date and the
// subscription type, then persists the record. Price positivity is
// validated at the HTTP boundary and is not re-checked here.
func (s *SubscriptionService) AddSubscription(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	if subscription.StartDate.IsZero() {
		return nil, ErrStartDateRequired
	}
	if subscription.Type == "" {
		return nil, ErrTypeRequired
	}

	switch subscription.Type {
	case entity.SubscriptionTypeMonthly:
		subscription.EndDate = subscription.StartDate.AddDate(0, 1, 0)
	case entity.SubscriptionTypeSemestriel:
		subscription.EndDate = subscription.StartDate.AddDate(0, 6, 0)
	case entity.SubscriptionTypeAnnual:
		subscription.EndDate = subscription.StartDate.AddDate(1, 0, 0)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSubscriptionType, subscription.Type)
	}

	now := time.Now().UTC()
	subscription.CreatedAt = now
	subscription.UpdatedAt = now

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, fmt.Errorf("save subscription: %w", err)
	}

	return subscription, nil
}

// UpdateSubscription overwrites the stored record verbatim with the
// caller-supplied fields. The end date is NOT re-derived on update; the
// caller owns the consistency of start date, end date and type here.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	exists, err := s.subscriptionRepo.ExistsByID(ctx, subscription.ID)
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}
	if !exists {
		return nil, ErrSubscriptionNotFound
	}

	subscription.UpdatedAt = time.Now().UTC()
	if err := s.subscriptionRepo.Update(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("update subscription: %w", err)
	}

	return subscription, nil
}

func (s *SubscriptionService) GetSubscription(ctx context.Context, id uint64) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return subscription, nil
}

func (s *SubscriptionService) GetSubscriptionsByType(ctx context.Context, subscriptionType entity.SubscriptionType) ([]*entity.Subscription, error) {
	items, err := s.subscriptionRepo.FindByTypeOrderByStartDateAsc(ctx, subscriptionType)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetSubscriptionsByDates returns subscriptions whose start date falls in
// the inclusive range [from, to]. An inverted range yields an empty slice.
func (s *SubscriptionService) GetSubscriptionsByDates(ctx context.Context, from, to time.Time) ([]*entity.Subscription, error) {
	if from.After(to) {
		return []*entity.Subscription{}, nil
	}

	items, err := s.subscriptionRepo.FindByStartDateBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return items, nil
}
