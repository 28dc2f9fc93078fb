package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/factory"
)

type skierRepository interface {
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID uint64) (*entity.Skier, error)
}

// ReportingService runs the periodic read-only reporting batches. It never
// mutates subscription records.
type ReportingService struct {
	subscriptionRepo subscriptionRepository
	skierRepo        skierRepository
	logger           logrus.FieldLogger
}

func NewReportingService(subscriptionRepo subscriptionRepository, skierRepo skierRepository) *ReportingService {
	return &ReportingService{
		subscriptionRepo: subscriptionRepo,
		skierRepo:        skierRepo,
		logger:           factory.NewModuleLogger("reporting-service"),
	}
}

// RunEndDateAuditBatch emits one line per subscription, ordered ascending
// by end date, with the owning skier resolved. A subscription with no
// skier is a data-integrity fault: it is logged as a warning and skipped
// so a single orphan cannot fail the whole batch.
func (s *ReportingService) RunEndDateAuditBatch(ctx context.Context) error {
	items, err := s.subscriptionRepo.FindDistinctOrderByEndDateAsc(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		skier, err := s.skierRepo.FindBySubscriptionID(ctx, item.ID)
		if err != nil {
			s.logger.WithError(err).WithField("subscription_id", item.ID).Warn("Skier lookup failed")
			continue
		}
		if skier == nil {
			s.logger.WithField("subscription_id", item.ID).Warn("Subscription has no skier assigned")
			continue
		}

		s.logger.WithFields(logrus.Fields{
			"subscription_id":  item.ID,
			"end_date":         item.EndDate.Format(time.DateOnly),
			"skier_first_name": skier.FirstName,
			"skier_last_name":  skier.LastName,
		}).Info("subscription_end_date_audit")
	}

	return nil
}

// ComputeMonthlyRecurringRevenue normalizes recurring revenue to a
// monthly-equivalent figure: semestriel income contributes a sixth and
// annual income a twelfth of its sum. A type with no subscriptions
// contributes zero.
func (s *ReportingService) ComputeMonthlyRecurringRevenue(ctx context.Context) (float64, error) {
	monthly, err := s.subscriptionRepo.SumPriceByType(ctx, entity.SubscriptionTypeMonthly)
	if err != nil {
		return 0, err
	}
	semestriel, err := s.subscriptionRepo.SumPriceByType(ctx, entity.SubscriptionTypeSemestriel)
	if err != nil {
		return 0, err
	}
	annual, err := s.subscriptionRepo.SumPriceByType(ctx, entity.SubscriptionTypeAnnual)
	if err != nil {
		return 0, err
	}

	return sumOrZero(monthly) + sumOrZero(semestriel)/6 + sumOrZero(annual)/12, nil
}

func (s *ReportingService) RunRevenueReportBatch(ctx context.Context) error {
	revenue, err := s.ComputeMonthlyRecurringRevenue(ctx)
	if err != nil {
		return err
	}

	s.logger.WithField("mrr", revenue).Info("monthly_recurring_revenue")
	return nil
}

func sumOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
