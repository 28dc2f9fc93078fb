package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

var (
	ErrSubscriptionNotFound      = errors.New("subscription not found")
	ErrSubscriptionAlreadyExists = errors.New("subscription already exists")
)

type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (start_date, end_date, price, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		subscription.StartDate,
		subscription.EndDate,
		subscription.Price,
		string(subscription.Type),
		subscription.CreatedAt,
		subscription.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrSubscriptionAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	subscription.ID = uint64(id)
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	query := `
		UPDATE subscriptions
		SET start_date = ?, end_date = ?, price = ?, type = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		subscription.StartDate,
		subscription.EndDate,
		subscription.Price,
		string(subscription.Type),
		subscription.UpdatedAt,
		subscription.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

func (r *SubscriptionRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	query := `SELECT 1 FROM subscriptions WHERE id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uint64) (*entity.Subscription, error) {
	query := `
		SELECT id, start_date, end_date, price, type, created_at, updated_at
		FROM subscriptions
		WHERE id = ?
	`

	item := &entity.Subscription{}
	if err := scanSubscription(
		r.db.QueryRowContext(ctx, query, id),
		item,
	); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

// FindByTypeOrderByStartDateAsc returns every subscription of the given type.
// Ordering by start_date with an id tiebreak is part of the contract.
func (r *SubscriptionRepository) FindByTypeOrderByStartDateAsc(ctx context.Context, subscriptionType entity.SubscriptionType) ([]*entity.Subscription, error) {
	query := `
		SELECT id, start_date, end_date, price, type, created_at, updated_at
		FROM subscriptions
		WHERE type = ?
		ORDER BY start_date ASC, id ASC
	`

	return r.listByQuery(ctx, query, string(subscriptionType))
}

func (r *SubscriptionRepository) FindByStartDateBetween(ctx context.Context, from, to time.Time) ([]*entity.Subscription, error) {
	query := `
		SELECT id, start_date, end_date, price, type, created_at, updated_at
		FROM subscriptions
		WHERE start_date BETWEEN ? AND ?
		ORDER BY id ASC
	`

	return r.listByQuery(ctx, query, from, to)
}

func (r *SubscriptionRepository) FindDistinctOrderByEndDateAsc(ctx context.Context) ([]*entity.Subscription, error) {
	query := `
		SELECT DISTINCT id, start_date, end_date, price, type, created_at, updated_at
		FROM subscriptions
		ORDER BY end_date ASC
	`

	return r.listByQuery(ctx, query)
}

// SumPriceByType returns nil when no subscription of the type exists,
// mirroring SQL SUM over an empty set.
func (r *SubscriptionRepository) SumPriceByType(ctx context.Context, subscriptionType entity.SubscriptionType) (*float64, error) {
	query := `SELECT SUM(price) FROM subscriptions WHERE type = ?`

	var sum sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, string(subscriptionType)).Scan(&sum); err != nil {
		return nil, err
	}
	if !sum.Valid {
		return nil, nil
	}
	return &sum.Float64, nil
}

func (r *SubscriptionRepository) listByQuery(ctx context.Context, query string, args ...interface{}) ([]*entity.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Subscription, 0)
	for rows.Next() {
		item := &entity.Subscription{}
		if err := scanSubscription(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubscription(scanner rowScanner, item *entity.Subscription) error {
	var subscriptionType string

	err := scanner.Scan(
		&item.ID,
		&item.StartDate,
		&item.EndDate,
		&item.Price,
		&subscriptionType,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	item.Type = entity.SubscriptionType(subscriptionType)
	return nil
}
