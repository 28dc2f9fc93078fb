package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

type SkierRepository struct {
	db DBTX
}

func NewSkierRepository(db DBTX) *SkierRepository {
	return &SkierRepository{db: db}
}

func (r *SkierRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	query := `SELECT 1 FROM skiers WHERE id = ?`

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

func (r *SkierRepository) FindBySubscriptionID(ctx context.Context, subscriptionID uint64) (*entity.Skier, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth, city, subscription_id, created_at, updated_at
		FROM skiers
		WHERE subscription_id = ?
		LIMIT 1
	`

	item := &entity.Skier{}
	var dateOfBirth sql.NullTime
	var subID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, subscriptionID).Scan(
		&item.ID,
		&item.FirstName,
		&item.LastName,
		&dateOfBirth,
		&item.City,
		&subID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if dateOfBirth.Valid {
		item.DateOfBirth = &dateOfBirth.Time
	}
	if subID.Valid {
		v := uint64(subID.Int64)
		item.SubscriptionID = &v
	}

	return item, nil
}
