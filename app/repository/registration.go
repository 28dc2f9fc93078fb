package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

var ErrRegistrationNotFound = errors.New("registration not found")

type RegistrationRepository struct {
	db DBTX
}

func NewRegistrationRepository(db DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	query := `
		INSERT INTO registrations (num_week, skier_id, course_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		registration.NumWeek,
		nullableUint64Value(registration.SkierID),
		nullableUint64Value(registration.CourseID),
		registration.CreatedAt,
		registration.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	registration.ID = uint64(id)
	return nil
}

func (r *RegistrationRepository) Update(ctx context.Context, registration *entity.Registration) error {
	query := `
		UPDATE registrations
		SET num_week = ?, skier_id = ?, course_id = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		registration.NumWeek,
		nullableUint64Value(registration.SkierID),
		nullableUint64Value(registration.CourseID),
		registration.UpdatedAt,
		registration.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uint64) (*entity.Registration, error) {
	query := `
		SELECT id, num_week, skier_id, course_id, created_at, updated_at
		FROM registrations
		WHERE id = ?
	`

	item := &entity.Registration{}
	var skierID sql.NullInt64
	var courseID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.NumWeek,
		&skierID,
		&courseID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if skierID.Valid {
		v := uint64(skierID.Int64)
		item.SkierID = &v
	}
	if courseID.Valid {
		v := uint64(courseID.Int64)
		item.CourseID = &v
	}

	return item, nil
}

func (r *RegistrationRepository) CountByWeekSkierAndCourse(ctx context.Context, numWeek int32, skierID, courseID uint64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM registrations
		WHERE num_week = ? AND skier_id = ? AND course_id = ?
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, numWeek, skierID, courseID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RegistrationRepository) NumWeeksByInstructorAndSupport(ctx context.Context, instructorID uint64, support entity.Support) ([]int32, error) {
	query := `
		SELECT DISTINCT r.num_week
		FROM registrations r
		JOIN courses c ON c.id = r.course_id
		WHERE c.instructor_id = ? AND c.support = ?
		ORDER BY r.num_week ASC
	`

	rows, err := r.db.QueryContext(ctx, query, instructorID, string(support))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := make([]int32, 0)
	for rows.Next() {
		var week int32
		if err := rows.Scan(&week); err != nil {
			return nil, err
		}
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weeks, nil
}
