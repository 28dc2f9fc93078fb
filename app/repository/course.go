package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

type CourseRepository struct {
	db DBTX
}

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint64) (*entity.Course, error) {
	query := `
		SELECT id, level, type_course, support, price, time_slot, instructor_id, created_at, updated_at
		FROM courses
		WHERE id = ?
	`

	item := &entity.Course{}
	var support string
	var instructorID sql.NullInt64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Level,
		&item.TypeCourse,
		&support,
		&item.Price,
		&item.TimeSlot,
		&instructorID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	item.Support = entity.Support(support)
	if instructorID.Valid {
		v := uint64(instructorID.Int64)
		item.InstructorID = &v
	}

	return item, nil
}
