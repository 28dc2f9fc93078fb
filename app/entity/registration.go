package entity

import "time"

type Registration struct {
	ID        uint64
	NumWeek   int32
	SkierID   *uint64
	CourseID  *uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}
