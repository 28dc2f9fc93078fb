package entity

import "time"

type Support string

const (
	SupportSki       Support = "SKI"
	SupportSnowboard Support = "SNOWBOARD"
)

func ParseSupport(value string) (Support, bool) {
	switch Support(value) {
	case SupportSki, SupportSnowboard:
		return Support(value), true
	default:
		return "", false
	}
}

type Course struct {
	ID           uint64
	Level        int32
	TypeCourse   string
	Support      Support
	Price        float64
	TimeSlot     int32
	InstructorID *uint64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
