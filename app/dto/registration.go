package dto

type RegistrationResponse struct {
	ID        uint64  `json:"id"`
	NumWeek   int32   `json:"num_week"`
	SkierID   *uint64 `json:"skier_id,omitempty"`
	CourseID  *uint64 `json:"course_id,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type RegistrationEnvelopeResponse struct {
	Registration RegistrationResponse `json:"registration"`
}

type NumWeeksResponse struct {
	NumWeeks []int32 `json:"num_weeks"`
}
