package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-ski-station/app/dto"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

func RegistrationToResponse(item *entity.Registration) dto.RegistrationResponse {
	return dto.RegistrationResponse{
		ID:        item.ID,
		NumWeek:   item.NumWeek,
		SkierID:   item.SkierID,
		CourseID:  item.CourseID,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
