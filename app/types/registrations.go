package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

type AddRegistrationRequest struct {
	NumWeek int32  `json:"num_week"`
	SkierID uint64 `json:"-"`
}

func NewAddRegistrationRequestFromContext(ctx echo.Context) (*AddRegistrationRequest, error) {
	skierID, err := strconv.ParseUint(ctx.Param("skierId"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body AddRegistrationRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.SkierID = skierID
	return &body, nil
}

func (r *AddRegistrationRequest) Validate() error {
	if r.SkierID == 0 {
		return errors.New("invalid skier id")
	}
	if r.NumWeek < 1 || r.NumWeek > 52 {
		return errors.New("num_week must be between 1 and 52")
	}
	return nil
}

type AssignRegistrationToCourseRequest struct {
	RegistrationID uint64
	CourseID       uint64
}

func NewAssignRegistrationToCourseRequestFromContext(ctx echo.Context) (*AssignRegistrationToCourseRequest, error) {
	registrationID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &AssignRegistrationToCourseRequest{RegistrationID: registrationID, CourseID: courseID}, nil
}

func (r *AssignRegistrationToCourseRequest) Validate() error {
	if r.RegistrationID == 0 {
		return errors.New("invalid registration id")
	}
	if r.CourseID == 0 {
		return errors.New("invalid course id")
	}
	return nil
}

type AddRegistrationToSkierAndCourseRequest struct {
	NumWeek  int32  `json:"num_week"`
	SkierID  uint64 `json:"-"`
	CourseID uint64 `json:"-"`
}

func NewAddRegistrationToSkierAndCourseRequestFromContext(ctx echo.Context) (*AddRegistrationToSkierAndCourseRequest, error) {
	skierID, err := strconv.ParseUint(ctx.Param("skierId"), 10, 64)
	if err != nil {
		return nil, err
	}
	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body AddRegistrationToSkierAndCourseRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.SkierID = skierID
	body.CourseID = courseID
	return &body, nil
}

func (r *AddRegistrationToSkierAndCourseRequest) Validate() error {
	if r.SkierID == 0 {
		return errors.New("invalid skier id")
	}
	if r.CourseID == 0 {
		return errors.New("invalid course id")
	}
	if r.NumWeek < 1 || r.NumWeek > 52 {
		return errors.New("num_week must be between 1 and 52")
	}
	return nil
}

type NumWeeksRequest struct {
	InstructorID uint64
	Support      string
}

func NewNumWeeksRequestFromContext(ctx echo.Context) (*NumWeeksRequest, error) {
	instructorID, err := strconv.ParseUint(ctx.Param("instructorId"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &NumWeeksRequest{
		InstructorID: instructorID,
		Support:      strings.TrimSpace(ctx.Param("support")),
	}, nil
}

func (r *NumWeeksRequest) Validate() error {
	if r.InstructorID == 0 {
		return errors.New("invalid instructor id")
	}
	if _, ok := entity.ParseSupport(r.Support); !ok {
		return errors.New("support must be one of SKI, SNOWBOARD")
	}
	return nil
}
