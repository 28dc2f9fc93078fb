package service

import "errors"

var (
	ErrSubscriptionNotFound        = errors.New("subscription not found")
	ErrStartDateRequired           = errors.New("start date required")
	ErrTypeRequired                = errors.New("type required")
	ErrUnsupportedSubscriptionType = errors.New("unsupported subscription type")
	ErrSkierNotFound               = errors.New("skier not found")
	ErrCourseNotFound              = errors.New("course not found")
	ErrRegistrationNotFound        = errors.New("registration not found")
	ErrRegistrationAlreadyExists   = errors.New("registration already exists for this week, skier and course")
)
