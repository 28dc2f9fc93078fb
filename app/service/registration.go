package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/repository"
)

type registrationRepository interface {
	Create(ctx context.Context, registration *entity.Registration) error
	Update(ctx context.Context, registration *entity.Registration) error
	FindByID(ctx context.Context, id uint64) (*entity.Registration, error)
	CountByWeekSkierAndCourse(ctx context.Context, numWeek int32, skierID, courseID uint64) (int64, error)
	NumWeeksByInstructorAndSupport(ctx context.Context, instructorID uint64, support entity.Support) ([]int32, error)
}

type courseRepository interface {
	FindByID(ctx context.Context, id uint64) (*entity.Course, error)
}

type RegistrationService struct {
	registrationRepo registrationRepository
	skierRepo        skierRepository
	courseRepo       courseRepository
}

func NewRegistrationService(
	registrationRepo registrationRepository,
	skierRepo skierRepository,
	courseRepo courseRepository,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		skierRepo:        skierRepo,
		courseRepo:       courseRepo,
	}
}

func (s *RegistrationService) AddRegistrationAndAssignToSkier(ctx context.Context, registration *entity.Registration, skierID uint64) (*entity.Registration, error) {
	exists, err := s.skierRepo.ExistsByID(ctx, skierID)
	if err != nil {
		return nil, fmt.Errorf("check skier: %w", err)
	}
	if !exists {
		return nil, ErrSkierNotFound
	}

	now := time.Now().UTC()
	registration.SkierID = &skierID
	registration.CreatedAt = now
	registration.UpdatedAt = now

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("save registration: %w", err)
	}
	return registration, nil
}

func (s *RegistrationService) AssignRegistrationToCourse(ctx context.Context, registrationID, courseID uint64) (*entity.Registration, error) {
	registration, err := s.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationNotFound
	}

	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	registration.CourseID = &course.ID
	registration.UpdatedAt = time.Now().UTC()

	if err := s.registrationRepo.Update(ctx, registration); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("update registration: %w", err)
	}
	return registration, nil
}

func (s *RegistrationService) AddRegistrationAndAssignToSkierAndCourse(ctx context.Context, registration *entity.Registration, skierID, courseID uint64) (*entity.Registration, error) {
	skierExists, err := s.skierRepo.ExistsByID(ctx, skierID)
	if err != nil {
		return nil, fmt.Errorf("check skier: %w", err)
	}
	if !skierExists {
		return nil, ErrSkierNotFound
	}

	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	count, err := s.registrationRepo.CountByWeekSkierAndCourse(ctx, registration.NumWeek, skierID, courseID)
	if err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if count > 0 {
		return nil, ErrRegistrationAlreadyExists
	}

	now := time.Now().UTC()
	registration.SkierID = &skierID
	registration.CourseID = &courseID
	registration.CreatedAt = now
	registration.UpdatedAt = now

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("save registration: %w", err)
	}
	return registration, nil
}

func (s *RegistrationService) NumWeeksCourseOfInstructorBySupport(ctx context.Context, instructorID uint64, support entity.Support) ([]int32, error) {
	weeks, err := s.registrationRepo.NumWeeksByInstructorAndSupport(ctx, instructorID, support)
	if err != nil {
		return nil, err
	}
	return weeks, nil
}
