package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-ski-station/app/dto"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/factory"
	"github.com/vibast-solutions/ms-go-ski-station/app/mapper"
	"github.com/vibast-solutions/ms-go-ski-station/app/service"
	"github.com/vibast-solutions/ms-go-ski-station/app/types"
)

type RegistrationController struct {
	registrationService *service.RegistrationService
	logger              logrus.FieldLogger
}

func NewRegistrationController(registrationService *service.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              factory.NewModuleLogger("registrations-controller"),
	}
}

func (c *RegistrationController) AddRegistrationAndAssignToSkier(ctx echo.Context) error {
	req, err := types.NewAddRegistrationRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	registration := &entity.Registration{NumWeek: req.NumWeek}
	item, err := c.registrationService.AddRegistrationAndAssignToSkier(ctx.Request().Context(), registration, req.SkierID)
	if err != nil {
		if errors.Is(err, service.ErrSkierNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "skier not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Add registration failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, &dto.RegistrationEnvelopeResponse{
		Registration: mapper.RegistrationToResponse(item),
	})
}

func (c *RegistrationController) AssignRegistrationToCourse(ctx echo.Context) error {
	req, err := types.NewAssignRegistrationToCourseRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.registrationService.AssignRegistrationToCourse(ctx.Request().Context(), req.RegistrationID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return c.writeError(ctx, http.StatusNotFound, "registration not found")
		case errors.Is(err, service.ErrCourseNotFound):
			return c.writeError(ctx, http.StatusNotFound, "course not found")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Assign registration to course failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.RegistrationEnvelopeResponse{
		Registration: mapper.RegistrationToResponse(item),
	})
}

func (c *RegistrationController) AddRegistrationAndAssignToSkierAndCourse(ctx echo.Context) error {
	req, err := types.NewAddRegistrationToSkierAndCourseRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	registration := &entity.Registration{NumWeek: req.NumWeek}
	item, err := c.registrationService.AddRegistrationAndAssignToSkierAndCourse(ctx.Request().Context(), registration, req.SkierID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSkierNotFound):
			return c.writeError(ctx, http.StatusNotFound, "skier not found")
		case errors.Is(err, service.ErrCourseNotFound):
			return c.writeError(ctx, http.StatusNotFound, "course not found")
		case errors.Is(err, service.ErrRegistrationAlreadyExists):
			return c.writeError(ctx, http.StatusConflict, err.Error())
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Add registration with course failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusCreated, &dto.RegistrationEnvelopeResponse{
		Registration: mapper.RegistrationToResponse(item),
	})
}

func (c *RegistrationController) NumWeeksCourseOfInstructorBySupport(ctx echo.Context) error {
	req, err := types.NewNumWeeksRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	support, _ := entity.ParseSupport(req.Support)
	weeks, err := c.registrationService.NumWeeksCourseOfInstructorBySupport(ctx.Request().Context(), req.InstructorID, support)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Num weeks query failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.NumWeeksResponse{NumWeeks: weeks})
}

func (c *RegistrationController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
