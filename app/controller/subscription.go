package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-ski-station/app/dto"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/factory"
	"github.com/vibast-solutions/ms-go-ski-station/app/mapper"
	"github.com/vibast-solutions/ms-go-ski-station/app/service"
	"github.com/vibast-solutions/ms-go-ski-station/app/types"
)

type SubscriptionController struct {
	subscriptionService *service.SubscriptionService
	logger              logrus.FieldLogger
}

func NewSubscriptionController(subscriptionService *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		logger:              factory.NewModuleLogger("subscriptions-controller"),
	}
}

func (c *SubscriptionController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

func (c *SubscriptionController) AddSubscription(ctx echo.Context) error {
	req, err := types.NewAddSubscriptionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.subscriptionService.AddSubscription(ctx.Request().Context(), mapper.AddSubscriptionRequestToEntity(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStartDateRequired),
			errors.Is(err, service.ErrTypeRequired),
			errors.Is(err, service.ErrUnsupportedSubscriptionType):
			return c.writeError(ctx, http.StatusBadRequest, err.Error())
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Add subscription failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusCreated, &dto.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToResponse(item),
	})
}

func (c *SubscriptionController) GetSubscription(ctx echo.Context) error {
	req, err := types.NewGetSubscriptionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.subscriptionService.GetSubscription(ctx.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "subscription not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Get subscription failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToResponse(item),
	})
}

func (c *SubscriptionController) UpdateSubscription(ctx echo.Context) error {
	req, err := types.NewUpdateSubscriptionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.subscriptionService.UpdateSubscription(ctx.Request().Context(), mapper.UpdateSubscriptionRequestToEntity(req))
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "subscription not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Update subscription failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.SubscriptionEnvelopeResponse{
		Subscription: mapper.SubscriptionToResponse(item),
	})
}

func (c *SubscriptionController) ListSubscriptionsByType(ctx echo.Context) error {
	req, err := types.NewListSubscriptionsByTypeRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscriptionType, _ := entity.ParseSubscriptionType(req.Type)
	items, err := c.subscriptionService.GetSubscriptionsByType(ctx.Request().Context(), subscriptionType)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List subscriptions by type failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListSubscriptionsResponse{
		Subscriptions: mapper.SubscriptionsToResponse(items),
	})
}

func (c *SubscriptionController) ListSubscriptionsByDates(ctx echo.Context) error {
	req, err := types.NewListSubscriptionsByDatesRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	from, _ := time.Parse(time.DateOnly, req.From)
	to, _ := time.Parse(time.DateOnly, req.To)
	items, err := c.subscriptionService.GetSubscriptionsByDates(ctx.Request().Context(), from, to)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List subscriptions by dates failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListSubscriptionsResponse{
		Subscriptions: mapper.SubscriptionsToResponse(items),
	})
}

func (c *SubscriptionController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
