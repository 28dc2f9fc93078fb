package types

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

type AddSubscriptionRequest struct {
	StartDate string  `json:"start_date"`
	Price     float64 `json:"price"`
	Type      string  `json:"type"`
}

func NewAddSubscriptionRequestFromContext(ctx echo.Context) (*AddSubscriptionRequest, error) {
	var body AddSubscriptionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.StartDate = strings.TrimSpace(body.StartDate)
	body.Type = strings.TrimSpace(body.Type)
	return &body, nil
}

func (r *AddSubscriptionRequest) Validate() error {
	if r.StartDate == "" {
		return errors.New("start_date is required")
	}
	if _, err := time.Parse(time.DateOnly, r.StartDate); err != nil {
		return errors.New("start_date must be formatted as YYYY-MM-DD")
	}
	if r.Price <= 0 {
		return errors.New("price must be positive")
	}
	if _, ok := entity.ParseSubscriptionType(r.Type); !ok {
		return errors.New("type must be one of MONTHLY, SEMESTRIEL, ANNUAL")
	}
	return nil
}

type UpdateSubscriptionRequest struct {
	ID        uint64  `json:"-"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Price     float64 `json:"price"`
	Type      string  `json:"type"`
}

func NewUpdateSubscriptionRequestFromContext(ctx echo.Context) (*UpdateSubscriptionRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body UpdateSubscriptionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = id
	body.StartDate = strings.TrimSpace(body.StartDate)
	body.EndDate = strings.TrimSpace(body.EndDate)
	body.Type = strings.TrimSpace(body.Type)
	return &body, nil
}

// Validate requires the full record: update is a verbatim overwrite, the
// supplied end_date is stored as-is and never re-derived.
func (r *UpdateSubscriptionRequest) Validate() error {
	if r.ID == 0 {
		return errors.New("invalid subscription id")
	}
	if r.StartDate == "" {
		return errors.New("start_date is required")
	}
	if _, err := time.Parse(time.DateOnly, r.StartDate); err != nil {
		return errors.New("start_date must be formatted as YYYY-MM-DD")
	}
	if r.EndDate == "" {
		return errors.New("end_date is required")
	}
	if _, err := time.Parse(time.DateOnly, r.EndDate); err != nil {
		return errors.New("end_date must be formatted as YYYY-MM-DD")
	}
	if r.Price <= 0 {
		return errors.New("price must be positive")
	}
	if _, ok := entity.ParseSubscriptionType(r.Type); !ok {
		return errors.New("type must be one of MONTHLY, SEMESTRIEL, ANNUAL")
	}
	return nil
}

type GetSubscriptionRequest struct {
	ID uint64
}

func NewGetSubscriptionRequestFromContext(ctx echo.Context) (*GetSubscriptionRequest, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	return &GetSubscriptionRequest{ID: id}, nil
}

func (r *GetSubscriptionRequest) Validate() error {
	if r.ID == 0 {
		return errors.New("invalid subscription id")
	}
	return nil
}

type ListSubscriptionsByTypeRequest struct {
	Type string
}

func NewListSubscriptionsByTypeRequestFromContext(ctx echo.Context) (*ListSubscriptionsByTypeRequest, error) {
	return &ListSubscriptionsByTypeRequest{Type: strings.TrimSpace(ctx.Param("type"))}, nil
}

func (r *ListSubscriptionsByTypeRequest) Validate() error {
	if _, ok := entity.ParseSubscriptionType(r.Type); !ok {
		return errors.New("type must be one of MONTHLY, SEMESTRIEL, ANNUAL")
	}
	return nil
}

type ListSubscriptionsByDatesRequest struct {
	From string
	To   string
}

func NewListSubscriptionsByDatesRequestFromContext(ctx echo.Context) (*ListSubscriptionsByDatesRequest, error) {
	return &ListSubscriptionsByDatesRequest{
		From: strings.TrimSpace(ctx.Param("from")),
		To:   strings.TrimSpace(ctx.Param("to")),
	}, nil
}

// Validate does not reject an inverted range: from > to is served as an
// empty result by the engine.
func (r *ListSubscriptionsByDatesRequest) Validate() error {
	if _, err := time.Parse(time.DateOnly, r.From); err != nil {
		return errors.New("from must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(time.DateOnly, r.To); err != nil {
		return errors.New("to must be formatted as YYYY-MM-DD")
	}
	return nil
}
