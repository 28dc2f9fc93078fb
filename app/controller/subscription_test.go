package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/vibast-solutions/ms-go-ski-station/app/dto"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
	"github.com/vibast-solutions/ms-go-ski-station/app/service"
)

type controllerSubRepo struct {
	createFn     func(ctx context.Context, subscription *entity.Subscription) error
	updateFn     func(ctx context.Context, subscription *entity.Subscription) error
	existsByIDFn func(ctx context.Context, id uint64) (bool, error)
	findByIDFn   func(ctx context.Context, id uint64) (*entity.Subscription, error)
	findByTypeFn func(ctx context.Context, subscriptionType entity.SubscriptionType) ([]*entity.Subscription, error)
}

func (r *controllerSubRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	if r.createFn != nil {
		return r.createFn(ctx, subscription)
	}
	return nil
}

func (r *controllerSubRepo) Update(ctx context.Context, subscription *entity.Subscription) error {
	if r.updateFn != nil {
		return r.updateFn(ctx, subscription)
	}
	return nil
}

func (r *controllerSubRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	if r.existsByIDFn != nil {
		return r.existsByIDFn(ctx, id)
	}
	return false, nil
}

func (r *controllerSubRepo) FindByID(ctx context.Context, id uint64) (*entity.Subscription, error) {
	if r.findByIDFn != nil {
		return r.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (r *controllerSubRepo) FindByTypeOrderByStartDateAsc(ctx context.Context, subscriptionType entity.SubscriptionType) ([]*entity.Subscription, error) {
	if r.findByTypeFn != nil {
		return r.findByTypeFn(ctx, subscriptionType)
	}
	return nil, nil
}

func (r *controllerSubRepo) FindByStartDateBetween(context.Context, time.Time, time.Time) ([]*entity.Subscription, error) {
	return nil, nil
}

func (r *controllerSubRepo) FindDistinctOrderByEndDateAsc(context.Context) ([]*entity.Subscription, error) {
	return nil, nil
}

func (r *controllerSubRepo) SumPriceByType(context.Context, entity.SubscriptionType) (*float64, error) {
	return nil, nil
}

func newSubscriptionController(repo *controllerSubRepo) *SubscriptionController {
	return NewSubscriptionController(service.NewSubscriptionService(repo))
}

func performJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string, paramNames, paramValues []string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(paramNames) > 0 {
		c.SetParamNames(paramNames...)
		c.SetParamValues(paramValues...)
	}

	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestAddSubscriptionReturnsDerivedEndDate(t *testing.T) {
	repo := &controllerSubRepo{
		createFn: func(_ context.Context, subscription *entity.Subscription) error {
			subscription.ID = 3
			return nil
		},
	}
	ctrl := newSubscriptionController(repo)

	rec := performJSON(t, ctrl.AddSubscription, http.MethodPost, "/subscriptions",
		`{"start_date":"2024-01-15","price":50,"type":"MONTHLY"}`, nil, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SubscriptionEnvelopeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Subscription.ID != 3 {
		t.Fatalf("expected id 3, got %d", resp.Subscription.ID)
	}
	if resp.Subscription.EndDate != "2024-02-15" {
		t.Fatalf("expected end date 2024-02-15, got %s", resp.Subscription.EndDate)
	}
}

func TestAddSubscriptionRejectsNonPositivePrice(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{})

	rec := performJSON(t, ctrl.AddSubscription, http.MethodPost, "/subscriptions",
		`{"start_date":"2024-01-15","price":0,"type":"MONTHLY"}`, nil, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddSubscriptionRejectsMissingStartDate(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{})

	rec := performJSON(t, ctrl.AddSubscription, http.MethodPost, "/subscriptions",
		`{"price":50,"type":"MONTHLY"}`, nil, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetSubscriptionNotFound(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{})

	rec := performJSON(t, ctrl.GetSubscription, http.MethodGet, "/subscriptions/42", "",
		[]string{"id"}, []string{"42"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateSubscriptionNotFound(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{})

	rec := performJSON(t, ctrl.UpdateSubscription, http.MethodPut, "/subscriptions/42",
		`{"start_date":"2024-01-15","end_date":"2024-02-15","price":55,"type":"MONTHLY"}`,
		[]string{"id"}, []string{"42"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateSubscriptionStoresSuppliedEndDate(t *testing.T) {
	var stored *entity.Subscription
	repo := &controllerSubRepo{
		existsByIDFn: func(context.Context, uint64) (bool, error) { return true, nil },
		updateFn: func(_ context.Context, subscription *entity.Subscription) error {
			stored = subscription
			return nil
		},
	}
	ctrl := newSubscriptionController(repo)

	rec := performJSON(t, ctrl.UpdateSubscription, http.MethodPut, "/subscriptions/7",
		`{"start_date":"2024-01-15","end_date":"2030-12-31","price":55,"type":"MONTHLY"}`,
		[]string{"id"}, []string{"7"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stored == nil {
		t.Fatalf("expected update to reach the repository")
	}
	if stored.EndDate.Format(time.DateOnly) != "2030-12-31" {
		t.Fatalf("expected verbatim end date, got %v", stored.EndDate)
	}
}

func TestGetSubscriptionErrorLogCarriesRequestID(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	ctrl := newSubscriptionController(&controllerSubRepo{
		findByIDFn: func(context.Context, uint64) (*entity.Subscription, error) {
			return nil, errors.New("connection refused")
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/subscriptions/7", nil)
	req.Header.Set("X-Request-ID", "rest-abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := ctrl.GetSubscription(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected an error log entry")
	}
	if entry.Data["request_id"] != "rest-abc-123" {
		t.Fatalf("expected request_id field, got %+v", entry.Data)
	}
}

func TestListSubscriptionsByTypeRejectsUnknownType(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{})

	rec := performJSON(t, ctrl.ListSubscriptionsByType, http.MethodGet, "/subscriptions/type/WEEKLY", "",
		[]string{"type"}, []string{"WEEKLY"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListSubscriptionsByTypeEmpty(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{
		findByTypeFn: func(context.Context, entity.SubscriptionType) ([]*entity.Subscription, error) {
			return []*entity.Subscription{}, nil
		},
	})

	rec := performJSON(t, ctrl.ListSubscriptionsByType, http.MethodGet, "/subscriptions/type/SEMESTRIEL", "",
		[]string{"type"}, []string{"SEMESTRIEL"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListSubscriptionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Subscriptions) != 0 {
		t.Fatalf("expected empty list, got %d", len(resp.Subscriptions))
	}
}

func TestListSubscriptionsByDatesInvertedRange(t *testing.T) {
	ctrl := newSubscriptionController(&controllerSubRepo{})

	rec := performJSON(t, ctrl.ListSubscriptionsByDates, http.MethodGet, "/subscriptions/dates/2024-06-01/2024-01-01", "",
		[]string{"from", "to"}, []string{"2024-06-01", "2024-01-01"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListSubscriptionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Subscriptions) != 0 {
		t.Fatalf("expected empty list, got %d", len(resp.Subscriptions))
	}
}
