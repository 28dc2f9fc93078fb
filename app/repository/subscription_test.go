package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/vibast-solutions/ms-go-ski-station/app/entity"
)

type fakeDB struct {
	execFn func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if f.execFn != nil {
		return f.execFn(ctx, query, args...)
	}
	return fakeResult{lastInsertID: 1, rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct {
	lastInsertID int64
	rowsAffected int64
	lastErr      error
	rowsErr      error
}

func (r fakeResult) LastInsertId() (int64, error) {
	return r.lastInsertID, r.lastErr
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.rowsErr
}

func TestCreateSuccess(t *testing.T) {
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return fakeResult{lastInsertID: 22}, nil
	}})

	now := time.Now().UTC()
	s := &entity.Subscription{
		StartDate: now,
		EndDate:   now.AddDate(0, 1, 0),
		Price:     50,
		Type:      entity.SubscriptionTypeMonthly,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.ID != 22 {
		t.Fatalf("expected id=22, got %d", s.ID)
	}
}

func TestCreateMapsDuplicate(t *testing.T) {
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return nil, &mysqlDriver.MySQLError{Number: 1062, Message: "duplicate"}
	}})

	err := repo.Create(context.Background(), &entity.Subscription{})
	if !errors.Is(err, ErrSubscriptionAlreadyExists) {
		t.Fatalf("expected ErrSubscriptionAlreadyExists, got %v", err)
	}
}

func TestUpdateNoRowsAffected(t *testing.T) {
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return fakeResult{rowsAffected: 0}, nil
	}})

	err := repo.Update(context.Background(), &entity.Subscription{ID: 7})
	if !errors.Is(err, ErrSubscriptionNotFound) {
		t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
	}
}

func TestUpdateExecError(t *testing.T) {
	execErr := errors.New("connection reset")
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return nil, execErr
	}})

	err := repo.Update(context.Background(), &entity.Subscription{ID: 7})
	if !errors.Is(err, execErr) {
		t.Fatalf("expected exec error, got %v", err)
	}
}

func TestUpdateSerializesTypeAsString(t *testing.T) {
	var gotArgs []interface{}
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
		gotArgs = args
		return fakeResult{rowsAffected: 1}, nil
	}})

	err := repo.Update(context.Background(), &entity.Subscription{ID: 7, Type: entity.SubscriptionTypeAnnual})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(gotArgs) != 6 {
		t.Fatalf("expected 6 args, got %d", len(gotArgs))
	}
	if gotArgs[3] != "ANNUAL" {
		t.Fatalf("expected type arg ANNUAL, got %v", gotArgs[3])
	}
}
