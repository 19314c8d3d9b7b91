// service/category/category_service_test.go
package categorysvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	categorysvc "github.com/Victor-Mannelli/Boardcamp-API/service/category"
)

type repoMock struct {
	createFn     func(ctx context.Context, name string) (int64, error)
	nameExistsFn func(ctx context.Context, name string) (bool, error)
	listFn       func(ctx context.Context) ([]model.Category, error)
}

func (m *repoMock) Create(ctx context.Context, name string) (int64, error) {
	return m.createFn(ctx, name)
}
func (m *repoMock) NameExists(ctx context.Context, name string) (bool, error) {
	return m.nameExistsFn(ctx, name)
}
func (m *repoMock) List(ctx context.Context) ([]model.Category, error) { return m.listFn(ctx) }

func TestCreate_EmptyName(t *testing.T) {
	s := categorysvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), ""); !errors.Is(err, categorysvc.ErrBadInput) {
		t.Fatalf("got %v; want ErrBadInput", err)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	m := &repoMock{
		nameExistsFn: func(ctx context.Context, name string) (bool, error) { return true, nil },
	}
	s := categorysvc.New(m)
	if _, err := s.Create(context.Background(), "strategy"); !errors.Is(err, categorysvc.ErrCategoryTaken) {
		t.Fatalf("got %v; want ErrCategoryTaken", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		nameExistsFn: func(ctx context.Context, name string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, name string) (int64, error) {
			if name != "strategy" {
				return 0, errors.New("bad args")
			}
			return 42, nil
		},
	}
	s := categorysvc.New(m)
	cat, err := s.Create(context.Background(), "strategy")
	if err != nil || cat.ID != 42 || cat.Name != "strategy" {
		t.Fatalf("got %+v err=%v; want id 42", cat, err)
	}
}

func TestCreate_UniqueViolationBackstop(t *testing.T) {
	// pre-check passes but the insert races a concurrent create
	m := &repoMock{
		nameExistsFn: func(ctx context.Context, name string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, name string) (int64, error) {
			return 0, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "categories_name_key"}
		},
	}
	s := categorysvc.New(m)
	if _, err := s.Create(context.Background(), "strategy"); !errors.Is(err, categorysvc.ErrCategoryTaken) {
		t.Fatalf("got %v; want ErrCategoryTaken", err)
	}
}

func TestList_PassThrough(t *testing.T) {
	m := &repoMock{
		listFn: func(ctx context.Context) ([]model.Category, error) {
			return []model.Category{{ID: 1, Name: "euro"}}, nil
		},
	}
	s := categorysvc.New(m)
	rows, err := s.List(context.Background())
	if err != nil || len(rows) != 1 || rows[0].Name != "euro" {
		t.Fatalf("got %v err=%v", rows, err)
	}
}
