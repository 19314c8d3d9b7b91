// service/customer/customer_service_test.go
package customersvc

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
)

type mockRepo struct {
	createFn func(ctx context.Context, c *model.Customer) error
	getFn    func(ctx context.Context, id int64) (*model.Customer, error)
	updateFn func(ctx context.Context, c *model.Customer) (int64, error)
	existsFn func(ctx context.Context, nationalID string, excludeID int64) (bool, error)
	listFn   func(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error)
}

var _ Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, c *model.Customer) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}
func (m *mockRepo) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return m.getFn(ctx, id)
}
func (m *mockRepo) Update(ctx context.Context, c *model.Customer) (int64, error) {
	return m.updateFn(ctx, c)
}
func (m *mockRepo) NationalIDExists(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
	if m.existsFn == nil {
		return false, nil
	}
	return m.existsFn(ctx, nationalID, excludeID)
}
func (m *mockRepo) List(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error) {
	return m.listFn(ctx, nationalIDPrefix)
}

func someCustomer() *model.Customer {
	return &model.Customer{
		Name:       "Joana Silva",
		Phone:      "21999999999",
		NationalID: "12345678901",
		Birthday:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_DuplicateNationalID(t *testing.T) {
	m := &mockRepo{
		existsFn: func(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
			require.Equal(t, int64(0), excludeID)
			return true, nil
		},
	}
	svc := New(m)

	err := svc.Create(context.Background(), someCustomer())
	require.ErrorIs(t, err, ErrNationalIDTaken)
}

func TestCreate_Success(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			c.ID = 42
			return nil
		},
	}
	svc := New(m)

	c := someCustomer()
	require.NoError(t, svc.Create(context.Background(), c))
	require.Equal(t, int64(42), c.ID)
}

func TestGet_NotFound(t *testing.T) {
	m := &mockRepo{
		getFn: func(ctx context.Context, id int64) (*model.Customer, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := New(m)

	_, err := svc.Get(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_KeepOwnNationalID(t *testing.T) {
	// the exists check must exclude the customer itself
	m := &mockRepo{
		existsFn: func(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
			require.Equal(t, int64(7), excludeID)
			return false, nil
		},
		updateFn: func(ctx context.Context, c *model.Customer) (int64, error) { return 1, nil },
	}
	svc := New(m)

	c := someCustomer()
	c.ID = 7
	require.NoError(t, svc.Update(context.Background(), c))
}

func TestUpdate_NationalIDCollision(t *testing.T) {
	m := &mockRepo{
		existsFn: func(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
			return true, nil
		},
	}
	svc := New(m)

	c := someCustomer()
	c.ID = 7
	err := svc.Update(context.Background(), c)
	require.ErrorIs(t, err, ErrNationalIDTaken)
}

func TestUpdate_NotFound(t *testing.T) {
	m := &mockRepo{
		existsFn: func(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
			return false, nil
		},
		updateFn: func(ctx context.Context, c *model.Customer) (int64, error) { return 0, nil },
	}
	svc := New(m)

	c := someCustomer()
	c.ID = 404
	err := svc.Update(context.Background(), c)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestList_PrefixPassThrough(t *testing.T) {
	var gotPrefix string
	m := &mockRepo{
		listFn: func(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error) {
			gotPrefix = nationalIDPrefix
			return nil, nil
		},
	}
	svc := New(m)

	_, err := svc.List(context.Background(), "123")
	require.NoError(t, err)
	require.Equal(t, "123", gotPrefix)
}
