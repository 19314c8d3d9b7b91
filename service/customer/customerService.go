package customersvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
)

var (
	ErrNotFound        = errors.New("customer not found")
	ErrNationalIDTaken = errors.New("national id already registered")
	ErrBadInput        = errors.New("bad input")
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (int64, error)
	NationalIDExists(ctx context.Context, nationalID string, excludeID int64) (bool, error)
	List(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error)
}

type Service interface {
	Create(ctx context.Context, c *model.Customer) error
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	List(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, c *model.Customer) error {
	if c.Name == "" || c.NationalID == "" {
		return ErrBadInput
	}

	taken, err := s.r.NationalIDExists(ctx, c.NationalID, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrNationalIDTaken
	}

	if err := s.r.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return ErrNationalIDTaken
		}
		return err
	}
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Update rejects a national id held by a different customer; keeping
// the customer's own id is allowed.
func (s *service) Update(ctx context.Context, c *model.Customer) error {
	if c.Name == "" || c.NationalID == "" {
		return ErrBadInput
	}

	taken, err := s.r.NationalIDExists(ctx, c.NationalID, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNationalIDTaken
	}

	n, err := s.r.Update(ctx, c)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrNationalIDTaken
		}
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *service) List(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error) {
	return s.r.List(ctx, nationalIDPrefix)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
