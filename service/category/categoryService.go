package categorysvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
)

var (
	ErrCategoryTaken = errors.New("category name already exists")
	ErrBadInput      = errors.New("bad input")
)

type Repo interface {
	Create(ctx context.Context, name string) (int64, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.Category, error)
}

type Service interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" {
		return nil, ErrBadInput
	}

	// exact, case-sensitive comparison
	exists, err := s.r.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryTaken
	}

	id, err := s.r.Create(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCategoryTaken
		}
		return nil, err
	}
	return &model.Category{ID: id, Name: name}, nil
}

func (s *service) List(ctx context.Context) ([]model.Category, error) {
	return s.r.List(ctx)
}

// isUniqueViolation backstops the pre-insert check against races.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
