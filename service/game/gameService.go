package gamesvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	repo "github.com/Victor-Mannelli/Boardcamp-API/repository/game"
)

// Row = repository shape
type Row = repo.Row

var (
	ErrGameTaken        = errors.New("game name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBadInput         = errors.New("bad input")
)

type Repo interface {
	Create(ctx context.Context, g *model.Game) error
	NameExists(ctx context.Context, name string) (bool, error)
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)
	List(ctx context.Context, namePrefix string) ([]Row, error)
}

type Service interface {
	Create(ctx context.Context, g *model.Game) error
	List(ctx context.Context, namePrefix string) ([]Row, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, g *model.Game) error {
	if g.Name == "" || g.StockTotal < 1 || g.PricePerDay < 1 {
		return ErrBadInput
	}

	ok, err := s.r.CategoryExists(ctx, g.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}

	taken, err := s.r.NameExists(ctx, g.Name)
	if err != nil {
		return err
	}
	if taken {
		return ErrGameTaken
	}

	if err := s.r.Create(ctx, g); err != nil {
		if isUniqueViolation(err) {
			return ErrGameTaken
		}
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, namePrefix string) ([]Row, error) {
	return s.r.List(ctx, namePrefix)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
