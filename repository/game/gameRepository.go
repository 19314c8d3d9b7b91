package gamerepo

import (
	"context"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	"github.com/Victor-Mannelli/Boardcamp-API/util/database"
)

// Row is a game decorated with its category name for listing.
type Row struct {
	model.Game
	CategoryName string `json:"categoryName"`
}

type Repo interface {
	Create(ctx context.Context, g *model.Game) error
	NameExists(ctx context.Context, name string) (bool, error)
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)
	List(ctx context.Context, namePrefix string) ([]Row, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, g *model.Game) error {
	const q = `
		INSERT INTO games (name, image, stock_total, category_id, price_per_day)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	return r.db.Pool.QueryRow(ctx, q,
		g.Name, g.Image, g.StockTotal, g.CategoryID, g.PricePerDay,
	).Scan(&g.ID)
}

func (r *repo) NameExists(ctx context.Context, name string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM games WHERE name = $1
		)`
	var exists bool
	err := r.db.Pool.QueryRow(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE id = $1
		)`
	var exists bool
	err := r.db.Pool.QueryRow(ctx, q, categoryID).Scan(&exists)
	return exists, err
}

func (r *repo) List(ctx context.Context, namePrefix string) ([]Row, error) {
	const q = `
		SELECT g.id, g.name, g.image, g.stock_total, g.category_id, g.price_per_day,
		       c.name AS category_name
		FROM games g
		JOIN categories c ON c.id = g.category_id
		WHERE $1 = '' OR g.name LIKE $1 || '%'
		ORDER BY g.id`
	rows, err := r.db.Pool.Query(ctx, q, namePrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var g Row
		if err := rows.Scan(
			&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay,
			&g.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
