package categoryrepo

import (
	"context"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	"github.com/Victor-Mannelli/Boardcamp-API/util/database"
)

type Repo interface {
	Create(ctx context.Context, name string) (int64, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.Category, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, name string) (int64, error) {
	const q = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) NameExists(ctx context.Context, name string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE name = $1
		)`
	var exists bool
	err := r.db.Pool.QueryRow(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) List(ctx context.Context) ([]model.Category, error) {
	const q = `
		SELECT id, name
		FROM categories
		ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
