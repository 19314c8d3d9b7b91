package customerrepo

import (
	"context"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	"github.com/Victor-Mannelli/Boardcamp-API/util/database"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Get(ctx context.Context, id int64) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (int64, error)
	// NationalIDExists reports whether another customer (id != excludeID)
	// already holds nationalID. Pass excludeID = 0 on create.
	NationalIDExists(ctx context.Context, nationalID string, excludeID int64) (bool, error)
	List(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
		INSERT INTO customers (name, phone, national_id, birthday)
		VALUES ($1,$2,$3,$4)
		RETURNING id`
	return r.db.Pool.QueryRow(ctx, q,
		c.Name, c.Phone, c.NationalID, c.Birthday,
	).Scan(&c.ID)
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
		SELECT id, name, phone, national_id, birthday
		FROM customers
		WHERE id = $1`
	c := &model.Customer{}
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.NationalID, &c.Birthday,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (int64, error) {
	const q = `
		UPDATE customers
		SET name = $2, phone = $3, national_id = $4, birthday = $5
		WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, q, c.ID, c.Name, c.Phone, c.NationalID, c.Birthday)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repo) NationalIDExists(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM customers
			WHERE national_id = $1 AND id <> $2
		)`
	var exists bool
	err := r.db.Pool.QueryRow(ctx, q, nationalID, excludeID).Scan(&exists)
	return exists, err
}

func (r *repo) List(ctx context.Context, nationalIDPrefix string) ([]model.Customer, error) {
	const q = `
		SELECT id, name, phone, national_id, birthday
		FROM customers
		WHERE $1 = '' OR national_id LIKE $1 || '%'
		ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, nationalIDPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.NationalID, &c.Birthday); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
