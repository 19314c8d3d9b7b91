// repository/rental/repo.go
package rental

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	"github.com/Victor-Mannelli/Boardcamp-API/util/database"
)

// CustomerSummary and GameSummary are the embedded shapes the listing joins in.
type CustomerSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GameSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type JoinedRow struct {
	model.Rental
	Customer CustomerSummary `json:"customer"`
	Game     GameSummary     `json:"game"`
}

// Filter selects rentals by customer or game. Zero means unfiltered.
type Filter struct {
	CustomerID int64
	GameID     int64
}

type Repo interface {
	CustomerExists(ctx context.Context, customerID int64) (bool, error)

	// GameForUpdate locks the game row for the duration of the transaction
	// so concurrent creates for the same game serialize on it.
	GameForUpdate(ctx context.Context, tx pgx.Tx, gameID int64) (stockTotal, pricePerDay int64, err error)
	CountOpenByGame(ctx context.Context, tx pgx.Tx, gameID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, r *model.Rental) error

	GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error)
	SetReturned(ctx context.Context, tx pgx.Tx, rentalID int64, returnDate time.Time, delayFee int64) error

	Get(ctx context.Context, rentalID int64) (*model.Rental, error)
	Delete(ctx context.Context, rentalID int64) error

	List(ctx context.Context, f Filter) ([]JoinedRow, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE id = $1
		)`
	var exists bool
	err := r.db.Pool.QueryRow(ctx, q, customerID).Scan(&exists)
	return exists, err
}

func (r *repo) GameForUpdate(ctx context.Context, tx pgx.Tx, gameID int64) (int64, int64, error) {
	const q = `
		SELECT stock_total, price_per_day
		FROM games
		WHERE id = $1
		FOR UPDATE`
	var stock, price int64
	err := tx.QueryRow(ctx, q, gameID).Scan(&stock, &price)
	return stock, price, err
}

func (r *repo) CountOpenByGame(ctx context.Context, tx pgx.Tx, gameID int64) (int64, error) {
	const q = `
		SELECT COUNT(*)
		FROM rentals
		WHERE game_id = $1
		AND return_date IS NULL`
	var n int64
	err := tx.QueryRow(ctx, q, gameID).Scan(&n)
	return n, err
}

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, m *model.Rental) error {
	const q = `
		INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, original_price)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	return tx.QueryRow(ctx, q,
		m.CustomerID, m.GameID, m.RentDate, m.DaysRented, m.OriginalPrice,
	).Scan(&m.ID)
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error) {
	const q = `
		SELECT id, customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee
		FROM rentals
		WHERE id = $1
		FOR UPDATE`
	m := &model.Rental{}
	err := tx.QueryRow(ctx, q, rentalID).Scan(
		&m.ID, &m.CustomerID, &m.GameID, &m.RentDate, &m.DaysRented,
		&m.ReturnDate, &m.OriginalPrice, &m.DelayFee,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) SetReturned(ctx context.Context, tx pgx.Tx, rentalID int64, returnDate time.Time, delayFee int64) error {
	const q = `
		UPDATE rentals
		SET return_date = $2,
			delay_fee = $3
		WHERE id = $1`
	_, err := tx.Exec(ctx, q, rentalID, returnDate, delayFee)
	return err
}

func (r *repo) Get(ctx context.Context, rentalID int64) (*model.Rental, error) {
	const q = `
		SELECT id, customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee
		FROM rentals
		WHERE id = $1`
	m := &model.Rental{}
	err := r.db.Pool.QueryRow(ctx, q, rentalID).Scan(
		&m.ID, &m.CustomerID, &m.GameID, &m.RentDate, &m.DaysRented,
		&m.ReturnDate, &m.OriginalPrice, &m.DelayFee,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) Delete(ctx context.Context, rentalID int64) error {
	const q = `
		DELETE FROM rentals
		WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, q, rentalID)
	return err
}

func (r *repo) List(ctx context.Context, f Filter) ([]JoinedRow, error) {
	const q = `
		SELECT
			r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented,
			r.return_date, r.original_price, r.delay_fee,
			cu.id, cu.name,
			g.id, g.name, g.category_id, ca.name AS category_name
		FROM rentals r
		JOIN customers cu ON cu.id = r.customer_id
		JOIN games g      ON g.id = r.game_id
		JOIN categories ca ON ca.id = g.category_id
		WHERE ($1 = 0 OR r.customer_id = $1)
		AND ($2 = 0 OR r.game_id = $2)
		ORDER BY r.id`
	rows, err := r.db.Pool.Query(ctx, q, f.CustomerID, f.GameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JoinedRow
	for rows.Next() {
		var j JoinedRow
		if err := rows.Scan(
			&j.ID, &j.CustomerID, &j.GameID, &j.RentDate, &j.DaysRented,
			&j.ReturnDate, &j.OriginalPrice, &j.DelayFee,
			&j.Customer.ID, &j.Customer.Name,
			&j.Game.ID, &j.Game.Name, &j.Game.CategoryID, &j.Game.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
