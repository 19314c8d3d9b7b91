package rental

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Victor-Mannelli/Boardcamp-API/model"
	rrepo "github.com/Victor-Mannelli/Boardcamp-API/repository/rental"
)

// errors used by controllers

type ErrCode string

const (
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrGameNotFound     ErrCode = "GAME_NOT_FOUND"
	ErrOutOfStock       ErrCode = "OUT_OF_STOCK"
	ErrRentalNotFound   ErrCode = "RENTAL_NOT_FOUND"
	ErrRentalClosed     ErrCode = "RENTAL_CLOSED"
	ErrRentalOpen       ErrCode = "RENTAL_OPEN"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// JoinedRow = repository shape
type JoinedRow = rrepo.JoinedRow

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repo interface {
	CustomerExists(ctx context.Context, customerID int64) (bool, error)

	GameForUpdate(ctx context.Context, tx pgx.Tx, gameID int64) (stockTotal, pricePerDay int64, err error)
	CountOpenByGame(ctx context.Context, tx pgx.Tx, gameID int64) (int64, error)
	Insert(ctx context.Context, tx pgx.Tx, r *model.Rental) error

	GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error)
	SetReturned(ctx context.Context, tx pgx.Tx, rentalID int64, returnDate time.Time, delayFee int64) error

	Get(ctx context.Context, rentalID int64) (*model.Rental, error)
	Delete(ctx context.Context, rentalID int64) error

	List(ctx context.Context, f rrepo.Filter) ([]JoinedRow, error)
}

type Service interface {
	// Create: rent a game to a customer, enforcing stock availability.
	Create(ctx context.Context, customerID, gameID, daysRented int64) (*model.Rental, error)

	// Return: close an open rental, computing the late fee if overdue.
	Return(ctx context.Context, rentalID int64) (*model.Rental, error)

	// Delete: remove a closed rental from the ledger.
	Delete(ctx context.Context, rentalID int64) error

	// List: joined rentals, optionally filtered by customer or game.
	List(ctx context.Context, customerID, gameID int64) ([]JoinedRow, error)
}

// ----- Service implementation -----

type service struct {
	db Beginner
	r  Repo
}

func New(db Beginner, r Repo) Service {
	return &service{db: db, r: r}
}

// Create locks the game row so concurrent rentals for the last copy
// serialize on the count-then-insert sequence.
func (s *service) Create(ctx context.Context, customerID, gameID, daysRented int64) (_ *model.Rental, err error) {
	exists, err := s.r.CustomerExists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, makeErr(ErrCustomerNotFound)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	stock, price, err := s.r.GameForUpdate(ctx, tx, gameID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrGameNotFound)
		}
		return nil, err
	}

	rented, err := s.r.CountOpenByGame(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	// a rental is admitted only while rented < stock
	if rented >= stock {
		return nil, makeErr(ErrOutOfStock)
	}

	m := &model.Rental{
		CustomerID:    customerID,
		GameID:        gameID,
		RentDate:      today(),
		DaysRented:    daysRented,
		OriginalPrice: daysRented * price,
	}
	if err = s.r.Insert(ctx, tx, m); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Return closes the rental. The late fee uses the per-day rate the rental
// was priced at, not the game's current price.
func (s *service) Return(ctx context.Context, rentalID int64) (_ *model.Rental, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	m, err := s.r.GetForUpdate(ctx, tx, rentalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrRentalNotFound)
		}
		return nil, err
	}
	if !m.Open() {
		return nil, makeErr(ErrRentalClosed)
	}

	returned := today()
	due := m.RentDate.AddDate(0, 0, int(m.DaysRented))
	late := daysBetween(due, returned)
	if late < 0 {
		late = 0
	}
	fee := late * (m.OriginalPrice / m.DaysRented)

	if err = s.r.SetReturned(ctx, tx, rentalID, returned, fee); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	m.ReturnDate = &returned
	m.DelayFee = &fee
	return m, nil
}

func (s *service) Delete(ctx context.Context, rentalID int64) error {
	m, err := s.r.Get(ctx, rentalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrRentalNotFound)
		}
		return err
	}
	if m.Open() {
		return makeErr(ErrRentalOpen)
	}
	return s.r.Delete(ctx, rentalID)
}

// List filters by customer or game; customerID wins when both are supplied.
func (s *service) List(ctx context.Context, customerID, gameID int64) ([]JoinedRow, error) {
	var f rrepo.Filter
	switch {
	case customerID > 0:
		f.CustomerID = customerID
	case gameID > 0:
		f.GameID = gameID
	}
	return s.r.List(ctx, f)
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from) / (24 * time.Hour))
}
