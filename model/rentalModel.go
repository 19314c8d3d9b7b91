// model/rental.go
package model

import "time"

type Rental struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customerId"`
	GameID        int64      `json:"gameId"`
	RentDate      time.Time  `json:"rentDate"`
	DaysRented    int64      `json:"daysRented"`
	ReturnDate    *time.Time `json:"returnDate"`
	OriginalPrice int64      `json:"originalPrice"`
	DelayFee      *int64     `json:"delayFee"`
}

func (r Rental) Open() bool { return r.ReturnDate == nil }
