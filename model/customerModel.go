// model/customer.go
package model

import "time"

type Customer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	NationalID string    `json:"cpf"`
	Birthday   time.Time `json:"birthday"`
}
