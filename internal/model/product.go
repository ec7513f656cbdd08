// Package model holds the entities the API reads and writes.
package model

import (
	"github.com/shopspring/decimal"
)

// Product is one row of the products table.
//
// Name and Price are nullable in storage, so both are pointers: a NULL
// column serializes as JSON null.
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  *string `json:"name" db:"name"`
	Price *Price  `json:"price" db:"price"`
}

// Price is a NUMERIC column value.
//
// It scans and binds through the embedded decimal (sql.Scanner and
// driver.Valuer) and renders as a JSON string that keeps the scale it
// was stored with, so NUMERIC(10,2) 10.00 comes back as "10.00".
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal string such as "9.99".
func NewPrice(value string) (*Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}
	return &Price{Decimal: d}, nil
}

// MarshalJSON writes the price as a quoted fixed-point string.
func (p Price) MarshalJSON() ([]byte, error) {
	places := -p.Exponent()
	if places < 0 {
		places = 0
	}
	return []byte(`"` + p.StringFixed(places) + `"`), nil
}
