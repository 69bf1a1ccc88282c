// Package bodyweight stores dated body-weight measurements.
package bodyweight

import (
	"strings"

	"github.com/2beens/warmachine/internal/gymstats"
)

type Entry struct {
	ID     int64   `json:"id" db:"id"`
	Date   string  `json:"date" db:"date"`
	Weight float64 `json:"weight" db:"weight"`
	UserID int64   `json:"user_id" db:"user_id"`
}

func (e *Entry) Normalize() error {
	e.Date = strings.TrimSpace(e.Date)
	if err := gymstats.ValidateDate("date", e.Date); err != nil {
		return err
	}
	return gymstats.ValidatePositive("weight", e.Weight)
}
