// Package gallery keeps the uploaded drawings shown on the public
// gallery page.
package gallery

import (
	"strings"
	"time"

	"github.com/2beens/warmachine/internal/gymstats"
)

const maxNameLength = 120

type Item struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
	Date     string `json:"date" db:"date"`
	// Filename is the public URL of the stored image.
	Filename  string `json:"filename" db:"filename"`
	UserID    int64  `json:"user_id" db:"user_id"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// Normalize trims the fields and defaults an empty date to today.
func (i *Item) Normalize(now time.Time) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
	i.Date = strings.TrimSpace(i.Date)

	if err := gymstats.ValidateRequired("name", i.Name); err != nil {
		return err
	}
	if len(i.Name) > maxNameLength {
		return &gymstats.ValidationError{Field: "name", Reason: "too long"}
	}
	if i.Date == "" {
		i.Date = gymstats.Today(now)
		return nil
	}
	return gymstats.ValidateDate("date", i.Date)
}
