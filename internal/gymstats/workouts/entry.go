// Package workouts stores the logged sets: one row per exercise, weight and
// reps on a given date.
package workouts

import (
	"strings"

	"github.com/2beens/warmachine/internal/gymstats"
)

type Entry struct {
	ID       int64   `json:"id" db:"id"`
	Date     string  `json:"date" db:"date"`
	Exercise string  `json:"exercise" db:"exercise"`
	Category string  `json:"category" db:"category"`
	Weight   float64 `json:"weight" db:"weight"`
	Reps     int     `json:"reps" db:"reps"`
	UserID   int64   `json:"user_id" db:"user_id"`
}

// Normalize trims the text fields and validates the entry.
func (e *Entry) Normalize() error {
	e.Date = strings.TrimSpace(e.Date)
	e.Exercise = strings.TrimSpace(e.Exercise)
	e.Category = strings.TrimSpace(e.Category)

	if err := gymstats.ValidateDate("date", e.Date); err != nil {
		return err
	}
	if err := gymstats.ValidateRequired("exercise", e.Exercise); err != nil {
		return err
	}
	if err := gymstats.ValidateNonNegative("weight", e.Weight); err != nil {
		return err
	}
	if e.Reps < 0 {
		return &gymstats.ValidationError{Field: "reps", Reason: "must not be negative"}
	}
	return nil
}
