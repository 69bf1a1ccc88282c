// Package targets stores per-exercise weight goals. Progress towards them is
// derived from the workout log and never stored.
package targets

import (
	"strings"

	"github.com/2beens/warmachine/internal/gymstats"
)

type Target struct {
	ID           int64   `json:"id" db:"id"`
	Exercise     string  `json:"exercise" db:"exercise"`
	TargetWeight float64 `json:"target_weight" db:"target_weight"`
	UserID       int64   `json:"user_id" db:"user_id"`
}

func (t *Target) Normalize() error {
	t.Exercise = strings.TrimSpace(t.Exercise)
	if err := gymstats.ValidateRequired("exercise", t.Exercise); err != nil {
		return err
	}
	return gymstats.ValidatePositive("target_weight", t.TargetWeight)
}
