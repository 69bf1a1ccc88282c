// Package analyzer derives everything the dashboards show from the raw
// workout, body-weight and target rows: one-rep max estimates, personal
// records, target progress and training statistics. Nothing it computes is
// stored.
package analyzer

import (
	"math"

	"github.com/2beens/warmachine/internal/gymstats"
)

// EstimateOneRepMax uses the Epley formula, rounded to the nearest unit.
// It is a heuristic; a single rep is taken at face value.
func EstimateOneRepMax(weight float64, reps int) float64 {
	switch {
	case reps <= 0:
		return 0
	case reps == 1:
		return weight
	default:
		return math.Round(weight * (1 + float64(reps)/30))
	}
}

type LoadRow struct {
	Percent int     `json:"percent"`
	Weight  float64 `json:"weight"`
	Reps    int     `json:"reps"`
}

type OneRepMaxTable struct {
	OneRepMax float64   `json:"oneRepMax"`
	Rows      []LoadRow `json:"rows"`
}

var (
	loadPercents  = []int{100, 95, 90, 85, 80, 75, 70, 65, 60}
	estimatedReps = []int{1, 2, 4, 6, 8, 10, 12, 16, 20}
)

// ComputeOneRepMaxTable estimates the 1RM for a set and the loads for the
// usual percentages of it, each with the reps typically achievable.
func ComputeOneRepMaxTable(weight float64, reps int) (*OneRepMaxTable, error) {
	if err := gymstats.ValidatePositive("weight", weight); err != nil {
		return nil, err
	}
	if reps <= 0 {
		return nil, &gymstats.ValidationError{Field: "reps", Reason: "must be positive"}
	}

	orm := EstimateOneRepMax(weight, reps)
	rows := make([]LoadRow, 0, len(loadPercents))
	for i, p := range loadPercents {
		rows = append(rows, LoadRow{
			Percent: p,
			Weight:  math.Round(orm * float64(p) / 100),
			Reps:    estimatedReps[i],
		})
	}

	return &OneRepMaxTable{
		OneRepMax: orm,
		Rows:      rows,
	}, nil
}
