package analyzer

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/gymstats/bodyweight"
	"github.com/2beens/warmachine/internal/gymstats/workouts"
)

const heatmapDays = 365

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type TrainingStats struct {
	TotalVolume     float64      `json:"totalVolume"`
	SessionsCount   int          `json:"sessionsCount"`
	LastSessionDate string       `json:"lastSessionDate"`
	LastExercise    string       `json:"lastExercise"`
	BodyWeight      *float64     `json:"bodyWeight"`
	BodyWeightDelta *float64     `json:"bodyWeightDelta"`
	Heatmap         []HeatmapDay `json:"heatmap"`
}

func heatmapLevel(count int) int {
	switch {
	case count > 2:
		return 3
	case count > 1:
		return 2
	case count > 0:
		return 1
	default:
		return 0
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeTrainingStats summarizes the workout log and the body-weight series
// (which must be sorted by date ascending). The heatmap covers the 365 days
// starting one year before now, counting sets per day.
func ComputeTrainingStats(entries []workouts.Entry, weights []bodyweight.Entry, now time.Time) TrainingStats {
	stats := TrainingStats{}

	setsPerDate := make(map[string]int)
	var last *workouts.Entry
	for i, e := range entries {
		stats.TotalVolume += e.Weight * float64(e.Reps)
		setsPerDate[e.Date]++
		if last == nil || e.Date > last.Date {
			last = &entries[i]
		}
	}
	stats.SessionsCount = len(setsPerDate)
	if last != nil {
		stats.LastSessionDate = last.Date
		stats.LastExercise = last.Exercise
	}

	if n := len(weights); n > 0 {
		latest := weights[n-1].Weight
		stats.BodyWeight = &latest
		if n > 1 {
			delta := roundTenth(latest - weights[n-2].Weight)
			stats.BodyWeightDelta = &delta
		}
	}

	start := now.UTC().AddDate(-1, 0, 0)
	stats.Heatmap = make([]HeatmapDay, 0, heatmapDays)
	for i := 0; i < heatmapDays; i++ {
		date := start.AddDate(0, 0, i).Format(gymstats.DateLayout)
		count := setsPerDate[date]
		stats.Heatmap = append(stats.Heatmap, HeatmapDay{
			Date:  date,
			Count: count,
			Level: heatmapLevel(count),
		})
	}

	return stats
}

type HistoryItem struct {
	workouts.Entry
	// Delta is the weight change against the previous (older) entry of the
	// same exercise; nil for the first one.
	Delta *float64 `json:"delta"`
}

// ComputeHistory lists the entries newest first, keeping only exercises
// containing search (case insensitive).
func ComputeHistory(entries []workouts.Entry, search string) []HistoryItem {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]workouts.Entry, 0, len(entries))
	for _, e := range entries {
		if search == "" || strings.Contains(strings.ToLower(e.Exercise), search) {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	items := make([]HistoryItem, len(filtered))
	for i, e := range filtered {
		items[i].Entry = e
		for _, prev := range filtered[i+1:] {
			if prev.Exercise == e.Exercise {
				delta := roundTenth(e.Weight - prev.Weight)
				items[i].Delta = &delta
				break
			}
		}
	}
	return items
}
