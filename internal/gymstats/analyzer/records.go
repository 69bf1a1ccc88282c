package analyzer

import (
	"math"
	"sort"

	"github.com/2beens/warmachine/internal/gymstats/targets"
	"github.com/2beens/warmachine/internal/gymstats/workouts"
)

type PersonalRecord struct {
	EntryID   int64   `json:"entryId"`
	Exercise  string  `json:"exercise"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	OneRepMax float64 `json:"oneRepMax"`
}

// ComputePersonalRecords keeps, per exercise, the entry with the strictly
// greatest estimated 1RM. On a tie the first entry encountered stays.
func ComputePersonalRecords(entries []workouts.Entry) map[string]PersonalRecord {
	prs := make(map[string]PersonalRecord)
	for _, e := range entries {
		orm := EstimateOneRepMax(e.Weight, e.Reps)
		if current, ok := prs[e.Exercise]; ok && orm <= current.OneRepMax {
			continue
		}
		prs[e.Exercise] = PersonalRecord{
			EntryID:   e.ID,
			Exercise:  e.Exercise,
			Category:  e.Category,
			Date:      e.Date,
			Weight:    e.Weight,
			Reps:      e.Reps,
			OneRepMax: orm,
		}
	}
	return prs
}

// SortedRecords lists the records by exercise name.
func SortedRecords(prs map[string]PersonalRecord) []PersonalRecord {
	list := make([]PersonalRecord, 0, len(prs))
	for _, pr := range prs {
		list = append(list, pr)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Exercise < list[j].Exercise
	})
	return list
}

// ComputeTargetProgress returns the percentage (0..100) of the target weight
// reached by the weight of the exercise's personal record. No record, or a
// non-positive target, gives 0.
func ComputeTargetProgress(targetWeight float64, pr *PersonalRecord) int {
	if pr == nil || targetWeight <= 0 {
		return 0
	}
	ratio := math.Min(pr.Weight/targetWeight, 1)
	if ratio < 0 {
		return 0
	}
	return int(math.Round(ratio * 100))
}

type TargetProgress struct {
	targets.Target
	BestWeight float64 `json:"bestWeight"`
	Progress   int     `json:"progress"`
}

func ComputeTargetsProgress(list []targets.Target, prs map[string]PersonalRecord) []TargetProgress {
	progress := make([]TargetProgress, 0, len(list))
	for _, t := range list {
		tp := TargetProgress{Target: t}
		if pr, ok := prs[t.Exercise]; ok {
			tp.BestWeight = pr.Weight
			tp.Progress = ComputeTargetProgress(t.TargetWeight, &pr)
		}
		progress = append(progress, tp)
	}
	return progress
}
