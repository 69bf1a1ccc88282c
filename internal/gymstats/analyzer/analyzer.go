package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/gymstats/bodyweight"
	"github.com/2beens/warmachine/internal/gymstats/targets"
	"github.com/2beens/warmachine/internal/gymstats/workouts"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analyzer_test

type workoutsRepo interface {
	List(ctx context.Context, userID int64) ([]workouts.Entry, error)
	Count(ctx context.Context, userID int64) (int, error)
	Latest(ctx context.Context, userID int64) (*workouts.Entry, error)
}

type bodyWeightRepo interface {
	List(ctx context.Context, userID int64) ([]bodyweight.Entry, error)
	Latest(ctx context.Context, userID int64) (*bodyweight.Entry, error)
}

type targetsRepo interface {
	List(ctx context.Context, userID int64) ([]targets.Target, error)
	MaxTargetWeight(ctx context.Context, userID int64) (float64, error)
}

// DashboardSummary fields are independent: each one is null (or zero) when
// its table has no rows for the user.
type DashboardSummary struct {
	LastWeight     *float64        `json:"lastWeight"`
	LastWeightDate *string         `json:"lastWeightDate"`
	LastWorkout    *workouts.Entry `json:"lastWorkout"`
	TotalWorkouts  int             `json:"totalWorkouts"`
	BestTarget     float64         `json:"bestTarget"`
}

type Analyzer struct {
	workouts   workoutsRepo
	bodyWeight bodyWeightRepo
	targets    targetsRepo
	now        func() time.Time
}

func NewAnalyzer(
	workoutsRepo workoutsRepo,
	bodyWeightRepo bodyWeightRepo,
	targetsRepo targetsRepo,
) *Analyzer {
	return &Analyzer{
		workouts:   workoutsRepo,
		bodyWeight: bodyWeightRepo,
		targets:    targetsRepo,
		now:        time.Now,
	}
}

// DashboardSummary runs four separate reads, outside of any transaction.
func (a *Analyzer) DashboardSummary(ctx context.Context, userID int64) (_ *DashboardSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboardSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	summary := &DashboardSummary{}

	lastWeight, err := a.bodyWeight.Latest(ctx, userID)
	switch {
	case err == nil:
		summary.LastWeight = &lastWeight.Weight
		summary.LastWeightDate = &lastWeight.Date
	case !errors.Is(err, bodyweight.ErrEntryNotFound):
		return nil, fmt.Errorf("latest body weight: %w", err)
	}

	lastWorkout, err := a.workouts.Latest(ctx, userID)
	switch {
	case err == nil:
		summary.LastWorkout = lastWorkout
	case !errors.Is(err, workouts.ErrEntryNotFound):
		return nil, fmt.Errorf("latest workout: %w", err)
	}

	if summary.TotalWorkouts, err = a.workouts.Count(ctx, userID); err != nil {
		return nil, fmt.Errorf("count workouts: %w", err)
	}

	if summary.BestTarget, err = a.targets.MaxTargetWeight(ctx, userID); err != nil {
		return nil, fmt.Errorf("max target: %w", err)
	}

	return summary, nil
}

func (a *Analyzer) TrainingStats(ctx context.Context, userID int64) (_ *TrainingStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.trainingStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.workouts.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	weights, err := a.bodyWeight.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body weight: %w", err)
	}

	stats := ComputeTrainingStats(entries, weights, a.now())
	return &stats, nil
}

func (a *Analyzer) PersonalRecords(ctx context.Context, userID int64) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.workouts.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return SortedRecords(ComputePersonalRecords(entries)), nil
}

func (a *Analyzer) TargetsProgress(ctx context.Context, userID int64) (_ []TargetProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.targetsProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := a.targets.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	entries, err := a.workouts.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return ComputeTargetsProgress(list, ComputePersonalRecords(entries)), nil
}

func (a *Analyzer) History(ctx context.Context, userID int64, search string) (_ []HistoryItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.workouts.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return ComputeHistory(entries, search), nil
}
