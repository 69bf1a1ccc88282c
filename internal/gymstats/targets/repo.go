package targets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/telemetry/tracing"
)

type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the user's targets in creation order.
func (r *Repo) List(ctx context.Context, userID int64) (_ []Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	targets := []Target{}
	if err := r.db.SelectContext(
		ctx,
		&targets,
		r.db.Rebind(`SELECT id, exercise, target_weight, user_id FROM gym_targets WHERE user_id = ? ORDER BY id ASC`),
		userID,
	); err != nil {
		return nil, fmt.Errorf("select targets: %w", err)
	}
	return targets, nil
}

func (r *Repo) Add(ctx context.Context, userID int64, t Target) (_ *Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	var id int64
	if err := r.db.QueryRowxContext(
		ctx,
		r.db.Rebind(`INSERT INTO gym_targets (exercise, target_weight, user_id) VALUES (?, ?, ?) RETURNING id`),
		t.Exercise, t.TargetWeight, userID,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert target: %w", err)
	}

	t.ID = id
	t.UserID = userID
	return &t, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("target.id", id),
	)

	res, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM gym_targets WHERE id = ? AND user_id = ?`),
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete target: %w", err)
	}
	return res.RowsAffected()
}

// MaxTargetWeight returns the highest target weight, 0 without targets.
func (r *Repo) MaxTargetWeight(ctx context.Context, userID int64) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.max")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var maxWeight sql.NullFloat64
	if err := r.db.GetContext(
		ctx,
		&maxWeight,
		r.db.Rebind(`SELECT MAX(target_weight) FROM gym_targets WHERE user_id = ?`),
		userID,
	); err != nil {
		return 0, fmt.Errorf("select max target: %w", err)
	}
	return maxWeight.Float64, nil
}
