package bodyweight

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/telemetry/tracing"
)

var ErrEntryNotFound = errors.New("body weight entry not found")

type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the user's measurements oldest first.
func (r *Repo) List(ctx context.Context, userID int64) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	entries := []Entry{}
	if err := r.db.SelectContext(
		ctx,
		&entries,
		r.db.Rebind(`SELECT id, date, weight, user_id FROM body_weight WHERE user_id = ? ORDER BY date ASC, id ASC`),
		userID,
	); err != nil {
		return nil, fmt.Errorf("select body weight: %w", err)
	}
	return entries, nil
}

func (r *Repo) Add(ctx context.Context, userID int64, e Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	var id int64
	if err := r.db.QueryRowxContext(
		ctx,
		r.db.Rebind(`INSERT INTO body_weight (date, weight, user_id) VALUES (?, ?, ?) RETURNING id`),
		e.Date, e.Weight, userID,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert body weight: %w", err)
	}

	e.ID = id
	e.UserID = userID
	return &e, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("entry.id", id),
	)

	res, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM body_weight WHERE id = ? AND user_id = ?`),
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete body weight: %w", err)
	}
	return res.RowsAffected()
}

// Latest returns the most recent measurement or ErrEntryNotFound.
func (r *Repo) Latest(ctx context.Context, userID int64) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Entry
	if err := r.db.GetContext(
		ctx,
		&e,
		r.db.Rebind(`SELECT id, date, weight, user_id FROM body_weight WHERE user_id = ? ORDER BY date DESC, id DESC LIMIT 1`),
		userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("select latest body weight: %w", err)
	}
	return &e, nil
}
