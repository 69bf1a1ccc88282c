package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/telemetry/tracing"
)

var ErrEntryNotFound = errors.New("workout entry not found")

const entryColumns = `id, date, exercise, category, weight, reps, user_id`

type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns all the user's entries, newest first.
func (r *Repo) List(ctx context.Context, userID int64) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	entries := []Entry{}
	if err := r.db.SelectContext(
		ctx,
		&entries,
		r.db.Rebind(`SELECT `+entryColumns+` FROM gym_entries WHERE user_id = ? ORDER BY date DESC, id DESC`),
		userID,
	); err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) Add(ctx context.Context, userID int64, e Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	var id int64
	if err := r.db.QueryRowxContext(
		ctx,
		r.db.Rebind(`INSERT INTO gym_entries (date, exercise, category, weight, reps, user_id) VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		e.Date, e.Exercise, e.Category, e.Weight, e.Reps, userID,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	e.ID = id
	e.UserID = userID
	return &e, nil
}

// AddMany appends all entries in a single transaction; either all of them
// are stored or none.
func (r *Repo) AddMany(ctx context.Context, userID int64, entries []Entry) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int("entries.count", len(entries)),
	)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Errorf("add many entries, rollback: %s", rbErr)
			}
		}
	}()

	stmt, err := tx.PreparexContext(
		ctx,
		tx.Rebind(`INSERT INTO gym_entries (date, exercise, category, weight, reps, user_id) VALUES (?, ?, ?, ?, ?, ?)`),
	)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Date, e.Exercise, e.Category, e.Weight, e.Reps, userID); err != nil {
			return 0, fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return len(entries), nil
}

// Delete removes the entry only if it belongs to the user.
func (r *Repo) Delete(ctx context.Context, userID, id int64) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("entry.id", id),
	)

	res, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM gym_entries WHERE id = ? AND user_id = ?`),
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return res.RowsAffected()
}

func (r *Repo) Count(ctx context.Context, userID int64) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.GetContext(
		ctx,
		&count,
		r.db.Rebind(`SELECT COUNT(*) FROM gym_entries WHERE user_id = ?`),
		userID,
	); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// Latest returns the newest entry or ErrEntryNotFound.
func (r *Repo) Latest(ctx context.Context, userID int64) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Entry
	if err := r.db.GetContext(
		ctx,
		&e,
		r.db.Rebind(`SELECT `+entryColumns+` FROM gym_entries WHERE user_id = ? ORDER BY date DESC, id DESC LIMIT 1`),
		userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("select latest entry: %w", err)
	}
	return &e, nil
}
