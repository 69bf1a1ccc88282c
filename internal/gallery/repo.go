package gallery

import (
	"context"
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

// List returns all items newest first, optionally only one category.
func (r *Repo) List(ctx context.Context, category string) (_ []Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gallery.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gallery.category", category))

	query := `SELECT id, name, category, date, filename, user_id, created_at FROM gallery_items`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select gallery items: %w", err)
	}
	return items, nil
}

func (r *Repo) Add(ctx context.Context, item Item) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gallery.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", item.UserID))

	var id int64
	if err := r.db.QueryRowxContext(
		ctx,
		r.db.Rebind(`INSERT INTO gallery_items (name, category, date, filename, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		item.Name, item.Category, item.Date, item.Filename, item.UserID, item.CreatedAt,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert gallery item: %w", err)
	}

	item.ID = id
	return &item, nil
}
