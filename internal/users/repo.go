package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username taken")
)

const userColumns = `id, username, password, profile_picture, accent_color,
	first_name, last_name, email, gender, height, age, created_at`

type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, username, passwordHash string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	err = r.db.QueryRowxContext(
		ctx,
		r.db.Rebind(`INSERT INTO users (username, password, created_at) VALUES (?, ?, ?) RETURNING id`),
		username, passwordHash, time.Now().Unix(),
	).Scan(&id)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int64("user.id", id))
	return id, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *Repo) get(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	if err := r.db.GetContext(ctx, &u, r.db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, id int64, p ProfileUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	return r.exec(ctx,
		`UPDATE users SET first_name = ?, last_name = ?, email = ?, gender = ?, height = ?, age = ? WHERE id = ?`,
		p.FirstName, p.LastName, p.Email, p.Gender, p.Height, p.Age, id,
	)
}

func (r *Repo) UpdateAccentColor(ctx context.Context, id int64, color string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateAccent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	return r.exec(ctx, `UPDATE users SET accent_color = ? WHERE id = ?`, color, id)
}

func (r *Repo) UpdateProfilePicture(ctx context.Context, id int64, picturePath string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatePicture")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	return r.exec(ctx, `UPDATE users SET profile_picture = ? WHERE id = ?`, picturePath, id)
}

func (r *Repo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
