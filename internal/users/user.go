package users

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/2beens/warmachine/internal/gymstats"
)

const (
	DefaultProfilePicture = "/uploads/default-profile.png"
	DefaultAccentColor    = "#6366f1"
)

var accentColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type User struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	PasswordHash   string `json:"-" db:"password"`
	ProfilePicture string `json:"profile_picture" db:"profile_picture"`
	AccentColor    string `json:"accent_color" db:"accent_color"`
	FirstName      string `json:"first_name" db:"first_name"`
	LastName       string `json:"last_name" db:"last_name"`
	Email          string `json:"email" db:"email"`
	Gender         string `json:"gender" db:"gender"`
	Height         int    `json:"height" db:"height"`
	Age            int    `json:"age" db:"age"`
	CreatedAt      int64  `json:"-" db:"created_at"`
}

// PublicUser is what login returns.
type PublicUser struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}

type ProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	Height    int    `json:"height"`
	Age       int    `json:"age"`
}

func (p *ProfileUpdate) Normalize() error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Gender = strings.TrimSpace(p.Gender)

	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return &gymstats.ValidationError{Field: "email", Reason: "not a valid address"}
		}
	}
	if err := gymstats.ValidateNonNegative("height", float64(p.Height)); err != nil {
		return err
	}
	return gymstats.ValidateNonNegative("age", float64(p.Age))
}

func ValidateAccentColor(color string) error {
	if !accentColorRegex.MatchString(color) {
		return &gymstats.ValidationError{Field: "color", Reason: "expected #rgb or #rrggbb"}
	}
	return nil
}
