package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/hanjaolympics/internal/hanja"
)

// ErrInvalidGrade is returned when a grade label is not in the hierarchy.
var ErrInvalidGrade = errors.New("invalid grade")

// DefaultIcon is given to new profiles.
const DefaultIcon = "🐯"

var profileColumns = []string{"id", "username", "icon", "grade", "created_at"}

func scanProfile(row interface{ Scan(...any) error }) (Profile, error) {
	var (
		p       Profile
		grade   string
		created int64
	)
	if err := row.Scan(&p.ID, &p.Username, &p.Icon, &grade, &created); err != nil {
		return Profile{}, err
	}
	p.Grade = hanja.Grade(grade)
	p.CreatedAt = fromMillis(created)
	return p, nil
}

// ProfileByName looks a profile up by username.
func (s *Store) ProfileByName(ctx context.Context, username string) (Profile, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(profileColumns...).
		From(entsql.Table("profiles")).
		Where(entsql.EQ("username", username)).
		Query()

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("profile %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return p, nil
}

// Profile looks a profile up by id.
func (s *Store) Profile(ctx context.Context, id string) (Profile, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(profileColumns...).
		From(entsql.Table("profiles")).
		Where(entsql.EQ("id", id)).
		Query()

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return p, nil
}

// EnsureProfile returns the profile for username, creating it at 8급 on
// first use.
func (s *Store) EnsureProfile(ctx context.Context, username string) (Profile, error) {
	p, err := s.ProfileByName(ctx, username)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	p = Profile{
		ID:        uuid.NewString(),
		Username:  username,
		Icon:      DefaultIcon,
		Grade:     hanja.DefaultGrade,
		CreatedAt: time.Now(),
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("profiles").
		Columns(profileColumns...).
		Values(p.ID, p.Username, p.Icon, string(p.Grade), toMillis(p.CreatedAt)).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// SetGrade changes the grade of a profile.
func (s *Store) SetGrade(ctx context.Context, userID string, grade hanja.Grade) error {
	if _, ok := hanja.ParseGrade(string(grade)); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidGrade, grade)
	}
	return s.updateProfile(ctx, userID, "grade", string(grade))
}

// SetIcon changes the icon of a profile.
func (s *Store) SetIcon(ctx context.Context, userID, icon string) error {
	return s.updateProfile(ctx, userID, "icon", icon)
}

// Rename changes the username of a profile.
func (s *Store) Rename(ctx context.Context, userID, username string) error {
	return s.updateProfile(ctx, userID, "username", username)
}

func (s *Store) updateProfile(ctx context.Context, userID, column string, value any) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Update("profiles").
		Set(column, value).
		Where(entsql.EQ("id", userID)).
		Query()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", column, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	return nil
}

// Grade returns the grade of a profile, 8급 when the profile is missing.
func (s *Store) Grade(ctx context.Context, userID string) (hanja.Grade, error) {
	p, err := s.Profile(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return hanja.DefaultGrade, nil
	}
	if err != nil {
		return "", err
	}
	return hanja.LabelOrDefault(p.Grade), nil
}
