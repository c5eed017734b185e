package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hanjaolympics/internal/medal"
)

// streakWindow bounds how many completed days a streak lookup reads.
const streakWindow = 30

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveDaily(ctx context.Context, db execer, rec DailyRecord) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("daily_challenges").
		Columns("user_id", "date", "score", "medal", "completed_at").
		Values(rec.UserID, rec.Date, rec.Score, string(rec.Medal), toMillis(rec.CompletedAt)).
		OnConflict(
			entsql.ConflictColumns("user_id", "date"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save daily challenge: %w", err)
	}
	return nil
}

// SaveDailyChallenge marks a date as done, replacing an earlier run that day.
func (s *Store) SaveDailyChallenge(ctx context.Context, rec DailyRecord) error {
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}
	if rec.Date == "" {
		rec.Date = rec.CompletedAt.Format(DateLayout)
	}
	return saveDaily(ctx, s.db, rec)
}

// DailyChallenge returns the record for date, or ErrNotFound when the
// challenge has not been played that day.
func (s *Store) DailyChallenge(ctx context.Context, userID string, date time.Time) (DailyRecord, error) {
	day := date.Format(DateLayout)
	query, args := entsql.Dialect(dialect.SQLite).
		Select("user_id", "date", "score", "medal", "completed_at").
		From(entsql.Table("daily_challenges")).
		Where(entsql.And(entsql.EQ("user_id", userID), entsql.EQ("date", day))).
		Query()

	var (
		rec       DailyRecord
		m         string
		completed int64
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&rec.UserID, &rec.Date, &rec.Score, &m, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return DailyRecord{}, fmt.Errorf("daily %s: %w", day, ErrNotFound)
	}
	if err != nil {
		return DailyRecord{}, fmt.Errorf("query daily challenge: %w", err)
	}
	rec.Medal = medal.Parse(m)
	rec.CompletedAt = fromMillis(completed)
	return rec, nil
}

// DailyStreak counts consecutive completed days ending at the most recent
// completed day on or before today.
func (s *Store) DailyStreak(ctx context.Context, userID string, today time.Time) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("date").
		From(entsql.Table("daily_challenges")).
		Where(entsql.And(
			entsql.EQ("user_id", userID),
			entsql.LTE("date", today.Format(DateLayout)),
		)).
		OrderBy(entsql.Desc("date")).
		Limit(streakWindow).
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("query daily streak: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("scan daily date: %w", err)
		}
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			return 0, fmt.Errorf("parse daily date %q: %w", d, err)
		}
		dates = append(dates, t)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return consecutiveDays(dates), nil
}

// consecutiveDays counts the run of days at the head of dates, which are
// sorted newest first.
func consecutiveDays(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i].AddDate(0, 0, 1).Equal(dates[i-1]) {
			break
		}
		streak++
	}
	return streak
}
