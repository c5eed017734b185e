package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

// DailyGameID is the game id whose scores also complete the daily challenge.
const DailyGameID = "daily"

// DateLayout formats daily challenge dates.
const DateLayout = "2006-01-02"

var scoreColumns = []string{
	"sequence", "session_id", "user_id", "game_id", "grade", "score",
	"total", "medal", "detail", "wrong", "duration_ms", "created_at", "incomplete",
}

// SaveScore stores a finished game. A daily score also marks the day's
// challenge as done.
func (s *Store) SaveScore(ctx context.Context, rec ScoreRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	wrong := rec.Wrong
	if wrong == nil {
		wrong = []string{}
	}
	wrongJSON, err := json.Marshal(wrong)
	if err != nil {
		return fmt.Errorf("encode wrong list: %w", err)
	}

	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("scores").
		Columns(scoreColumns...).
		Values(seqNum, rec.SessionID, rec.UserID, rec.GameID, string(rec.Grade), rec.Score,
			rec.Total, string(rec.Medal), rec.Detail, string(wrongJSON),
			rec.Duration.Milliseconds(), toMillis(rec.CreatedAt), rec.Incomplete).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	if rec.GameID == DailyGameID {
		if err := saveDaily(ctx, tx, DailyRecord{
			UserID:      rec.UserID,
			Date:        rec.CreatedAt.Format(DateLayout),
			Score:       rec.Score,
			Medal:       rec.Medal,
			CompletedAt: rec.CreatedAt,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score: %w", err)
	}
	s.cache.invalidate(rec.GameID)
	return nil
}

// RecentScores returns the user's latest games, newest first.
func (s *Store) RecentScores(ctx context.Context, userID string, limit int) ([]ScoreRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(scoreColumns...).
		From(entsql.Table("scores")).
		Where(entsql.EQ("user_id", userID)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		var (
			r                   ScoreRecord
			grade, m, wrong     string
			durationMs, created int64
		)
		if err := rows.Scan(&r.Sequence, &r.SessionID, &r.UserID, &r.GameID, &grade, &r.Score,
			&r.Total, &m, &r.Detail, &wrong, &durationMs, &created, &r.Incomplete); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		r.Grade = hanja.Grade(grade)
		r.Medal = medal.Parse(m)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = fromMillis(created)
		if err := json.Unmarshal([]byte(wrong), &r.Wrong); err != nil {
			return nil, fmt.Errorf("decode wrong list: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BestScores returns the user's best score per game with play counts.
// Gymnastics keeps its lowest score. Incomplete games are left out.
func (s *Store) BestScores(ctx context.Context, userID string) ([]BestScore, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			"game_id",
			entsql.As(entsql.Max("score"), "high"),
			entsql.As(entsql.Min("score"), "low"),
			entsql.As(entsql.Count("*"), "plays"),
			entsql.As(entsql.Avg("score"), "average"),
		).
		From(entsql.Table("scores")).
		Where(entsql.And(entsql.EQ("user_id", userID), entsql.EQ("incomplete", false))).
		GroupBy("game_id").
		OrderBy("game_id").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query best scores: %w", err)
	}
	defer rows.Close()

	var out []BestScore
	for rows.Next() {
		var (
			b         BestScore
			high, low int
			avg       sql.NullFloat64
		)
		if err := rows.Scan(&b.GameID, &high, &low, &b.Plays, &avg); err != nil {
			return nil, fmt.Errorf("scan best score: %w", err)
		}
		b.Best = high
		if medal.LowerIsBetter(b.GameID) {
			b.Best = low
		}
		b.Medal = medal.Classify(b.GameID, b.Best)
		b.Average = avg.Float64
		out = append(out, b)
	}
	return out, rows.Err()
}
