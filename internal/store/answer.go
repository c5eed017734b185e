package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// AppendAnswer logs one answered question and bumps the per-character tally.
func (s *Store) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
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

	correct, wrong := 0, 1
	if rec.Correct {
		correct, wrong = 1, 0
	}
	at := toMillis(rec.CreatedAt)

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("answer_log").
		Columns("sequence", "user_id", "game_id", "symbol", "correct", "created_at").
		Values(seqNum, rec.UserID, rec.GameID, rec.Symbol, correct, at).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append answer: %w", err)
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Insert("hanja_stats").
		Columns("user_id", "symbol", "correct_count", "wrong_count", "last_seen").
		Values(rec.UserID, rec.Symbol, correct, wrong, at).
		OnConflict(
			entsql.ConflictColumns("user_id", "symbol"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.Add("correct_count", correct)
				u.Add("wrong_count", wrong)
				u.SetExcluded("last_seen")
			}),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update hanja stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit answer: %w", err)
	}
	return nil
}

// AnswerCount returns how many answers the user has logged.
func (s *Store) AnswerCount(ctx context.Context, userID string) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table("answer_log")).
		Where(entsql.EQ("user_id", userID)).
		Query()

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return n, nil
}
