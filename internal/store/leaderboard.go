package store

import (
	"context"
	"fmt"
	"sort"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

// TotalBoard is the composite leaderboard id.
const TotalBoard = "total"

// RankedGames are the games that feed the composite leaderboard.
var RankedGames = []string{
	"archery", "swimming", "weightlifting", "gymnastics",
	"marathon", "antonym", "idiom", "homonym",
}

// rankPoints is what a rank is worth on the composite board: 10 for
// first down to 1 for tenth.
func rankPoints(rank int) int {
	if rank < 1 || rank > 10 {
		return 0
	}
	return 11 - rank
}

// Leaderboard ranks the best score per player in gameID among profiles at
// grade. An empty grade ranks everyone. gameID "total" builds the
// composite board from rank points across RankedGames.
func (s *Store) Leaderboard(ctx context.Context, gameID string, grade hanja.Grade) ([]LeaderboardEntry, error) {
	if gameID == TotalBoard {
		return s.totalBoard(ctx, grade)
	}
	return s.gameBoard(ctx, gameID, grade, 0)
}

func (s *Store) gameBoard(ctx context.Context, gameID string, grade hanja.Grade, limit int) ([]LeaderboardEntry, error) {
	agg, order := entsql.Max, entsql.Desc
	if medal.LowerIsBetter(gameID) {
		agg, order = entsql.Min, entsql.Asc
	}

	sc := entsql.Table("scores").As("s")
	p := entsql.Table("profiles").As("p")
	where := entsql.And(entsql.EQ(sc.C("game_id"), gameID), entsql.EQ(sc.C("incomplete"), false))
	if grade != "" {
		where = entsql.And(where, entsql.EQ(p.C("grade"), string(grade)))
	}

	sel := entsql.Dialect(dialect.SQLite).
		Select(
			sc.C("user_id"), p.C("username"), p.C("icon"), p.C("grade"),
			entsql.As(agg(sc.C("score")), "best"),
		).
		From(sc).
		Join(p).On(sc.C("user_id"), p.C("id")).
		Where(where).
		GroupBy(sc.C("user_id")).
		OrderBy(order("best"), p.C("username"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard %s: %w", gameID, err)
	}
	defer rows.Close()

	var out []LeaderboardEntry
	for rows.Next() {
		var (
			e LeaderboardEntry
			g string
		)
		if err := rows.Scan(&e.UserID, &e.Username, &e.Icon, &g, &e.Score); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		e.Grade = hanja.Grade(g)
		e.Rank = len(out) + 1
		e.Medal = medal.Classify(gameID, e.Score)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) totalBoard(ctx context.Context, grade hanja.Grade) ([]LeaderboardEntry, error) {
	byUser := map[string]*LeaderboardEntry{}
	for _, id := range RankedGames {
		board, err := s.gameBoard(ctx, id, grade, 10)
		if err != nil {
			return nil, err
		}
		for _, e := range board {
			t, ok := byUser[e.UserID]
			if !ok {
				t = &LeaderboardEntry{
					UserID:    e.UserID,
					Username:  e.Username,
					Icon:      e.Icon,
					Grade:     e.Grade,
					Breakdown: map[string]int{},
				}
				byUser[e.UserID] = t
			}
			pts := rankPoints(e.Rank)
			t.Breakdown[id] = pts
			t.Score += pts
		}
	}

	out := make([]LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Username < out[j].Username
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// DefaultTopLimit is the TopScores size when limit is not positive.
const DefaultTopLimit = 5

// TopScores returns the best score per player in gameID across all
// grades. Results are cached in process for a minute.
func (s *Store) TopScores(ctx context.Context, gameID string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	key := fmt.Sprintf("%s/%d", gameID, limit)
	if rows, ok := s.cache.get(key); ok {
		return rows, nil
	}

	var (
		rows []LeaderboardEntry
		err  error
	)
	if gameID == TotalBoard {
		rows, err = s.totalBoard(ctx, "")
		if len(rows) > limit {
			rows = rows[:limit]
		}
	} else {
		rows, err = s.gameBoard(ctx, gameID, "", limit)
	}
	if err != nil {
		return nil, err
	}
	s.cache.put(key, gameID, rows)
	return rows, nil
}
