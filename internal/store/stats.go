package store

import (
	"context"
	"fmt"
	"sort"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/hanjaolympics/internal/hanja"
)

// statsTop is how many characters each statistics list shows.
const statsTop = 10

// HanjaStats builds the statistics page: most missed and most correct
// characters, accuracy per grade, and plays per game.
func (s *Store) HanjaStats(ctx context.Context, userID string) (Stats, error) {
	all, err := s.characterStats(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, h := range all {
		if h.Wrong > 0 {
			st.TopMissed = append(st.TopMissed, h)
		}
		if h.Correct > 0 {
			st.TopCorrect = append(st.TopCorrect, h)
		}
	}
	sortStats(st.TopMissed, func(h HanjaStat) int { return h.Wrong })
	sortStats(st.TopCorrect, func(h HanjaStat) int { return h.Correct })
	st.TopMissed = headStats(st.TopMissed, statsTop)
	st.TopCorrect = headStats(st.TopCorrect, statsTop)

	st.Grades = gradeAccuracy(all)

	st.Games, err = s.BestScores(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Store) characterStats(ctx context.Context, userID string) ([]HanjaStat, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("symbol", "correct_count", "wrong_count").
		From(entsql.Table("hanja_stats")).
		Where(entsql.EQ("user_id", userID)).
		OrderBy("symbol").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query hanja stats: %w", err)
	}
	defer rows.Close()

	var out []HanjaStat
	for rows.Next() {
		var h HanjaStat
		if err := rows.Scan(&h.Symbol, &h.Correct, &h.Wrong); err != nil {
			return nil, fmt.Errorf("scan hanja stat: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// sortStats orders by key descending, then by symbol for a stable page.
func sortStats(stats []HanjaStat, key func(HanjaStat) int) {
	sort.Slice(stats, func(i, j int) bool {
		if key(stats[i]) != key(stats[j]) {
			return key(stats[i]) > key(stats[j])
		}
		return stats[i].Symbol < stats[j].Symbol
	})
}

func headStats(stats []HanjaStat, n int) []HanjaStat {
	if len(stats) > n {
		return stats[:n]
	}
	return stats
}

// gradeAccuracy folds character tallies into their grades, in hierarchy
// order. Symbols outside the pool are skipped.
func gradeAccuracy(stats []HanjaStat) []GradeAccuracy {
	byGrade := map[hanja.Grade]*GradeAccuracy{}
	for _, h := range stats {
		e, ok := hanja.Lookup(h.Symbol)
		if !ok {
			continue
		}
		g, ok := byGrade[e.Grade]
		if !ok {
			g = &GradeAccuracy{Grade: e.Grade}
			byGrade[e.Grade] = g
		}
		g.Correct += h.Correct
		g.Wrong += h.Wrong
	}

	var out []GradeAccuracy
	for _, g := range hanja.GradeHierarchy() {
		if acc, ok := byGrade[g]; ok {
			out = append(out, *acc)
		}
	}
	return out
}
