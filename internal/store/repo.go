package store

import (
	"time"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

// Profile is a local player.
type Profile struct {
	ID        string
	Username  string
	Icon      string
	Grade     hanja.Grade
	CreatedAt time.Time
}

// ScoreRecord is one finished game.
type ScoreRecord struct {
	Sequence  int64
	SessionID string
	UserID    string
	GameID    string
	Grade     hanja.Grade
	Score     int
	Total     int
	Medal     medal.Medal
	Detail    string
	Wrong     []string
	Duration  time.Duration
	CreatedAt time.Time
	// Incomplete keeps the game out of best scores and leaderboards.
	Incomplete bool
}

// AnswerRecord is one answered question.
type AnswerRecord struct {
	UserID    string
	GameID    string
	Symbol    string
	Correct   bool
	CreatedAt time.Time
}

// BestScore summarizes a user's plays of one game.
type BestScore struct {
	GameID  string
	Best    int
	Medal   medal.Medal
	Plays   int
	Average float64
}

// LeaderboardEntry is one row of a per-game or composite board.
type LeaderboardEntry struct {
	Rank     int
	UserID   string
	Username string
	Icon     string
	Grade    hanja.Grade
	// Score is the best score for a game board, or rank points for the
	// composite board.
	Score int
	Medal medal.Medal
	// Breakdown holds rank points per game on the composite board.
	Breakdown map[string]int
}

// DailyRecord marks a completed daily challenge.
type DailyRecord struct {
	UserID      string
	Date        string
	Score       int
	Medal       medal.Medal
	CompletedAt time.Time
}

// HanjaStat is the answer tally for one character.
type HanjaStat struct {
	Symbol  string
	Correct int
	Wrong   int
}

// Seen is the number of times the character was asked.
func (h HanjaStat) Seen() int { return h.Correct + h.Wrong }

// Rate is the share of correct answers.
func (h HanjaStat) Rate() float64 {
	if h.Seen() == 0 {
		return 0
	}
	return float64(h.Correct) / float64(h.Seen())
}

// GradeAccuracy is the answer tally for characters of one grade.
type GradeAccuracy struct {
	Grade   hanja.Grade
	Correct int
	Wrong   int
}

// Rate is the share of correct answers.
func (g GradeAccuracy) Rate() float64 {
	if g.Correct+g.Wrong == 0 {
		return 0
	}
	return float64(g.Correct) / float64(g.Correct+g.Wrong)
}

// Stats is the statistics page for one user.
type Stats struct {
	TopMissed  []HanjaStat
	TopCorrect []HanjaStat
	Grades     []GradeAccuracy
	Games      []BestScore
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms) }
