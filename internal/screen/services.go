package screen

import (
	"context"
	"time"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// Data is the read side of the store plus the profile updates screens make.
type Data interface {
	RecentScores(ctx context.Context, userID string, limit int) ([]store.ScoreRecord, error)
	BestScores(ctx context.Context, userID string) ([]store.BestScore, error)
	Leaderboard(ctx context.Context, gameID string, grade hanja.Grade) ([]store.LeaderboardEntry, error)
	DailyChallenge(ctx context.Context, userID string, date time.Time) (store.DailyRecord, error)
	DailyStreak(ctx context.Context, userID string, today time.Time) (int, error)
	HanjaStats(ctx context.Context, userID string) (store.Stats, error)
	SetGrade(ctx context.Context, userID string, grade hanja.Grade) error
	Rename(ctx context.Context, userID, username string) error
}

var _ Data = (*store.Store)(nil)

// Player is the signed-in local profile. It satisfies session.Profile so
// grade changes apply to the next game started.
type Player struct {
	ID       string
	Username string
	Icon     string
	Level    hanja.Grade
}

var _ session.Profile = (*Player)(nil)

// NewPlayer copies a stored profile.
func NewPlayer(p store.Profile) *Player {
	return &Player{ID: p.ID, Username: p.Username, Icon: p.Icon, Level: p.Grade}
}

// Grade returns the player's grade, 8급 when unset.
func (p *Player) Grade() hanja.Grade {
	if p == nil {
		return hanja.DefaultGrade
	}
	return hanja.LabelOrDefault(p.Level)
}

// Services is what screens are built from. Data may be nil when the game
// runs without a database; screens then show empty lists.
type Services struct {
	Data     Data
	Recorder session.Recorder
	Player   *Player
	// Seed fixes question order for games that support shared seeds.
	Seed int64
	Now  func() time.Time
}

// Clock returns the current time from Now, or time.Now.
func (s *Services) Clock() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SessionConfig builds the config for a new game session.
func (s *Services) SessionConfig() session.Config {
	if s == nil {
		return session.Config{}
	}
	cfg := session.Config{Now: s.Now}
	cfg.Recorder = s.Recorder
	cfg.Seed = s.Seed
	if s.Player != nil {
		cfg.Profile = s.Player
	}
	return cfg
}

// UserID returns the player's id, empty without a profile.
func (s *Services) UserID() string {
	if s == nil || s.Player == nil {
		return ""
	}
	return s.Player.ID
}
