package session

import (
	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/screens/summary"
	sess "github.com/abhisek/hanjaolympics/internal/session"
)

// newSummaryScreenAdapter creates a results screen that can restart the
// same game.
func newSummaryScreenAdapter(res sess.Result, info game.Info, replay func() screen.Screen) screen.Screen {
	return summary.New(res, info, replay)
}
