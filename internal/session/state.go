package session

import (
	"time"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

// Phase is where a session is in its lifecycle.
type Phase int

const (
	PhaseCountdown  Phase = iota // Lead-in ticks before play
	PhasePeek                    // Cards shown face up (matching game only)
	PhasePresenting              // Drawing the next question
	PhaseAwaiting                // Waiting for a selection
	PhaseResolved                // Selection scored, feedback showing
	PhaseDone                    // Result built, session frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhasePeek:
		return "peek"
	case PhasePresenting:
		return "presenting"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseResolved:
		return "resolved"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Result is the outcome of one finished session.
type Result struct {
	SessionID string
	GameID    string
	Grade     hanja.Grade
	Score     int
	// Total is the reported denominator, 0 for open-ended games.
	Total  int
	Medal  medal.Medal
	Detail string
	// Wrong lists the notes of missed questions in order.
	Wrong      []string
	Correct    int
	Answered   int
	BestStreak int
	Duration   time.Duration
	FinishedAt time.Time
	// Incomplete marks a result that must not rank, such as a memory
	// board the clock ran out on.
	Incomplete bool
}

// Accuracy is the share of answered questions that were correct.
func (r Result) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}
