package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

// Memory is a card matching game in progress. Score is the number of
// attempts, so lower is better.
type Memory struct {
	id    string
	rules game.MemoryRules
	board *game.Board
	rec   Recorder
	cfg   Config
	grade hanja.Grade

	phase     Phase
	countdown int
	peek      int
	remaining time.Duration
	elapsed   time.Duration

	first, second int
	lastMatch     bool
	attempts      int
	combo         int
	maxCombo      int

	result *Result
	closed bool
}

// NewMemory deals a board from the grade-filtered pool.
func NewMemory(rules game.MemoryRules, cfg Config) *Memory {
	env, grade := cfg.env()
	m := &Memory{
		id:        uuid.NewString(),
		rules:     rules,
		board:     game.NewBoard(env, rules.Pairs),
		rec:       cfg.recorder(),
		cfg:       cfg,
		grade:     grade,
		phase:     PhaseCountdown,
		countdown: rules.Countdown,
		peek:      rules.Peek,
		remaining: rules.TimeLimit,
		first:     -1,
		second:    -1,
	}
	if m.board.Pairs == 0 {
		m.finish(false)
		return m
	}
	if m.countdown <= 0 {
		m.startPeek()
	}
	return m
}

func (m *Memory) startPeek() {
	m.phase = PhasePeek
	m.board.SetFaceUp(true)
	if m.peek <= 0 {
		m.startPlay()
	}
}

func (m *Memory) startPlay() {
	m.board.SetFaceUp(false)
	m.phase = PhaseAwaiting
}

// Tick advances one second: countdown, then peek, then the play clock.
func (m *Memory) Tick() {
	if m.closed || m.phase == PhaseDone {
		return
	}
	switch m.phase {
	case PhaseCountdown:
		m.countdown--
		if m.countdown <= 0 {
			m.startPeek()
		}
	case PhasePeek:
		m.peek--
		if m.peek <= 0 {
			m.startPlay()
		}
	default:
		m.Elapse(time.Second)
	}
}

// Elapse drains the play clock and finishes the game when it runs out.
func (m *Memory) Elapse(d time.Duration) {
	if m.closed || d <= 0 || (m.phase != PhaseAwaiting && m.phase != PhaseResolved) {
		return
	}
	m.elapsed += d
	m.remaining -= d
	if m.remaining <= 0 {
		m.remaining = 0
		m.Finish()
	}
}

// Flip turns card i face up. The second flip of a turn is one attempt:
// it is scored, recorded against the first card's character, and leaves
// the session resolved until Next.
func (m *Memory) Flip(i int) (ok bool) {
	if m.closed || m.phase != PhaseAwaiting || !m.board.Valid(i) {
		return false
	}
	c := &m.board.Cards[i]
	if c.Matched || c.FaceUp {
		return false
	}
	c.FaceUp = true

	if m.first < 0 {
		m.first = i
		return true
	}

	m.second = i
	m.attempts++
	a := m.board.Cards[m.first]
	m.lastMatch = m.board.Match(m.first, m.second)
	if m.lastMatch {
		m.board.Cards[m.first].Matched = true
		m.board.Cards[m.second].Matched = true
		m.combo++
		if m.combo > m.maxCombo {
			m.maxCombo = m.combo
		}
		if m.combo >= m.rules.ComboThreshold {
			m.remaining += m.rules.ComboBonus
		} else {
			m.remaining += m.rules.MatchBonus
		}
	} else {
		m.combo = 0
	}

	m.rec.RecordAnswer(string(m.rules.ID), a.Entry.Symbol, m.lastMatch)
	m.phase = PhaseResolved
	return true
}

// Next turns a missed pair back down, or finishes once the board is cleared.
func (m *Memory) Next() {
	if m.closed || m.phase != PhaseResolved {
		return
	}
	if !m.lastMatch {
		m.board.Cards[m.first].FaceUp = false
		m.board.Cards[m.second].FaceUp = false
	}
	m.first, m.second = -1, -1
	if m.board.Cleared() {
		m.Finish()
		return
	}
	m.phase = PhaseAwaiting
}

// Finish builds and records the result once. A board left uncleared when
// time runs out earns no medal.
func (m *Memory) Finish() Result {
	if m.result != nil {
		return *m.result
	}
	if m.closed {
		return Result{SessionID: m.id, GameID: string(m.rules.ID), Grade: m.grade}
	}
	return m.finish(true)
}

func (m *Memory) finish(record bool) Result {
	res := Result{
		SessionID:  m.id,
		GameID:     string(m.rules.ID),
		Grade:      m.grade,
		Score:      m.attempts,
		Correct:    m.board.Matched(),
		Answered:   m.attempts,
		BestStreak: m.maxCombo,
		Duration:   m.elapsed,
		FinishedAt: m.cfg.now(),
	}
	if record && m.board.Cleared() {
		res.Medal = medal.Classify(string(m.rules.ID), m.attempts)
	} else {
		res.Incomplete = true
	}
	res.Detail = fmt.Sprintf("%d회 시도 (최대콤보 %d, 남은시간 %d초)",
		m.attempts, m.maxCombo, int(m.remaining.Round(time.Second)/time.Second))

	m.result = &res
	m.phase = PhaseDone
	if record {
		m.rec.RecordResult(res)
	}
	return res
}

// Close abandons the game without recording a result.
func (m *Memory) Close() {
	m.closed = true
}

func (m *Memory) ID() string { return m.id }
func (m *Memory) Rules() game.MemoryRules { return m.rules }
func (m *Memory) Board() *game.Board { return m.board }
func (m *Memory) Phase() Phase { return m.phase }
func (m *Memory) Countdown() int { return m.countdown }
func (m *Memory) Peek() int { return m.peek }
func (m *Memory) Remaining() time.Duration { return m.remaining }
func (m *Memory) Attempts() int { return m.attempts }
func (m *Memory) Combo() int { return m.combo }
func (m *Memory) Grade() hanja.Grade { return m.grade }

// LastMatch reports whether the resolved attempt was a match.
func (m *Memory) LastMatch() bool { return m.lastMatch }

// Selected returns the first flipped card of the turn, or -1.
func (m *Memory) Selected() int { return m.first }
