// Package session runs one play-through of a game as a synchronous state
// machine. The UI drives it with ticks and selections; it never renders.
package session

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

// Config carries what a session is built from.
type Config struct {
	Profile  Profile
	Recorder Recorder
	// Seed makes fixed question orders reproducible when non-zero. The
	// daily challenge always plays the date seed.
	Seed int64
	// Pool overrides the grade-filtered pool. Used by tests.
	Pool []hanja.Entry
	// Now overrides the clock used for FinishedAt and the daily date.
	Now func() time.Time
}

func (c Config) env() (game.Env, hanja.Grade) {
	grade := gradeOf(c.Profile)
	pool := c.Pool
	if pool == nil {
		pool = hanja.ForGrade(grade)
	}
	return game.Env{Pool: pool, Seed: c.Seed, Date: c.now()}, grade
}

func (c Config) recorder() Recorder {
	if c.Recorder == nil {
		return NopRecorder{}
	}
	return c.Recorder
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Session is a quiz game in progress.
type Session struct {
	id    string
	mode  *game.Mode
	src   game.Source
	rec   Recorder
	cfg   Config
	grade hanja.Grade

	phase     Phase
	countdown int
	remaining time.Duration
	elapsed   time.Duration

	n        int
	question game.Question
	choice   int
	last     bool

	score      int
	correct    int
	answered   int
	streak     int
	bestStreak int
	lives      int
	wrong      []string

	result *Result
	closed bool
}

// New builds a session for mode. The question source is built once here
// from the grade-filtered pool.
func New(mode *game.Mode, cfg Config) *Session {
	env, grade := cfg.env()
	s := &Session{
		id:        uuid.NewString(),
		mode:      mode,
		src:       mode.NewSource(env),
		rec:       cfg.recorder(),
		cfg:       cfg,
		grade:     grade,
		phase:     PhaseCountdown,
		countdown: mode.Countdown,
		remaining: mode.TimeLimit,
		lives:     mode.Lives,
		choice:    -1,
	}

	if _, ok := s.src.Next(0); !ok {
		// Nothing to ask at this grade.
		s.finish(false)
		return s
	}
	if s.countdown <= 0 {
		s.present()
	}
	return s
}

// Tick advances the session by one second of wall time. During the
// countdown it counts down; afterwards it drains the clock.
func (s *Session) Tick() {
	if s.closed || s.phase == PhaseDone {
		return
	}
	if s.phase == PhaseCountdown {
		s.countdown--
		if s.countdown <= 0 {
			s.present()
		}
		return
	}
	s.Elapse(time.Second)
}

// Elapse records d of play time. Timed games finish with the partial
// score once their clock runs out.
func (s *Session) Elapse(d time.Duration) {
	if s.closed || s.phase == PhaseDone || s.phase == PhaseCountdown || d <= 0 {
		return
	}
	s.elapsed += d
	if !s.mode.Timed() {
		return
	}
	s.remaining -= d
	if s.remaining <= 0 {
		s.remaining = 0
		s.Finish()
	}
}

func (s *Session) present() {
	s.phase = PhasePresenting
	q, ok := s.src.Next(s.n)
	if !ok {
		s.Finish()
		return
	}
	s.question = q
	s.choice = -1
	s.phase = PhaseAwaiting
}

// Answer scores a selection for the current question. Only the first
// in-range selection counts; ok is false for anything else.
func (s *Session) Answer(choice int) (ok bool) {
	if s.closed || s.phase != PhaseAwaiting {
		return false
	}
	if choice < 0 || choice >= len(s.question.Options) {
		return false
	}

	q := s.question
	correct := q.IsCorrect(choice)
	s.choice = choice
	s.last = correct
	s.answered++

	if correct {
		s.correct++
		s.score += s.mode.PointsFor(s.n)
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
		if s.mode.Lives > 0 && s.mode.HealEvery > 0 && s.streak%s.mode.HealEvery == 0 && s.lives < s.mode.Lives {
			s.lives++
		}
	} else {
		s.streak = 0
		s.wrong = append(s.wrong, q.WrongNote)
		if s.mode.Lives > 0 {
			s.lives--
		}
	}

	s.rec.RecordAnswer(string(s.mode.ID), q.Symbol, correct)
	s.phase = PhaseResolved
	return true
}

// Over reports whether the resolved answer ended the game.
func (s *Session) Over() bool {
	if s.phase == PhaseDone {
		return true
	}
	if s.phase != PhaseResolved {
		return false
	}
	if s.mode.EndOnWrong && !s.last {
		return true
	}
	if s.mode.Lives > 0 && s.lives <= 0 {
		return true
	}
	n := s.src.Len()
	return n > 0 && s.n+1 >= n
}

// Next leaves the resolved phase: it finishes the game when the answer
// ended it, otherwise it presents the following question.
func (s *Session) Next() {
	if s.closed || s.phase != PhaseResolved {
		return
	}
	if s.Over() {
		s.Finish()
		return
	}
	s.n++
	s.present()
}

// Finish builds the result and records it. Repeat calls return the same
// result without recording again.
func (s *Session) Finish() Result {
	if s.result != nil {
		return *s.result
	}
	if s.closed {
		return Result{SessionID: s.id, GameID: string(s.mode.ID), Grade: s.grade}
	}
	return s.finish(true)
}

func (s *Session) finish(record bool) Result {
	score := s.score
	if s.mode.Percent {
		score = percent(s.correct, s.src.Len())
	}
	res := Result{
		SessionID:  s.id,
		GameID:     string(s.mode.ID),
		Grade:      s.grade,
		Score:      score,
		Total:      s.mode.Total,
		Medal:      medal.Classify(string(s.mode.ID), score),
		Wrong:      append([]string(nil), s.wrong...),
		Correct:    s.correct,
		Answered:   s.answered,
		BestStreak: s.bestStreak,
		Duration:   s.elapsed,
		FinishedAt: s.cfg.now(),
	}
	if !record {
		res.Medal = medal.None
	}
	res.Detail = s.describe(res)

	s.result = &res
	s.phase = PhaseDone
	if record {
		s.rec.RecordResult(res)
	}
	return res
}

func (s *Session) describe(r Result) string {
	switch s.mode.ID {
	case game.Swimming, game.Homonym:
		return fmt.Sprintf("60초 %d문제 정답", r.Correct)
	case game.Weightlifting:
		return fmt.Sprintf("연속 %d문제 (%dkg)", r.Score, 40+r.Score*10)
	case game.Marathon, game.Idiom:
		d := fmt.Sprintf("%d/%d (%d%%)", r.Correct, s.src.Len(), r.Score)
		if s.mode.Lives > 0 && s.lives <= 0 {
			d += " [HP 소진]"
		}
		return d
	case game.Archery:
		return fmt.Sprintf("%d/%d 득점 (%d발 명중)", r.Score, r.Total, r.Correct)
	}
	return fmt.Sprintf("%d/%d 정답", r.Correct, s.src.Len())
}

// Close stops the session. An unfinished session is abandoned without a
// result, and every later call does nothing.
func (s *Session) Close() {
	s.closed = true
}

func percent(n, of int) int {
	if of <= 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(of) * 100))
}

func (s *Session) ID() string { return s.id }
func (s *Session) Mode() *game.Mode { return s.mode }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Countdown() int { return s.countdown }
func (s *Session) Remaining() time.Duration { return s.remaining }
func (s *Session) Elapsed() time.Duration { return s.elapsed }
func (s *Session) Grade() hanja.Grade { return s.grade }
func (s *Session) Score() int { return s.score }
func (s *Session) Correct() int { return s.correct }
func (s *Session) Answered() int { return s.answered }
func (s *Session) Streak() int { return s.streak }
func (s *Session) Lives() int { return s.lives }
func (s *Session) Closed() bool { return s.closed }

// Question returns the question on screen; valid while awaiting or resolved.
func (s *Session) Question() game.Question { return s.question }

// Index is the zero-based number of the current question.
func (s *Session) Index() int { return s.n }

// Planned is the sequence length, 0 for open-ended games.
func (s *Session) Planned() int { return s.src.Len() }

// LastAnswer returns the resolved choice and whether it was correct.
func (s *Session) LastAnswer() (choice int, correct bool) { return s.choice, s.last }

// Wrong returns the notes of missed questions so far.
func (s *Session) Wrong() []string { return append([]string(nil), s.wrong...) }
