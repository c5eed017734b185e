package game

import "github.com/abhisek/hanjaolympics/internal/hanja"

// Question is one multiple-choice prompt. It lives only while it is shown.
type Question struct {
	// Target is the character being tested. Zero for idiom questions.
	Target hanja.Entry
	// Symbol is what answer events are recorded against.
	Symbol string
	Prompt string
	Hint   string
	// Options are the displayed choices; Options[Answer] is correct.
	Options []string
	Answer  int
	// WrongNote is appended to the session's wrong list when missed.
	WrongNote string
}

// IsCorrect compares the chosen option's value with the correct option's.
// Out-of-range choices are wrong.
func (q Question) IsCorrect(choice int) bool {
	if choice < 0 || choice >= len(q.Options) || q.Answer < 0 || q.Answer >= len(q.Options) {
		return false
	}
	return q.Options[choice] == q.Options[q.Answer]
}

// Source yields the questions of one session.
type Source interface {
	// Next builds question n (zero-based). ok is false once the sequence ends.
	Next(n int) (q Question, ok bool)
	// Len is the planned number of questions, or 0 when unbounded.
	Len() int
}

// fixed is a Source over a sequence chosen at session start.
type fixed[T any] struct {
	items []T
	build func(item T, n int) Question
}

func (f *fixed[T]) Next(n int) (Question, bool) {
	if n < 0 || n >= len(f.items) {
		return Question{}, false
	}
	return f.build(f.items[n], n), true
}

func (f *fixed[T]) Len() int { return len(f.items) }

// endless draws a fresh random target for every question.
type endless struct {
	pool  []hanja.Entry
	build func(target hanja.Entry, n int) Question
}

func (e *endless) Next(n int) (Question, bool) {
	if len(e.pool) == 0 {
		return Question{}, false
	}
	return e.build(pickEntry(e.pool), n), true
}

func (e *endless) Len() int { return 0 }
