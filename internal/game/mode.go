package game

import (
	"fmt"
	"time"

	"github.com/abhisek/hanjaolympics/internal/decoy"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/shuffle"
)

// Defaults shared by the quiz games.
const (
	DefaultCountdown = 3
	DecoyCount       = 3
	ShortRound       = 10
	HomonymRound     = 20
)

// Env is what a mode needs to build its question source.
type Env struct {
	// Pool is the grade-filtered character pool.
	Pool []hanja.Entry
	// Seed makes fixed sequences reproducible when non-zero. The daily
	// challenge ignores it.
	Seed int64
	// Date picks the daily challenge. Zero means today.
	Date time.Time
}

// dailySeed is the date seed every client shares for env's day.
func dailySeed(env Env) int64 {
	if env.Date.IsZero() {
		return shuffle.TodaySeed()
	}
	return shuffle.DateSeed(env.Date)
}

// order shuffles items, reproducibly when the env carries a seed.
func order[T any](env Env, items []T) []T {
	if env.Seed != 0 {
		return shuffle.SeededShuffle(items, env.Seed)
	}
	return shuffle.Shuffle(items)
}

// Mode holds the rules of one quiz game.
type Mode struct {
	Info

	// Countdown is the number of lead-in ticks before the first question.
	Countdown int
	// TimeLimit is the global session timer; zero means untimed.
	TimeLimit time.Duration
	// Lives is the starting HP; zero disables HP.
	Lives int
	// HealEvery restores one life after that many consecutive correct answers.
	HealEvery int
	// EndOnWrong finishes the session on the first miss.
	EndOnWrong bool
	// Total is the reported denominator; zero for open-ended games.
	Total int
	// Percent reports round(correct / planned * 100) as the score.
	Percent bool
	// Points returns the value of a correct answer to question n. Nil means 1.
	Points func(n int) int

	// NewSource builds the session-scoped question sequence.
	NewSource func(env Env) Source
}

// PointsFor returns the value of a correct answer to question n.
func (m *Mode) PointsFor(n int) int {
	if m.Points == nil {
		return 1
	}
	return m.Points(n)
}

// Timed reports whether the mode runs against a global clock.
func (m *Mode) Timed() bool {
	return m.TimeLimit > 0
}

// MemoryRules holds the rules of the card matching game.
type MemoryRules struct {
	Info

	Countdown int
	// Peek is how many ticks all cards stay face up before play.
	Peek      int
	Pairs     int
	TimeLimit time.Duration
	// MatchBonus is added to the clock per match, ComboBonus once the
	// combo reaches ComboThreshold.
	MatchBonus     time.Duration
	ComboBonus     time.Duration
	ComboThreshold int
}

// Memory returns the card matching rules.
func Memory() MemoryRules {
	info, _ := Lookup(string(Gymnastics))
	return MemoryRules{
		Info:           info,
		Countdown:      DefaultCountdown,
		Peek:           3,
		Pairs:          8,
		TimeLimit:      90 * time.Second,
		MatchBonus:     5 * time.Second,
		ComboBonus:     8 * time.Second,
		ComboThreshold: 4,
	}
}

// archeryPoints rises as the round goes on: 1,1,1,2,2,2,3,3,5,5.
func archeryPoints(n int) int {
	switch {
	case n < 3:
		return 1
	case n < 6:
		return 2
	case n < 8:
		return 3
	default:
		return 5
	}
}

func modes() map[ID]*Mode {
	info := func(id ID) Info {
		i, _ := Lookup(string(id))
		return i
	}
	return map[ID]*Mode{
		Archery: {
			Info:      info(Archery),
			Countdown: DefaultCountdown,
			Total:     25,
			Points:    archeryPoints,
			NewSource: func(env Env) Source {
				return &fixed[hanja.Entry]{
					items: head(order(env, env.Pool), ShortRound),
					build: func(t hanja.Entry, _ int) Question { return labelQuestion(t, env.Pool) },
				}
			},
		},
		Daily: {
			Info:      info(Daily),
			Countdown: DefaultCountdown,
			Total:     ShortRound,
			NewSource: func(env Env) Source {
				return &fixed[hanja.Entry]{
					items: SharedQuestions(env.Pool, dailySeed(env), ShortRound),
					build: func(t hanja.Entry, _ int) Question { return labelQuestion(t, env.Pool) },
				}
			},
		},
		Swimming: {
			Info:      info(Swimming),
			Countdown: DefaultCountdown,
			TimeLimit: 60 * time.Second,
			NewSource: func(env Env) Source {
				return &endless{
					pool:  env.Pool,
					build: func(t hanja.Entry, _ int) Question { return symbolQuestion(t, env.Pool) },
				}
			},
		},
		Weightlifting: {
			Info:       info(Weightlifting),
			Countdown:  DefaultCountdown,
			EndOnWrong: true,
			NewSource: func(env Env) Source {
				return &endless{
					pool: env.Pool,
					build: func(t hanja.Entry, n int) Question {
						if n%2 == 0 {
							return labelQuestion(t, env.Pool)
						}
						return symbolQuestion(t, env.Pool)
					},
				}
			},
		},
		Marathon: {
			Info:      info(Marathon),
			Countdown: DefaultCountdown,
			Lives:     5,
			HealEvery: 5,
			Total:     100,
			Percent:   true,
			NewSource: func(env Env) Source {
				return &fixed[hanja.Entry]{
					items: order(env, env.Pool),
					build: func(t hanja.Entry, _ int) Question { return labelQuestion(t, env.Pool) },
				}
			},
		},
		Antonym: {
			Info:      info(Antonym),
			Countdown: DefaultCountdown,
			Total:     ShortRound,
			NewSource: func(env Env) Source {
				return &fixed[hanja.AntonymPair]{
					items: head(order(env, hanja.AntonymsFor(env.Pool)), ShortRound),
					build: func(p hanja.AntonymPair, _ int) Question { return antonymQuestion(p, env.Pool) },
				}
			},
		},
		Idiom: {
			Info:      info(Idiom),
			Countdown: DefaultCountdown,
			Lives:     3,
			Total:     100,
			Percent:   true,
			NewSource: func(env Env) Source {
				return &fixed[hanja.Idiom]{
					items: order(env, hanja.IdiomsFor(env.Pool)),
					build: func(id hanja.Idiom, _ int) Question { return idiomQuestion(id) },
				}
			},
		},
		Homonym: {
			Info:      info(Homonym),
			Countdown: DefaultCountdown,
			TimeLimit: 60 * time.Second,
			NewSource: func(env Env) Source {
				return &fixed[[]hanja.Entry]{
					items: head(order(env, hanja.GroupByPronunciation(env.Pool, 2)), HomonymRound),
					build: func(g []hanja.Entry, _ int) Question { return homonymQuestion(g, env.Pool) },
				}
			},
		},
	}
}

// ModeFor returns the quiz rules for id. Gymnastics has no quiz mode; use Memory.
func ModeFor(id ID) (*Mode, error) {
	m, ok := modes()[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no quiz mode", ErrUnknownGame, id)
	}
	return m, nil
}

// SharedQuestions returns the first count entries of a seeded shuffle, so
// independent clients using the same seed get the same questions.
func SharedQuestions(pool []hanja.Entry, seed int64, count int) []hanja.Entry {
	return head(shuffle.SeededShuffle(pool, seed), count)
}

func head[T any](items []T, n int) []T {
	if n < len(items) {
		return items[:n]
	}
	return items
}

func pickEntry(pool []hanja.Entry) hanja.Entry {
	return shuffle.Pick(pool)
}

// labelQuestion shows a character and asks for its meaning and reading.
func labelQuestion(t hanja.Entry, pool []hanja.Entry) Question {
	opts, answer := decoy.Options(t, decoy.Generate(t, pool, DecoyCount, hanja.KeyLabel), hanja.KeyLabel)
	return Question{
		Target:    t,
		Symbol:    t.Symbol,
		Prompt:    t.Symbol,
		Hint:      "이 한자의 훈음은?",
		Options:   opts,
		Answer:    answer,
		WrongNote: t.Symbol + "(" + t.Label + ")",
	}
}

// symbolQuestion shows a meaning and reading and asks for the character.
func symbolQuestion(t hanja.Entry, pool []hanja.Entry) Question {
	opts, answer := decoy.Options(t, decoy.Generate(t, pool, DecoyCount, hanja.KeySymbol), hanja.KeySymbol)
	return Question{
		Target:    t,
		Symbol:    t.Symbol,
		Prompt:    t.Label,
		Hint:      "이 훈음의 한자는?",
		Options:   opts,
		Answer:    answer,
		WrongNote: t.Symbol + "(" + t.Label + ")",
	}
}

func antonymQuestion(p hanja.AntonymPair, pool []hanja.Entry) Question {
	bySymbol := make(map[string]hanja.Entry, len(pool))
	var rest []hanja.Entry
	for _, e := range pool {
		bySymbol[e.Symbol] = e
		if e.Symbol != p.A {
			rest = append(rest, e)
		}
	}
	a, b := bySymbol[p.A], bySymbol[p.B]

	symbols, answer := decoy.Options(b, decoy.Generate(b, rest, DecoyCount, hanja.KeySymbol), hanja.KeySymbol)
	opts := make([]string, len(symbols))
	for i, s := range symbols {
		opts[i] = s + "(" + bySymbol[s].Meaning + ")"
	}
	return Question{
		Target:    a,
		Symbol:    a.Symbol,
		Prompt:    a.Symbol,
		Hint:      a.Label + "의 반대말은?",
		Options:   opts,
		Answer:    answer,
		WrongNote: p.A + "↔" + p.B,
	}
}

func idiomQuestion(id hanja.Idiom) Question {
	var candidates []string
	for _, other := range hanja.Idioms() {
		if other.Text != id.Text {
			candidates = append(candidates, other.Meaning)
		}
	}
	candidates = append(candidates, hanja.ExtraIdiomMeanings...)

	opts, answer := decoy.StringOptions(id.Meaning, decoy.Strings(id.Meaning, candidates, DecoyCount))
	return Question{
		Symbol:    id.Text,
		Prompt:    id.Text,
		Hint:      id.Reading + ", 뜻은?",
		Options:   opts,
		Answer:    answer,
		WrongNote: id.Text,
	}
}

// homonymQuestion picks one character of a same-reading group and asks
// for its meaning among meanings of differently read characters.
func homonymQuestion(group []hanja.Entry, pool []hanja.Entry) Question {
	target := pickEntry(group)
	var others []hanja.Entry
	for _, e := range pool {
		if e.Pronunciation != target.Pronunciation {
			others = append(others, e)
		}
	}

	symbols := make([]string, len(group))
	for i, e := range group {
		symbols[i] = e.Symbol
	}

	opts, answer := decoy.Options(target, decoy.Generate(target, others, DecoyCount, hanja.KeyMeaning), hanja.KeyMeaning)
	return Question{
		Target:    target,
		Symbol:    target.Symbol,
		Prompt:    target.Symbol,
		Hint:      fmt.Sprintf("[%s] %v, 이 한자의 뜻은?", target.Pronunciation, symbols),
		Options:   opts,
		Answer:    answer,
		WrongNote: target.Symbol + "(" + target.Meaning + ")",
	}
}
