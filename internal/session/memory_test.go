package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
)

func startMemory(t *testing.T, rec Recorder) *Memory {
	t.Helper()
	m := NewMemory(game.Memory(), Config{Profile: FixedGrade(hanja.Grade8), Recorder: rec, Seed: 7})
	require.Equal(t, PhaseCountdown, m.Phase())
	for i := 0; i < 3; i++ {
		m.Tick()
	}
	require.Equal(t, PhasePeek, m.Phase())
	for _, c := range m.Board().Cards {
		require.True(t, c.FaceUp)
	}
	for i := 0; i < 3; i++ {
		m.Tick()
	}
	require.Equal(t, PhaseAwaiting, m.Phase())
	for _, c := range m.Board().Cards {
		require.False(t, c.FaceUp)
	}
	return m
}

func pairIndexes(b *game.Board) [][2]int {
	seen := map[int]int{}
	var out [][2]int
	for i, c := range b.Cards {
		if j, ok := seen[c.PairID]; ok {
			out = append(out, [2]int{j, i})
			continue
		}
		seen[c.PairID] = i
	}
	return out
}

func TestMemory_PerfectGameEarnsGold(t *testing.T) {
	rec := &fakeRecorder{}
	m := startMemory(t, rec)

	pairs := pairIndexes(m.Board())
	require.Len(t, pairs, 8)
	for _, p := range pairs {
		require.True(t, m.Flip(p[0]))
		require.True(t, m.Flip(p[1]))
		assert.True(t, m.LastMatch())
		m.Next()
	}

	require.Equal(t, PhaseDone, m.Phase())
	res := m.Finish()
	assert.Equal(t, 8, res.Score)
	assert.Equal(t, medal.Gold, res.Medal)
	assert.Equal(t, 8, res.BestStreak)
	assert.Len(t, rec.answers, 8)
	assert.Len(t, rec.results, 1)
	assert.Contains(t, res.Detail, "8회 시도")
	assert.False(t, res.Incomplete)
}

func TestMemory_MismatchFlipsBack(t *testing.T) {
	rec := &fakeRecorder{}
	m := startMemory(t, rec)
	pairs := pairIndexes(m.Board())

	a, b := pairs[0][0], pairs[1][0]
	first := m.Board().Cards[a].Entry.Symbol
	require.True(t, m.Flip(a))
	assert.False(t, m.Flip(a), "a face-up card cannot be flipped again")
	assert.Zero(t, m.Attempts())
	assert.Equal(t, PhaseAwaiting, m.Phase())
	require.True(t, m.Flip(b))
	assert.False(t, m.LastMatch())
	assert.Equal(t, PhaseResolved, m.Phase())
	assert.False(t, m.Flip(pairs[2][0]), "no third card while resolved")

	m.Next()
	assert.Equal(t, PhaseAwaiting, m.Phase())
	assert.False(t, m.Board().Cards[a].FaceUp)
	assert.False(t, m.Board().Cards[b].FaceUp)
	assert.Equal(t, 1, m.Attempts())
	assert.Zero(t, m.Combo())

	require.Len(t, rec.answers, 1)
	assert.Equal(t, answerEvent{"gymnastics", first, false}, rec.answers[0])
}

func TestMemory_MatchAddsTime(t *testing.T) {
	m := startMemory(t, nil)
	rules := m.Rules()
	pairs := pairIndexes(m.Board())

	start := m.Remaining()
	for i := 0; i < rules.ComboThreshold; i++ {
		m.Flip(pairs[i][0])
		m.Flip(pairs[i][1])
		m.Next()
	}
	want := start + time.Duration(rules.ComboThreshold-1)*rules.MatchBonus + rules.ComboBonus
	assert.Equal(t, want, m.Remaining())
}

func TestMemory_ComboBonus(t *testing.T) {
	m := startMemory(t, nil)
	rules := m.Rules()
	require.Equal(t, 4, rules.ComboThreshold)
	require.Equal(t, 8*time.Second, rules.ComboBonus)
	pairs := pairIndexes(m.Board())

	match := func(p [2]int) time.Duration {
		before := m.Remaining()
		require.True(t, m.Flip(p[0]))
		require.True(t, m.Flip(p[1]))
		require.True(t, m.LastMatch())
		m.Next()
		return m.Remaining() - before
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, rules.MatchBonus, match(pairs[i]), "match %d", i+1)
	}
	assert.Equal(t, rules.ComboBonus, match(pairs[3]), "combo reaches the threshold")
	assert.Equal(t, rules.ComboBonus, match(pairs[4]), "combo stays above the threshold")
	assert.Equal(t, 5, m.Combo())

	before := m.Remaining()
	require.True(t, m.Flip(pairs[5][0]))
	require.True(t, m.Flip(pairs[6][0]))
	m.Next()
	assert.Equal(t, before, m.Remaining(), "a miss adds no time")
	assert.Zero(t, m.Combo())

	assert.Equal(t, rules.MatchBonus, match(pairs[5]), "bonus drops back after a miss")
}

func TestMemory_TimeoutWithoutClearingEarnsNoMedal(t *testing.T) {
	rec := &fakeRecorder{}
	m := startMemory(t, rec)
	pairs := pairIndexes(m.Board())
	require.True(t, m.Flip(pairs[0][0]))
	require.True(t, m.Flip(pairs[0][1]))
	m.Next()
	m.Elapse(m.Remaining())

	require.Equal(t, PhaseDone, m.Phase())
	res := m.Finish()
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, medal.None, res.Medal)
	assert.True(t, res.Incomplete, "an uncleared board must not rank")
	require.Len(t, rec.results, 1)
	assert.True(t, rec.results[0].Incomplete)
}

func TestMemory_CloseAbandons(t *testing.T) {
	rec := &fakeRecorder{}
	m := startMemory(t, rec)
	m.Close()
	assert.False(t, m.Flip(0))
	m.Finish()
	assert.Empty(t, rec.results)
}

func TestMemory_EmptyPool(t *testing.T) {
	m := NewMemory(game.Memory(), Config{Pool: []hanja.Entry{}})
	assert.Equal(t, PhaseDone, m.Phase())
}
