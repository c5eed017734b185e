package memory

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	sess "github.com/abhisek/hanjaolympics/internal/session"
)

type fakeRecorder struct {
	answers []bool
	results []sess.Result
}

func (f *fakeRecorder) RecordAnswer(_, _ string, correct bool) { f.answers = append(f.answers, correct) }
func (f *fakeRecorder) RecordResult(r sess.Result)              { f.results = append(f.results, r) }

func newTestScreen(t *testing.T) (*MemoryScreen, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	svc := &screen.Services{
		Recorder: rec,
		Player:   &screen.Player{ID: "u1", Level: hanja.Grade8},
		Seed:     7,
	}
	return New(svc, game.Memory()), rec
}

func startPlay(m *MemoryScreen) {
	for m.game.Phase() == sess.PhaseCountdown || m.game.Phase() == sess.PhasePeek {
		m.Update(tickMsg{id: m.game.ID()})
	}
}

// pairs maps each pair id to its two card indexes.
func pairs(m *MemoryScreen) map[int][]int {
	out := make(map[int][]int)
	for i, c := range m.game.Board().Cards {
		out[c.PairID] = append(out[c.PairID], i)
	}
	return out
}

func flipAt(m *MemoryScreen, i int) tea.Cmd {
	m.cursor = i
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMemoryScreen_PeekThenPlay(t *testing.T) {
	m, _ := newTestScreen(t)
	require.NotNil(t, m.Init())
	assert.Equal(t, sess.PhaseCountdown, m.game.Phase())
	assert.NotEmpty(t, m.View(100, 30))

	for i := 0; i < game.DefaultCountdown; i++ {
		m.Update(tickMsg{id: m.game.ID()})
	}
	require.Equal(t, sess.PhasePeek, m.game.Phase())
	for _, c := range m.game.Board().Cards {
		assert.True(t, c.FaceUp, "cards are shown during the peek")
	}

	startPlay(m)
	assert.Equal(t, sess.PhaseAwaiting, m.game.Phase())
	for _, c := range m.game.Board().Cards {
		assert.False(t, c.FaceUp)
	}
}

func TestMemoryScreen_PerfectGame(t *testing.T) {
	m, rec := newTestScreen(t)
	startPlay(m)

	var cmd tea.Cmd
	for _, idx := range pairs(m) {
		require.Len(t, idx, 2)
		flipAt(m, idx[0])
		require.NotNil(t, flipAt(m, idx[1]))
		require.True(t, m.game.LastMatch())
		_, cmd = m.Update(resolveMsg{id: m.game.ID(), n: m.game.Attempts()})
	}
	require.NotNil(t, cmd)
	require.IsType(t, endMsg{}, cmd())

	_, cmd = m.Update(endMsg{})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)

	require.Len(t, rec.results, 1)
	assert.Equal(t, game.Memory().Pairs, rec.results[0].Score)
	assert.Equal(t, medal.Gold, rec.results[0].Medal)
	assert.Len(t, rec.answers, game.Memory().Pairs)
}

func TestMemoryScreen_MissTurnsCardsBack(t *testing.T) {
	m, rec := newTestScreen(t)
	startPlay(m)

	p := pairs(m)
	a, b := p[0][0], p[1][0]
	flipAt(m, a)
	flipAt(m, b)
	require.Equal(t, sess.PhaseResolved, m.game.Phase())
	assert.False(t, m.game.LastMatch())
	assert.NotEmpty(t, m.View(100, 30))

	// Any key hurries the pair back over.
	m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, sess.PhaseAwaiting, m.game.Phase())
	assert.False(t, m.game.Board().Cards[a].FaceUp)
	assert.False(t, m.game.Board().Cards[b].FaceUp)
	assert.Equal(t, []bool{false}, rec.answers)

	// The delayed resolve for the same attempt is now stale.
	_, cmd := m.Update(resolveMsg{id: m.game.ID(), n: 1})
	assert.Nil(t, cmd)
}

func TestMemoryScreen_CursorStaysOnBoard(t *testing.T) {
	m, _ := newTestScreen(t)
	startPlay(m)

	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
		m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, len(m.game.Board().Cards)-1, m.cursor)
}

func TestMemoryScreen_Quit(t *testing.T) {
	m, rec := newTestScreen(t)
	startPlay(m)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.True(t, m.quitConfirm)
	assert.Len(t, m.KeyHints(), 2)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.Empty(t, rec.results)
	assert.False(t, m.CapturesEsc())
}

func TestMemoryScreen_StaleTick(t *testing.T) {
	m, _ := newTestScreen(t)
	_, cmd := m.Update(tickMsg{id: "old"})
	assert.Nil(t, cmd)
	assert.Equal(t, game.DefaultCountdown, m.game.Countdown())
}
