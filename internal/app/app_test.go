package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/screens/home"
	"github.com/abhisek/hanjaolympics/internal/screens/welcome"
)

func testServices() *screen.Services {
	return &screen.Services{
		Player: &screen.Player{ID: "u1", Username: "민준", Icon: "🐯", Level: hanja.Grade8},
		Seed:   7,
	}
}

func TestNewAppModel_StartsWithWelcome(t *testing.T) {
	m := newAppModel(testServices(), "")
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok, "splash should open the app")
	assert.Equal(t, 1, m.router.Depth())
}

func TestNewAppModel_StartGame(t *testing.T) {
	m := newAppModel(testServices(), game.Archery)
	_, ok := m.router.Active().(*home.HomeScreen)
	require.True(t, ok)

	m.Init()
	assert.Equal(t, 2, m.router.Depth(), "game opens over home")
	assert.Equal(t, "🏹 양궁", m.router.Active().Title())
}

func TestEscForwardedToGames(t *testing.T) {
	m := newAppModel(testServices(), "")
	m.router.Replace(m.home)
	m.router.Push(home.GameScreen(m.svc, game.Archery))

	// The game asks before quitting, so esc is forwarded instead of popping.
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		_, popped := cmd().(router.PopScreenMsg)
		assert.False(t, popped)
	}
	assert.Equal(t, 2, m.router.Depth())
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(testServices(), "")
	m.router.Replace(m.home)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testServices(), "")
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsHeaderAndHints(t *testing.T) {
	m := newAppModel(testServices(), "")
	m.router.Replace(m.home)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 45})
	m = updated.(AppModel)

	content := m.render()
	assert.Contains(t, content, "漢字 Olympics")
	assert.Contains(t, content, "민준")
	assert.Contains(t, content, "8급")
	assert.Contains(t, content, "선택")
}

func TestEscPopsOrdinaryScreens(t *testing.T) {
	m := newAppModel(testServices(), "")
	m.router.Replace(m.home)
	m.router.Push(welcome.New(func() screen.Screen { return m.home }))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}
