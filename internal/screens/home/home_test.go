package home

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/screens/memory"
	sessionscreen "github.com/abhisek/hanjaolympics/internal/screens/session"
	"github.com/abhisek/hanjaolympics/internal/store"
)

type fakeData struct {
	screen.Data
	streak   int
	dailyErr error
}

func (f *fakeData) DailyStreak(context.Context, string, time.Time) (int, error) {
	return f.streak, nil
}

func (f *fakeData) DailyChallenge(context.Context, string, time.Time) (store.DailyRecord, error) {
	return store.DailyRecord{}, f.dailyErr
}

func newHome(data screen.Data) *HomeScreen {
	return New(&screen.Services{
		Data:   data,
		Player: &screen.Player{ID: "u1", Username: "민준", Level: hanja.Grade7},
	})
}

func TestHome_MenuListsEveryGame(t *testing.T) {
	h := newHome(nil)
	labels := h.menu.Labels()
	require.Len(t, labels, len(game.Catalog())+5)
	for i, info := range game.Catalog() {
		assert.Equal(t, info.Title(), labels[i])
	}
	assert.Equal(t, "나가기", labels[len(labels)-1])
}

func TestHome_StatusLoad(t *testing.T) {
	tests := []struct {
		name     string
		dailyErr error
		done     bool
		mascot   MascotVariant
	}{
		{"daily done", nil, true, MascotCelebrating},
		{"daily pending", fmt.Errorf("daily: %w", store.ErrNotFound), false, MascotAlert},
		{"store error", errors.New("disk"), false, MascotAlert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHome(&fakeData{streak: 4, dailyErr: tt.dailyErr})
			cmd := h.Init()
			require.NotNil(t, cmd)
			h.Update(cmd())

			assert.Equal(t, 4, h.Streak())
			assert.Equal(t, tt.done, h.dailyDone)
			assert.Equal(t, tt.mascot, h.mascotVariant)
		})
	}
}

func TestHome_NoDataSkipsLoad(t *testing.T) {
	assert.Nil(t, newHome(nil).Init())
}

func TestHome_EnterPushesGame(t *testing.T) {
	h := newHome(nil)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "🏹 양궁", push.Screen.Title())
}

func TestGameScreen(t *testing.T) {
	svc := &screen.Services{Player: &screen.Player{Level: hanja.Grade8}}

	_, ok := GameScreen(svc, game.Gymnastics).(*memory.MemoryScreen)
	assert.True(t, ok, "gymnastics is the card game")

	_, ok = GameScreen(svc, game.Idiom).(*sessionscreen.SessionScreen)
	assert.True(t, ok)

	fallback := GameScreen(svc, game.ID("curling"))
	assert.Contains(t, fallback.Title(), "일일 도전")
}

func TestHome_ViewShowsGrade(t *testing.T) {
	h := newHome(nil)
	view := h.View(120, 40)
	assert.Contains(t, view, "7급")
	assert.Contains(t, view, "양궁")
}
