package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// fakeData serves canned rows; unused methods return zero values.
type fakeData struct {
	screen.Data
	scores  []store.ScoreRecord
	best    []store.BestScore
	err     error
	bestErr error
}

func (f *fakeData) RecentScores(_ context.Context, _ string, limit int) ([]store.ScoreRecord, error) {
	return f.scores, f.err
}

func (f *fakeData) BestScores(context.Context, string) ([]store.BestScore, error) {
	return f.best, f.bestErr
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should return a load command")
	}
	s.Update(cmd())
}

func TestHistory_ListsScores(t *testing.T) {
	data := &fakeData{
		scores: []store.ScoreRecord{
			{GameID: "archery", Score: 21, Total: 25, Medal: medal.Gold, Grade: hanja.Grade8,
				Detail: "21/25 득점", Wrong: []string{"水(물 수)"}, CreatedAt: time.Now()},
			{GameID: "swimming", Score: 12, Medal: medal.Bronze, Grade: hanja.Grade8, CreatedAt: time.Now()},
		},
		best: []store.BestScore{{GameID: "archery", Best: 21, Medal: medal.Gold}},
	}
	s := New(&screen.Services{Data: data, Player: &screen.Player{ID: "u1"}})
	load(t, s)

	view := s.View(100, 30)
	for _, want := range []string{"양궁", "21/25", "수영", "최고 기록"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "水(물 수)") {
		t.Error("wrong answers should be hidden until expanded")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "水(물 수)") {
		t.Error("expanded row should list wrong answers")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(&screen.Services{Data: &fakeData{}, Player: &screen.Player{ID: "u1"}})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "아직 경기 기록이 없습니다") {
		t.Error("expected empty-state message")
	}
}

func TestHistory_Errors(t *testing.T) {
	s := New(&screen.Services{Data: &fakeData{err: errors.New("disk gone")}, Player: &screen.Player{ID: "u1"}})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "disk gone") {
		t.Error("expected the load error in the view")
	}

	s = New(&screen.Services{})
	load(t, s)
	if s.errMsg == "" {
		t.Error("expected an error without a data store")
	}
}

func TestHistory_BestScoresOptional(t *testing.T) {
	data := &fakeData{
		scores:  []store.ScoreRecord{{GameID: "idiom", Score: 80, Total: 100, CreatedAt: time.Now()}},
		bestErr: errors.New("boom"),
	}
	s := New(&screen.Services{Data: data, Player: &screen.Player{ID: "u1"}})
	load(t, s)
	if s.errMsg != "" {
		t.Errorf("errMsg = %q, want none", s.errMsg)
	}
	if len(s.scores) != 1 {
		t.Errorf("scores = %d, want 1", len(s.scores))
	}
}
