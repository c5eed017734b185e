package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/medal"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/session"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "game" }
func (s *stubScreen) Title() string                           { return "Game" }

func testResult() session.Result {
	return session.Result{
		GameID:     "archery",
		Score:      21,
		Total:      25,
		Medal:      medal.Gold,
		Detail:     "21/25 득점 (8발 명중)",
		Wrong:      []string{"水(물 수)", "火(불 화)"},
		Correct:    8,
		Answered:   10,
		BestStreak: 5,
		Duration:   95 * time.Second,
	}
}

func testInfo(t *testing.T, id string) game.Info {
	t.Helper()
	info, err := game.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", id, err)
	}
	return info
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(), testInfo(t, "archery"), nil)
	if s.Title() != "경기 결과" {
		t.Errorf("Title = %q, want %q", s.Title(), "경기 결과")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), testInfo(t, "archery"), nil)
	view := s.View(80, 24)
	for _, want := range []string{"금메달", "21 / 25", "水(물 수)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult(), testInfo(t, "archery"), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult(), testInfo(t, "archery"), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_Replay(t *testing.T) {
	calls := 0
	replay := func() screen.Screen {
		calls++
		return &stubScreen{}
	}
	s := New(testResult(), testInfo(t, "archery"), replay)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on R")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil || calls != 1 {
		t.Errorf("replay factory calls = %d, screen = %v", calls, msg.Screen)
	}
}

func TestSummaryScreen_FocusMovesToReplay(t *testing.T) {
	s := New(testResult(), testInfo(t, "archery"), func() screen.Screen { return &stubScreen{} })
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("Enter on the replay button should restart the game")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult(), testInfo(t, "archery"), nil)
	if got := len(s.KeyHints()); got != 2 {
		t.Errorf("KeyHints length = %d, want 2", got)
	}
	s = New(testResult(), testInfo(t, "archery"), func() screen.Screen { return &stubScreen{} })
	if got := len(s.KeyHints()); got != 3 {
		t.Errorf("KeyHints length = %d, want 3", got)
	}
}

func TestScoreLine(t *testing.T) {
	tests := []struct {
		res  session.Result
		want string
	}{
		{session.Result{GameID: "archery", Score: 21, Total: 25}, "21 / 25"},
		{session.Result{GameID: "marathon", Score: 85, Total: 100}, "85%"},
		{session.Result{GameID: "swimming", Score: 17}, "17점"},
		{session.Result{GameID: "gymnastics", Score: 14}, "14회 시도"},
	}
	for _, tt := range tests {
		if got := scoreLine(tt.res); got != tt.want {
			t.Errorf("scoreLine(%s) = %q, want %q", tt.res.GameID, got, tt.want)
		}
	}
}
