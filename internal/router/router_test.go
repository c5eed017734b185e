package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanjaolympics/internal/screen"
)

// stubScreen counts Init calls so navigation can be checked.
type stubScreen struct {
	title string
	inits int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// stack renders the titles bottom to top, e.g. "홈>양궁".
func stack(r *Router) string {
	titles := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		titles = append(titles, s.Title())
	}
	return strings.Join(titles, ">")
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"push", []tea.Msg{PushScreenMsg{&stubScreen{title: "양궁"}}}, "홈>양궁"},
		{"push then pop", []tea.Msg{PushScreenMsg{&stubScreen{title: "양궁"}}, PopScreenMsg{}}, "홈"},
		{"pop at bottom", []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}, "홈"},
		{"replace root", []tea.Msg{ReplaceScreenMsg{&stubScreen{title: "시작"}}}, "시작"},
		{"replace top keeps depth", []tea.Msg{
			PushScreenMsg{&stubScreen{title: "양궁"}},
			ReplaceScreenMsg{&stubScreen{title: "결과"}},
		}, "홈>결과"},
		{"pop to root", []tea.Msg{
			PushScreenMsg{&stubScreen{title: "순위표"}},
			PushScreenMsg{&stubScreen{title: "양궁"}},
			PopToRootMsg{},
		}, "홈"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&stubScreen{title: "홈"})
			for _, msg := range tt.msgs {
				r.Update(msg)
			}
			if got := stack(r); got != tt.want {
				t.Errorf("stack = %q, want %q", got, tt.want)
			}
			if r.Depth() != strings.Count(tt.want, ">")+1 {
				t.Errorf("Depth() = %d for stack %q", r.Depth(), tt.want)
			}
		})
	}
}

func TestInitRunsOnArrival(t *testing.T) {
	root := &stubScreen{title: "홈"}
	r := New(root)

	game := &stubScreen{title: "양궁"}
	r.Push(game)
	if game.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", game.inits)
	}

	summary := &stubScreen{title: "결과"}
	r.Replace(summary)
	if summary.inits != 1 {
		t.Errorf("replacing screen inits = %d, want 1", summary.inits)
	}

	r.PopToRoot()
	if root.inits != 1 {
		t.Errorf("root inits = %d, want 1 after returning home", root.inits)
	}

	// Pop reveals the screen below without re-initializing it.
	r.Push(game)
	r.Pop()
	if root.inits != 1 {
		t.Errorf("root inits = %d after pop, want 1", root.inits)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r := New(&stubScreen{title: "홈"})
	r.Push(&stubScreen{title: "양궁"})

	if cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("stub screen should return no command")
	}
	if got := r.View(80, 24); got != "양궁" {
		t.Errorf("View() = %q, want the active screen", got)
	}
}
