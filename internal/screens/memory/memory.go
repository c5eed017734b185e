// Package memory is the card matching game screen.
package memory

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/screens/summary"
	sess "github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
)

const (
	// columns is the board width in cards.
	columns = 4

	matchDelay = 400 * time.Millisecond
	missDelay  = 900 * time.Millisecond
)

type tickMsg struct{ id string }

// resolveMsg turns the flipped pair of attempt n back over.
type resolveMsg struct {
	id string
	n  int
}

type endMsg struct{}

// MemoryScreen plays the card matching game.
type MemoryScreen struct {
	svc   *screen.Services
	rules game.MemoryRules
	game  *sess.Memory

	cursor      int
	quitConfirm bool
	ended       bool
}

var _ screen.Screen = (*MemoryScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryScreen)(nil)
var _ screen.EscCapturer = (*MemoryScreen)(nil)

// New deals a board for the services' player.
func New(svc *screen.Services, rules game.MemoryRules) *MemoryScreen {
	return &MemoryScreen{
		svc:   svc,
		rules: rules,
		game:  sess.NewMemory(rules, svc.SessionConfig()),
	}
}

func (m *MemoryScreen) Init() tea.Cmd {
	if m.game.Phase() == sess.PhaseDone {
		return endCmd()
	}
	return tickCmd(m.game.ID())
}

func (m *MemoryScreen) Title() string {
	return m.rules.Title()
}

func (m *MemoryScreen) CapturesEsc() bool {
	return !m.ended
}

func (m *MemoryScreen) KeyHints() []layout.KeyHint {
	if m.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "그만하기"},
			{Key: "N", Description: "계속하기"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "이동"},
		{Key: "Enter", Description: "뒤집기"},
		{Key: "Esc", Description: "그만하기"},
	}
}

func (m *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != m.game.ID() || m.ended {
			return m, nil
		}
		m.game.Tick()
		if m.game.Phase() == sess.PhaseDone {
			return m, endCmd()
		}
		return m, tickCmd(m.game.ID())

	case resolveMsg:
		if msg.id != m.game.ID() || msg.n != m.game.Attempts() {
			return m, nil
		}
		return m.resolve()

	case endMsg:
		return m.handleEnd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *MemoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if m.quitConfirm {
		switch key {
		case "y", "Y":
			m.quitConfirm = false
			m.ended = true
			m.game.Close()
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			m.quitConfirm = false
		}
		return m, nil
	}

	if key == "esc" {
		if m.ended {
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
		m.quitConfirm = true
		return m, nil
	}

	switch m.game.Phase() {
	case sess.PhaseResolved:
		// Any key hurries the flipped pair back.
		return m.resolve()
	case sess.PhaseAwaiting:
	default:
		return m, nil
	}

	n := len(m.game.Board().Cards)
	switch key {
	case "left", "h":
		if m.cursor%columns > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%columns < columns-1 && m.cursor+1 < n {
			m.cursor++
		}
	case "up", "k":
		if m.cursor-columns >= 0 {
			m.cursor -= columns
		}
	case "down", "j":
		if m.cursor+columns < n {
			m.cursor += columns
		}
	case "enter", "space":
		return m.flip(m.cursor)
	}
	return m, nil
}

func (m *MemoryScreen) flip(i int) (screen.Screen, tea.Cmd) {
	if !m.game.Flip(i) || m.game.Phase() != sess.PhaseResolved {
		return m, nil
	}
	id, n := m.game.ID(), m.game.Attempts()
	delay := missDelay
	if m.game.LastMatch() {
		delay = matchDelay
	}
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return resolveMsg{id: id, n: n}
	})
}

func (m *MemoryScreen) resolve() (screen.Screen, tea.Cmd) {
	if m.game.Phase() != sess.PhaseResolved {
		return m, nil
	}
	m.game.Next()
	if m.game.Phase() == sess.PhaseDone {
		return m, endCmd()
	}
	return m, nil
}

func (m *MemoryScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if m.ended {
		return m, nil
	}
	m.ended = true
	res := m.game.Finish()

	svc, rules := m.svc, m.rules
	replay := func() screen.Screen { return New(svc, rules) }
	next := summary.New(res, rules.Info, replay)
	return m, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func tickCmd(id string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func endCmd() tea.Cmd {
	return func() tea.Msg { return endMsg{} }
}
