package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	sess "github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
)

const (
	correctDelay = 600 * time.Millisecond
	wrongDelay   = 1500 * time.Millisecond
)

// SessionScreen plays one quiz game.
type SessionScreen struct {
	svc  *screen.Services
	mode *game.Mode
	sess *sess.Session

	mc          components.MultiChoice
	shown       int // index of the question mc was built for
	quitConfirm bool
	ended       bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscCapturer = (*SessionScreen)(nil)

// New starts a session of mode for the services' player.
func New(svc *screen.Services, mode *game.Mode) *SessionScreen {
	s := &SessionScreen{
		svc:   svc,
		mode:  mode,
		sess:  sess.New(mode, svc.SessionConfig()),
		shown: -1,
	}
	s.syncQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.sess.Phase() == sess.PhaseDone {
		return endCmd()
	}
	return tickCmd(s.sess.ID())
}

func (s *SessionScreen) Title() string {
	return s.mode.Title()
}

func (s *SessionScreen) CapturesEsc() bool {
	return !s.ended
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "그만하기"},
			{Key: "N", Description: "계속하기"},
		}
	}
	switch s.sess.Phase() {
	case sess.PhaseAwaiting:
		return []layout.KeyHint{
			{Key: "1-4", Description: "선택"},
			{Key: "↑↓", Description: "이동"},
			{Key: "Enter", Description: "확인"},
			{Key: "Esc", Description: "그만하기"},
		}
	case sess.PhaseResolved:
		return []layout.KeyHint{
			{Key: "아무 키", Description: "다음 문제"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "그만하기"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case advanceMsg:
		if msg.id != s.sess.ID() || msg.n != s.sess.Index() {
			return s, nil
		}
		return s.advance()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.id != s.sess.ID() || s.ended {
		return s, nil
	}
	s.sess.Tick()
	s.syncQuestion()
	if s.sess.Phase() == sess.PhaseDone {
		return s, endCmd()
	}
	return s, tickCmd(s.sess.ID())
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.ended = true
			s.sess.Close()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		if s.ended {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.quitConfirm = true
		return s, nil
	}

	switch s.sess.Phase() {
	case sess.PhaseAwaiting:
		var choice int
		s.mc, choice = s.mc.Update(msg)
		if choice < 0 || !s.sess.Answer(choice) {
			return s, nil
		}
		return s, s.feedbackCmd()

	case sess.PhaseResolved:
		return s.advance()
	}
	return s, nil
}

// advance leaves the feedback display for the next question or the results.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if s.sess.Phase() != sess.PhaseResolved {
		return s, nil
	}
	s.sess.Next()
	s.syncQuestion()
	if s.sess.Phase() == sess.PhaseDone {
		return s, endCmd()
	}
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true
	res := s.sess.Finish()

	svc, mode := s.svc, s.mode
	replay := func() screen.Screen { return New(svc, mode) }
	next := newSummaryScreenAdapter(res, mode.Info, replay)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// syncQuestion rebuilds the option selector when a new question appears.
func (s *SessionScreen) syncQuestion() {
	if s.sess.Phase() != sess.PhaseAwaiting || s.shown == s.sess.Index() {
		return
	}
	s.mc = components.NewMultiChoice(s.sess.Question().Options)
	s.shown = s.sess.Index()
}

func (s *SessionScreen) feedbackCmd() tea.Cmd {
	id, n := s.sess.ID(), s.sess.Index()
	delay := wrongDelay
	if _, correct := s.sess.LastAnswer(); correct {
		delay = correctDelay
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceMsg{id: id, n: n}
	})
}

// tickCmd returns a 1-second tick command for session id.
func tickCmd(id string) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{id: id, at: t}
	})
}

func endCmd() tea.Cmd {
	return func() tea.Msg { return sessionEndMsg{} }
}
