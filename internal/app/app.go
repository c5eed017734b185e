package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/screens/home"
	"github.com/abhisek/hanjaolympics/internal/screens/welcome"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *screen.Services
	router *router.Router
	home   *home.HomeScreen
	start  game.ID
	width  int
	height int
}

// newAppModel builds the screen stack. With a start game the welcome
// splash is skipped and the game opens over the home screen.
func newAppModel(svc *screen.Services, start game.ID) AppModel {
	hs := home.New(svc)
	m := AppModel{svc: svc, home: hs, start: start}
	if start != "" {
		m.router = router.New(hs)
	} else {
		m.router = router.New(welcome.New(func() screen.Screen { return hs }))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.start != "" {
		cmds = append(cmds, m.router.Push(home.GameScreen(m.svc, m.start)))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Games confirm before quitting; let them see esc.
			if c, ok := m.router.Active().(screen.EscCapturer); ok && c.CapturesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var player, grade string
	if m.svc != nil && m.svc.Player != nil {
		player = m.svc.Player.Icon + " " + m.svc.Player.Username
		grade = m.svc.Player.Grade().String()
	}
	header := layout.RenderHeader(title, player, grade, m.home.Streak(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// hints returns the active screen's key hints, or navigation defaults.
func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "종료"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "뒤로"},
			{Key: "Ctrl+C", Description: "종료"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "선택"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

// Run starts the Bubble Tea program. A non-empty start opens that game
// directly.
func Run(svc *screen.Services, start game.ID) error {
	p := tea.NewProgram(newAppModel(svc, start))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
