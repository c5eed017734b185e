package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/store"
	"github.com/abhisek/hanjaolympics/internal/ui/components"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// Field is a focusable row of the form.
type Field int

const (
	FieldName Field = iota
	FieldGrade
	FieldSeed
	FieldSave
	fieldCount
)

const (
	maxNameLen = 12
	maxSeedLen = 9
	shownStats = 5
)

var errEmptyName = errors.New("이름을 입력하세요")

type statsLoadedMsg struct {
	stats store.Stats
	err   error
}

type savedMsg struct {
	name  string
	grade hanja.Grade
	err   error
}

// ProfileScreen edits the player's name, grade and question seed, and
// shows answer statistics.
type ProfileScreen struct {
	svc    *screen.Services
	focus  Field
	name   components.TextInput
	seed   components.TextInput
	grades []hanja.Grade
	grade  int

	stats   store.Stats
	loaded  bool
	saving  bool
	message string
	failed  bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New fills the form from the current player.
func New(svc *screen.Services) *ProfileScreen {
	var player *screen.Player
	if svc != nil {
		player = svc.Player
	}

	s := &ProfileScreen{
		svc:    svc,
		name:   components.NewTextInput("이름", maxNameLen, components.Required(errEmptyName)),
		seed:   components.NewSeedInput(maxSeedLen),
		grades: hanja.GradeHierarchy(),
	}
	if player != nil {
		s.name.SetValue(player.Username)
	}
	if svc != nil && svc.Seed != 0 {
		s.seed.SetValue(strconv.FormatInt(svc.Seed, 10))
	}
	if i := hanja.GradeIndex(player.Grade()); i >= 0 {
		s.grade = i
	}
	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	svc := s.svc
	load := func() tea.Msg {
		if svc == nil || svc.Data == nil {
			return statsLoadedMsg{}
		}
		st, err := svc.Data.HanjaStats(context.Background(), svc.UserID())
		return statsLoadedMsg{stats: st, err: err}
	}
	return tea.Batch(s.name.Init(), load)
}

func (s *ProfileScreen) Title() string {
	return "내 정보"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "항목"},
		{Key: "←→", Description: "급수"},
		{Key: "Enter", Description: "저장"},
		{Key: "Esc", Description: "뒤로"},
	}
}

// Focused returns the field with keyboard focus.
func (s *ProfileScreen) Focused() Field { return s.focus }

// SelectedGrade returns the grade shown in the form.
func (s *ProfileScreen) SelectedGrade() hanja.Grade { return s.grades[s.grade] }

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.loaded = true
		if msg.err == nil {
			s.stats = msg.stats
		}
		return s, nil

	case savedMsg:
		s.saving = false
		if msg.err != nil {
			s.message, s.failed = "저장 실패: "+msg.err.Error(), true
			return s, nil
		}
		if s.svc != nil && s.svc.Player != nil {
			s.svc.Player.Username = msg.name
			s.svc.Player.Level = msg.grade
		}
		s.message, s.failed = "저장했습니다", false
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "shift+tab":
			return s, s.move(-1)
		case "down", "tab":
			return s, s.move(1)
		case "enter":
			return s, s.save()
		}

		switch s.focus {
		case FieldName:
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		case FieldSeed:
			var cmd tea.Cmd
			s.seed, cmd = s.seed.Update(msg)
			return s, cmd
		case FieldGrade:
			switch msg.String() {
			case "left", "h":
				if s.grade > 0 {
					s.grade--
				}
			case "right", "l":
				if s.grade < len(s.grades)-1 {
					s.grade++
				}
			}
		}
	}
	return s, nil
}

func (s *ProfileScreen) move(dir int) tea.Cmd {
	s.focus = Field((int(s.focus) + dir + int(fieldCount)) % int(fieldCount))
	s.name.Blur()
	s.seed.Blur()
	switch s.focus {
	case FieldName:
		return s.name.Focus()
	case FieldSeed:
		return s.seed.Focus()
	}
	return nil
}

// save applies the seed at once and writes name and grade to the store.
func (s *ProfileScreen) save() tea.Cmd {
	if s.saving {
		return nil
	}
	for _, f := range []*components.TextInput{&s.name, &s.seed} {
		if err := f.Check(); err != nil {
			s.message, s.failed = err.Error(), true
			return nil
		}
	}
	name := s.name.Text()
	if s.svc != nil {
		s.svc.Seed = s.seed.Seed()
	}

	grade := s.SelectedGrade()
	svc := s.svc
	s.saving = true
	return func() tea.Msg {
		if svc == nil || svc.Data == nil || svc.Player == nil {
			return savedMsg{name: name, grade: grade}
		}
		ctx := context.Background()
		if name != svc.Player.Username {
			if err := svc.Data.Rename(ctx, svc.UserID(), name); err != nil {
				return savedMsg{err: err}
			}
		}
		if err := svc.Data.SetGrade(ctx, svc.UserID(), grade); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{name: name, grade: grade}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(theme.Title.Render("🐯 내 정보"))
	b.WriteString("\n")

	center(s.row(FieldName, "이름", s.name.View()))
	center(s.row(FieldGrade, "급수", s.gradePicker()))
	center(s.row(FieldSeed, "문제 시드", s.seed.View()))
	b.WriteString("\n")
	center(components.ArcadeButton("저장", s.focus == FieldSave, 16))

	if s.message != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.failed {
			style = style.Foreground(theme.Error)
		}
		center(style.Render(s.message))
	}

	b.WriteString("\n")
	for _, line := range s.statsLines() {
		center(line)
	}
	return b.String()
}

func (s *ProfileScreen) row(f Field, label, value string) string {
	marker := "  "
	style := lipgloss.NewStyle().Foreground(theme.TextDim).Width(10)
	if s.focus == f {
		marker = "▸ "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return marker + style.Render(label) + " " + value
}

func (s *ProfileScreen) gradePicker() string {
	g := s.SelectedGrade()
	pool := len(hanja.ForGrade(g))
	label := lipgloss.NewStyle().Bold(true).Foreground(theme.ArcadeYellow).Render(g.String())
	return fmt.Sprintf("◀ %s ▶  %s", label,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("(%d자)", pool)))
}

func (s *ProfileScreen) statsLines() []string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !s.loaded {
		return []string{dim.Render("통계를 불러오는 중...")}
	}
	if len(s.stats.Grades) == 0 && len(s.stats.TopMissed) == 0 {
		return []string{dim.Italic(true).Render("아직 푼 문제가 없습니다")}
	}

	var lines []string
	for _, g := range s.stats.Grades {
		bar := components.ProgressBar{Width: 20, Percent: g.Rate(), Fill: theme.Secondary}
		lines = append(lines, fmt.Sprintf("%-4s %s %3.0f%%", g.Grade, bar.View(), g.Rate()*100))
	}
	if missed := statList(s.stats.TopMissed, shownStats); missed != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Error).Render("자주 틀린 한자  ")+missed)
	}
	return lines
}

func statList(stats []store.HanjaStat, n int) string {
	var parts []string
	for i, st := range stats {
		if i >= n {
			break
		}
		label := st.Symbol
		if e, ok := hanja.Lookup(st.Symbol); ok {
			label = fmt.Sprintf("%s(%s)", e.Symbol, e.Label)
		}
		parts = append(parts, fmt.Sprintf("%s ×%d", label, st.Wrong))
	}
	return strings.Join(parts, "  ")
}
