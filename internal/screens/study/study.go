// Package study is the flashcard screen for browsing the grade's pool.
package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/router"
	"github.com/abhisek/hanjaolympics/internal/screen"
	"github.com/abhisek/hanjaolympics/internal/ui/layout"
	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// Tab is one page of the study screen.
type Tab int

const (
	TabCards Tab = iota
	TabAntonyms
	TabIdioms
)

var tabNames = []string{"한자 카드", "반의어", "사자성어"}

// StudyScreen shows flashcards by category plus the antonym and idiom lists.
type StudyScreen struct {
	grade      hanja.Grade
	categories []string
	byCategory map[string][]hanja.Entry
	antonyms   []hanja.AntonymPair
	idioms     []hanja.Idiom

	tab      Tab
	category int
	card     int
	revealed bool
	offset   int
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New builds the study material for the player's grade.
func New(svc *screen.Services) *StudyScreen {
	var grade hanja.Grade
	if svc != nil {
		grade = svc.Player.Grade()
	}
	grade = hanja.LabelOrDefault(grade)
	pool := hanja.ForGrade(grade)
	return &StudyScreen{
		grade:      grade,
		categories: hanja.Categories(pool),
		byCategory: hanja.ByCategory(pool),
		antonyms:   hanja.AntonymsFor(pool),
		idioms:     hanja.IdiomsFor(pool),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return "한자 공부 · " + s.grade.String()
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "다음 탭"}}
	if s.tab == TabCards {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "분류"},
			layout.KeyHint{Key: "↑↓", Description: "카드"},
			layout.KeyHint{Key: "Space", Description: "뜻 보기"},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "스크롤"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "뒤로"})
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		s.tab = (s.tab + 1) % Tab(len(tabNames))
		s.offset = 0
		return s, nil
	}

	if s.tab == TabCards {
		s.updateCards(kmsg.String())
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < s.listLen()-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *StudyScreen) updateCards(key string) {
	if len(s.categories) == 0 {
		return
	}
	cards := s.currentCards()
	switch key {
	case "left", "h":
		s.category = (s.category - 1 + len(s.categories)) % len(s.categories)
		s.card, s.revealed = 0, false
	case "right", "l":
		s.category = (s.category + 1) % len(s.categories)
		s.card, s.revealed = 0, false
	case "up", "k":
		if s.card > 0 {
			s.card--
			s.revealed = false
		}
	case "down", "j":
		if s.card < len(cards)-1 {
			s.card++
			s.revealed = false
		}
	case "space", "enter":
		s.revealed = !s.revealed
	}
}

func (s *StudyScreen) currentCards() []hanja.Entry {
	if len(s.categories) == 0 {
		return nil
	}
	return s.byCategory[s.categories[s.category]]
}

// Current returns the card on screen.
func (s *StudyScreen) Current() (hanja.Entry, bool) {
	cards := s.currentCards()
	if s.card < 0 || s.card >= len(cards) {
		return hanja.Entry{}, false
	}
	return cards[s.card], true
}

func (s *StudyScreen) listLen() int {
	if s.tab == TabAntonyms {
		return len(s.antonyms)
	}
	return len(s.idioms)
}

func (s *StudyScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	var body string
	switch s.tab {
	case TabCards:
		body = s.renderCard()
	case TabAntonyms:
		lines := make([]string, len(s.antonyms))
		for i, p := range s.antonyms {
			lines[i] = s.describePair(p)
		}
		body = renderList(lines, s.offset, height-4, "이 급수에는 반의어가 없습니다.")
	case TabIdioms:
		lines := make([]string, len(s.idioms))
		for i, id := range s.idioms {
			lines[i] = fmt.Sprintf("%s (%s)  %s", id.Text, id.Reading, id.Meaning)
		}
		body = renderList(lines, s.offset, height-4, "이 급수에는 사자성어가 없습니다.")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	return b.String()
}

func (s *StudyScreen) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == s.tab {
			parts[i] = theme.Selected.Render("[" + name + "]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + name + " ")
		}
	}
	return strings.Join(parts, "  ")
}

func (s *StudyScreen) renderCard() string {
	e, ok := s.Current()
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("공부할 한자가 없습니다.")
	}

	cards := s.currentCards()
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("◂ %s ▸  %d/%d", s.categories[s.category], s.card+1, len(cards)))

	answer := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Space를 눌러 훈음 보기")
	if s.revealed {
		answer = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.Label) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ("+e.Grade.String()+")")
	}
	return lipgloss.JoinVertical(lipgloss.Center, header, "", theme.Glyph.Render(e.Symbol), "", answer)
}

func (s *StudyScreen) describePair(p hanja.AntonymPair) string {
	a, okA := hanja.Lookup(p.A)
	b, okB := hanja.Lookup(p.B)
	if !okA || !okB {
		return p.A + " ↔ " + p.B
	}
	return fmt.Sprintf("%s(%s) ↔ %s(%s)", a.Symbol, a.Label, b.Symbol, b.Label)
}

// renderList shows the rows from offset that fit in height.
func renderList(lines []string, offset, height int, empty string) string {
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(empty)
	}
	if height < 1 {
		height = 1
	}
	end := min(offset+height, len(lines))
	var b strings.Builder
	for i := offset; i < end; i++ {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(lines[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
