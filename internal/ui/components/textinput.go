package components

import (
	"errors"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanjaolympics/internal/ui/theme"
)

// ErrBadSeed is reported by a seed field whose text is not a number.
var ErrBadSeed = errors.New("시드는 숫자만 입력하세요")

// Validator checks a field's trimmed text.
type Validator func(string) error

// Required rejects blank text with err.
func Required(err error) Validator {
	return func(s string) error {
		if s == "" {
			return err
		}
		return nil
	}
}

// SeedText accepts an empty field (random questions) or a decimal seed.
func SeedText(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return ErrBadSeed
	}
	return nil
}

// TextInput is a form field on the profile screen: a bubbles textinput
// with a character limit, an optional digits-only filter and a validator
// whose verdict is shown next to the field after Check.
type TextInput struct {
	Model    textinput.Model
	Digits   bool
	validate Validator
	checked  bool
	err      error
}

// NewTextInput creates a focused field limited to limit characters.
func NewTextInput(placeholder string, limit int, validate Validator) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti, validate: validate}
}

// NewSeedInput creates a blurred digits-only field for a question seed.
func NewSeedInput(limit int) TextInput {
	t := NewTextInput("0 = 무작위", limit, SeedText)
	t.Digits = true
	t.Model.Blur()
	return t
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update edits the text. Digit fields drop other printable keys, and any
// edit clears the previous verdict.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key := k.String(); t.Digits && len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
		t.checked, t.err = false, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	if !t.checked {
		return view
	}
	if t.err != nil {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err.Error())
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
}

// Text returns the input with surrounding spaces removed.
func (t TextInput) Text() string {
	return strings.TrimSpace(t.Model.Value())
}

// Check runs the validator and remembers the verdict for View.
func (t *TextInput) Check() error {
	t.checked = true
	t.err = nil
	if t.validate != nil {
		t.err = t.validate(t.Text())
	}
	return t.err
}

// Seed parses the field as a question seed. Blank or invalid text is 0,
// which means random questions.
func (t TextInput) Seed() int64 {
	n, err := strconv.ParseInt(t.Text(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

func (t *TextInput) Blur() {
	t.Model.Blur()
}
