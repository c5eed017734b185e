package components

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(t TextInput, text string) TextInput {
	for _, r := range text {
		t, _ = t.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return t
}

func TestSeedInput_DigitsOnly(t *testing.T) {
	in := NewSeedInput(9)
	in.Focus()
	in = typeInto(in, "2a0x26")
	assert.Equal(t, "2026", in.Text())
	assert.Equal(t, int64(2026), in.Seed())
	assert.NoError(t, in.Check())
	assert.Contains(t, in.View(), "✓")
}

func TestSeedInput_BlankMeansRandom(t *testing.T) {
	in := NewSeedInput(9)
	assert.NoError(t, in.Check())
	assert.Zero(t, in.Seed())

	in.SetValue(" 12 ")
	assert.Equal(t, int64(12), in.Seed())
}

func TestSeedText(t *testing.T) {
	assert.NoError(t, SeedText(""))
	assert.NoError(t, SeedText("20260305"))
	assert.ErrorIs(t, SeedText("12a"), ErrBadSeed)
}

func TestTextInput_RequiredAndEditClearsVerdict(t *testing.T) {
	errBlank := errors.New("blank")
	in := NewTextInput("이름", 12, Required(errBlank))
	in.SetValue("   ")

	require.ErrorIs(t, in.Check(), errBlank)
	assert.Contains(t, in.View(), "✗ blank")

	in = typeInto(in, "서연")
	assert.NotContains(t, in.View(), "✗")
	assert.NoError(t, in.Check())
	assert.Equal(t, "서연", in.Text())
}

func TestTextInput_CharLimit(t *testing.T) {
	in := typeInto(NewTextInput("", 3, nil), "abcdef")
	assert.Equal(t, "abc", in.Text())
	assert.NoError(t, in.Check())
}
