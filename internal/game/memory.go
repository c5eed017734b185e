package game

import "github.com/abhisek/hanjaolympics/internal/hanja"

// CardKind tells the two faces of a pair apart.
type CardKind int

const (
	CardSymbol CardKind = iota
	CardLabel
)

// Card is one tile on the matching board.
type Card struct {
	PairID  int
	Kind    CardKind
	Entry   hanja.Entry
	Text    string
	FaceUp  bool
	Matched bool
}

// Board is the shuffled grid of the card matching game.
type Board struct {
	Cards []Card
	Pairs int
}

// NewBoard deals pairs entries from the pool as symbol and label cards.
func NewBoard(env Env, pairs int) *Board {
	picked := head(order(env, env.Pool), pairs)
	cards := make([]Card, 0, len(picked)*2)
	for i, e := range picked {
		cards = append(cards,
			Card{PairID: i, Kind: CardSymbol, Entry: e, Text: e.Symbol},
			Card{PairID: i, Kind: CardLabel, Entry: e, Text: e.Label},
		)
	}
	return &Board{Cards: order(env, cards), Pairs: len(picked)}
}

// Valid reports whether i is a card index.
func (b *Board) Valid(i int) bool {
	return i >= 0 && i < len(b.Cards)
}

// Match reports whether cards i and j form a pair.
func (b *Board) Match(i, j int) bool {
	if i == j || !b.Valid(i) || !b.Valid(j) {
		return false
	}
	ci, cj := b.Cards[i], b.Cards[j]
	return ci.PairID == cj.PairID && ci.Kind != cj.Kind
}

// SetFaceUp turns every unmatched card up or down.
func (b *Board) SetFaceUp(up bool) {
	for i := range b.Cards {
		if !b.Cards[i].Matched {
			b.Cards[i].FaceUp = up
		}
	}
}

// Matched counts the matched pairs.
func (b *Board) Matched() int {
	n := 0
	for _, c := range b.Cards {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// Cleared reports whether every pair has been matched.
func (b *Board) Cleared() bool {
	return b.Matched() == b.Pairs
}
