package hanja

// Entry is one learnable character.
type Entry struct {
	Symbol        string
	Meaning       string // hun
	Pronunciation string // eum
	Label         string // "meaning pronunciation", the canonical quiz answer
	Category      string
	Grade         Grade
}

// NewEntry builds an entry and derives its label.
func NewEntry(symbol, meaning, pronunciation, category string, grade Grade) Entry {
	return Entry{
		Symbol:        symbol,
		Meaning:       meaning,
		Pronunciation: pronunciation,
		Label:         meaning + " " + pronunciation,
		Category:      category,
		Grade:         grade,
	}
}

// Key selects the entry field that answers and decoys are compared on.
type Key int

const (
	KeyLabel Key = iota
	KeySymbol
	KeyMeaning
)

func (k Key) String() string {
	switch k {
	case KeyLabel:
		return "label"
	case KeySymbol:
		return "symbol"
	case KeyMeaning:
		return "meaning"
	default:
		return "unknown"
	}
}

// Field returns the value of the field selected by k.
func (e Entry) Field(k Key) string {
	switch k {
	case KeySymbol:
		return e.Symbol
	case KeyMeaning:
		return e.Meaning
	default:
		return e.Label
	}
}
