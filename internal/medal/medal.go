// Package medal classifies finished game scores into medal tiers.
package medal

// Medal is a session's performance tier. The zero value means no medal.
type Medal string

const (
	None   Medal = ""
	Bronze Medal = "bronze"
	Silver Medal = "silver"
	Gold   Medal = "gold"
)

// All returns the medals from best to worst, excluding None.
func All() []Medal {
	return []Medal{Gold, Silver, Bronze}
}

// Parse converts a stored medal name back to a Medal. Unknown names map to None.
func Parse(s string) Medal {
	switch Medal(s) {
	case Gold, Silver, Bronze:
		return Medal(s)
	default:
		return None
	}
}

// DisplayName returns a human-readable label for the medal.
func (m Medal) DisplayName() string {
	switch m {
	case Gold:
		return "금메달"
	case Silver:
		return "은메달"
	case Bronze:
		return "동메달"
	default:
		return "메달 없음"
	}
}

// Icon returns the display icon for the medal.
func (m Medal) Icon() string {
	switch m {
	case Gold:
		return "🥇"
	case Silver:
		return "🥈"
	case Bronze:
		return "🥉"
	default:
		return "·"
	}
}

// thresholds holds the inclusive cutoffs for one game.
type thresholds struct {
	gold, silver, bronze int
	lowerIsBetter        bool
}

// table maps game ids to their hand-tuned cutoffs.
var table = map[string]thresholds{
	"archery":       {gold: 9, silver: 7, bronze: 5},
	"daily":         {gold: 9, silver: 7, bronze: 5},
	"antonym":       {gold: 9, silver: 7, bronze: 5},
	"swimming":      {gold: 20, silver: 15, bronze: 10},
	"weightlifting": {gold: 15, silver: 10, bronze: 5},
	"gymnastics":    {gold: 12, silver: 16, bronze: 20, lowerIsBetter: true},
	"marathon":      {gold: 90, silver: 70, bronze: 50},
	"idiom":         {gold: 80, silver: 60, bronze: 40},
	"homonym":       {gold: 15, silver: 10, bronze: 5},
}

// Classify returns the medal earned by score in gameID. Unknown games earn None.
func Classify(gameID string, score int) Medal {
	t, ok := table[gameID]
	if !ok {
		return None
	}
	if t.lowerIsBetter {
		switch {
		case score <= t.gold:
			return Gold
		case score <= t.silver:
			return Silver
		case score <= t.bronze:
			return Bronze
		default:
			return None
		}
	}
	switch {
	case score >= t.gold:
		return Gold
	case score >= t.silver:
		return Silver
	case score >= t.bronze:
		return Bronze
	default:
		return None
	}
}

// LowerIsBetter reports whether smaller scores rank higher in gameID.
func LowerIsBetter(gameID string) bool {
	return table[gameID].lowerIsBetter
}

// Better reports whether score a beats score b in gameID.
func Better(gameID string, a, b int) bool {
	if LowerIsBetter(gameID) {
		return a < b
	}
	return a > b
}
