package hanja

import "fmt"

// index holds the full pool with precomputed lookups.
type index struct {
	entries  []Entry
	bySymbol map[string]int
}

// pool is the package-level index, built once from the seed data.
var pool = buildIndex(concat(coreEntries, extraEntries, expandedEntries))

func concat(parts ...[]Entry) []Entry {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Entry, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func buildIndex(entries []Entry) *index {
	if err := Validate(entries); err != nil {
		panic(fmt.Sprintf("hanja: invalid seed data: %v", err))
	}
	idx := &index{
		entries:  entries,
		bySymbol: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		idx.bySymbol[e.Symbol] = i
	}
	return idx
}

// All returns the full pool in source order. The slice is a copy.
func All() []Entry {
	out := make([]Entry, len(pool.entries))
	copy(out, pool.entries)
	return out
}

// Lookup finds an entry by its symbol in the full pool.
func Lookup(symbol string) (Entry, bool) {
	i, ok := pool.bySymbol[symbol]
	if !ok {
		return Entry{}, false
	}
	return pool.entries[i], true
}

// ForGrade is PoolForGrade over the full pool.
func ForGrade(g Grade) []Entry {
	return PoolForGrade(pool.entries, g)
}

// PoolForGrade returns the entries at or below g, in source order.
// An unknown grade returns the whole pool. The input is never modified.
func PoolForGrade(entries []Entry, g Grade) []Entry {
	limit := GradeIndex(g)
	if limit < 0 {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		i := GradeIndex(e.Grade)
		if i >= 0 && i <= limit {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory groups entries by category.
func ByCategory(entries []Entry) map[string][]Entry {
	out := make(map[string][]Entry)
	for _, e := range entries {
		out[e.Category] = append(out[e.Category], e)
	}
	return out
}

// Categories lists the categories of entries in first-seen order.
func Categories(entries []Entry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// ByGrade groups entries by grade.
func ByGrade(entries []Entry) map[Grade][]Entry {
	out := make(map[Grade][]Entry)
	for _, e := range entries {
		out[e.Grade] = append(out[e.Grade], e)
	}
	return out
}

// GradeCounts counts entries per grade. Every grade in the hierarchy is
// present in the result, with zero when it has no entries.
func GradeCounts(entries []Entry) map[Grade]int {
	counts := make(map[Grade]int, len(gradeHierarchy))
	for _, g := range gradeHierarchy {
		counts[g] = 0
	}
	for _, e := range entries {
		counts[e.Grade]++
	}
	return counts
}

// GroupByPronunciation groups entries sharing a reading, keeping only
// groups with at least minSize members. Groups are ordered by first appearance.
func GroupByPronunciation(entries []Entry, minSize int) [][]Entry {
	var order []string
	groups := make(map[string][]Entry)
	for _, e := range entries {
		if _, ok := groups[e.Pronunciation]; !ok {
			order = append(order, e.Pronunciation)
		}
		groups[e.Pronunciation] = append(groups[e.Pronunciation], e)
	}
	var out [][]Entry
	for _, p := range order {
		if len(groups[p]) >= minSize {
			out = append(out, groups[p])
		}
	}
	return out
}
