// Package decoy picks plausible wrong answers for multiple-choice questions.
package decoy

import (
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/shuffle"
)

// Generate returns up to count entries from pool to show beside correct.
//
// Entries sharing correct's pronunciation are preferred because they are
// harder to tell apart. Within the first pass no two decoys share a value
// of key and none equals correct's. If that leaves the list short, a second
// pass over the whole pool fills it without the uniqueness check, so tiny
// pools may yield repeated labels. The correct symbol is never returned.
func Generate(correct hanja.Entry, pool []hanja.Entry, count int, key hanja.Key) []hanja.Entry {
	if count <= 0 {
		return []hanja.Entry{}
	}

	var sameSound, others []hanja.Entry
	for _, e := range pool {
		if e.Symbol == correct.Symbol {
			continue
		}
		if e.Pronunciation == correct.Pronunciation {
			sameSound = append(sameSound, e)
		} else {
			others = append(others, e)
		}
	}

	decoys := make([]hanja.Entry, 0, count)
	picked := make(map[string]bool, count)
	used := map[string]bool{correct.Field(key): true}

	candidates := append(shuffle.Shuffle(sameSound), shuffle.Shuffle(others)...)
	for _, e := range candidates {
		if len(decoys) >= count {
			break
		}
		v := e.Field(key)
		if used[v] {
			continue
		}
		used[v] = true
		picked[e.Symbol] = true
		decoys = append(decoys, e)
	}

	if len(decoys) < count {
		for _, e := range shuffle.Shuffle(pool) {
			if len(decoys) >= count {
				break
			}
			if e.Symbol == correct.Symbol || picked[e.Symbol] {
				continue
			}
			picked[e.Symbol] = true
			decoys = append(decoys, e)
		}
	}

	return decoys
}

// Strings picks up to count distinct values from candidates, none equal to
// correct, in random order.
func Strings(correct string, candidates []string, count int) []string {
	out := make([]string, 0, max(count, 0))
	used := map[string]bool{correct: true}
	for _, c := range shuffle.Shuffle(candidates) {
		if len(out) >= count {
			break
		}
		if used[c] {
			continue
		}
		used[c] = true
		out = append(out, c)
	}
	return out
}

// Options shuffles correct and decoys into on-screen order and returns the
// displayed values for key together with the index of the correct one.
func Options(correct hanja.Entry, decoys []hanja.Entry, key hanja.Key) ([]string, int) {
	all := make([]hanja.Entry, 0, len(decoys)+1)
	all = append(all, correct)
	all = append(all, decoys...)

	labels := make([]string, 0, len(all))
	answer := -1
	for _, e := range shuffle.Shuffle(all) {
		if answer < 0 && e.Symbol == correct.Symbol {
			answer = len(labels)
		}
		labels = append(labels, e.Field(key))
	}
	return labels, answer
}

// StringOptions is Options for plain values.
func StringOptions(correct string, decoys []string) ([]string, int) {
	all := append([]string{correct}, decoys...)
	out := shuffle.Shuffle(all)
	for i, v := range out {
		if v == correct {
			return out, i
		}
	}
	return out, -1
}
