package hanja

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on a character set and returns a
// combined error describing every problem found, or nil if valid.
func Validate(entries []Entry) error {
	var errs []string

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Symbol == "" {
			errs = append(errs, fmt.Sprintf("entry with label %q has empty symbol", e.Label))
			continue
		}
		if seen[e.Symbol] {
			errs = append(errs, fmt.Sprintf("duplicate symbol: %q", e.Symbol))
		}
		seen[e.Symbol] = true

		if e.Meaning == "" || e.Pronunciation == "" {
			errs = append(errs, fmt.Sprintf("symbol %q is missing meaning or pronunciation", e.Symbol))
		}
		if e.Label != e.Meaning+" "+e.Pronunciation {
			errs = append(errs, fmt.Sprintf("symbol %q label %q does not match its fields", e.Symbol, e.Label))
		}
		if GradeIndex(e.Grade) < 0 {
			errs = append(errs, fmt.Sprintf("symbol %q has unknown grade %q", e.Symbol, e.Grade))
		}
	}

	for _, p := range antonymPairs {
		if p.A == p.B {
			errs = append(errs, fmt.Sprintf("antonym pair %s↔%s repeats a character", p.A, p.B))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("hanja validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
