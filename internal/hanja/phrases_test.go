package hanja

import "testing"

func TestAntonymsFor_RequiresBothCharacters(t *testing.T) {
	pool := ForGrade(Grade8)
	allowed := symbolSet(pool)
	pairs := AntonymsFor(pool)
	if len(pairs) == 0 {
		t.Fatal("expected antonym pairs at 8급")
	}
	for _, p := range pairs {
		if !allowed[p.A] || !allowed[p.B] {
			t.Errorf("pair %s↔%s not fully in 8급 pool", p.A, p.B)
		}
	}
	if len(AntonymsFor(All())) != len(AntonymPairs()) {
		t.Error("every pair should be available over the full pool")
	}
}

func TestIdiomsFor_RequiresAllCharacters(t *testing.T) {
	pool := ForGrade(Grade8)
	allowed := symbolSet(pool)
	for _, id := range IdiomsFor(pool) {
		for _, c := range id.Characters() {
			if !allowed[c] {
				t.Errorf("idiom %s uses %s outside the 8급 pool", id.Text, c)
			}
		}
	}
	if len(IdiomsFor(All())) != len(Idioms()) {
		t.Error("every idiom should be available over the full pool")
	}
}

func TestIdiomCharacters(t *testing.T) {
	chars := Idiom{Text: "一日三秋"}.Characters()
	if len(chars) != 4 || chars[0] != "一" || chars[3] != "秋" {
		t.Errorf("Characters = %v", chars)
	}
}
