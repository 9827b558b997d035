package domain

import "testing"

func TestProficiencyLevelNext(t *testing.T) {
	next, ok := ProficiencyBasic.Next()
	if !ok || next != ProficiencyGeneralized {
		t.Fatalf("basic.Next: got=%q ok=%v", next, ok)
	}
	next, ok = ProficiencyGeneralized.Next()
	if !ok || next != ProficiencyProofed {
		t.Fatalf("generalized.Next: got=%q ok=%v", next, ok)
	}
	if _, ok := ProficiencyProofed.Next(); ok {
		t.Fatalf("proofed must be terminal")
	}
	if !ProficiencyProofed.Terminal() {
		t.Fatalf("proofed.Terminal: want true")
	}
	if ProficiencyBasic.Terminal() {
		t.Fatalf("basic.Terminal: want false")
	}
}

func TestProficiencyLevelValid(t *testing.T) {
	for _, l := range []ProficiencyLevel{ProficiencyBasic, ProficiencyGeneralized, ProficiencyProofed} {
		if !l.Valid() {
			t.Fatalf("level %q should be valid", l)
		}
	}
	if ProficiencyLevel("expert").Valid() {
		t.Fatalf("unknown level should be invalid")
	}
}

func TestDistractionLevelValid(t *testing.T) {
	for _, d := range []DistractionLevel{DistractionNone, DistractionMild, DistractionModerate, DistractionHigh} {
		if !d.Valid() {
			t.Fatalf("distraction %q should be valid", d)
		}
	}
	if DistractionLevel("extreme").Valid() {
		t.Fatalf("unknown distraction level should be invalid")
	}
}

func TestSessionContextVocabulary(t *testing.T) {
	for _, c := range []string{"home", "park", "street", "training-class", "friends-house"} {
		if !ValidSessionContext(c) {
			t.Fatalf("context %q should be in the vocabulary", c)
		}
	}
	if ValidSessionContext("moon-base") {
		t.Fatalf("unknown context should be rejected")
	}
}
