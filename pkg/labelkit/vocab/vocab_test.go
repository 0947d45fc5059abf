package vocab

import "testing"

func TestManualVocabulary(t *testing.T) {
	v := Manual()
	for _, l := range []string{"ean", "serial_number", "model_number", "part_number", "none"} {
		if !v.Contains(l) {
			t.Errorf("Manual should contain %q", l)
		}
	}
	if v.Contains("series") || v.Contains("brand") {
		t.Error("series/brand are rule-only labels, not manually assignable")
	}
	if v.Contains("EAN") {
		t.Error("membership is case-sensitive")
	}
}

func TestFullVocabularySuperset(t *testing.T) {
	full := Full()
	for _, l := range Manual().Labels() {
		if !full.Contains(l) {
			t.Errorf("Full should contain manual label %q", l)
		}
	}
	if !full.Contains("series") || !full.Contains("brand") {
		t.Error("Full should contain the rule-only labels")
	}
}

func TestNewDropsDuplicatesAndEmpty(t *testing.T) {
	v := New([]string{"ean", "", "ean", "none"})
	if v.Len() != 2 {
		t.Fatalf("Len = %d, want 2", v.Len())
	}
	labels := v.Labels()
	if labels[0] != "ean" || labels[1] != "none" {
		t.Errorf("declaration order not preserved: %v", labels)
	}
}
