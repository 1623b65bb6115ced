package discrim

import (
	"math"
	"testing"
)

func TestTrain_SignsFollowCorpus(t *testing.T) {
	a := map[string]int{"ión": 80, "the": 1}
	b := map[string]int{"the": 80, "ión": 1}
	w := Train(a, b, 0.5, 1e-9)

	if w["ión"] <= 0 {
		t.Fatalf("A-heavy n-gram should carry positive weight, got %v", w["ión"])
	}
	if w["the"] >= 0 {
		t.Fatalf("B-heavy n-gram should carry negative weight, got %v", w["the"])
	}
}

func TestTrain_CutoffDropsSharedGrams(t *testing.T) {
	a := map[string]int{"com": 50, "ión": 50}
	b := map[string]int{"com": 50, "ing": 50}
	w := Train(a, b, 0.5, 1e-9)

	if _, ok := w["com"]; ok {
		t.Fatalf("n-gram with equal frequency should fall under the cutoff")
	}
	if _, ok := w["ión"]; !ok {
		t.Fatalf("one-sided n-gram should be retained")
	}
	if _, ok := w["ing"]; !ok {
		t.Fatalf("B-only n-gram should be retained")
	}
}

func TestTrain_OneSidedGramsGetLargeWeights(t *testing.T) {
	a := map[string]int{"ñán": 10}
	b := map[string]int{"ght": 10}
	w := Train(a, b, 0.5, 1e-9)
	if w["ñán"] < 5 || w["ght"] > -5 {
		t.Fatalf("one-sided n-grams should be strongly weighted: %v", w)
	}
}

func TestMatch_SplitsEvidenceBySign(t *testing.T) {
	w := Weights{"ión": 2.0, "ado": 1.0, "the": -1.5, "ing": -0.5}
	doc := map[string]int{"ión": 3, "the": 1, "zzz": 9}

	a, b := Match(doc, w)
	if a.Matches != 1 || a.Sum != 2.0 {
		t.Fatalf("side A: %+v", a)
	}
	if b.Matches != 1 || b.Sum != 1.5 {
		t.Fatalf("side B: %+v", b)
	}
}

func TestMatch_NoEvidence(t *testing.T) {
	a, b := Match(map[string]int{"zzz": 1}, Weights{"ión": 1})
	if a.Matches != 0 || b.Matches != 0 || a.Sum != 0 || b.Sum != 0 {
		t.Fatalf("expected zero evidence, got %+v %+v", a, b)
	}
}

func TestProportions(t *testing.T) {
	pa, pb := Proportions(Score{Sum: 3}, Score{Sum: 1})
	if math.Abs(pa-75) > 1e-9 || math.Abs(pb-25) > 1e-9 {
		t.Fatalf("got %v %v", pa, pb)
	}
	if pa, pb := Proportions(Score{}, Score{}); pa != 0 || pb != 0 {
		t.Fatalf("zero evidence should yield zero shares, got %v %v", pa, pb)
	}
}

func TestTrain_Deterministic(t *testing.T) {
	a := map[string]int{"ión": 5, "ado": 3, "ñán": 2}
	b := map[string]int{"the": 5, "ing": 3, "ght": 2}
	w1 := Train(a, b, 0.5, 1e-9)
	w2 := Train(a, b, 0.5, 1e-9)
	if len(w1) != len(w2) {
		t.Fatalf("nondeterministic size: %d vs %d", len(w1), len(w2))
	}
	for g, v := range w1 {
		if w2[g] != v {
			t.Fatalf("weight for %q differs: %v vs %v", g, v, w2[g])
		}
	}
}
