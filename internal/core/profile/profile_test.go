package profile

import (
	"math"
	"testing"
)

func TestTrain_RanksByFrequencyThenLex(t *testing.T) {
	p := Train(map[string]int{"aaa": 5, "bbb": 9, "ccc": 5, "ddd": 1}, 3)
	if p.Ranks["bbb"] != 1 {
		t.Fatalf("most frequent should rank 1, got %d", p.Ranks["bbb"])
	}
	// tie at 5 breaks lexicographically
	if p.Ranks["aaa"] != 2 || p.Ranks["ccc"] != 3 {
		t.Fatalf("tie-break wrong: %v", p.Ranks)
	}
	if _, ok := p.Ranks["ddd"]; ok {
		t.Fatalf("entry beyond topN should be cut")
	}
}

func TestDistance_ExactMatchIsZero(t *testing.T) {
	freq := map[string]int{"aaa": 3, "bbb": 2, "ccc": 1}
	p := Train(freq, 10)
	if d := Distance(freq, p); d != 0 {
		t.Fatalf("distance to own corpus = %v, want 0", d)
	}
}

func TestDistance_ChargesRankDisplacement(t *testing.T) {
	p := Train(map[string]int{"aaa": 3, "bbb": 2, "ccc": 1}, 10)
	// document swaps aaa and ccc: ranks 1<->3, displacement 2+0+2
	doc := map[string]int{"ccc": 3, "bbb": 2, "aaa": 1}
	if d := Distance(doc, p); d != 4 {
		t.Fatalf("distance = %v, want 4", d)
	}
}

func TestDistance_MissingGramsChargeTopN(t *testing.T) {
	p := Train(map[string]int{"aaa": 2, "bbb": 1}, 5)
	doc := map[string]int{"zzz": 1}
	if d := Distance(doc, p); d != 5 {
		t.Fatalf("distance = %v, want TopN penalty 5", d)
	}
}

func TestDistance_MonotoneInOverlap(t *testing.T) {
	p := Train(map[string]int{"aaa": 4, "bbb": 3, "ccc": 2, "ddd": 1}, 10)
	aligned := Distance(map[string]int{"aaa": 4, "bbb": 3}, p)
	foreign := Distance(map[string]int{"xxx": 4, "yyy": 3}, p)
	if aligned >= foreign {
		t.Fatalf("aligned doc should score lower: %v vs %v", aligned, foreign)
	}
}

func TestProportions_SumTo100(t *testing.T) {
	out := Proportions(map[string]float64{"Español": 120, "English": 480})
	sum := out["Español"] + out["English"]
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("shares sum to %v", sum)
	}
	if out["Español"] <= out["English"] {
		t.Fatalf("smaller distance should earn the larger share: %v", out)
	}
}

func TestProportions_ZeroDistanceTakesAll(t *testing.T) {
	out := Proportions(map[string]float64{"Español": 0, "English": 300})
	if out["Español"] != 100 || out["English"] != 0 {
		t.Fatalf("exact match should take the whole share: %v", out)
	}
	both := Proportions(map[string]float64{"Español": 0, "English": 0})
	if both["Español"] != 50 || both["English"] != 50 {
		t.Fatalf("double zero should split evenly: %v", both)
	}
}
