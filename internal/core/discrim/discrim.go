// Package discrim implements the discriminative language model: a signed
// log-ratio weight per n-gram, trained on a language pair. Positive weights
// favor language A, negative favor language B, and n-grams common to both
// corpora fall under the cutoff and are dropped, which removes the shared
// Latin-root noise that confuses the frequency profiles on mixed text
package discrim

import "math"

// Weights maps an n-gram to its signed log-ratio weight. Every retained
// entry satisfies |weight| >= the training cutoff; absent n-grams contribute
// nothing at scoring time
type Weights map[string]float64

// Score is the matched evidence for one side of the language pair
type Score struct {
	Sum     float64
	Matches int
}

// Train computes weight = log((freqA+eps)/(freqB+eps)) over corpus-total
// normalized frequencies and keeps only n-grams at least cutoff away from
// zero. eps smooths n-grams seen in only one corpus
func Train(corpusA, corpusB map[string]int, cutoff, eps float64) Weights {
	totalA := total(corpusA)
	totalB := total(corpusB)

	w := make(Weights)
	consider := func(g string) {
		fa := float64(corpusA[g]) / totalA
		fb := float64(corpusB[g]) / totalB
		lr := math.Log((fa + eps) / (fb + eps))
		if math.Abs(lr) >= cutoff {
			w[g] = lr
		}
	}
	for g := range corpusA {
		consider(g)
	}
	for g := range corpusB {
		if _, inA := corpusA[g]; !inA {
			consider(g)
		}
	}
	return w
}

// Match scores a document against the pair weights. Matched positive weights
// accumulate on side A, magnitudes of matched negative weights on side B.
// Match counts are the raw evidence volume and are reported unnormalized
func Match(docFreq map[string]int, w Weights) (a, b Score) {
	for g := range docFreq {
		lr, ok := w[g]
		if !ok {
			continue
		}
		if lr > 0 {
			a.Sum += lr
			a.Matches++
		} else if lr < 0 {
			b.Sum += -lr
			b.Matches++
		}
	}
	return a, b
}

// Proportions sum-normalizes the two scores to shares of 100. With no
// matched evidence at all both shares are zero
func Proportions(a, b Score) (pa, pb float64) {
	totalScore := a.Sum + b.Sum
	if totalScore == 0 {
		return 0, 0
	}
	return a.Sum / totalScore * 100, b.Sum / totalScore * 100
}

func total(freq map[string]int) float64 {
	n := 0
	for _, c := range freq {
		n += c
	}
	if n == 0 {
		return 1
	}
	return float64(n)
}
