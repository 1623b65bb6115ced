// Package profile implements the frequency-profile language model: a ranked
// table of a language's most common n-grams scored with the out-of-place
// rank-distance metric. Rank comparison, not raw frequency, is what keeps the
// metric stable between short documents and long training corpora
package profile

import "sort"

// Profile is a per-language ranked n-gram table. Rank 1 is the most frequent
// n-gram; ranks are unique and dense in 1..TopN
type Profile struct {
	Ranks map[string]int
	TopN  int
}

// Train ranks the corpus n-grams by descending frequency and retains the top
// topN entries. Frequency ties break lexicographically so retraining on the
// same corpus reproduces the same table
func Train(freq map[string]int, topN int) Profile {
	return Profile{Ranks: rank(freq, topN), TopN: topN}
}

// Distance computes the out-of-place distance between a document and the
// profile. The document's own top ranking is built with the same procedure
// as training; each of its n-grams charges the absolute rank difference, or
// the maximum in-profile distance (TopN) when the profile lacks it. Lower is
// a better fit
func Distance(docFreq map[string]int, p Profile) float64 {
	total := 0
	for g, docRank := range rank(docFreq, p.TopN) {
		if profRank, ok := p.Ranks[g]; ok {
			total += abs(docRank - profRank)
		} else {
			total += p.TopN
		}
	}
	return float64(total)
}

// Proportions converts per-language distances into shares summing to 100.
// Smaller distances earn larger shares via inversion; a zero distance is an
// exact match and takes the whole share, split evenly when several languages
// tie at zero
func Proportions(distances map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(distances))
	var zeros []string
	for lang, d := range distances {
		out[lang] = 0
		if d == 0 {
			zeros = append(zeros, lang)
		}
	}
	if len(zeros) > 0 {
		share := 100.0 / float64(len(zeros))
		for _, lang := range zeros {
			out[lang] = share
		}
		return out
	}
	var total float64
	for _, d := range distances {
		total += 1 / d
	}
	if total == 0 {
		return out
	}
	for lang, d := range distances {
		out[lang] = (1 / d) / total * 100
	}
	return out
}

// rank assigns dense ranks 1..topN by descending count with a lexicographic
// tie-break
func rank(freq map[string]int, topN int) map[string]int {
	grams := make([]string, 0, len(freq))
	for g := range freq {
		grams = append(grams, g)
	}
	sort.Slice(grams, func(i, j int) bool {
		if freq[grams[i]] != freq[grams[j]] {
			return freq[grams[i]] > freq[grams[j]]
		}
		return grams[i] < grams[j]
	})
	if topN > 0 && len(grams) > topN {
		grams = grams[:topN]
	}
	ranks := make(map[string]int, len(grams))
	for i, g := range grams {
		ranks[g] = i + 1
	}
	return ranks
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
