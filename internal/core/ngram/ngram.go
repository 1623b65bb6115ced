// Package ngram extracts character n-gram frequency maps from normalized text.
// The text is treated as an untokenized rune stream: windows of each
// configured order slide across it with stride 1 and land in one combined
// keyspace, which gives short inputs a denser signal than per-order maps
package ngram

import "unicode"

// DefaultOrders are the window widths used when a caller passes none
var DefaultOrders = []int{3, 4, 5, 6}

// Extract returns a combined n-gram -> count map for all configured orders.
// Text shorter than the smallest order yields an empty map, never an error;
// callers treat that as a zero-evidence case
func Extract(normalized string, orders []int) map[string]int {
	if len(orders) == 0 {
		orders = DefaultOrders
	}
	runes := []rune(normalized)
	out := make(map[string]int, len(runes))
	for _, k := range orders {
		if k < 1 || k > len(runes) {
			continue
		}
		for i := 0; i+k <= len(runes); i++ {
			w := runes[i : i+k]
			if noisy(w) {
				continue
			}
			out[string(w)]++
		}
	}
	return out
}

// noisy reports whether a window should be dropped before counting.
// The filters mirror the training-time ones so document and model keyspaces
// stay aligned: leading space, 3+ consecutive digits, 3+ identical
// consecutive runes, or nothing but spaces and punctuation
func noisy(w []rune) bool {
	if len(w) == 0 || w[0] == ' ' {
		return true
	}
	digits, repeats := 0, 1
	wordy := false
	for i, r := range w {
		if unicode.IsDigit(r) {
			digits++
			if digits >= 3 {
				return true
			}
		} else {
			digits = 0
		}
		if i > 0 {
			if r == w[i-1] {
				repeats++
				if repeats >= 3 {
					return true
				}
			} else {
				repeats = 1
			}
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			wordy = true
		}
	}
	return !wordy
}

// Smallest returns the minimum configured order, defaulting when empty
func Smallest(orders []int) int {
	if len(orders) == 0 {
		orders = DefaultOrders
	}
	min := orders[0]
	for _, k := range orders[1:] {
		if k < min {
			min = k
		}
	}
	return min
}
