// Package normalize provides the deterministic text canonicalizer feeding
// n-gram extraction
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Case folding
// 4 Remove zero-width and other format chars
// 5 Width fold fullwidth to ASCII
// 6 Collapse whitespace to single spaces and trim
// 7 Pad with the sentinel boundary rune on both ends
//
// Combining marks are intentionally kept: accented vowels and n-tilde are
// among the strongest Spanish signals the models rely on
package normalize

import (
	"strings"
	"sync"
	"unicode"

	perr "spanglish/internal/platform/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Boundary is the sentinel rune padded onto both ends of normalized text so
// n-grams spanning a text edge stay distinct from interior n-grams
const Boundary = '_'

// ErrEmptyInput is returned when the input is empty after trimming
var ErrEmptyInput = perr.New(perr.ErrorCodeValidation, "text is empty after normalization")

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the canonical, boundary-padded form of s following the
// pipeline described above, or ErrEmptyInput when nothing survives trimming
func (n *Normalizer) Normalize(s string) (string, error) {
	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-5 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 6 collapse whitespace and trim
	ns = collapseSpaces(ns)
	if ns == "" {
		return "", ErrEmptyInput
	}

	// 7 sentinel padding
	return string(Boundary) + ns + string(Boundary), nil
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims
// both ends
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
