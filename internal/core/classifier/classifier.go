// Package classifier blends the frequency-profile and discriminative model
// outputs into the final language / Spanglish verdict
package classifier

import (
	"math"

	"spanglish/internal/core/discrim"
	"spanglish/internal/core/modelpack"
	"spanglish/internal/core/ngram"
	"spanglish/internal/core/normalize"
	"spanglish/internal/core/profile"
	perr "spanglish/internal/platform/errors"
)

// DefaultThreshold is the minority-share percentage above which a text
// counts as Spanglish when the caller does not supply one
const DefaultThreshold = 40.0

// defaultEvidenceM is the discriminative match count at which the blend
// trusts the discriminative signal fully
const defaultEvidenceM = 10

// Details carries the per-model breakdown behind the blended proportions,
// keyed by language label. Match counts are raw evidence volume, not scores
type Details struct {
	Original       map[string]float64 `json:"original"`
	Discriminative map[string]float64 `json:"discriminative"`
	MatchesDisc    map[string]int     `json:"matches_disc"`
}

// Result is the classification outcome. It is a value constructed once per
// call and never mutated afterwards
type Result struct {
	Text             string             `json:"text"`
	DominantLanguage string             `json:"dominant_language"`
	IsSpanglish      bool               `json:"is_spanglish"`
	SpanglishType    *string            `json:"spanglish_type"`
	Confidence       float64            `json:"confidence"`
	Proportions      map[string]float64 `json:"proportions"`
	Details          Details            `json:"details"`
}

// Options tunes classifier behavior
type Options struct {
	// EvidenceM saturates the discriminative trust weight:
	// w = min(1, matches/EvidenceM). 0 falls back to the bundle meta,
	// then to the package default
	EvidenceM int
}

// Classifier scores text against an immutable model bundle. It holds no
// mutable state, so one instance serves concurrent calls without locking
type Classifier struct {
	bundle *modelpack.Bundle
	norm   *normalize.Normalizer
	m      float64
}

// New creates a Classifier over the given bundle
func New(b *modelpack.Bundle) *Classifier { return NewWithOptions(b, Options{}) }

// NewWithOptions creates a Classifier with custom options
func NewWithOptions(b *modelpack.Bundle, opts Options) *Classifier {
	m := opts.EvidenceM
	if m <= 0 {
		m = b.Meta.EvidenceM
	}
	if m <= 0 {
		m = defaultEvidenceM
	}
	return &Classifier{bundle: b, norm: normalize.New(), m: float64(m)}
}

// Classify runs the hybrid pipeline over text. threshold is the minority
// blended share (in percent) at or above which the text is flagged as
// Spanglish; NaN, negative, or > 100 is a validation error. Text that
// normalizes to nothing is a validation error; text that survives
// normalization but yields no n-grams produces a zero-confidence result
// rather than failing
func (c *Classifier) Classify(text string, threshold float64) (Result, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return Result{}, perr.Newf(perr.ErrorCodeValidation,
			"threshold must be between 0 and 100, got %v", threshold)
	}

	norm, err := c.norm.Normalize(text)
	if err != nil {
		return Result{}, err
	}

	meta := c.bundle.Meta
	labelA, labelB := meta.LangA.Label, meta.LangB.Label

	// one extraction shared by both models
	grams := ngram.Extract(norm, meta.Orders)
	if len(grams) == 0 {
		return c.lowEvidence(text), nil
	}

	// frequency-profile proportions
	orig := profile.Proportions(map[string]float64{
		labelA: profile.Distance(grams, c.bundle.Profiles[meta.LangA.Code]),
		labelB: profile.Distance(grams, c.bundle.Profiles[meta.LangB.Code]),
	})

	// discriminative proportions and evidence counts
	scoreA, scoreB := discrim.Match(grams, c.bundle.Weights)
	discA, discB := discrim.Proportions(scoreA, scoreB)

	// trust the discriminative signal in proportion to its evidence
	w := math.Min(1, float64(scoreA.Matches+scoreB.Matches)/c.m)
	blendA := w*discA + (1-w)*orig[labelA]
	blendB := w*discB + (1-w)*orig[labelB]

	v := decide(blendA, blendB, scoreA.Matches, scoreB.Matches, threshold, labelA, labelB)

	res := Result{
		Text:             clip(text),
		DominantLanguage: v.Dominant,
		IsSpanglish:      v.Mixed,
		Confidence:       v.Confidence,
		Proportions:      map[string]float64{labelA: blendA, labelB: blendB},
		Details: Details{
			Original:       orig,
			Discriminative: map[string]float64{labelA: discA, labelB: discB},
			MatchesDisc:    map[string]int{labelA: scoreA.Matches, labelB: scoreB.Matches},
		},
	}
	if v.Mixed {
		t := v.Type
		res.SpanglishType = &t
	}
	return res, nil
}

// Verdict is the outcome of the pure decision step over blended proportions
// and match counts: either monolingual (Mixed false) or mixed with a
// dominant-side type tag
type Verdict struct {
	Dominant   string
	Confidence float64
	Mixed      bool
	Type       string
}

// decide picks the dominant language and applies the Spanglish test. An
// exact blended tie resolves to language A (Español) so results stay
// deterministic. The minority language must clear the threshold AND have at
// least one discriminative match; isolated loanwords with zero diagnostic
// evidence never flag a text as mixed
func decide(blendA, blendB float64, matchesA, matchesB int, threshold float64, labelA, labelB string) Verdict {
	dominant, confidence := labelA, blendA
	minority, minorityMatches := blendB, matchesB
	if blendB > blendA {
		dominant, confidence = labelB, blendB
		minority, minorityMatches = blendA, matchesA
	}
	v := Verdict{Dominant: dominant, Confidence: confidence}
	if minority >= threshold && minorityMatches > 0 {
		v.Mixed = true
		v.Type = dominant + "-dominant"
	}
	return v
}

// lowEvidence is the degraded result for text too short to produce n-grams
func (c *Classifier) lowEvidence(text string) Result {
	labelA, labelB := c.bundle.Meta.LangA.Label, c.bundle.Meta.LangB.Label
	zero := func() map[string]float64 { return map[string]float64{labelA: 0, labelB: 0} }
	return Result{
		Text:             clip(text),
		DominantLanguage: labelA,
		Proportions:      zero(),
		Details: Details{
			Original:       zero(),
			Discriminative: zero(),
			MatchesDisc:    map[string]int{labelA: 0, labelB: 0},
		},
	}
}

// clip bounds the echoed text the same way the wire format documents it
func clip(text string) string {
	const maxEcho = 50
	r := []rune(text)
	if len(r) <= maxEcho {
		return text
	}
	return string(r[:maxEcho]) + "..."
}
