package trainer

import (
	"strings"
	"testing"

	"spanglish/internal/core/classifier"
	"spanglish/internal/core/modelpack"
	perr "spanglish/internal/platform/errors"
)

const corpusES = `hoy es un día hermoso para caminar por el parque
la casa de mi abuela está cerca de la estación
necesito comprar comida para la cena de mañana
los niños juegan en el jardín toda la tarde
`

const corpusEN = `the weather is beautiful today for a walk in the park
my grandmother's house is close to the station
i need to buy some food for dinner tomorrow
the children play in the garden all afternoon
`

func mustTrain(t *testing.T, cfg Config) *modelpack.Bundle {
	t.Helper()
	b, err := Train(corpusES, corpusEN, cfg)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	return b
}

func TestTrain_DefaultsFillMeta(t *testing.T) {
	b := mustTrain(t, Config{})
	m := b.Meta
	if m.FormatVersion != modelpack.FormatVersion {
		t.Fatalf("format version = %d", m.FormatVersion)
	}
	if m.LangA.Label != "Español" || m.LangB.Label != "English" {
		t.Fatalf("default languages: %+v %+v", m.LangA, m.LangB)
	}
	if len(m.Orders) != 4 || m.Orders[0] != 3 {
		t.Fatalf("default orders: %v", m.Orders)
	}
	if m.TopN != DefaultTopN || m.Cutoff != DefaultCutoff || m.EvidenceM != DefaultEvidenceM {
		t.Fatalf("default hyperparameters: %+v", m)
	}
	if m.BuildID == "" || m.BuiltAt == "" {
		t.Fatalf("build provenance missing: %+v", m)
	}
}

func TestTrain_ProducesBothModelKinds(t *testing.T) {
	b := mustTrain(t, Config{})
	for _, code := range []string{"es", "en"} {
		p, ok := b.Profiles[code]
		if !ok || len(p.Ranks) == 0 {
			t.Fatalf("profile for %s missing or empty", code)
		}
	}
	if len(b.Weights) == 0 {
		t.Fatalf("no discriminative weights trained")
	}
	var pos, neg bool
	for _, w := range b.Weights {
		if w > 0 {
			pos = true
		}
		if w < 0 {
			neg = true
		}
	}
	if !pos || !neg {
		t.Fatalf("weights should carry both signs")
	}
}

func TestTrain_TablesDeterministic(t *testing.T) {
	b1 := mustTrain(t, Config{})
	b2 := mustTrain(t, Config{})
	if len(b1.Weights) != len(b2.Weights) {
		t.Fatalf("weight tables differ in size")
	}
	for g, w := range b1.Weights {
		if b2.Weights[g] != w {
			t.Fatalf("weight for %q differs between runs", g)
		}
	}
	for code := range b1.Profiles {
		r1, r2 := b1.Profiles[code].Ranks, b2.Profiles[code].Ranks
		if len(r1) != len(r2) {
			t.Fatalf("profile %s differs in size", code)
		}
		for g, rank := range r1 {
			if r2[g] != rank {
				t.Fatalf("rank for %q in %s differs between runs", g, code)
			}
		}
	}
	// only provenance varies
	if b1.Meta.BuildID == b2.Meta.BuildID {
		t.Fatalf("build ids should be unique per run")
	}
}

func TestTrain_EmptyCorpusFails(t *testing.T) {
	_, err := Train("   ", corpusEN, Config{})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = Train(corpusES, "", Config{})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTrain_EndToEndClassification(t *testing.T) {
	b := mustTrain(t, Config{EvidenceM: 5})
	c := classifier.New(b)

	es, err := c.Classify("el parque está cerca de la casa", classifier.DefaultThreshold)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if es.DominantLanguage != "Español" || es.IsSpanglish {
		t.Fatalf("spanish text verdict: %+v", es)
	}
	if es.Confidence < 80 {
		t.Fatalf("spanish confidence = %v, want > 80", es.Confidence)
	}

	en, err := c.Classify("the garden is close to the house", classifier.DefaultThreshold)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if en.DominantLanguage != "English" || en.IsSpanglish {
		t.Fatalf("english text verdict: %+v", en)
	}

	if strings.TrimSpace(es.Text) == "" || strings.TrimSpace(en.Text) == "" {
		t.Fatalf("results should echo input text")
	}
}
