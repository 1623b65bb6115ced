// Command spanglish-trainer builds a model bundle from two corpus files
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spanglish/internal/core/modelpack"
	"spanglish/internal/core/trainer"
	"spanglish/internal/platform/logger"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readCorpus(path, lang string) string {
	if path == "" {
		must(fmt.Errorf("corpus file for %s is required", lang))
	}
	b, err := os.ReadFile(path)
	must(err)
	return string(b)
}

func parseOrders(s string) []int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			must(fmt.Errorf("bad -orders value %q", part))
		}
		out = append(out, n)
	}
	return out
}

func main() {
	var (
		esPath   = flag.String("es", "", "path to the Spanish corpus file (plain text)")
		enPath   = flag.String("en", "", "path to the English corpus file (plain text)")
		out      = flag.String("out", "./models", "output directory for the model bundle")
		orders   = flag.String("orders", "", "comma separated n-gram orders, e.g. 3,4,5,6 (default 3,4,5,6)")
		topN     = flag.Int("top", 0, "profile size per language (default 500)")
		cutoff   = flag.Float64("cutoff", 0, "discriminative log-ratio cutoff (default 0.5)")
		epsilon  = flag.Float64("epsilon", 0, "smoothing epsilon (default 1e-9)")
		evidence = flag.Int("evidence", 0, "match count at which the discriminative blend saturates (default 10)")
	)
	flag.Parse()

	l := logger.Get()

	corpusES := readCorpus(*esPath, "es")
	corpusEN := readCorpus(*enPath, "en")

	bundle, err := trainer.Train(corpusES, corpusEN, trainer.Config{
		LangA:     modelpack.Lang{Code: "es", Label: "Español"},
		LangB:     modelpack.Lang{Code: "en", Label: "English"},
		Orders:    parseOrders(*orders),
		TopN:      *topN,
		Cutoff:    *cutoff,
		Epsilon:   *epsilon,
		EvidenceM: *evidence,
	})
	must(err)

	must(bundle.Write(*out))
	l.Info().
		Str("build_id", bundle.Meta.BuildID).
		Str("dir", *out).
		Int("weights", len(bundle.Weights)).
		Msg("model bundle written")
}
