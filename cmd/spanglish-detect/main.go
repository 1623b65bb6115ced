// Command spanglish-detect classifies text from the command line
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"spanglish/internal/core/classifier"
	"spanglish/internal/core/modelpack"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// demo texts covering both monolingual cases and both Spanglish dominance directions
var demoTexts = []string{
	"Hoy es un día hermoso para caminar por el parque",
	"The weather is beautiful today for a walk in the park",
	"Voy a hacer shopping porque necesito unos jeans nuevos",
	"I'm going to the tienda to buy some tortillas for dinner",
}

func classify(c *classifier.Classifier, text string, threshold float64) {
	res, err := c.Classify(text, threshold)
	must(err)
	enc, err := json.MarshalIndent(res, "", "  ")
	must(err)
	fmt.Println(string(enc))
}

func main() {
	var (
		models    = flag.String("models", "./models", "model bundle directory")
		threshold = flag.Float64("threshold", classifier.DefaultThreshold, "minority share percent that flags Spanglish")
		demo      = flag.Bool("demo", false, "classify a built-in set of sample sentences")
	)
	flag.Parse()

	bundle, err := modelpack.Load(*models)
	must(err)
	c := classifier.New(bundle)

	if *demo {
		for _, text := range demoTexts {
			classify(c, text, *threshold)
		}
		return
	}

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		_, _ = fmt.Fprintln(os.Stderr, "usage: spanglish-detect [-models dir] [-threshold n] <text> | -demo")
		os.Exit(2)
	}
	classify(c, text, *threshold)
}
