// Package modelpack loads and writes the persisted model bundle consumed by
// the classifier: one JSON table per (language, model kind) plus a meta file.
// A loaded Bundle is immutable and shared read-only by all classification
// calls for the lifetime of the process
package modelpack

import (
	"encoding/json"
	"os"
	"path/filepath"

	"spanglish/internal/core/discrim"
	"spanglish/internal/core/profile"
	perr "spanglish/internal/platform/errors"
)

// FormatVersion is the on-disk bundle format this build reads and writes
const FormatVersion = 1

// Lang identifies one of the two supported languages
type Lang struct {
	Code  string `json:"code"`  // short code used in file names, e.g. "es"
	Label string `json:"label"` // display label reported in results, e.g. "Español"
}

// Meta is the bundle manifest. Config fields echo the training configuration
// so a loaded bundle carries its own provenance
type Meta struct {
	FormatVersion int     `json:"format_version"`
	BuildID       string  `json:"build_id"`
	BuiltAt       string  `json:"built_at"`
	LangA         Lang    `json:"lang_a"`
	LangB         Lang    `json:"lang_b"`
	Orders        []int   `json:"orders"`
	TopN          int     `json:"top_n"`
	Cutoff        float64 `json:"cutoff"`
	Epsilon       float64 `json:"epsilon"`
	EvidenceM     int     `json:"evidence_m"`
}

// Bundle is the immutable pair of model kinds for both languages.
// Profiles is keyed by language code; Weights is signed for the (A, B) pair
// with positive values favoring A
type Bundle struct {
	Meta     Meta
	Profiles map[string]profile.Profile
	Weights  discrim.Weights
}

const (
	metaFile = "meta.json"
)

func profileFile(code string) string { return "profile_" + code + ".json" }

func weightsFile(a, b Lang) string { return "discrim_" + a.Code + "_" + b.Code + ".json" }

// Load reads a bundle from dir. Any missing or corrupt table is a model
// error; callers on the serving path treat that as fatal at startup since no
// classification can proceed without a complete bundle
func Load(dir string) (*Bundle, error) {
	var meta Meta
	if err := readJSON(filepath.Join(dir, metaFile), &meta); err != nil {
		return nil, err
	}
	if meta.FormatVersion != FormatVersion {
		return nil, perr.Newf(perr.ErrorCodeModel,
			"unsupported bundle format %d (want %d)", meta.FormatVersion, FormatVersion)
	}

	b := &Bundle{Meta: meta, Profiles: make(map[string]profile.Profile, 2)}
	for _, l := range []Lang{meta.LangA, meta.LangB} {
		var ranks map[string]int
		if err := readJSON(filepath.Join(dir, profileFile(l.Code)), &ranks); err != nil {
			return nil, err
		}
		b.Profiles[l.Code] = profile.Profile{Ranks: ranks, TopN: meta.TopN}
	}

	var w discrim.Weights
	if err := readJSON(filepath.Join(dir, weightsFile(meta.LangA, meta.LangB)), &w); err != nil {
		return nil, err
	}
	b.Weights = w
	return b, nil
}

// Write persists the bundle under dir, creating it if needed. encoding/json
// marshals map keys in sorted order, so identical bundles produce
// byte-identical tables
func (b *Bundle) Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeModel, "create bundle dir %s", dir)
	}
	if err := writeJSON(filepath.Join(dir, metaFile), b.Meta); err != nil {
		return err
	}
	for _, l := range []Lang{b.Meta.LangA, b.Meta.LangB} {
		if err := writeJSON(filepath.Join(dir, profileFile(l.Code)), b.Profiles[l.Code].Ranks); err != nil {
			return err
		}
	}
	return writeJSON(filepath.Join(dir, weightsFile(b.Meta.LangA, b.Meta.LangB)), b.Weights)
}

func readJSON(path string, into any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeModel, "read model table %s", path)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeModel, "parse model table %s", path)
	}
	return nil
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeModel, "encode model table %s", path)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeModel, "write model table %s", path)
	}
	return nil
}
