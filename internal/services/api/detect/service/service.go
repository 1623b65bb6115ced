// Package service contains detect workflows
package service

import (
	"context"

	"spanglish/internal/core/classifier"
	"spanglish/internal/core/modelpack"
	perr "spanglish/internal/platform/errors"
	"spanglish/internal/services/api/detect/domain"
)

// Service defines the service contract for detect
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	cls *classifier.Classifier
}

// New creates a new detect service over a loaded model bundle
func New(b *modelpack.Bundle) *Svc {
	if b == nil {
		panic("detect.Service requires a non nil model bundle")
	}
	return &Svc{cls: classifier.New(b)}
}

// Detect classifies a single text
func (s *Svc) Detect(_ context.Context, in domain.DetectInput) (domain.Result, error) {
	return s.cls.Classify(in.Text, threshold(in.Threshold))
}

// DetectBatch classifies each text independently. A text that fails
// validation yields an error item instead of failing the whole batch
func (s *Svc) DetectBatch(ctx context.Context, in domain.BatchInput) ([]domain.BatchItem, error) {
	th := threshold(in.Threshold)
	out := make([]domain.BatchItem, 0, len(in.Texts))
	for i, text := range in.Texts {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "batch canceled")
		}
		res, err := s.cls.Classify(text, th)
		if err != nil {
			out = append(out, domain.BatchItem{Index: i, Error: perr.WireFrom(err).Message})
			continue
		}
		out = append(out, domain.BatchItem{Index: i, Result: &res})
	}
	return out, nil
}

func threshold(t *float64) float64 {
	if t == nil {
		return classifier.DefaultThreshold
	}
	return *t
}
