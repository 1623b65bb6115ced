package module

import (
	"context"

	detectdom "spanglish/internal/services/api/detect/domain"
	detectsvc "spanglish/internal/services/api/detect/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptDetectPort adapts the detect service to the domain port interface
type adaptDetectPort struct{ svc detectsvc.Service }

// Detect implements the domain ServicePort interface
func (a adaptDetectPort) Detect(ctx context.Context, in detectdom.DetectInput) (detectdom.Result, error) {
	return a.svc.Detect(ctx, in)
}

// DetectBatch implements the domain ServicePort interface
func (a adaptDetectPort) DetectBatch(ctx context.Context, in detectdom.BatchInput) ([]detectdom.BatchItem, error) {
	return a.svc.DetectBatch(ctx, in)
}
