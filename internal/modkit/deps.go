// Package modkit provides module wiring and core deps
package modkit

import (
	"spanglish/internal/core/modelpack"
	"spanglish/internal/platform/config"
	"spanglish/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Bundle *modelpack.Bundle
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the bundle before serving classifications
func (d Deps) ZeroOK() bool { return true }
