// Package api provides the HTTP API for the application
package api

import (
	"spanglish/internal/core/modelpack"
	"spanglish/internal/platform/config"
	phttp "spanglish/internal/platform/net/http"

	"spanglish/internal/modkit"
	"spanglish/internal/modkit/httpkit"
	"spanglish/internal/modkit/module"
	"spanglish/internal/modkit/swaggerkit"

	detectmod "spanglish/internal/services/api/detect/module"
	metamod "spanglish/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Bundle         *modelpack.Bundle
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		Bundle: opt.Bundle,
	}

	mods := []module.Module{
		metamod.New(deps),
		detectmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
