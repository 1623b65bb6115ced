// @title         Spanglish API
// @version       0.1.0
// @description   Hybrid n-gram language detection for Spanish, English, and Spanglish

package main

import (
	"context"

	"spanglish/internal/core/modelpack"
	"spanglish/internal/platform/config"
	"spanglish/internal/platform/logger"
	phttp "spanglish/internal/platform/net/http"

	"spanglish/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// load the model bundle once; everything downstream shares it read-only
	modelsDir := apiCfg.MayString("MODELS", "./models")
	bundle, err := modelpack.Load(modelsDir)
	if err != nil {
		l.Panic().Err(err).Str("dir", modelsDir).Msg("model bundle load failed")
	}
	l.Info().
		Str("build_id", bundle.Meta.BuildID).
		Str("lang_a", bundle.Meta.LangA.Code).
		Str("lang_b", bundle.Meta.LangB.Code).
		Msg("model bundle loaded")

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Bundle:         bundle,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
