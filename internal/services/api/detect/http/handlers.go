// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"spanglish/internal/modkit/httpkit"
	"spanglish/internal/services/api/detect/domain"
	svc "spanglish/internal/services/api/detect/service"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DetectInput](r, "/", h.detect)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /detect Detect detectOne
// @Summary Classify a text as Spanish, English, or Spanglish
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text and optional threshold"
// @Success 200 {object} domain.Result "ok"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route POST /detect/batch Detect detectBatch
// @Summary Classify several texts in one call
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Texts and optional threshold"
// @Success 200 {array} domain.BatchItem "ok"
// @Router /detect/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.DetectBatch(r.Context(), in)
}
