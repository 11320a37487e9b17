package handler

import (
	"github.com/gin-gonic/gin"

	"heatwatch/internal/middleware"
	"heatwatch/internal/platform"
)

// PlatformHandler tells the dashboard shell how to lay itself out.
type PlatformHandler struct {
	catalog platform.Catalog
}

// NewPlatformHandler creates a new PlatformHandler over the given navigation catalog.
func NewPlatformHandler(catalog platform.Catalog) *PlatformHandler {
	return &PlatformHandler{catalog: catalog}
}

// Context handles GET /api/v1/platform/context
// @Summary Platform context
// @Description Classify the client from its headers and return the visible navigation and chrome for the caller's role. Works without a token.
// @Tags platform
// @Produce json
// @Param X-Display-Mode header string false "standalone when the display-mode media query matched"
// @Param X-Navigator-Standalone header bool false "navigator.standalone"
// @Success 200 {object} Response{data=platform.Context}
// @Router /platform/context [get]
func (h *PlatformHandler) Context(c *gin.Context) {
	pc := platform.Evaluate(platform.RequestSignals{Request: c.Request}, middleware.GetRole(c), h.catalog)
	RespondOK(c, pc)
}
