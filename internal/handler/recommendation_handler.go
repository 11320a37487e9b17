package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"heatwatch/internal/port"
	"heatwatch/internal/service"
)

// RecommendationHandler handles health recommendation endpoints.
type RecommendationHandler struct {
	recService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

// Create handles POST /api/v1/recommendations
// @Summary Publish a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.RecommendationInput true "Recommendation"
// @Success 201 {object} Response{data=domain.Recommendation}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody "Zone not found"
// @Router /recommendations [post]
func (h *RecommendationHandler) Create(c *gin.Context) {
	var input service.RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	rec, err := h.recService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rec)
}

// List handles GET /api/v1/recommendations
// @Summary List recommendations
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param zone_id query string false "Filter by zone"
// @Param city query string false "Filter by zone city"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Recommendation,meta=PagMeta}
// @Failure 400 {object} ErrorResponseBody
// @Router /recommendations [get]
func (h *RecommendationHandler) List(c *gin.Context) {
	zoneID, ok := optionalQueryID(c, "zone_id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)
	filter := port.RecommendationFilter{ZoneID: zoneID, City: strings.TrimSpace(c.Query("city"))}

	recs, total, err := h.recService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/recommendations/:id
// @Summary Get a recommendation
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Success 200 {object} Response{data=domain.Recommendation}
// @Failure 404 {object} ErrorResponseBody
// @Router /recommendations/{id} [get]
func (h *RecommendationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rec, err := h.recService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Update handles PUT /api/v1/recommendations/:id
// @Summary Replace a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Param request body service.RecommendationInput true "Recommendation"
// @Success 200 {object} Response{data=domain.Recommendation}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /recommendations/{id} [put]
func (h *RecommendationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input service.RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	rec, err := h.recService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Delete handles DELETE /api/v1/recommendations/:id
// @Summary Delete a recommendation
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody
// @Router /recommendations/{id} [delete]
func (h *RecommendationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "recommendation deleted"})
}
