package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"heatwatch/internal/port"
	"heatwatch/internal/service"
)

// HeatwaveHandler handles heatwave endpoints.
type HeatwaveHandler struct {
	heatwaveService service.HeatwaveService
}

// NewHeatwaveHandler creates a new HeatwaveHandler.
func NewHeatwaveHandler(heatwaveService service.HeatwaveService) *HeatwaveHandler {
	return &HeatwaveHandler{heatwaveService: heatwaveService}
}

// Create handles POST /api/v1/heatwaves
// @Summary Record a heatwave
// @Description Record a heatwave episode. Every resident of its zone gets a pending notification.
// @Tags heatwaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.HeatwaveInput true "Heatwave"
// @Success 201 {object} Response{data=domain.Heatwave}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody "Zone not found"
// @Router /heatwaves [post]
func (h *HeatwaveHandler) Create(c *gin.Context) {
	var input service.HeatwaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	hw, err := h.heatwaveService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, hw)
}

// List handles GET /api/v1/heatwaves
// @Summary List heatwaves
// @Tags heatwaves
// @Produce json
// @Security BearerAuth
// @Param zone_id query string false "Filter by zone"
// @Param city query string false "Filter by zone city"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Heatwave,meta=PagMeta}
// @Failure 400 {object} ErrorResponseBody
// @Router /heatwaves [get]
func (h *HeatwaveHandler) List(c *gin.Context) {
	zoneID, ok := optionalQueryID(c, "zone_id")
	if !ok {
		return
	}
	offset, limit := parsePagination(c)
	filter := port.HeatwaveFilter{ZoneID: zoneID, City: strings.TrimSpace(c.Query("city"))}

	waves, total, err := h.heatwaveService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, waves, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Active handles GET /api/v1/heatwaves/active
// @Summary List heatwaves in progress
// @Tags heatwaves
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Heatwave,meta=PagMeta}
// @Router /heatwaves/active [get]
func (h *HeatwaveHandler) Active(c *gin.Context) {
	offset, limit := parsePagination(c)

	waves, total, err := h.heatwaveService.Active(c.Request.Context(), time.Now().UTC(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, waves, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/heatwaves/:id
// @Summary Get a heatwave
// @Tags heatwaves
// @Produce json
// @Security BearerAuth
// @Param id path string true "Heatwave ID"
// @Success 200 {object} Response{data=domain.Heatwave}
// @Failure 404 {object} ErrorResponseBody
// @Router /heatwaves/{id} [get]
func (h *HeatwaveHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	hw, err := h.heatwaveService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, hw)
}

// Update handles PUT /api/v1/heatwaves/:id
// @Summary Replace a heatwave
// @Tags heatwaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Heatwave ID"
// @Param request body service.HeatwaveInput true "Heatwave"
// @Success 200 {object} Response{data=domain.Heatwave}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /heatwaves/{id} [put]
func (h *HeatwaveHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input service.HeatwaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	hw, err := h.heatwaveService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, hw)
}

// Delete handles DELETE /api/v1/heatwaves/:id
// @Summary Delete a heatwave
// @Tags heatwaves
// @Produce json
// @Security BearerAuth
// @Param id path string true "Heatwave ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody
// @Router /heatwaves/{id} [delete]
func (h *HeatwaveHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.heatwaveService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "heatwave deleted"})
}
