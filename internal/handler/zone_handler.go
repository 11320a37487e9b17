package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"heatwatch/internal/domain"
	"heatwatch/internal/service"
)

// ZoneHandler handles zone endpoints.
type ZoneHandler struct {
	zoneService service.ZoneService
}

// NewZoneHandler creates a new ZoneHandler.
func NewZoneHandler(zoneService service.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

// Create handles POST /api/v1/zones
// @Summary Create a zone
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ZoneInput true "Zone"
// @Success 201 {object} Response{data=domain.Zone}
// @Failure 400 {object} ErrorResponseBody
// @Failure 403 {object} ErrorResponseBody
// @Router /zones [post]
func (h *ZoneHandler) Create(c *gin.Context) {
	var input service.ZoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, zone)
}

// List handles GET /api/v1/zones
// @Summary List zones
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Zone,meta=PagMeta}
// @Router /zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	zones, total, err := h.zoneService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, zones, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/zones/:id
// @Summary Get a zone with its residents
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} Response{data=domain.Zone}
// @Failure 404 {object} ErrorResponseBody
// @Router /zones/{id} [get]
func (h *ZoneHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	zone, err := h.zoneService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, zone)
}

// Update handles PUT /api/v1/zones/:id
// @Summary Replace a zone
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Param request body service.ZoneInput true "Zone"
// @Success 200 {object} Response{data=domain.Zone}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /zones/{id} [put]
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input service.ZoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	zone, err := h.zoneService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, zone)
}

// Delete handles DELETE /api/v1/zones/:id
// @Summary Delete a zone
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody
// @Router /zones/{id} [delete]
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "zone deleted"})
}

// AddResident handles POST /api/v1/zones/:id/residents
// @Summary Add a resident to a zone
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Param request body ResidentRequest true "Resident"
// @Success 200 {object} Response{data=domain.Zone}
// @Failure 404 {object} ErrorResponseBody
// @Failure 409 {object} ErrorResponseBody
// @Router /zones/{id}/residents [post]
func (h *ZoneHandler) AddResident(c *gin.Context) {
	h.changeResident(c, h.zoneService.AddResident)
}

// RemoveResident handles DELETE /api/v1/zones/:id/residents
// @Summary Remove a resident from a zone
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Param request body ResidentRequest true "Resident"
// @Success 200 {object} Response{data=domain.Zone}
// @Failure 404 {object} ErrorResponseBody
// @Router /zones/{id}/residents [delete]
func (h *ZoneHandler) RemoveResident(c *gin.Context) {
	h.changeResident(c, h.zoneService.RemoveResident)
}

func (h *ZoneHandler) changeResident(c *gin.Context, op func(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error)) {
	zoneID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid user_id")
		return
	}

	zone, err := op(c.Request.Context(), zoneID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, zone)
}
