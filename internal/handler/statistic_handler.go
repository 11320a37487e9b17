package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"heatwatch/internal/csvexport"
	"heatwatch/internal/service"
)

// StatisticHandler handles heatwave statistic endpoints.
type StatisticHandler struct {
	statService service.StatisticService
}

// NewStatisticHandler creates a new StatisticHandler.
func NewStatisticHandler(statService service.StatisticService) *StatisticHandler {
	return &StatisticHandler{statService: statService}
}

// Create handles POST /api/v1/statistics
// @Summary Record statistics for a heatwave
// @Tags statistics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.StatisticInput true "Statistic"
// @Success 201 {object} Response{data=domain.Statistic}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody "Heatwave not found"
// @Failure 409 {object} ErrorResponseBody "Heatwave already has statistics"
// @Router /statistics [post]
func (h *StatisticHandler) Create(c *gin.Context) {
	var input service.StatisticInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	stat, err := h.statService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, stat)
}

// List handles GET /api/v1/statistics
// @Summary List statistics
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Statistic,meta=PagMeta}
// @Router /statistics [get]
func (h *StatisticHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	stats, total, err := h.statService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, stats, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/statistics/:id
// @Summary Get a statistic
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statistic ID"
// @Success 200 {object} Response{data=domain.Statistic}
// @Failure 404 {object} ErrorResponseBody
// @Router /statistics/{id} [get]
func (h *StatisticHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stat, err := h.statService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stat)
}

// GetByHeatwave handles GET /api/v1/statistics/by-heatwave/:id
// @Summary Get the statistic of a heatwave
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Heatwave ID"
// @Success 200 {object} Response{data=domain.Statistic}
// @Failure 404 {object} ErrorResponseBody
// @Router /statistics/by-heatwave/{id} [get]
func (h *StatisticHandler) GetByHeatwave(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stat, err := h.statService.GetByHeatwave(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stat)
}

// Summary handles GET /api/v1/statistics/summary
// @Summary Global statistics
// @Description Total statistics, total recorded waves and the global mean temperature rounded to 2 decimals.
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=domain.StatisticsSummary}
// @Router /statistics/summary [get]
func (h *StatisticHandler) Summary(c *gin.Context) {
	summary, err := h.statService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Update handles PUT /api/v1/statistics/:id
// @Summary Replace a statistic
// @Tags statistics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statistic ID"
// @Param request body service.StatisticInput true "Statistic"
// @Success 200 {object} Response{data=domain.Statistic}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /statistics/{id} [put]
func (h *StatisticHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input service.StatisticInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	stat, err := h.statService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stat)
}

// Delete handles DELETE /api/v1/statistics/:id
// @Summary Delete a statistic
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Statistic ID"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponseBody
// @Router /statistics/{id} [delete]
func (h *StatisticHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.statService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "statistic deleted"})
}

// Export handles GET /api/v1/statistics/export.csv
// @Summary Export statistics as CSV
// @Description UTF-8 CSV with a byte order mark so spreadsheet tools open it correctly.
// @Tags statistics
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV file"
// @Failure 500 {object} ErrorResponseBody
// @Router /statistics/export.csv [get]
func (h *StatisticHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	if err := h.statService.Export(c.Request.Context(), &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("statistiques vagues de chaleur", "csv", time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
