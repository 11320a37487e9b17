package handler

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"heatwatch/internal/service"
	"heatwatch/internal/storage/s3"
)

const textReportSuffix = ".txt"

// ReportHandler renders region reports.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Publish handles POST /api/v1/reports/regions/:name
// @Summary Publish a region report
// @Description Render the region snapshot as a spreadsheet, upload it and return a time-limited download link.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param name path string true "Region name"
// @Success 201 {object} Response{data=service.ReportLink}
// @Failure 404 {object} ErrorResponseBody "Region not found"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Router /reports/regions/{name} [post]
func (h *ReportHandler) Publish(c *gin.Context) {
	link, err := h.reportService.PublishXLSX(c.Request.Context(), c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, link)
}

// Text handles GET /api/v1/reports/regions/:name.txt
// @Summary Plain-text region report
// @Tags reports
// @Produce text/plain
// @Security BearerAuth
// @Param name path string true "Region name followed by .txt"
// @Success 200 {file} file "Text report"
// @Failure 404 {object} ErrorResponseBody
// @Router /reports/regions/{name}.txt [get]
func (h *ReportHandler) Text(c *gin.Context) {
	// gin matches the whole segment, so the extension arrives inside the param.
	name, ok := strings.CutSuffix(c.Param("name"), textReportSuffix)
	if !ok || name == "" {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}

	var buf bytes.Buffer
	filename, err := h.reportService.WriteText(c.Request.Context(), name, &buf)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", s3.ContentDisposition(filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
