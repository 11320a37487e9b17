package handler

import (
	"github.com/gin-gonic/gin"

	"heatwatch/internal/service"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	authService      service.AuthService
	dashboardService service.DashboardService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService service.AuthService, dashboardService service.DashboardService) *AdminHandler {
	return &AdminHandler{authService: authService, dashboardService: dashboardService}
}

// Dashboard handles GET /api/v1/admin/dashboard
// @Summary Admin dashboard
// @Description Welcome message plus user counts per role, active heatwaves and the statistics roll-up.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.AdminDashboard}
// @Failure 403 {object} ErrorResponseBody
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	dash, err := h.dashboardService.Admin(c.Request.Context(), user)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, dash)
}
