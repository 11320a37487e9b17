package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"heatwatch/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notifService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// Create handles POST /api/v1/notifications
// @Summary Notify a user
// @Description Queue a notification about a heatwave for one user. The email goes out with the next dispatcher poll.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.NotificationInput true "Notification"
// @Success 201 {object} Response{data=domain.Notification}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Router /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var input service.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	n, err := h.notifService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, n)
}

// ListMine handles GET /api/v1/notifications
// @Summary My notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Pagination limit" default(20)
// @Success 200 {object} Response{data=[]domain.Notification,meta=PagMeta}
// @Failure 401 {object} ErrorResponseBody
// @Router /notifications [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	offset, limit := parsePagination(c)

	items, total, err := h.notifService.ListMine(c.Request.Context(), userID, unreadOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// MarkRead handles PATCH /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} Response{data=domain.Notification}
// @Failure 404 {object} ErrorResponseBody
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	n, err := h.notifService.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, n)
}
