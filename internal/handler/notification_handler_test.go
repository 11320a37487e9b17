package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/handler"
	"heatwatch/internal/port"
	"heatwatch/mocks"
)

func TestNotificationHandler_ListMine_UnreadOnly(t *testing.T) {
	mockNotifs := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockNotifs)
	userID := uuid.New()

	mockNotifs.On("ListMine", mock.Anything, userID, true, 0, 20).
		Return([]domain.Notification{{UserID: userID, Title: "Vague de chaleur à Dakar"}}, 1, nil)

	c, w := newContext(http.MethodGet, "/api/v1/notifications?unread=true", nil)
	withUser(c, userID, "client")
	h.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockNotifs.AssertExpectations(t)
}

func TestNotificationHandler_ListMine_RequiresUser(t *testing.T) {
	h := handler.NewNotificationHandler(new(mocks.MockNotificationService))

	c, w := newContext(http.MethodGet, "/api/v1/notifications", nil)
	h.ListMine(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotificationHandler_MarkRead_OtherUser(t *testing.T) {
	mockNotifs := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockNotifs)
	userID, id := uuid.New(), uuid.New()

	mockNotifs.On("MarkRead", mock.Anything, userID, id).Return(nil, domain.ErrNotificationNotFound)

	c, w := newContext(http.MethodPatch, "/", nil)
	withUser(c, userID, "client")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationHandler_Create_InvalidType(t *testing.T) {
	mockNotifs := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockNotifs)

	mockNotifs.On("Create", mock.Anything, mock.AnythingOfType("service.NotificationInput")).
		Return(nil, domain.ErrInvalidNotification)

	c, w := newContext(http.MethodPost, "/api/v1/notifications", map[string]interface{}{
		"user_id":     uuid.New(),
		"heatwave_id": uuid.New(),
		"title":       "Alerte",
		"type":        "urgent",
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_NOTIFICATION_TYPE", decode(t, w).Error.Code)
}

func TestRecommendationHandler_List_CityFilter(t *testing.T) {
	mockRecs := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRecs)

	mockRecs.On("List", mock.Anything, port.RecommendationFilter{City: "Matam"}, 0, 20).
		Return([]domain.Recommendation{{Title: "Buvez de l'eau"}}, 1, nil)

	c, w := newContext(http.MethodGet, "/api/v1/recommendations?city=+Matam+", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRecs.AssertExpectations(t)
}

func TestRecommendationHandler_Create_MissingTitle(t *testing.T) {
	mockRecs := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRecs)

	c, w := newContext(http.MethodPost, "/api/v1/recommendations", map[string]interface{}{
		"zone_id":     uuid.New(),
		"description": "Restez à l'ombre",
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRecs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecommendationHandler_Update_ZoneMissing(t *testing.T) {
	mockRecs := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRecs)
	id := uuid.New()

	mockRecs.On("Update", mock.Anything, id, mock.AnythingOfType("service.RecommendationInput")).
		Return(nil, domain.ErrZoneNotFound)

	c, w := newContext(http.MethodPut, "/", map[string]interface{}{
		"zone_id":     uuid.New(),
		"title":       "Hydratation",
		"description": "Buvez régulièrement",
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	h.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
