package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/domain"
	"heatwatch/internal/service"
	"heatwatch/mocks"
)

func TestNotificationService_Create(t *testing.T) {
	notifRepo := new(mocks.MockNotificationRepo)
	userRepo := new(mocks.MockUserRepo)
	hwRepo := new(mocks.MockHeatwaveRepo)
	svc := service.NewNotificationService(notifRepo, userRepo, hwRepo)

	userID, hwID := uuid.New(), uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	hwRepo.On("GetByID", mock.Anything, hwID).Return(&domain.Heatwave{ID: hwID}, nil)
	notifRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(ns []domain.Notification) bool {
		return len(ns) == 1 && ns[0].Type == domain.NotificationWarning && ns[0].UserID == userID
	})).Return(nil)

	n, err := svc.Create(context.Background(), service.NotificationInput{
		UserID: userID, HeatwaveID: hwID, Title: " Restez à l'ombre ", Type: "WARNING",
	})
	require.NoError(t, err)
	assert.Equal(t, "Restez à l'ombre", n.Title)
	assert.Equal(t, domain.DeliveryPending, n.Delivery)
}

func TestNotificationService_Create_InvalidType(t *testing.T) {
	notifRepo := new(mocks.MockNotificationRepo)
	svc := service.NewNotificationService(notifRepo, new(mocks.MockUserRepo), new(mocks.MockHeatwaveRepo))

	_, err := svc.Create(context.Background(), service.NotificationInput{
		UserID: uuid.New(), HeatwaveID: uuid.New(), Title: "x", Type: "emergency",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidNotification)
	notifRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	notifRepo := new(mocks.MockNotificationRepo)
	svc := service.NewNotificationService(notifRepo, new(mocks.MockUserRepo), new(mocks.MockHeatwaveRepo))

	userID, id := uuid.New(), uuid.New()
	notifRepo.On("MarkRead", mock.Anything, userID, id).Return(domain.ErrNotificationNotFound)

	_, err := svc.MarkRead(context.Background(), userID, id)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	notifRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notifRepo := new(mocks.MockNotificationRepo)
	svc := service.NewNotificationService(notifRepo, new(mocks.MockUserRepo), new(mocks.MockHeatwaveRepo))

	userID, id := uuid.New(), uuid.New()
	notifRepo.On("MarkRead", mock.Anything, userID, id).Return(nil)
	notifRepo.On("GetByID", mock.Anything, id).Return(&domain.Notification{ID: id, UserID: userID, Read: true}, nil)

	n, err := svc.MarkRead(context.Background(), userID, id)
	require.NoError(t, err)
	assert.True(t, n.Read)
}
