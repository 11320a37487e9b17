package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/domain"
	"heatwatch/internal/service"
	"heatwatch/mocks"
)

func TestStatisticService_Create_ReloadsWithHeatwave(t *testing.T) {
	statRepo := new(mocks.MockStatisticRepo)
	hwRepo := new(mocks.MockHeatwaveRepo)
	svc := service.NewStatisticService(statRepo, hwRepo)

	hwID, statID := uuid.New(), uuid.New()
	hwRepo.On("GetByID", mock.Anything, hwID).Return(&domain.Heatwave{ID: hwID}, nil)
	statRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Statistic")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Statistic).ID = statID }).
		Return(nil)
	statRepo.On("GetByID", mock.Anything, statID).
		Return(&domain.Statistic{ID: statID, HeatwaveID: hwID, HeatwaveMax: 42}, nil)

	stat, err := svc.Create(context.Background(), service.StatisticInput{HeatwaveID: hwID, MeanTempC: 38.2, WaveCount: 3})
	require.NoError(t, err)
	assert.Equal(t, 42.0, stat.HeatwaveMax)
}

func TestStatisticService_Create_Duplicate(t *testing.T) {
	statRepo := new(mocks.MockStatisticRepo)
	hwRepo := new(mocks.MockHeatwaveRepo)
	svc := service.NewStatisticService(statRepo, hwRepo)

	hwID := uuid.New()
	hwRepo.On("GetByID", mock.Anything, hwID).Return(&domain.Heatwave{ID: hwID}, nil)
	statRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateStatistic)

	_, err := svc.Create(context.Background(), service.StatisticInput{HeatwaveID: hwID})
	assert.ErrorIs(t, err, domain.ErrDuplicateStatistic)
}

func TestStatisticService_Create_UnknownHeatwave(t *testing.T) {
	statRepo := new(mocks.MockStatisticRepo)
	hwRepo := new(mocks.MockHeatwaveRepo)
	svc := service.NewStatisticService(statRepo, hwRepo)

	hwID := uuid.New()
	hwRepo.On("GetByID", mock.Anything, hwID).Return(nil, domain.ErrHeatwaveNotFound)

	_, err := svc.Create(context.Background(), service.StatisticInput{HeatwaveID: hwID})
	assert.ErrorIs(t, err, domain.ErrHeatwaveNotFound)
}

func TestStatisticService_Export_PagesThroughAll(t *testing.T) {
	statRepo := new(mocks.MockStatisticRepo)
	svc := service.NewStatisticService(statRepo, new(mocks.MockHeatwaveRepo))

	created := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	first := make([]domain.Statistic, 500)
	for i := range first {
		first[i] = domain.Statistic{ID: uuid.New(), HeatwaveID: uuid.New(), MeanTempC: 37, WaveCount: 1, CreatedAt: created}
	}
	second := []domain.Statistic{{ID: uuid.New(), HeatwaveID: uuid.New(), MeanTempC: 39.5, WaveCount: 2, CreatedAt: created}}

	statRepo.On("List", mock.Anything, 0, 500).Return(first, 501, nil).Once()
	statRepo.On("List", mock.Anything, 500, 500).Return(second, 501, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 502)
	assert.Equal(t, "Statistic ID", records[0][0])
	statRepo.AssertExpectations(t)
}

func TestStatisticService_Export_Empty(t *testing.T) {
	statRepo := new(mocks.MockStatisticRepo)
	svc := service.NewStatisticService(statRepo, new(mocks.MockHeatwaveRepo))
	statRepo.On("List", mock.Anything, 0, 500).Return([]domain.Statistic{}, 0, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
