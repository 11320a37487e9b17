package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/domain"
	"heatwatch/internal/geo"
	"heatwatch/internal/port"
	"heatwatch/internal/service"
	"heatwatch/mocks"
)

func newRegionService(hw *mocks.MockHeatwaveRepo, recs *mocks.MockRecommendationRepo) service.RegionService {
	return service.NewRegionService(geo.DefaultRegions(), hw, recs, service.RegionServiceConfig{
		LocateTimeout: 50 * time.Millisecond,
		CacheSize:     8,
		CacheTTL:      time.Minute,
	})
}

func cityFilter(city string) interface{} {
	return mock.MatchedBy(func(f port.HeatwaveFilter) bool {
		return f.City == city && f.ActiveAt != nil
	})
}

func TestRegionService_Snapshot_AggregatesAndCaches(t *testing.T) {
	hwRepo := new(mocks.MockHeatwaveRepo)
	recRepo := new(mocks.MockRecommendationRepo)
	svc := newRegionService(hwRepo, recRepo)

	waves := []domain.Heatwave{
		{ID: uuid.New(), MaxTempC: 38, HumidityPct: 60},
		{ID: uuid.New(), MaxTempC: 41.2, HumidityPct: 35},
	}
	recs := []domain.Recommendation{{ID: uuid.New(), Title: "Hydratation"}}
	hwRepo.On("List", mock.Anything, cityFilter("Dakar"), 0, 100).Return(waves, 2, nil).Once()
	recRepo.On("List", mock.Anything, port.RecommendationFilter{City: "Dakar"}, 0, 100).Return(recs, 1, nil).Once()

	snap, err := svc.Snapshot(context.Background(), " dakar ")
	require.NoError(t, err)
	assert.Equal(t, "Dakar", snap.Region)
	assert.Equal(t, 41.2, snap.MaxTempC)
	assert.Equal(t, 35.0, snap.HumidityPct)
	assert.Equal(t, domain.AlertLevelDanger, snap.Level)
	assert.Len(t, snap.Recommendations, 1)

	again, err := svc.Snapshot(context.Background(), "DAKAR")
	require.NoError(t, err)
	assert.Same(t, snap, again)
	hwRepo.AssertExpectations(t)
	recRepo.AssertExpectations(t)
}

func TestRegionService_Snapshot_QuietRegionIsNormal(t *testing.T) {
	hwRepo := new(mocks.MockHeatwaveRepo)
	recRepo := new(mocks.MockRecommendationRepo)
	svc := newRegionService(hwRepo, recRepo)

	hwRepo.On("List", mock.Anything, cityFilter("Kaolack"), 0, 100).Return(nil, 0, nil)
	recRepo.On("List", mock.Anything, mock.Anything, 0, 100).Return(nil, 0, nil)

	snap, err := svc.Snapshot(context.Background(), "Kaolack")
	require.NoError(t, err)
	assert.Equal(t, domain.AlertLevelNormal, snap.Level)
	assert.NotNil(t, snap.ActiveHeatwaves)
	assert.NotNil(t, snap.Recommendations)
}

func TestRegionService_Snapshot_UnknownRegion(t *testing.T) {
	svc := newRegionService(new(mocks.MockHeatwaveRepo), new(mocks.MockRecommendationRepo))
	_, err := svc.Snapshot(context.Background(), "Ziguinchor")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestRegionService_Snapshot_ErrorsAreNotCached(t *testing.T) {
	hwRepo := new(mocks.MockHeatwaveRepo)
	recRepo := new(mocks.MockRecommendationRepo)
	svc := newRegionService(hwRepo, recRepo)

	hwRepo.On("List", mock.Anything, cityFilter("Thiès"), 0, 100).Return(nil, 0, errors.New("db down")).Once()
	_, err := svc.Snapshot(context.Background(), "Thiès")
	require.Error(t, err)

	hwRepo.On("List", mock.Anything, cityFilter("Thiès"), 0, 100).Return([]domain.Heatwave{}, 0, nil).Once()
	recRepo.On("List", mock.Anything, mock.Anything, 0, 100).Return([]domain.Recommendation{}, 0, nil).Once()
	_, err = svc.Snapshot(context.Background(), "Thiès")
	require.NoError(t, err)
}

func TestRegionService_Invalidate(t *testing.T) {
	hwRepo := new(mocks.MockHeatwaveRepo)
	recRepo := new(mocks.MockRecommendationRepo)
	svc := newRegionService(hwRepo, recRepo)

	hwRepo.On("List", mock.Anything, mock.Anything, 0, 100).Return([]domain.Heatwave{}, 0, nil).Twice()
	recRepo.On("List", mock.Anything, mock.Anything, 0, 100).Return([]domain.Recommendation{}, 0, nil).Twice()

	_, err := svc.Snapshot(context.Background(), "Saint-Louis")
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Snapshot(context.Background(), "Saint-Louis")
	require.NoError(t, err)
	hwRepo.AssertExpectations(t)
}

func TestRegionService_NearestAndFocus(t *testing.T) {
	svc := newRegionService(new(mocks.MockHeatwaveRepo), new(mocks.MockRecommendationRepo))

	m := svc.Nearest(geo.Point{Lat: 14.70, Lng: -17.40})
	require.NotNil(t, m)
	assert.Equal(t, "Dakar", m.Region.Name)

	focus := svc.Focus(context.Background(), geo.StaticLocator{Lat: 16.0, Lng: -16.49})
	assert.False(t, focus.LocationUnavailable)
	assert.Equal(t, geo.RegionZoom, focus.Zoom)
	assert.Equal(t, "Saint-Louis", focus.Nearest.Region.Name)

	focus = svc.Focus(context.Background(), nil)
	assert.True(t, focus.LocationUnavailable)
	assert.Equal(t, geo.SenegalCenter, focus.Center)

	regions := svc.Regions()
	regions[0].Name = "changed"
	assert.Equal(t, "Dakar", svc.Regions()[0].Name)
}
