package geo_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/geo"
)

func TestFindNearest_Dakar(t *testing.T) {
	regions := geo.DefaultRegions()[:3]

	m := geo.FindNearest(geo.Point{Lat: 14.70, Lng: -17.40}, regions)

	require.NotNil(t, m)
	assert.Equal(t, "Dakar", m.Region.Name)
	assert.InDelta(t, 0.07, m.Distance, 0.005)
}

func TestFindNearest_EmptyCatalog(t *testing.T) {
	assert.Nil(t, geo.FindNearest(geo.Point{Lat: 14, Lng: -17}, nil))
	assert.Nil(t, geo.FindNearest(geo.Point{Lat: 14, Lng: -17}, []geo.Region{}))
}

func TestFindNearest_TieGoesToFirst(t *testing.T) {
	regions := []geo.Region{
		{Name: "east", Coordinate: geo.Point{Lat: 0, Lng: 1}},
		{Name: "west", Coordinate: geo.Point{Lat: 0, Lng: -1}},
	}
	for i := 0; i < 10; i++ {
		m := geo.FindNearest(geo.Point{}, regions)
		require.NotNil(t, m)
		assert.Equal(t, "east", m.Region.Name)
		assert.Equal(t, 1.0, m.Distance)
	}

	reversed := []geo.Region{regions[1], regions[0]}
	assert.Equal(t, "west", geo.FindNearest(geo.Point{}, reversed).Region.Name)
}

func TestFindNearest_ExactMatch(t *testing.T) {
	for _, r := range geo.DefaultRegions() {
		m := geo.FindNearest(r.Coordinate, geo.DefaultRegions())
		require.NotNil(t, m)
		assert.Equal(t, r.Name, m.Region.Name)
		assert.Zero(t, m.Distance)
	}
}

func TestFindNearest_NaNDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		geo.FindNearest(geo.Point{Lat: math.NaN(), Lng: 0}, geo.DefaultRegions())
	})
}

func TestDefaultRegions_ReturnsCopy(t *testing.T) {
	a := geo.DefaultRegions()
	a[0].Name = "changed"
	assert.Equal(t, "Dakar", geo.DefaultRegions()[0].Name)
}

func TestResolveFocus_Success(t *testing.T) {
	f := geo.ResolveFocus(context.Background(), geo.StaticLocator{Lat: 16.0, Lng: -16.4}, geo.DefaultRegions(), time.Second)

	assert.False(t, f.LocationUnavailable)
	assert.Equal(t, geo.Point{Lat: 16.0, Lng: -16.4}, f.Center)
	assert.Equal(t, geo.RegionZoom, f.Zoom)
	require.NotNil(t, f.Nearest)
	assert.Equal(t, "Saint-Louis", f.Nearest.Region.Name)
}

func TestResolveFocus_EmptyCatalogKeepsLocation(t *testing.T) {
	f := geo.ResolveFocus(context.Background(), geo.StaticLocator{Lat: 14, Lng: -17}, nil, 0)

	assert.False(t, f.LocationUnavailable)
	assert.Nil(t, f.Nearest)
}

func TestResolveFocus_Failures(t *testing.T) {
	calls := 0
	failing := geo.LocatorFunc(func(context.Context) (geo.Point, error) {
		calls++
		return geo.Point{}, errors.New("permission denied")
	})
	blocking := geo.LocatorFunc(func(ctx context.Context) (geo.Point, error) {
		<-ctx.Done()
		return geo.Point{}, ctx.Err()
	})
	panicking := geo.LocatorFunc(func(context.Context) (geo.Point, error) {
		panic("geolocation not supported")
	})

	tests := []struct {
		name    string
		locator geo.Locator
	}{
		{"nil locator", nil},
		{"error", failing},
		{"timeout", blocking},
		{"panic", panicking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := geo.ResolveFocus(context.Background(), tt.locator, geo.DefaultRegions(), 20*time.Millisecond)

			assert.True(t, f.LocationUnavailable)
			assert.Equal(t, geo.SenegalCenter, f.Center)
			assert.Equal(t, geo.CountryZoom, f.Zoom)
			assert.Nil(t, f.Nearest)
			assert.NotEmpty(t, f.Reason)
		})
	}
	assert.Equal(t, 1, calls)
}

func TestResolveFocus_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocking := geo.LocatorFunc(func(ctx context.Context) (geo.Point, error) {
		<-ctx.Done()
		return geo.Point{}, ctx.Err()
	})

	f := geo.ResolveFocus(ctx, blocking, geo.DefaultRegions(), 0)

	assert.True(t, f.LocationUnavailable)
}
