package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"heatwatch/internal/geo"
	"heatwatch/internal/service"
)

var (
	errNoPosition     = errors.New("position not provided")
	errNotFiniteCoord = errors.New("coordinate is not a finite number")
)

// RegionHandler serves the region catalog, nearest-region lookups and the
// dashboard map focus.
type RegionHandler struct {
	regionService service.RegionService
}

// NewRegionHandler creates a new RegionHandler.
func NewRegionHandler(regionService service.RegionService) *RegionHandler {
	return &RegionHandler{regionService: regionService}
}

// List handles GET /api/v1/regions
// @Summary List regions
// @Tags regions
// @Produce json
// @Success 200 {object} Response{data=[]geo.Region}
// @Router /regions [get]
func (h *RegionHandler) List(c *gin.Context) {
	RespondOK(c, h.regionService.Regions())
}

// Nearest handles GET /api/v1/regions/nearest
// @Summary Nearest region
// @Description Find the region closest to a point. nearest is null when no region is configured.
// @Tags regions
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} Response{data=NearestResponse}
// @Failure 400 {object} ErrorResponseBody
// @Router /regions/nearest [get]
func (h *RegionHandler) Nearest(c *gin.Context) {
	p, err := parsePoint(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_COORDINATES", "lat and lng must be decimal numbers")
		return
	}

	resp := NearestResponse{Latitude: p.Lat, Longitude: p.Lng}
	if match := h.regionService.Nearest(p); match != nil {
		resp.Nearest = match
	}
	RespondOK(c, resp)
}

// Focus handles GET /api/v1/dashboard/focus
// @Summary Dashboard map focus
// @Description Center the map on the caller's position. Without usable coordinates the focus falls back to the whole country.
// @Tags regions
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} Response{data=geo.Focus}
// @Router /dashboard/focus [get]
func (h *RegionHandler) Focus(c *gin.Context) {
	var locator geo.Locator
	if p, err := parsePoint(c); err == nil {
		locator = geo.StaticLocator(p)
	} else {
		locator = geo.LocatorFunc(func(context.Context) (geo.Point, error) {
			return geo.Point{}, errNoPosition
		})
	}
	RespondOK(c, h.regionService.Focus(c.Request.Context(), locator))
}

func parsePoint(c *gin.Context) (geo.Point, error) {
	lat, err := parseCoord(c.Query("lat"))
	if err != nil {
		return geo.Point{}, err
	}
	lng, err := parseCoord(c.Query("lng"))
	if err != nil {
		return geo.Point{}, err
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}

// parseCoord rejects NaN and infinities, which ParseFloat accepts but JSON
// cannot encode.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFiniteCoord
	}
	return v, nil
}
