package geo

// SenegalCenter is the default map center when no location is known.
var SenegalCenter = Point{Lat: 14.4974, Lng: -14.4524}

// Map zoom levels used by the dashboard.
const (
	CountryZoom = 7
	RegionZoom  = 10
)

// DefaultRegions returns the monitored regions. A new slice is returned on
// every call.
func DefaultRegions() []Region {
	return []Region{
		{Name: "Dakar", Coordinate: Point{Lat: 14.7167, Lng: -17.4677}},
		{Name: "Thiès", Coordinate: Point{Lat: 14.795, Lng: -16.935}},
		{Name: "Saint-Louis", Coordinate: Point{Lat: 16.0333, Lng: -16.5}},
		{Name: "Kaolack", Coordinate: Point{Lat: 14.1520, Lng: -16.0726}},
	}
}
