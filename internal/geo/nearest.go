// Package geo matches coordinates to the closest known region and resolves
// where the dashboard map should focus.
package geo

import "math"

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Region is a named reference coordinate.
type Region struct {
	Name       string `json:"name"`
	Coordinate Point  `json:"coordinate"`
}

// NearestMatch is the result of FindNearest.
type NearestMatch struct {
	Region   Region  `json:"region"`
	Distance float64 `json:"distance"`
}

// Distance is the planar Euclidean distance between a and b in degree space.
// It is not a geodesic distance, but ordering is what matters for matching
// regions spread across a single country.
func Distance(a, b Point) float64 {
	return math.Sqrt((a.Lat-b.Lat)*(a.Lat-b.Lat) + (a.Lng-b.Lng)*(a.Lng-b.Lng))
}

// FindNearest returns the region closest to p, or nil when regions is empty.
// Ties go to the region listed first. Inputs are not validated: NaN
// coordinates yield whatever the comparisons produce.
func FindNearest(p Point, regions []Region) *NearestMatch {
	var best *NearestMatch
	for _, r := range regions {
		d := Distance(p, r.Coordinate)
		if best == nil || d < best.Distance {
			best = &NearestMatch{Region: r, Distance: d}
		}
	}
	return best
}
