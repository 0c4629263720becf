// Package geo provides great-circle distance math and the radius pre-filter
// used to decide which chores are visible to a provider at a given location.
package geo

import (
	"math"

	"github.com/choremarket/chore-api/internal/core/domain"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the spherical formulas.
	EarthRadiusKm = 6371

	// kmPerDegreeLat is the approximate length of one degree of latitude.
	// Slightly below the true meridional value, so thresholds derived from it
	// are a little wider than necessary and the pre-filter never rejects a
	// point the exact formula would accept.
	kmPerDegreeLat = 111
)

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// DistanceKm computes the great-circle distance in kilometers between two
// coordinates using the haversine formula.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// ApproxDistanceKm computes the equirectangular approximation of the distance
// in kilometers. Sufficient for small distances (< 500 km) and cheaper than
// the haversine formula.
func ApproxDistanceKm(a, b domain.Coordinate) float64 {
	x := deg2rad(b.Lon-a.Lon) * math.Cos(deg2rad((a.Lat+b.Lat)/2))
	y := deg2rad(b.Lat - a.Lat)
	return math.Sqrt(x*x+y*y) * EarthRadiusKm
}

// RadiusFilter decides whether candidate coordinates lie within a fixed radius
// of an origin. A cheap bounding-box check rejects clearly distant candidates
// before the exact distance is computed; the box is derived so it can widen
// but never shrink the true radius, making the pre-filter sound.
type RadiusFilter struct {
	origin       domain.Coordinate
	radiusKm     float64
	latThreshold float64
	lonThreshold float64
}

// NewRadiusFilter builds a RadiusFilter around origin with the given radius
// in kilometers.
func NewRadiusFilter(origin domain.Coordinate, radiusKm float64) RadiusFilter {
	f := RadiusFilter{
		origin:       origin,
		radiusKm:     radiusKm,
		latThreshold: radiusKm / kmPerDegreeLat,
	}

	// Degrees of longitude shrink with latitude. Near the poles cos(lat)
	// approaches zero and the division blows up; widen to the full range
	// instead of rejecting anything on longitude alone.
	cosLat := math.Cos(deg2rad(origin.Lat))
	if cosLat <= 0 {
		f.lonThreshold = 180
	} else {
		f.lonThreshold = math.Min(radiusKm/(kmPerDegreeLat*cosLat), 180)
	}
	return f
}

// Contains reports whether c lies within the filter radius of the origin.
func (f RadiusFilter) Contains(c domain.Coordinate) bool {
	if math.Abs(c.Lat-f.origin.Lat) > f.latThreshold {
		return false
	}

	dLon := math.Abs(c.Lon - f.origin.Lon)
	if d := 360 - dLon; d < dLon {
		dLon = d // wraparound across the antimeridian
	}
	if dLon > f.lonThreshold {
		return false
	}

	return DistanceKm(f.origin, c) <= f.radiusKm
}
