package geofence

import (
	"math"

	"audiotour/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// metersPerDegree is the length of one degree of latitude (and of longitude at
// the equator) on the sphere orb/geo measures on.
const metersPerDegree = orb.EarthRadius * math.Pi / 180

// boundSlack pads the box so points exactly on the radius survive rounding.
const boundSlack = 1.001

// minCosLat keeps the longitude span finite near the poles.
const minCosLat = 1e-6

// DistanceMeters returns the great-circle distance between two coordinates.
func DistanceMeters(a, b entity.Coordinate) float64 {
	return geo.DistanceHaversine(a.Point(), b.Point())
}

// BoundAround returns a lat/lng box containing every point within radiusMeters
// of center, using a fixed meters-per-degree approximation. The longitude range
// is not wrapped and may extend past ±180; test membership with InBound.
func BoundAround(center entity.Coordinate, radiusMeters float64) orb.Bound {
	radiusMeters *= boundSlack
	dLat := radiusMeters / metersPerDegree

	// The circle is widest in longitude on its poleward edge.
	farLat := math.Min(90, math.Abs(center.Lat)+dLat)
	cosLat := math.Cos(farLat * math.Pi / 180)

	var dLng float64
	if cosLat < minCosLat {
		dLng = 180
	} else {
		dLng = math.Min(180, radiusMeters/(metersPerDegree*cosLat))
	}

	return orb.Bound{
		Min: orb.Point{center.Lng - dLng, center.Lat - dLat},
		Max: orb.Point{center.Lng + dLng, center.Lat + dLat},
	}
}

// InBound reports whether p lies in b, treating longitudes that differ by 360
// degrees as the same meridian.
func InBound(b orb.Bound, p orb.Point) bool {
	if p.Lat() < b.Min.Lat() || p.Lat() > b.Max.Lat() {
		return false
	}

	for _, lng := range [...]float64{p.Lon(), p.Lon() + 360, p.Lon() - 360} {
		if lng >= b.Min.Lon() && lng <= b.Max.Lon() {
			return true
		}
	}

	return false
}
