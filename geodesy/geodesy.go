package geodesy

import (
	"math"
)

// Two radius constants with different units. Both approximate the same
// sphere; keep them separate so the meter and kilometer call sites cannot
// be accidentally unified with the wrong unit.
const (
	earthRadiusMeters = 6371000.0
	earthRadiusKM     = 6371.0
)

// Point is an immutable geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// HaversineDistanceMeters returns the great-circle distance between a and b
// rounded to the nearest meter.
func HaversineDistanceMeters(a, b Point) int {
	la1 := degToRad(a.Lat)
	la2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(math.Round(earthRadiusMeters * c))
}

// InitialBearingDegrees returns the forward azimuth from a to b, normalized
// into [0,360). The bearing is mathematically indeterminate when a == b;
// callers must avoid the degenerate input.
func InitialBearingDegrees(a, b Point) float64 {
	la1 := degToRad(a.Lat)
	la2 := degToRad(b.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(la2)
	x := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)

	brng := radToDeg(math.Atan2(y, x))
	if brng < 0 {
		brng += 360
	}
	return brng
}

// DestinationPoint solves the direct geodetic problem: the point reached by
// travelling distanceKM from origin along the given initial bearing. The
// atan2 form handles pole and antimeridian wrap without special cases.
func DestinationPoint(origin Point, distanceKM, bearingDeg float64) Point {
	la1 := degToRad(origin.Lat)
	lo1 := degToRad(origin.Lon)
	brng := degToRad(bearingDeg)
	ad := distanceKM / earthRadiusKM // angular distance

	la2 := math.Asin(math.Sin(la1)*math.Cos(ad) +
		math.Cos(la1)*math.Sin(ad)*math.Cos(brng))
	lo2 := lo1 + math.Atan2(math.Sin(brng)*math.Sin(ad)*math.Cos(la1),
		math.Cos(ad)-math.Sin(la1)*math.Sin(la2))

	return Point{Lat: radToDeg(la2), Lon: radToDeg(lo2)}
}
