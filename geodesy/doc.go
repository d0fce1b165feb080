// Package geodesy provides great-circle math on a spherical Earth model.
//
// This package handles:
// - Haversine distance between two coordinates
// - Initial (forward azimuth) bearing between two coordinates
// - The direct geodetic problem (destination point from origin, distance, bearing)
//
// All functions take and return decimal degrees; internal math is in radians.
// Inputs are not validated - coordinates outside the nominal lat/lon ranges
// still produce a number, which may be nonsensical. Validation is the
// caller's responsibility.
package geodesy
