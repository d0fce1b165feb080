// Package route maps elapsed-flight percentages to positions along a flight
// plan's waypoint polyline.
//
// This package handles:
// - The time-based route progress model, including fixed ground-taxi phases
// - Pinning the position to the route endpoints during taxi-out and taxi-in
// - A precomputed, evenly time-spaced sample cache for O(log n) scrubbing
//
// In-flight positioning interpolates lat/lon linearly between waypoints.
// That is deliberate: inter-waypoint spacing on filed routes is short enough
// that the planar approximation holds, and the sample cache's values depend
// on it. Dead reckoning of live aircraft lives in package track and uses
// true great-circle math; the two must not be merged.
package route
