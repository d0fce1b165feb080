// Package flightplan holds the flight-plan data model: ordered waypoints,
// a scheduled departure instant and the planned flight duration.
//
// Plans are created once per fetch and are read-only thereafter. The
// Duration type deliberately carries float64 fields so that a malformed
// duration string can poison them with NaN instead of defaulting to zero;
// downstream math propagates the NaN and callers surface it as "unknown".
package flightplan
