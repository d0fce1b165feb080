// Package track keeps a live-tracked aircraft's position moving between
// low-frequency API polls.
//
// This package handles:
//   - The LiveFix model: last confirmed position, speed, heading, timestamp
//   - Dead-reckoning extrapolation along the reported heading
//   - A per-aircraft registry of the latest fix, authoritative polls winning
//     over derived extrapolations
//
// Extrapolation is gated: an aircraft that is on the ground or moving
// below the speed threshold keeps its position, so GPS jitter in reported
// low speeds cannot visibly drift a parked or taxiing aircraft's marker.
package track
