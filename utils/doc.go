// Package utils provides internal utility functions for the skytrail service.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting and conversion utilities
//   - Distance formatting for UI readouts
package utils
