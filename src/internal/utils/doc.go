// Package utils provides small helpers shared across holectl packages:
// hostname validation for list entries, atomic file replacement and path handling.
package utils
