// Package sentinel holds infrastructure facts. Lookups return these, possibly
// wrapped, and services translate them into coded domain errors.
//
// For validation failures (bad input, out-of-range years) use pkg/domain-errors
// directly.
package sentinel

import "errors"

// ErrNotFound reports that a looked-up entity is not in the catalog.
var ErrNotFound = errors.New("not found")
