// Package strings provides helpers for comma-separated code lists in query
// parameters.
package strings

import (
	"strings"
)

// DedupeAndTrimUpper trims and upper-cases each element, dropping empty and
// repeated values. Order is preserved.
//
// Example:
//
//	DedupeAndTrimUpper([]string{" de ", "us-ca", "DE", ""})
//	// Returns: []string{"DE", "US-CA"}
func DedupeAndTrimUpper(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		code := strings.ToUpper(strings.TrimSpace(v))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; !ok {
			seen[code] = struct{}{}
			result = append(result, code)
		}
	}

	return result
}

// SplitCodes splits a comma-separated list into normalised, unique codes.
// An empty list yields nil.
func SplitCodes(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return DedupeAndTrimUpper(strings.Split(list, ","))
}
