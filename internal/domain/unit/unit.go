// Package unit contains the closed sets of measurement units, one per dimension.
// Units are string enums whose values are the canonical, case-sensitive unit
// names (e.g. "METER", "KILOGRAM"). A unit literal built outside the declared
// constants is not valid; use the Parse functions to turn user input into units.
package unit

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a unit name matches none of the variants of
// the requested dimension.
var ErrUnknownUnit = errors.New("unknown unit")

// parse looks up name among the given variants. Matching is exact.
func parse[U ~string](dimension, name string, variants []U) (U, error) {
	for _, u := range variants {
		if string(u) == name {
			return u, nil
		}
	}
	var zero U
	return zero, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, name, dimension)
}

func contains[U ~string](variants []U, u U) bool {
	for _, v := range variants {
		if v == u {
			return true
		}
	}
	return false
}

// Names returns the string names of the given units, preserving order.
func Names[U ~string](units []U) []string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = string(u)
	}
	return names
}
