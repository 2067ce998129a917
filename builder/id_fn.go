// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index ("0","1",...).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns an IDFn producing prefix+index ("v0","v1",...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is shorthand for WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// GridID is the ID of grid corner (row, col).
func GridID(row, col int) string {
	return strconv.Itoa(row) + "," + strconv.Itoa(col)
}

// StopID is the ID of the transit stop at grid corner (row, col).
func StopID(row, col int) string {
	return "stop:" + GridID(row, col)
}
