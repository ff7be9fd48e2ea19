// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package extent defines the Extent type (a pair of positions), the
// START/END sentinel extents, and the GC-list monotonicity invariant
// that every operator in package ops must preserve on its output.
package extent

import (
	"fmt"

	"github.com/regionql/regionql/position"
)

// Extent is a pair of positions. Both components finite and P <= Q
// makes it a valid extent; either component infinite makes it a
// sentinel that never appears inside a GC-list.
type Extent struct {
	P, Q position.Position
}

// New builds a valid extent from natural endpoints.
func New(p, q uint64) Extent {
	return Extent{P: position.Nat(p), Q: position.Nat(q)}
}

// StartExtent signals "no extent exists in the backward direction".
func StartExtent() Extent {
	return Extent{P: position.NegInf(), Q: position.NegInf()}
}

// EndExtent signals "no extent exists in the forward direction".
func EndExtent() Extent {
	return Extent{P: position.PosInf(), Q: position.PosInf()}
}

// IsSentinel reports whether e is START_EXTENT, END_EXTENT, or any
// other extent with an infinite component. Sentinels must never be
// treated as real data.
func (e Extent) IsSentinel() bool {
	return !e.P.IsFinite() || !e.Q.IsFinite()
}

// IsStart reports whether e equals START_EXTENT.
func (e Extent) IsStart() bool { return e.P.IsNegInf() && e.Q.IsNegInf() }

// IsEnd reports whether e equals END_EXTENT.
func (e Extent) IsEnd() bool { return e.P.IsPosInf() && e.Q.IsPosInf() }

// Valid reports whether e is a well-formed, non-sentinel extent: both
// endpoints finite and P <= Q.
func (e Extent) Valid() bool {
	if e.IsSentinel() {
		return false
	}
	return !position.Less(e.Q, e.P)
}

func (e Extent) String() string {
	return fmt.Sprintf("(%s,%s)", e.P, e.Q)
}

// Equal reports whether e and o denote the same extent.
func Equal(e, o Extent) bool {
	return position.Compare(e.P, o.P) == 0 && position.Compare(e.Q, o.Q) == 0
}

// Contains reports whether e contains o: e.P <= o.P and o.Q <= e.Q.
// Both extents must be valid (non-sentinel).
func Contains(e, o Extent) bool {
	return !position.Less(o.P, e.P) && !position.Less(e.Q, o.Q)
}

// InvariantError reports a violation of an internal algebra invariant:
// a non-GC-list input, an attempt to use a sentinel extent as real
// data, or degenerate position arithmetic. These indicate programmer
// error and are never expected under correct use of the algebra.
type InvariantError struct {
	Reason string
	At     Extent
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("region algebra invariant violated: %s (at %s)", e.Reason, e.At)
}

// ValidGCList reports whether exts is a GC-list: strictly monotonic in
// both coordinates, i.e. for every adjacent pair, both the start and
// the end strictly increase.
func ValidGCList(exts []Extent) bool {
	for i := 1; i < len(exts); i++ {
		prev, cur := exts[i-1], exts[i]
		if !position.Less(prev.P, cur.P) || !position.Less(prev.Q, cur.Q) {
			return false
		}
	}
	return true
}

// CheckGCList returns an *InvariantError naming the first offending
// extent if exts is not a GC-list, or nil if it is valid.
func CheckGCList(exts []Extent) error {
	for i := 1; i < len(exts); i++ {
		prev, cur := exts[i-1], exts[i]
		if !position.Less(prev.P, cur.P) || !position.Less(prev.Q, cur.Q) {
			return &InvariantError{Reason: "extent list is not strictly monotonic in both coordinates", At: cur}
		}
	}
	return nil
}
