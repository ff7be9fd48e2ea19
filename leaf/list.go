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

// Package leaf holds the three kinds of algebra.Operator that never
// wrap another operator: a sorted extent list built by the indexer, the
// degenerate Empty operator, and the document partitioner.
package leaf

import (
	"sort"

	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/position"
)

// List is a read-only, binary-searchable GC-list: an immutable extent
// slice, strictly monotonic in both coordinates. It is built once by
// the indexer and never mutated; it may be shared by any number of
// concurrent queries.
type List struct {
	exts []extent.Extent
}

// NewList wraps exts as a List. exts must already satisfy the GC-list
// invariant (extent.ValidGCList); NewList panics with an
// *extent.InvariantError otherwise, since a malformed leaf list is a
// programmer error in the indexer, not a runtime condition callers can
// recover from (see SPEC_FULL.md §7).
func NewList(exts []extent.Extent) *List {
	if err := extent.CheckGCList(exts); err != nil {
		panic(err)
	}
	return &List{exts: exts}
}

// Len returns the number of extents in the list.
func (l *List) Len() int { return len(l.exts) }

// At returns the i'th extent, for tests and debugging.
func (l *List) At(i int) extent.Extent { return l.exts[i] }

// Tau returns the first extent whose start is >= k.
func (l *List) Tau(k position.Position) extent.Extent {
	if k.IsPosInf() {
		return extent.EndExtent()
	}
	if k.IsNegInf() {
		if len(l.exts) == 0 {
			return extent.EndExtent()
		}
		return l.exts[0]
	}
	idx := sort.Search(len(l.exts), func(i int) bool {
		return !position.Less(l.exts[i].P, k)
	})
	if idx == len(l.exts) {
		return extent.EndExtent()
	}
	return l.exts[idx]
}

// Rho returns the first extent whose end is >= k.
func (l *List) Rho(k position.Position) extent.Extent {
	if k.IsPosInf() {
		return extent.EndExtent()
	}
	if k.IsNegInf() {
		if len(l.exts) == 0 {
			return extent.EndExtent()
		}
		return l.exts[0]
	}
	idx := sort.Search(len(l.exts), func(i int) bool {
		return !position.Less(l.exts[i].Q, k)
	})
	if idx == len(l.exts) {
		return extent.EndExtent()
	}
	return l.exts[idx]
}

// TauPrime returns the last extent whose end is <= k.
func (l *List) TauPrime(k position.Position) extent.Extent {
	if k.IsNegInf() {
		return extent.StartExtent()
	}
	if k.IsPosInf() {
		if len(l.exts) == 0 {
			return extent.StartExtent()
		}
		return l.exts[len(l.exts)-1]
	}
	idx := sort.Search(len(l.exts), func(i int) bool {
		return position.Less(k, l.exts[i].Q)
	})
	if idx == 0 {
		return extent.StartExtent()
	}
	return l.exts[idx-1]
}

// RhoPrime returns the last extent whose start is <= k.
func (l *List) RhoPrime(k position.Position) extent.Extent {
	if k.IsNegInf() {
		return extent.StartExtent()
	}
	if k.IsPosInf() {
		if len(l.exts) == 0 {
			return extent.StartExtent()
		}
		return l.exts[len(l.exts)-1]
	}
	idx := sort.Search(len(l.exts), func(i int) bool {
		return position.Less(k, l.exts[i].P)
	})
	if idx == 0 {
		return extent.StartExtent()
	}
	return l.exts[idx-1]
}
