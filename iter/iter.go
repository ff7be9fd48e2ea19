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

// Package iter drives an algebra.Operator with the four access
// primitives to produce a lazy, single-pass sequence of extents.
//
// Every iterator here is a thin cursor: it holds the root operator and
// the next position to probe, and advances strictly on each call to
// Next so that termination follows from the GC-list invariant on the
// leaf lists underneath the tree. None of the four is restartable;
// construct a fresh one for a second traversal over the same tree.
package iter

import (
	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/position"
)

// Tau walks an operator forward by start position, via op.Tau.
type Tau struct {
	op   algebra.Operator
	k    position.Position
	done bool
}

// NewTau builds a Tau iterator starting at -infinity.
func NewTau(op algebra.Operator) *Tau {
	return &Tau{op: op, k: position.NegInf()}
}

// Next returns the next extent in increasing start order, or false
// once the operator is exhausted.
func (it *Tau) Next() (extent.Extent, bool) {
	if it.done {
		return extent.Extent{}, false
	}
	e := it.op.Tau(it.k)
	if e.IsSentinel() {
		it.done = true
		return extent.Extent{}, false
	}
	it.k = position.Inc(e.P)
	return e, true
}

// Rho walks an operator forward by end position, via op.Rho.
type Rho struct {
	op   algebra.Operator
	k    position.Position
	done bool
}

// NewRho builds a Rho iterator starting at -infinity.
func NewRho(op algebra.Operator) *Rho {
	return &Rho{op: op, k: position.NegInf()}
}

// Next returns the next extent in increasing end order, or false once
// the operator is exhausted.
func (it *Rho) Next() (extent.Extent, bool) {
	if it.done {
		return extent.Extent{}, false
	}
	e := it.op.Rho(it.k)
	if e.IsSentinel() {
		it.done = true
		return extent.Extent{}, false
	}
	it.k = position.Inc(e.Q)
	return e, true
}

// TauPrime walks an operator backward by end position, via op.TauPrime.
type TauPrime struct {
	op   algebra.Operator
	k    position.Position
	done bool
}

// NewTauPrime builds a TauPrime iterator starting at +infinity.
func NewTauPrime(op algebra.Operator) *TauPrime {
	return &TauPrime{op: op, k: position.PosInf()}
}

// Next returns the next extent in decreasing end order, or false once
// the operator is exhausted.
func (it *TauPrime) Next() (extent.Extent, bool) {
	if it.done {
		return extent.Extent{}, false
	}
	e := it.op.TauPrime(it.k)
	if e.IsSentinel() {
		it.done = true
		return extent.Extent{}, false
	}
	it.k = position.Dec(e.Q)
	return e, true
}

// RhoPrime walks an operator backward by start position, via op.RhoPrime.
type RhoPrime struct {
	op   algebra.Operator
	k    position.Position
	done bool
}

// NewRhoPrime builds a RhoPrime iterator starting at +infinity.
func NewRhoPrime(op algebra.Operator) *RhoPrime {
	return &RhoPrime{op: op, k: position.PosInf()}
}

// Next returns the next extent in decreasing start order, or false
// once the operator is exhausted.
func (it *RhoPrime) Next() (extent.Extent, bool) {
	if it.done {
		return extent.Extent{}, false
	}
	e := it.op.RhoPrime(it.k)
	if e.IsSentinel() {
		it.done = true
		return extent.Extent{}, false
	}
	it.k = position.Dec(e.P)
	return e, true
}

// Collect drains it into a slice, for tests and small result sets.
func Collect(it interface{ Next() (extent.Extent, bool) }) []extent.Extent {
	var out []extent.Extent
	for {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
