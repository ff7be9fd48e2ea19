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

// Package ops implements the seven binary region-algebra operators.
// Every operator owns its two children by algebra.Operator value (a
// static tree is monomorphic; a dynamically parsed query stores a
// polymorphic handle, see package query) and every primitive is an
// explicit tail loop over an advancing cursor rather than recursion, so
// stack usage stays bounded regardless of input size.
package ops

import (
	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/position"
)

// ContainedIn reports the extents of A that are contained in some
// extent of B.
type ContainedIn struct {
	A, B algebra.Operator
}

func (op ContainedIn) Tau(k position.Position) extent.Extent {
	for {
		a := op.A.Tau(k)
		if a.Q.IsPosInf() {
			return extent.EndExtent()
		}
		b := op.B.Rho(a.Q)
		if !position.Less(a.P, b.P) {
			return a
		}
		k = b.P
	}
}

func (op ContainedIn) Rho(k position.Position) extent.Extent {
	a := op.A.Rho(k)
	return op.Tau(a.P)
}

func (op ContainedIn) TauPrime(k position.Position) extent.Extent {
	for {
		a := op.A.TauPrime(k)
		if a.P.IsNegInf() {
			return extent.StartExtent()
		}
		b := op.B.RhoPrime(a.P)
		if !position.Less(b.Q, a.Q) {
			return a
		}
		k = b.Q
	}
}

func (op ContainedIn) RhoPrime(k position.Position) extent.Extent {
	a := op.A.RhoPrime(k)
	return op.TauPrime(a.Q)
}
