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

package ops

import (
	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/position"
)

// Containing reports the extents of A that contain some extent of B.
type Containing struct {
	A, B algebra.Operator
}

func (op Containing) Rho(k position.Position) extent.Extent {
	for {
		a := op.A.Rho(k)
		if a.P.IsPosInf() {
			return extent.EndExtent()
		}
		b := op.B.Tau(a.P)
		if !position.Less(a.Q, b.Q) {
			return a
		}
		k = b.Q
	}
}

func (op Containing) Tau(k position.Position) extent.Extent {
	a := op.A.Tau(k)
	if a.Q.IsPosInf() {
		return extent.EndExtent()
	}
	return op.Rho(a.Q)
}

func (op Containing) RhoPrime(k position.Position) extent.Extent {
	for {
		a := op.A.RhoPrime(k)
		if a.P.IsNegInf() {
			return extent.StartExtent()
		}
		b := op.B.TauPrime(a.Q)
		if !position.Less(b.P, a.P) {
			return a
		}
		k = b.P
	}
}

func (op Containing) TauPrime(k position.Position) extent.Extent {
	a := op.A.TauPrime(k)
	if a.P.IsNegInf() {
		return extent.StartExtent()
	}
	return op.RhoPrime(a.P)
}
