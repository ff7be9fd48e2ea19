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

// BothOf reports the smallest extent covering one extent from A and
// one from B, for every such pair reachable from the cursor.
type BothOf struct {
	A, B algebra.Operator
}

// widen builds the smallest extent spanning a and b, once both sides
// have yielded a candidate anchored at the same boundary position.
func widen(a, b extent.Extent) extent.Extent {
	return extent.Extent{
		P: position.Min(a.P, b.P),
		Q: position.Max(a.Q, b.Q),
	}
}

func (op BothOf) Tau(k position.Position) extent.Extent {
	a := op.A.Tau(k)
	b := op.B.Tau(k)
	Q := position.Max(a.Q, b.Q)
	if Q.IsPosInf() {
		return extent.EndExtent()
	}
	return widen(op.A.TauPrime(Q), op.B.TauPrime(Q))
}

// Rho is not the independent recomputation its siblings' Tau is: B's
// extent nearest k can belong to a pair whose A side lies entirely
// before k, so Rho must re-enter TauPrime/Tau the same way
// NotContainedIn and NotContaining do, rather than re-deriving Q from
// A.Rho(k) and B.Rho(k) directly.
func (op BothOf) Rho(k position.Position) extent.Extent {
	p := op.TauPrime(position.Dec(k)).P
	return op.Tau(position.Inc(p))
}

func (op BothOf) TauPrime(k position.Position) extent.Extent {
	a := op.A.TauPrime(k)
	b := op.B.TauPrime(k)
	P := position.Min(a.P, b.P)
	if P.IsNegInf() {
		return extent.StartExtent()
	}
	return widen(op.A.Tau(P), op.B.Tau(P))
}

// RhoPrime is the mirror image of Rho above: re-enter Tau/TauPrime
// instead of recomputing P from A.RhoPrime(k) and B.RhoPrime(k)
// directly.
func (op BothOf) RhoPrime(k position.Position) extent.Extent {
	q := op.Tau(position.Inc(k)).Q
	return op.TauPrime(position.Dec(q))
}
