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

// OneOf reports the extents of A together with the extents of B: for
// overlapping candidates it keeps the tighter one (smaller end, and on
// a tied end, the larger start).
//
// Rho cannot be derived from Tau by the naive symmetric transform: the
// published algebra's derivation is wrong (see S6 in the test suite).
// The fix here consults TauPrime first and only falls back to
// iterating Tau forward when the backward candidate doesn't already
// satisfy the end bound.
type OneOf struct {
	A, B algebra.Operator
}

func pickTighter(a, b extent.Extent) extent.Extent {
	switch position.Compare(a.Q, b.Q) {
	case -1:
		return a
	case 1:
		return b
	default:
		if position.Less(a.P, b.P) {
			return b
		}
		return a
	}
}

func pickTighterPrime(a, b extent.Extent) extent.Extent {
	switch position.Compare(a.P, b.P) {
	case 1:
		return a
	case -1:
		return b
	default:
		if position.Less(a.Q, b.Q) {
			return a
		}
		return b
	}
}

func (op OneOf) Tau(k position.Position) extent.Extent {
	return pickTighter(op.A.Tau(k), op.B.Tau(k))
}

func (op OneOf) TauPrime(k position.Position) extent.Extent {
	return pickTighterPrime(op.A.TauPrime(k), op.B.TauPrime(k))
}

func (op OneOf) Rho(k position.Position) extent.Extent {
	cand := op.TauPrime(k)
	if !cand.IsSentinel() && position.Less(k, position.Inc(cand.Q)) {
		return cand
	}
	p := cand.P
	for {
		next := op.Tau(position.Inc(p))
		if next.IsSentinel() {
			return extent.EndExtent()
		}
		if !position.Less(next.Q, k) {
			return next
		}
		p = next.P
	}
}

func (op OneOf) RhoPrime(k position.Position) extent.Extent {
	cand := op.Tau(k)
	if !cand.IsSentinel() && position.Less(position.Dec(cand.P), k) {
		return cand
	}
	q := cand.Q
	for {
		prev := op.TauPrime(position.Dec(q))
		if prev.IsSentinel() {
			return extent.StartExtent()
		}
		if !position.Less(k, prev.P) {
			return prev
		}
		q = prev.Q
	}
}
