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

// FollowedBy reports extents spanning an A-extent followed by a later
// B-extent: the emitted extent runs from the tightest A that precedes
// the chosen B to that B's end, guaranteeing non-overlap.
//
// Tau is a single forward pass: bootstrapping on the earliest A at or
// after k is, by construction, loose enough that no intervening B can
// be skipped. Rho cannot mirror that shape directly (bootstrapping on
// the earliest qualifying B is the *tightest*, not the loosest, choice
// for the backward A search it then performs) so it loops, advancing
// past any B that turns out to have no preceding A; when the tightest
// A before the chosen B is already paired with an earlier B, Rho
// returns the first result starting after that A instead. TauPrime is
// the single-pass direction for the backward primitives (symmetric to
// Tau); RhoPrime loops for the same reason Rho does, and when a later
// A also precedes the chosen B it returns the last result ending before
// that B. Priming swaps A and B throughout, per the algebra's
// prime-conjugation recipe.
type FollowedBy struct {
	A, B algebra.Operator
}

func (op FollowedBy) Tau(k position.Position) extent.Extent {
	a0 := op.A.Tau(k)
	b1 := op.B.Tau(position.Inc(a0.Q))
	if b1.Q.IsPosInf() {
		return extent.EndExtent()
	}
	a2 := op.A.TauPrime(position.Dec(b1.P))
	return extent.Extent{P: a2.P, Q: b1.Q}
}

func (op FollowedBy) Rho(k position.Position) extent.Extent {
	for {
		b1 := op.B.Rho(k)
		if b1.Q.IsPosInf() {
			return extent.EndExtent()
		}
		a2 := op.A.TauPrime(position.Dec(b1.P))
		if !a2.P.IsNegInf() {
			if first := op.B.Tau(position.Inc(a2.Q)); !extent.Equal(first, b1) {
				return op.Tau(position.Inc(a2.P))
			}
			return extent.Extent{P: a2.P, Q: b1.Q}
		}
		k = position.Inc(b1.Q)
	}
}

func (op FollowedBy) TauPrime(k position.Position) extent.Extent {
	b0 := op.B.TauPrime(k)
	if b0.P.IsNegInf() {
		return extent.StartExtent()
	}
	a1 := op.A.TauPrime(position.Dec(b0.P))
	if a1.P.IsNegInf() {
		return extent.StartExtent()
	}
	b2 := op.B.Tau(position.Inc(a1.Q))
	return extent.Extent{P: a1.P, Q: b2.Q}
}

func (op FollowedBy) RhoPrime(k position.Position) extent.Extent {
	for {
		a1 := op.A.RhoPrime(k)
		if a1.P.IsNegInf() {
			return extent.StartExtent()
		}
		b1 := op.B.Tau(position.Inc(a1.Q))
		if !b1.Q.IsPosInf() {
			if last := op.A.TauPrime(position.Dec(b1.P)); !extent.Equal(last, a1) {
				return op.TauPrime(position.Dec(b1.Q))
			}
			return extent.Extent{P: a1.P, Q: b1.Q}
		}
		k = position.Dec(a1.P)
	}
}
