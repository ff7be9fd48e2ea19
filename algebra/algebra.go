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

// Package algebra defines the uniform access contract that every
// region-algebra operator satisfies: a leaf extent list, the Empty
// operator, the document partitioner, and every binary operator in
// package ops all implement Operator, and they nest to arbitrary depth
// because composition only ever depends on this one interface.
package algebra

import (
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/position"
)

// Operator is the four-primitive access contract shared by every node
// in a region-algebra query tree.
//
// Tau(k) returns the first extent whose start is >= k, or END_EXTENT.
// Rho(k) returns the first extent whose end is >= k, or END_EXTENT.
// TauPrime(k) returns the last extent whose end is <= k, or START_EXTENT.
// RhoPrime(k) returns the last extent whose start is <= k, or START_EXTENT.
//
// Implementations must:
//  1. enumerate the same set of extents whether driven by Tau or Rho
//     (and likewise TauPrime/RhoPrime);
//  2. emit a GC-list (extent.ValidGCList) when iterated in either
//     direction;
//  3. short-circuit on sentinel input (Tau/Rho with k = +inf return
//     END_EXTENT; TauPrime/RhoPrime with k = -inf return START_EXTENT);
//  4. produce TauPrime/RhoPrime in the reverse order of Tau/Rho over
//     the same extent set.
type Operator interface {
	Tau(k position.Position) extent.Extent
	Rho(k position.Position) extent.Extent
	TauPrime(k position.Position) extent.Extent
	RhoPrime(k position.Position) extent.Extent
}
