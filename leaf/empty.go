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

package leaf

import (
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/position"
)

// Empty is the degenerate operator that matches no extent.
type Empty struct{}

func (Empty) Tau(position.Position) extent.Extent      { return extent.EndExtent() }
func (Empty) Rho(position.Position) extent.Extent      { return extent.EndExtent() }
func (Empty) TauPrime(position.Position) extent.Extent { return extent.StartExtent() }
func (Empty) RhoPrime(position.Position) extent.Extent { return extent.StartExtent() }
