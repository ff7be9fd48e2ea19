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

const maxOffset = ^uint32(0)

// Documents partitions the shared position space into N fixed-size
// document spans: document d occupies (d*2^32, d*2^32+(2^32-1)). It
// synthesizes extents on demand rather than storing them.
type Documents struct {
	N uint32
}

// NewDocuments returns the document partitioner for a corpus of n
// documents.
func NewDocuments(n uint32) Documents { return Documents{N: n} }

func (d Documents) docExtent(doc uint32) extent.Extent {
	start, end := position.DocSpan(doc)
	return extent.Extent{P: start, Q: end}
}

// Tau returns the first document extent whose start is >= k.
func (d Documents) Tau(k position.Position) extent.Extent {
	if k.IsPosInf() {
		return extent.EndExtent()
	}
	if k.IsNegInf() {
		if d.N == 0 {
			return extent.EndExtent()
		}
		return d.docExtent(0)
	}
	doc, off := position.Decode(k)
	if off == 0 {
		if doc < d.N {
			return d.docExtent(doc)
		}
		return extent.EndExtent()
	}
	if doc+1 < d.N && doc != maxOffset {
		return d.docExtent(doc + 1)
	}
	return extent.EndExtent()
}

// Rho returns the first document extent whose end is >= k: every
// in-document offset is <= that document's end, so this is simply the
// document k falls in.
func (d Documents) Rho(k position.Position) extent.Extent {
	if k.IsPosInf() {
		return extent.EndExtent()
	}
	if k.IsNegInf() {
		if d.N == 0 {
			return extent.EndExtent()
		}
		return d.docExtent(0)
	}
	doc, _ := position.Decode(k)
	if doc < d.N {
		return d.docExtent(doc)
	}
	return extent.EndExtent()
}

// TauPrime returns the last document extent whose end is <= k.
func (d Documents) TauPrime(k position.Position) extent.Extent {
	if k.IsNegInf() {
		return extent.StartExtent()
	}
	if k.IsPosInf() {
		return d.lastDoc()
	}
	doc, off := position.Decode(k)
	if off == maxOffset {
		if doc < d.N {
			return d.docExtent(doc)
		}
		return d.lastDoc()
	}
	if doc == 0 {
		return extent.StartExtent()
	}
	return d.clampDoc(doc - 1)
}

// RhoPrime returns the last document extent whose start is <= k.
func (d Documents) RhoPrime(k position.Position) extent.Extent {
	if k.IsNegInf() {
		return extent.StartExtent()
	}
	if k.IsPosInf() {
		return d.lastDoc()
	}
	doc, _ := position.Decode(k)
	return d.clampDoc(doc)
}

func (d Documents) clampDoc(doc uint32) extent.Extent {
	if doc < d.N {
		return d.docExtent(doc)
	}
	return d.lastDoc()
}

func (d Documents) lastDoc() extent.Extent {
	if d.N == 0 {
		return extent.StartExtent()
	}
	return d.docExtent(d.N - 1)
}
