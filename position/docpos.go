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

package position

// Encode packs a document index and an in-document offset into the
// single 64-bit position the whole algebra operates on: the high 32
// bits are the document index, the low 32 bits the offset. This is the
// one place that encoding is performed; the document partitioner
// (package leaf) and the indexer (package index) both go through it so
// the bit layout can never drift between them.
func Encode(doc, offset uint32) Position {
	return Nat(uint64(doc)<<32 | uint64(offset))
}

// Decode reverses Encode. p must be finite.
func Decode(p Position) (doc, offset uint32) {
	n, _ := p.Nat()
	return uint32(n >> 32), uint32(n)
}

// DocSpan returns the extent (d*2^32, d*2^32+(2^32-1)) that document d
// occupies in the shared position space.
func DocSpan(d uint32) (start, end Position) {
	return Encode(d, 0), Encode(d, ^uint32(0))
}
