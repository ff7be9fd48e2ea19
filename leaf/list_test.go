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

package leaf_test

import (
	"testing"

	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/leaf"
	"github.com/regionql/regionql/position"
)

func must(t *testing.T, e, want extent.Extent) {
	t.Helper()
	if !extent.Equal(e, want) {
		t.Errorf("got %s, want %s", e, want)
	}
}

func TestListPrimitives(t *testing.T) {
	l := leaf.NewList([]extent.Extent{
		extent.New(2, 3),
		extent.New(5, 8),
		extent.New(10, 10),
	})

	must(t, l.Tau(position.NegInf()), extent.New(2, 3))
	must(t, l.Tau(position.Nat(3)), extent.New(5, 8))
	must(t, l.Tau(position.Nat(11)), extent.EndExtent())

	must(t, l.Rho(position.Nat(4)), extent.New(5, 8))
	must(t, l.Rho(position.Nat(11)), extent.EndExtent())

	must(t, l.TauPrime(position.PosInf()), extent.New(10, 10))
	must(t, l.TauPrime(position.Nat(4)), extent.New(2, 3))
	must(t, l.TauPrime(position.Nat(1)), extent.StartExtent())

	must(t, l.RhoPrime(position.Nat(9)), extent.New(5, 8))
	must(t, l.RhoPrime(position.Nat(1)), extent.StartExtent())
}

func TestNewListRejectsNonGCList(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewList must panic on a non-GC-list input")
		}
	}()
	leaf.NewList([]extent.Extent{extent.New(5, 6), extent.New(3, 9)})
}

func TestEmpty(t *testing.T) {
	var e leaf.Empty
	if !e.Tau(position.Nat(0)).IsEnd() {
		t.Error("Empty.Tau must always return END_EXTENT")
	}
	if !e.RhoPrime(position.Nat(0)).IsStart() {
		t.Error("Empty.RhoPrime must always return START_EXTENT")
	}
}

// TestDocumentsS8 covers scenario S8:
//
//	Documents(10).tau(doc_k(1,0)) = doc_extent(1)
//	Documents(10).tau(doc_k(1, 0xFFFFFFFF)) = doc_extent(2)
//	Documents(10).tau(doc_k(10,1)) = END_EXTENT
func TestDocumentsS8(t *testing.T) {
	d := leaf.NewDocuments(10)
	docExtent := func(n uint32) extent.Extent {
		start, end := position.DocSpan(n)
		return extent.Extent{P: start, Q: end}
	}

	must(t, d.Tau(position.Encode(1, 0)), docExtent(1))
	must(t, d.Tau(position.Encode(1, 0xFFFFFFFF)), docExtent(2))
	must(t, d.Tau(position.Encode(10, 1)), extent.EndExtent())
}

func TestDocumentsPrimitives(t *testing.T) {
	d := leaf.NewDocuments(3)
	must(t, d.Tau(position.NegInf()), extent.Extent{P: position.Encode(0, 0), Q: position.Encode(0, ^uint32(0))})
	must(t, d.TauPrime(position.PosInf()), extent.Extent{P: position.Encode(2, 0), Q: position.Encode(2, ^uint32(0))})
	must(t, d.RhoPrime(position.Encode(5, 0)), extent.Extent{P: position.Encode(2, 0), Q: position.Encode(2, ^uint32(0))})

	empty := leaf.NewDocuments(0)
	if !empty.Tau(position.NegInf()).IsEnd() {
		t.Error("Documents(0).Tau(-inf) must be END_EXTENT")
	}
	if !empty.TauPrime(position.PosInf()).IsStart() {
		t.Error("Documents(0).TauPrime(+inf) must be START_EXTENT")
	}
}
