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

package iter_test

import (
	"testing"

	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/iter"
	"github.com/regionql/regionql/leaf"
)

func sameExtents(t *testing.T, got, want []extent.Extent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d extents %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if !extent.Equal(got[i], want[i]) {
			t.Errorf("extent %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTauOrder(t *testing.T) {
	l := leaf.NewList([]extent.Extent{
		extent.New(1, 2), extent.New(5, 8), extent.New(10, 20),
	})
	got := iter.Collect(iter.NewTau(l))
	sameExtents(t, got, []extent.Extent{
		extent.New(1, 2), extent.New(5, 8), extent.New(10, 20),
	})
}

func TestRhoOrder(t *testing.T) {
	l := leaf.NewList([]extent.Extent{
		extent.New(1, 2), extent.New(5, 8), extent.New(10, 20),
	})
	got := iter.Collect(iter.NewRho(l))
	sameExtents(t, got, []extent.Extent{
		extent.New(1, 2), extent.New(5, 8), extent.New(10, 20),
	})
}

func TestTauPrimeOrder(t *testing.T) {
	l := leaf.NewList([]extent.Extent{
		extent.New(1, 2), extent.New(5, 8), extent.New(10, 20),
	})
	got := iter.Collect(iter.NewTauPrime(l))
	sameExtents(t, got, []extent.Extent{
		extent.New(10, 20), extent.New(5, 8), extent.New(1, 2),
	})
}

func TestRhoPrimeOrder(t *testing.T) {
	l := leaf.NewList([]extent.Extent{
		extent.New(1, 2), extent.New(5, 8), extent.New(10, 20),
	})
	got := iter.Collect(iter.NewRhoPrime(l))
	sameExtents(t, got, []extent.Extent{
		extent.New(10, 20), extent.New(5, 8), extent.New(1, 2),
	})
}

func TestEmptyOperatorYieldsNothing(t *testing.T) {
	l := leaf.NewList(nil)
	if got := iter.Collect(iter.NewTau(l)); len(got) != 0 {
		t.Errorf("expected no extents from an empty list, got %v", got)
	}
	if got := iter.Collect(iter.NewTauPrime(l)); len(got) != 0 {
		t.Errorf("expected no extents from an empty list, got %v", got)
	}
}

// A fresh iterator can be constructed over the same operator and
// re-driven; the iterator itself is not reusable once exhausted.
func TestIteratorNotReusable(t *testing.T) {
	l := leaf.NewList([]extent.Extent{extent.New(1, 2)})
	it := iter.NewTau(l)
	first := iter.Collect(it)
	sameExtents(t, first, []extent.Extent{extent.New(1, 2)})

	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator must keep returning false")
	}

	second := iter.Collect(iter.NewTau(l))
	sameExtents(t, second, []extent.Extent{extent.New(1, 2)})
}
