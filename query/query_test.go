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

package query_test

import (
	"fmt"
	"testing"

	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/leaf"
	"github.com/regionql/regionql/ops"
	"github.com/regionql/regionql/query"
)

// fakeEnv resolves words and layers from fixed maps, for tests that
// don't need a real index.Corpus.
type fakeEnv struct {
	words  map[string]algebra.Operator
	layers map[string]algebra.Operator
}

func (f fakeEnv) Word(w string) (algebra.Operator, error) {
	if op, ok := f.words[w]; ok {
		return op, nil
	}
	return leaf.Empty{}, nil
}

func (f fakeEnv) Layer(name string) (algebra.Operator, error) {
	if op, ok := f.layers[name]; ok {
		return op, nil
	}
	return nil, fmt.Errorf("unknown layer %q", name)
}

func TestParseWord(t *testing.T) {
	ast, err := query.Parse([]byte(`"hello"`))
	if err != nil {
		t.Fatal(err)
	}
	if w, ok := ast.(query.Word); !ok || w != "hello" {
		t.Errorf("got %#v, want Word(hello)", ast)
	}
}

func TestParseLayer(t *testing.T) {
	ast, err := query.Parse([]byte(`["L", "paragraph", null]`))
	if err != nil {
		t.Fatal(err)
	}
	l, ok := ast.(query.Layer)
	if !ok || l.Name != "paragraph" {
		t.Errorf("got %#v, want Layer(paragraph)", ast)
	}
}

func TestParseBinary(t *testing.T) {
	ast, err := query.Parse([]byte(`["&", "cat", "dog"]`))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := ast.(query.Binary)
	if !ok || b.Op != "&" {
		t.Fatalf("got %#v, want Binary(&)", ast)
	}
	if b.LHS != query.Word("cat") || b.RHS != query.Word("dog") {
		t.Errorf("unexpected children: %#v", b)
	}
}

func TestParseNested(t *testing.T) {
	ast, err := query.Parse([]byte(`["->", ["&", "cat", "dog"], "fish"]`))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := ast.(query.Binary)
	if !ok || b.Op != "->" {
		t.Fatalf("got %#v, want Binary(->)", ast)
	}
	if _, ok := b.LHS.(query.Binary); !ok {
		t.Errorf("LHS should itself be a Binary, got %#v", b.LHS)
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]byte{
		[]byte(`42`),
		[]byte(`["&", "a"]`),
		[]byte(`[1, "a", "b"]`),
		[]byte(`["%", "a", "b"]`),
		[]byte(`["L", 5, null]`),
	}
	for _, c := range cases {
		if _, err := query.Parse(c); err == nil {
			t.Errorf("Parse(%s) should have failed", c)
		}
	}
}

func TestParseErrorFragmentTruncation(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	_, err := query.Parse([]byte(`"` + string(long)))
	// malformed on purpose: unbalanced quote forces the array path,
	// which then fails and reports a truncated fragment.
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*query.ParseError)
	if !ok {
		t.Fatalf("got %T, want *query.ParseError", err)
	}
	if len(pe.Fragment) > 83 {
		t.Errorf("fragment not truncated: %d bytes", len(pe.Fragment))
	}
}

func TestCompileAllOperators(t *testing.T) {
	env := fakeEnv{
		words: map[string]algebra.Operator{
			"a": leaf.NewList([]extent.Extent{extent.New(1, 2)}),
			"b": leaf.NewList([]extent.Extent{extent.New(3, 4)}),
		},
	}
	table := map[string]interface{}{
		"<":  ops.ContainedIn{},
		">":  ops.Containing{},
		"/<": ops.NotContainedIn{},
		"/>": ops.NotContaining{},
		"&":  ops.BothOf{},
		"|":  ops.OneOf{},
		"->": ops.FollowedBy{},
	}
	for opName, want := range table {
		ast, err := query.Parse([]byte(fmt.Sprintf(`["%s", "a", "b"]`, opName)))
		if err != nil {
			t.Fatalf("%s: parse: %v", opName, err)
		}
		got, err := query.Compile(ast, env)
		if err != nil {
			t.Fatalf("%s: compile: %v", opName, err)
		}
		gotType := fmt.Sprintf("%T", got)
		wantType := fmt.Sprintf("%T", want)
		if gotType != wantType {
			t.Errorf("%s compiled to %s, want %s", opName, gotType, wantType)
		}
	}
}

func TestCompileUnknownLayer(t *testing.T) {
	env := fakeEnv{}
	ast, err := query.Parse([]byte(`["L", "nope", null]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := query.Compile(ast, env); err == nil {
		t.Error("Compile should fail on an unknown layer")
	}
}

func TestCompileUnknownWordIsEmptyNotError(t *testing.T) {
	env := fakeEnv{}
	ast, err := query.Parse([]byte(`"ghost"`))
	if err != nil {
		t.Fatal(err)
	}
	op, err := query.Compile(ast, env)
	if err != nil {
		t.Fatalf("unknown word must not be a compile error: %v", err)
	}
	if _, ok := op.(leaf.Empty); !ok {
		t.Errorf("got %T, want leaf.Empty", op)
	}
}
