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

// Package query implements the JSON query language that the CLI reads
// from stdin: a query is recursively either a word string or a
// 3-element [op, lhs, rhs] array. Parse builds a small AST; Compile
// lowers that AST to an algebra.Operator tree by resolving word and
// layer leaves against an Env.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/ops"
)

// AST is the sum type produced by Parse: Word, Layer, or Binary.
type AST interface {
	isAST()
}

// Word is a leaf: look up the case-folded word's extent list.
type Word string

// Layer is a leaf: look up a named layer's extent list, e.g.
// ["L", "paragraph", null].
type Layer struct {
	Name string
}

// Binary is an interior node combining two sub-queries with one of
// the recognized operators.
type Binary struct {
	Op       string
	LHS, RHS AST
}

func (Word) isAST()   {}
func (Layer) isAST()  {}
func (Binary) isAST() {}

// ParseError reports a malformed query, carrying the offending JSON
// fragment for display.
type ParseError struct {
	Msg      string
	Fragment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("query parse error: %s (in %s)", e.Msg, e.Fragment)
}

func fail(raw json.RawMessage, msg string) error {
	frag := string(raw)
	if len(frag) > 80 {
		frag = frag[:80] + "..."
	}
	return &ParseError{Msg: msg, Fragment: frag}
}

// Parse decodes a JSON query document into an AST.
func Parse(data []byte) (AST, error) {
	var raw json.RawMessage = data
	return parseValue(raw)
}

func parseValue(raw json.RawMessage) (AST, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Word(s), nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fail(raw, "query must be a string or a [op, lhs, rhs] array")
	}
	if len(arr) != 3 {
		return nil, fail(raw, fmt.Sprintf("array query must have exactly 3 elements, got %d", len(arr)))
	}

	var op string
	if err := json.Unmarshal(arr[0], &op); err != nil {
		return nil, fail(arr[0], "operator must be a string")
	}

	if op == "L" {
		var name string
		if err := json.Unmarshal(arr[1], &name); err != nil {
			return nil, fail(arr[1], "layer name must be a string")
		}
		return Layer{Name: name}, nil
	}

	switch op {
	case "<", ">", "/<", "/>", "&", "|", "->":
	default:
		return nil, fail(arr[0], fmt.Sprintf("unrecognized operator %q", op))
	}

	lhs, err := parseValue(arr[1])
	if err != nil {
		return nil, err
	}
	rhs, err := parseValue(arr[2])
	if err != nil {
		return nil, err
	}
	return Binary{Op: op, LHS: lhs, RHS: rhs}, nil
}

// Env resolves the leaves of a query AST to extent lists.
type Env interface {
	// Word returns the operator yielding the extent list of the
	// case-folded word w. An unknown word is not an error: it yields
	// an operator with no extents (leaf.Empty).
	Word(w string) (algebra.Operator, error)
	// Layer returns the operator yielding the named layer's extent
	// list, or an error if no such layer exists.
	Layer(name string) (algebra.Operator, error)
}

// Compile lowers ast into an algebra.Operator tree, resolving leaves
// against env.
func Compile(ast AST, env Env) (algebra.Operator, error) {
	switch n := ast.(type) {
	case Word:
		return env.Word(string(n))
	case Layer:
		return env.Layer(n.Name)
	case Binary:
		a, err := Compile(n.LHS, env)
		if err != nil {
			return nil, err
		}
		b, err := Compile(n.RHS, env)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case "<":
			return ops.ContainedIn{A: a, B: b}, nil
		case ">":
			return ops.Containing{A: a, B: b}, nil
		case "/<":
			return ops.NotContainedIn{A: a, B: b}, nil
		case "/>":
			return ops.NotContaining{A: a, B: b}, nil
		case "&":
			return ops.BothOf{A: a, B: b}, nil
		case "|":
			return ops.OneOf{A: a, B: b}, nil
		case "->":
			return ops.FollowedBy{A: a, B: b}, nil
		default:
			return nil, &ParseError{Msg: fmt.Sprintf("unrecognized operator %q", n.Op)}
		}
	default:
		return nil, &ParseError{Msg: "unrecognized query node"}
	}
}
