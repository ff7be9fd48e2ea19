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

// Package regionql ties the algebra, index, and query packages
// together into the one call most callers need: parse a document set
// into a Corpus, then parse and compile a query against it.
package regionql

import (
	"encoding/json"
	"fmt"

	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/index"
	"github.com/regionql/regionql/query"
)

// Build decodes raw newline-free JSON document objects and indexes
// them into a Corpus, applying cfg (which may be nil).
func Build(rawDocs [][]byte, cfg *index.Config) (*index.Corpus, error) {
	docs := make([]index.Document, len(rawDocs))
	for i, raw := range rawDocs {
		if err := json.Unmarshal(raw, &docs[i]); err != nil {
			return nil, fmt.Errorf("decoding document %d: %w", i, err)
		}
	}
	return index.Build(docs, cfg), nil
}

// Query parses and compiles a query line against corpus, returning the
// resulting operator tree ready to drive with package iter.
func Query(corpus *index.Corpus, line []byte) (algebra.Operator, error) {
	ast, err := query.Parse(line)
	if err != nil {
		return nil, err
	}
	return query.Compile(ast, corpus)
}
