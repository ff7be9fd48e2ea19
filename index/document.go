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

// Package index tokenizes input documents into the word and layer
// extent lists that the query algebra runs over, and builds the
// document partitioner sized to the corpus.
package index

// Document is one unit of indexable text, decoded from
// { "text": "...", "layers": { "name": [[start,end], ...], ... } }.
//
// Layer ranges are [start, end) character offsets into Text, in the
// same units the tokenizer counts: Unicode code points, not bytes.
type Document struct {
	Text   string              `json:"text"`
	Layers map[string][][2]int `json:"layers"`
}
