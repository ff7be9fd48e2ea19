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

package index

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"

	"github.com/regionql/regionql/algebra"
	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/ints"
	"github.com/regionql/regionql/leaf"
	"github.com/regionql/regionql/position"
)

var logger = log.New(os.Stderr, "index: ", log.LstdFlags)

// numBuckets is the size of the word hash table. Corpora in practice
// carry a few thousand distinct case-folded words, so this keeps
// bucket chains short without a resizing scheme.
const numBuckets = 4096

// a fixed key pair for the word hash, same spirit as the fixed keys in
// the teacher's Splitter.partition: the hash only needs to be stable
// within one process, not cryptographically keyed.
const hashKey0, hashKey1 = 0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9

type bucketEntry struct {
	word string
	list *leaf.List
}

// Corpus is the built index over a set of documents: one GC-list per
// distinct case-folded word, one GC-list per named layer merged across
// documents, and the document partitioner. It implements query.Env.
type Corpus struct {
	buckets   [][]bucketEntry
	layers    map[string]*leaf.List
	documents leaf.Documents
}

func wordBucket(word string) int {
	h := siphash.Hash(hashKey0, hashKey1, []byte(word))
	return int(h % numBuckets)
}

// Build tokenizes every document's text into word extents, merges
// layer extents by name across documents, and returns the resulting
// Corpus. cfg may be nil to use defaults (no stopwords).
func Build(docs []Document, cfg *Config) *Corpus {
	stop := map[string]bool{}
	if cfg != nil {
		for _, w := range cfg.StopWords {
			stop[strings.ToLower(w)] = true
		}
	}

	wordExts := map[string][]extent.Extent{}
	layerExts := map[string][]extent.Extent{}

	for docIdx, doc := range docs {
		doc32 := uint32(docIdx)
		for _, tok := range tokenize(doc.Text) {
			if stop[tok.word] {
				continue
			}
			e := extent.Extent{
				P: position.Encode(doc32, uint32(tok.start)),
				Q: position.Encode(doc32, uint32(tok.end)),
			}
			wordExts[tok.word] = append(wordExts[tok.word], e)
		}
		for name, ranges := range doc.Layers {
			checkOverlaps(name, docIdx, ranges)
			for _, r := range ranges {
				e := extent.Extent{
					P: position.Encode(doc32, uint32(r[0])),
					Q: position.Encode(doc32, uint32(r[1])),
				}
				layerExts[name] = append(layerExts[name], e)
			}
		}
	}

	c := &Corpus{
		buckets:   make([][]bucketEntry, numBuckets),
		layers:    make(map[string]*leaf.List, len(layerExts)),
		documents: leaf.NewDocuments(uint32(len(docs))),
	}
	for word, exts := range wordExts {
		exts = sortExtents(exts)
		b := wordBucket(word)
		c.buckets[b] = append(c.buckets[b], bucketEntry{word: word, list: leaf.NewList(exts)})
	}
	for name, exts := range layerExts {
		exts = sortExtents(exts)
		c.layers[name] = leaf.NewList(exts)
	}
	return c
}

// checkOverlaps logs a warning if a document's layer ranges overlap
// each other. The warning itself rejects nothing, and partially
// overlapping spans are indexed as they are; ranges of one layer that
// nest inside each other or share a start or an end do not form a
// GC-list, and Build then panics in leaf.NewList. Built on
// ints.Intervals.Overlaps, the same type the teacher uses to track
// covered byte ranges.
func checkOverlaps(layer string, docIdx int, ranges [][2]int) {
	var seen ints.Intervals
	for _, r := range ranges {
		if seen.Overlaps(r[0], r[1]) {
			logger.Printf("doc %d: layer %q has overlapping ranges", docIdx, layer)
			return
		}
		seen = append(seen, ints.Interval{Start: r[0], End: r[1]})
	}
}

// sortExtents orders exts by start then end and drops exact
// duplicates, the same sort-then-compact shape the teacher's
// ints.Intervals used to normalize interval lists before treating
// them as a GC-list.
func sortExtents(exts []extent.Extent) []extent.Extent {
	slices.SortFunc(exts, func(a, b extent.Extent) int {
		if c := position.Compare(a.P, b.P); c != 0 {
			return c
		}
		return position.Compare(a.Q, b.Q)
	})
	return slices.CompactFunc(exts, extent.Equal)
}

// Word implements query.Env: it returns the case-folded word's extent
// list, or the Empty operator if the word never appears in the corpus
// (an absent word is a normal empty result, not an error).
func (c *Corpus) Word(w string) (algebra.Operator, error) {
	w = strings.ToLower(w)
	b := wordBucket(w)
	for _, e := range c.buckets[b] {
		if e.word == w {
			return e.list, nil
		}
	}
	return leaf.Empty{}, nil
}

// Layer implements query.Env: it returns the named layer's extent
// list, or an error if no document declared that layer.
func (c *Corpus) Layer(name string) (algebra.Operator, error) {
	l, ok := c.layers[name]
	if !ok {
		return nil, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// Documents returns the document partitioner for this corpus.
func (c *Corpus) Documents() algebra.Operator { return c.documents }
