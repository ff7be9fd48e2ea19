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

import "testing"

func TestTokenizeBasic(t *testing.T) {
	toks := tokenize("The cat sat.")
	want := []token{
		{word: "the", start: 0, end: 3},
		{word: "cat", start: 4, end: 7},
		{word: "sat", start: 8, end: 11},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(toks), toks, len(want), want)
	}
	for i := range toks {
		if toks[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokenizeUnicodeOffsets(t *testing.T) {
	// "café" is 4 code points but 5 bytes (é is 2 bytes in UTF-8); the
	// offsets must be counted in code points, not bytes.
	toks := tokenize("café bar")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens %v, want 2", len(toks), toks)
	}
	if toks[0].word != "café" || toks[0].start != 0 || toks[0].end != 4 {
		t.Errorf("got %+v, want word=café start=0 end=4", toks[0])
	}
	if toks[1].start != 5 || toks[1].end != 8 {
		t.Errorf("got %+v, want start=5 end=8", toks[1])
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if toks := tokenize(""); len(toks) != 0 {
		t.Errorf("got %v, want no tokens", toks)
	}
	if toks := tokenize("123 456"); len(toks) != 0 {
		t.Errorf("digits are not letters, got %v", toks)
	}
}

func TestTokenizeTrailingRun(t *testing.T) {
	// a letter run ending at EOF must still be flushed.
	toks := tokenize("hello")
	if len(toks) != 1 || toks[0].word != "hello" || toks[0].end != 5 {
		t.Errorf("got %v, want one token 'hello' [0,5)", toks)
	}
}
