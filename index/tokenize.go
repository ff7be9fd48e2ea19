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
	"unicode"
	"unicode/utf8"
)

// token is one lowercase alphabetic run: [start, end) are code-point
// offsets into the source text, matching the units layer ranges use.
type token struct {
	word       string
	start, end int
}

// tokenize scans text for maximal runs of letters, lower-casing each
// run as it goes. It is a hand-rolled scanner over unicode.IsLetter
// rather than a regexp, matching the manual byte/rune scanning in the
// teacher's jsonrl and xsv readers.
func tokenize(text string) []token {
	var toks []token
	var buf []rune
	start := -1
	pos := 0 // code-point offset
	flush := func(end int) {
		if len(buf) == 0 {
			return
		}
		toks = append(toks, token{word: string(buf), start: start, end: end})
		buf = buf[:0]
		start = -1
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) {
			if start < 0 {
				start = pos
			}
			buf = append(buf, unicode.ToLower(r))
		} else {
			flush(pos)
		}
		i += size
		pos++
	}
	flush(pos)
	return toks
}
