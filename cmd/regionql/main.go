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

// Command regionql indexes a set of JSON documents and then answers
// region-algebra queries read line-by-line from standard input.
package main

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/regionql/regionql/extent"
	"github.com/regionql/regionql/index"
	"github.com/regionql/regionql/iter"
	"github.com/regionql/regionql/position"
	"github.com/regionql/regionql/query"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func main() {
	// No flags are defined, but flag.Parse is still called so that
	// -h produces usage text.
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		exitf("usage: %s document.json [document.json ...]\n", os.Args[0])
	}

	raw, err := readAll(args)
	if err != nil {
		exitf("reading documents: %s\n", err)
	}

	docs := make([]index.Document, len(raw))
	for i, line := range raw {
		if err := json.Unmarshal(line, &docs[i]); err != nil {
			exitf("decoding document %d: %s\n", i, err)
		}
	}

	var cfg *index.Config
	if c, err := index.LoadConfig(args[0] + ".yaml"); err == nil {
		cfg = c
	} else if !os.IsNotExist(err) {
		logger.Printf("ignoring %s.yaml: %s", args[0], err)
	}

	corpus := index.Build(docs, cfg)
	logger.Printf("indexed %d document(s)", len(docs))

	repl(corpus, docs)
}

// readAll reads each named file, transparently gunzipping any name
// ending in ".gz", and splits its content on newlines into one raw
// JSON document per line.
func readAll(names []string) ([][]byte, error) {
	var lines [][]byte
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		var r io.Reader = f
		if strings.HasSuffix(name, ".gz") {
			gz, err := gzip.NewReader(f)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			r = gz
		}
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			lines = append(lines, []byte(line))
		}
		err = sc.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return lines, nil
}

func repl(corpus *index.Corpus, docs []index.Document) {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		reqID := uuid.New().String()
		runQuery(corpus, docs, reqID, []byte(line))
	}
	if err := sc.Err(); err != nil {
		exitf("reading stdin: %s\n", err)
	}
}

func runQuery(env query.Env, docs []index.Document, reqID string, line []byte) {
	ast, err := query.Parse(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", reqID, err)
		return
	}
	op, err := query.Compile(ast, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", reqID, err)
		return
	}
	it := iter.NewTau(op)
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%s: %s\n", e, snippet(docs, e))
	}
}

// snippet decodes the document that owns e and returns the substring
// of its text that e covers. The document index comes from e.P's high
// 32 bits, not a hard-coded document 0.
func snippet(docs []index.Document, e extent.Extent) string {
	doc, start := position.Decode(e.P)
	_, end := position.Decode(e.Q)
	if int(doc) >= len(docs) {
		return ""
	}
	runes := []rune(docs[doc].Text)
	if int(start) > len(runes) {
		start = uint32(len(runes))
	}
	if int(end) > len(runes) {
		end = uint32(len(runes))
	}
	if end < start {
		return ""
	}
	return string(runes[start:end])
}
