// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// freqcount counts word frequencies over a large background archive of
// English text files, for building the background reference vocabulary.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/apache/beam/sdks/v2/go/pkg/beam"
	"github.com/apache/beam/sdks/v2/go/pkg/beam/io/textio"
	"github.com/apache/beam/sdks/v2/go/pkg/beam/log"
	"github.com/apache/beam/sdks/v2/go/pkg/beam/x/beamx"

	"github.com/neolexica/neodicter/freqcount/freqio"
)

var (
	input    = flag.String("input", "", "Directory containing archive files to read.")
	corpusFN = flag.String("corpus_fn", "", "File containing the list of archive files to read.")
	filter   = flag.String("filter", `\*\*\* ?(START|END) OF TH(E|IS) PROJECT GUTENBERG`,
		"Regex filter pattern to use to filter out lines.")
	freqOut   = flag.String("freq_out", "word_freq.txt", "Word frequency output file")
	projectID = flag.String("project_id", "", "GCP project ID, write counts to Firestore if set")
	fbCol     = flag.String("fb_col", "background_wordfreq", "Firestore collection to write counts to")
)

var (
	wordCounter = beam.NewCounter("extract", "wordCounter")
)

// Words shorter than this are not counted
const minWordLen = 2

var wordPattern = regexp.MustCompile(`\b[a-zA-Z]+(?:-[a-zA-Z]+)*\b`)

func init() {
	beam.RegisterFunction(formatFn)
	beam.RegisterFunction(sumWordFreq)
	beam.RegisterFunction(toCountFn)
	beam.RegisterType(reflect.TypeOf((*extractFn)(nil)))
	beam.RegisterType(reflect.TypeOf((*filterFn)(nil)))
	beam.RegisterType(reflect.TypeOf((*CorpusEntry)(nil)).Elem())
	beam.RegisterType(reflect.TypeOf((*WordFreqEntry)(nil)).Elem())
}

// CorpusEntry identifies one archive file that text will be read from
type CorpusEntry struct {
	RawFile  string `beam:"rawFile"`
	RecordID string `beam:"recordId"`
}

// WordFreqEntry contains the frequency of one word over the whole archive
type WordFreqEntry struct {
	Word string `beam:"word"`
	Freq int    `beam:"freq"`
}

// extractFn is a DoFn that parses the words in a line of text, keeping
// hyphenated words whole
type extractFn struct {
	MinLen int `json:"minLen"`
}

func (f *extractFn) ProcessElement(ctx context.Context, line string, emit func(string, WordFreqEntry)) {
	for _, word := range wordPattern.FindAllString(strings.ToLower(line), -1) {
		if len(word) < f.MinLen {
			continue
		}
		wordCounter.Inc(ctx, 1)
		emit(word, WordFreqEntry{
			Word: word,
			Freq: 1,
		})
	}
}

// filterFn is a DoFn for filtering out lines that are not part of the
// text, eg archive boilerplate.
type filterFn struct {
	// Filter is a regex identifying the lines to filter.
	Filter string `json:"filter"`
	re     *regexp.Regexp
}

func (f *filterFn) Setup() {
	f.re = regexp.MustCompile(f.Filter)
}

func (f *filterFn) ProcessElement(ctx context.Context, line string, emit func(string)) {
	if !f.re.MatchString(line) {
		emit(line)
	}
}

// sumWordFreq combines the per-line counts of one word
func sumWordFreq(wf1, wf2 WordFreqEntry) WordFreqEntry {
	return WordFreqEntry{
		Word: wf1.Word,
		Freq: wf1.Freq + wf2.Freq,
	}
}

// extractLines reads the text from the archive files and returns a
// PCollection of lines
func extractLines(ctx context.Context, s beam.Scope, directory, corpusFN, filter string) beam.PCollection {
	entries := readCorpusEntries(ctx, s, corpusFN)
	lDoc := []beam.PCollection{}
	for _, entry := range entries {
		fn := fmt.Sprintf("%s/%s", directory, entry.RawFile)
		lines := textio.Read(s, fn)
		filtered := beam.ParDo(s, &filterFn{Filter: filter}, lines)
		lDoc = append(lDoc, filtered)
	}
	return beam.Flatten(s, lDoc...)
}

// readCorpusEntries reads the list of archive files to process
func readCorpusEntries(ctx context.Context, s beam.Scope, corpusFN string) []CorpusEntry {
	f, err := os.Open(corpusFN)
	if err != nil {
		log.Fatalf(ctx, "readCorpusEntries, could not open corpus file %s: %v", corpusFN, err)
	}
	defer f.Close()
	entries, err := loadCorpusEntries(f)
	if err != nil {
		log.Fatalf(ctx, "readCorpusEntries, could not read corpus file %s: %v", corpusFN, err)
	}
	return entries
}

// loadCorpusEntries gets the list of archive files in the corpus
func loadCorpusEntries(r io.Reader) ([]CorpusEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comma = rune('\t')
	reader.Comment = rune('#')
	rawCSVdata, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loadCorpusEntries, unable to read corpus file: %v", err)
	}
	corpusEntries := []CorpusEntry{}
	for _, row := range rawCSVdata {
		if len(row) != 2 {
			return nil, fmt.Errorf("loadCorpusEntries len(row) != 2: %s", row)
		}
		corpusEntries = append(corpusEntries, CorpusEntry{
			RawFile:  row[0],
			RecordID: row[1],
		})
	}
	return corpusEntries, nil
}

// formatFn is a DoFn that formats a word frequency as a string.
func formatFn(k string, e WordFreqEntry) string {
	return fmt.Sprintf("%s\t%d", e.Word, e.Freq)
}

// toCountFn is a DoFn that reduces a word frequency entry to its count
func toCountFn(k string, e WordFreqEntry) (string, int) {
	return e.Word, e.Freq
}

// CountWords processes lines and outputs corpus-wide word frequencies
func CountWords(ctx context.Context, s beam.Scope, lines beam.PCollection) beam.PCollection {
	s = s.Scope("CountWords")
	words := beam.ParDo(s, &extractFn{MinLen: minWordLen}, lines)
	return beam.CombinePerKey(s, sumWordFreq, words)
}

func main() {
	flag.Parse()
	beam.Init()
	ctx := context.Background()

	p := beam.NewPipeline()
	s := p.Root()

	lines := extractLines(ctx, s, *input, *corpusFN, *filter)
	wordFreq := CountWords(ctx, s, lines)
	formatted := beam.ParDo(s, formatFn, wordFreq)
	textio.Write(s, *freqOut, formatted)
	log.Infof(ctx, "Word frequencies written to %s", *freqOut)

	if *projectID != "" {
		counts := beam.ParDo(s, toCountFn, wordFreq)
		beam.ParDo0(s, &freqio.UpdateWordCountDoc{
			FbCol:     *fbCol,
			ProjectID: *projectID,
		}, counts)
		log.Infof(ctx, "Word frequencies written to Firestore collection %s", *fbCol)
	}

	if err := beamx.Run(ctx, p); err != nil {
		log.Fatalf(ctx, "Failed to execute job: %v", err)
	}
}
