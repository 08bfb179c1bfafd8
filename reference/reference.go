// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reference builds and persists the combined reference vocabulary
// of attested word forms: dictionary headwords plus the vocabulary of a
// large background corpus.
package reference

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/neolexica/neodicter/wordcount"
)

// Default file names under the dicts data directory
const (
	HeadwordsFile  = "extracted_headwords.json"
	CorpusFreqFile = "corpus_filter_dictionary.json"
)

// Vocabulary is a case-insensitive membership set of attested word forms
type Vocabulary map[string]bool

// NewVocabulary combines dictionary headwords with the vocabulary of a
// background corpus frequency map, case-folded to lowercase.
func NewVocabulary(headwords []string, corpusFreq wordcount.FreqMap) Vocabulary {
	v := make(Vocabulary, len(headwords)+len(corpusFreq))
	for _, hw := range headwords {
		v[strings.ToLower(hw)] = true
	}
	for w := range corpusFreq {
		v[strings.ToLower(w)] = true
	}
	return v
}

// Contains reports whether the word is attested, ignoring case
func (v Vocabulary) Contains(word string) bool {
	return v[strings.ToLower(word)]
}

// ReadHeadwords reads a headword list from a JSON array
func ReadHeadwords(r io.Reader) ([]string, error) {
	var headwords []string
	if err := json.NewDecoder(r).Decode(&headwords); err != nil {
		return nil, fmt.Errorf("ReadHeadwords, could not decode list: %v", err)
	}
	return headwords, nil
}

// WriteHeadwords writes the headword list as an indented JSON array,
// sorted so that output is reproducible
func WriteHeadwords(w io.Writer, headwords []string) error {
	sorted := make([]string, len(headwords))
	copy(sorted, headwords)
	sort.Strings(sorted)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sorted); err != nil {
		return fmt.Errorf("WriteHeadwords, could not encode list: %v", err)
	}
	return nil
}

// ReadCorpusFreq reads a background corpus frequency map from a JSON
// object of word to count
func ReadCorpusFreq(r io.Reader) (wordcount.FreqMap, error) {
	freq := wordcount.FreqMap{}
	if err := json.NewDecoder(r).Decode(&freq); err != nil {
		return nil, fmt.Errorf("ReadCorpusFreq, could not decode map: %v", err)
	}
	return freq, nil
}

// WriteCorpusFreq writes the background corpus frequency map as a JSON
// object of word to count
func WriteCorpusFreq(w io.Writer, freq wordcount.FreqMap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(freq); err != nil {
		return fmt.Errorf("WriteCorpusFreq, could not encode map: %v", err)
	}
	return nil
}
