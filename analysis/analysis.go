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

// Package analysis filters tagged tokens, aggregates them per genre and
// drives the per-genre neologism classification.
package analysis

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/neolexica/neodicter/classify"
	"github.com/neolexica/neodicter/library"
	"github.com/neolexica/neodicter/reference"
)

// Output file names written into each genre's candidates directory
const (
	NeoCombinationsFile = "neo_combinations.json"
	NovelNeologismsFile = "novel_neologisms.json"
)

var digitPattern = regexp.MustCompile(`\d`)

// Parts of speech whose tokens never yield candidates
var droppedPOS = map[string]bool{
	"SPACE": true,
	"PROPN": true,
	"X":     true,
	"PUNCT": true,
}

// TaggedToken is one token as emitted by the linguistic tagger
type TaggedToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	NER     string `json:"ner"`
	IsStop  bool   `json:"is_stop"`
	IsPunct bool   `json:"is_punct"`
}

// A Sentence is the tagger's sentence-level grouping of tokens
type Sentence []TaggedToken

// Aggregate is the per-genre frequency aggregation of filtered tokens
type Aggregate struct {
	AggregatedTokens classify.TokenMap `json:"aggregated_tokens"`
	TotalTokens      int               `json:"total_tokens"`
	UniqueTokens     int               `json:"unique_tokens"`
}

// dropToken reports whether a tagged token is excluded from aggregation.
// Named entities, punctuation, numbers and stopwords never become
// neologism candidates.
func dropToken(t TaggedToken) bool {
	if t.NER != "" {
		return true
	}
	if t.IsPunct || droppedPOS[t.POS] {
		return true
	}
	if t.POS == "NUM" || digitPattern.MatchString(t.Text) {
		return true
	}
	return t.IsStop
}

// AggregateTokens folds the filtered tokens of a genre into frequency
// records keyed by lowercase surface form. The first occurrence fixes the
// recorded full form, lemma and part of speech.
func AggregateTokens(sentences []Sentence) Aggregate {
	agg := Aggregate{AggregatedTokens: classify.TokenMap{}}
	for _, sentence := range sentences {
		for _, t := range sentence {
			if dropToken(t) {
				continue
			}
			key := strings.ToLower(t.Text)
			agg.TotalTokens++
			if record, ok := agg.AggregatedTokens[key]; ok {
				record.Frequency++
				agg.AggregatedTokens[key] = record
				continue
			}
			agg.AggregatedTokens[key] = classify.TokenRecord{
				FullForm:  t.Text,
				Lemma:     strings.ToLower(t.Lemma),
				POS:       t.POS,
				Frequency: 1,
			}
		}
	}
	agg.UniqueTokens = len(agg.AggregatedTokens)
	return agg
}

// MergeAggregates combines per-chunk aggregates into one genre aggregate
func MergeAggregates(aggs []Aggregate) Aggregate {
	merged := Aggregate{AggregatedTokens: classify.TokenMap{}}
	for _, agg := range aggs {
		merged.TotalTokens += agg.TotalTokens
		for key, record := range agg.AggregatedTokens {
			if existing, ok := merged.AggregatedTokens[key]; ok {
				existing.Frequency += record.Frequency
				merged.AggregatedTokens[key] = existing
				continue
			}
			merged.AggregatedTokens[key] = record
		}
	}
	merged.UniqueTokens = len(merged.AggregatedTokens)
	return merged
}

// ReadSentences loads one tagged chunk file, a JSON array of sentences
func ReadSentences(fName string) ([]Sentence, error) {
	data, err := ioutil.ReadFile(fName)
	if err != nil {
		return nil, fmt.Errorf("ReadSentences, error reading %s: %v", fName, err)
	}
	var sentences []Sentence
	if err := json.Unmarshal(data, &sentences); err != nil {
		return nil, fmt.Errorf("ReadSentences, error parsing %s: %v", fName, err)
	}
	return sentences, nil
}

// AggregateGenre folds every tagged chunk file in the genre's processed
// directory into one filtered aggregate and writes it to the genre's
// filtered file.
func AggregateGenre(genre library.Genre) error {
	entries, err := ioutil.ReadDir(genre.ProcessedDir)
	if err != nil {
		return fmt.Errorf("AggregateGenre, genre %s: %v", genre.Name, err)
	}
	aggs := []Aggregate{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fName := filepath.Join(genre.ProcessedDir, entry.Name())
		sentences, err := ReadSentences(fName)
		if err != nil {
			return fmt.Errorf("AggregateGenre, genre %s: %v", genre.Name, err)
		}
		aggs = append(aggs, AggregateTokens(sentences))
	}
	merged := MergeAggregates(aggs)
	if err := WriteAggregate(merged, genre.FilteredFile); err != nil {
		return fmt.Errorf("AggregateGenre, genre %s: %v", genre.Name, err)
	}
	log.Printf("AggregateGenre, genre %s: %d chunk files, %d unique tokens",
		genre.Name, len(aggs), merged.UniqueTokens)
	return nil
}

// ReadAggregate loads a genre aggregate from a JSON file
func ReadAggregate(fName string) (*Aggregate, error) {
	data, err := ioutil.ReadFile(fName)
	if err != nil {
		return nil, fmt.Errorf("ReadAggregate, error reading %s: %v", fName, err)
	}
	var agg Aggregate
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, fmt.Errorf("ReadAggregate, error parsing %s: %v", fName, err)
	}
	if agg.AggregatedTokens == nil {
		agg.AggregatedTokens = classify.TokenMap{}
	}
	return &agg, nil
}

// WriteAggregate saves a genre aggregate as indented JSON
func WriteAggregate(agg Aggregate, fName string) error {
	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteAggregate, error marshalling: %v", err)
	}
	if err := ioutil.WriteFile(fName, data, 0644); err != nil {
		return fmt.Errorf("WriteAggregate, error writing %s: %v", fName, err)
	}
	return nil
}

// ReadCandidates loads one classification bucket from a JSON file
func ReadCandidates(fName string) (classify.Candidates, error) {
	var candidates classify.Candidates
	data, err := ioutil.ReadFile(fName)
	if err != nil {
		return candidates, fmt.Errorf("ReadCandidates, error reading %s: %v",
			fName, err)
	}
	if err := json.Unmarshal(data, &candidates); err != nil {
		return candidates, fmt.Errorf("ReadCandidates, error parsing %s: %v",
			fName, err)
	}
	if candidates.AggregatedTokens == nil {
		candidates.AggregatedTokens = classify.TokenMap{}
	}
	return candidates, nil
}

// writeCandidates saves one classification bucket as indented JSON
func writeCandidates(candidates classify.Candidates, fName string) error {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return fmt.Errorf("writeCandidates, error marshalling: %v", err)
	}
	if err := ioutil.WriteFile(fName, data, 0644); err != nil {
		return fmt.Errorf("writeCandidates, error writing %s: %v", fName, err)
	}
	return nil
}

// ProcessGenre classifies one genre's filtered aggregate against the
// reference vocabulary and writes the two candidate buckets into the
// genre's candidates directory.
func ProcessGenre(genre library.Genre, ref reference.Vocabulary) error {
	agg, err := ReadAggregate(genre.FilteredFile)
	if err != nil {
		return fmt.Errorf("ProcessGenre, genre %s: %v", genre.Name, err)
	}
	known, neoCombinations, novelNeologisms, err := classify.Partition(
		agg.AggregatedTokens, ref)
	if err != nil {
		return fmt.Errorf("ProcessGenre, genre %s: %v", genre.Name, err)
	}
	if err := os.MkdirAll(genre.CandidatesDir, 0755); err != nil {
		return fmt.Errorf("ProcessGenre, genre %s: %v", genre.Name, err)
	}
	neoFile := filepath.Join(genre.CandidatesDir, NeoCombinationsFile)
	if err := writeCandidates(neoCombinations, neoFile); err != nil {
		return fmt.Errorf("ProcessGenre, genre %s: %v", genre.Name, err)
	}
	novelFile := filepath.Join(genre.CandidatesDir, NovelNeologismsFile)
	if err := writeCandidates(novelNeologisms, novelFile); err != nil {
		return fmt.Errorf("ProcessGenre, genre %s: %v", genre.Name, err)
	}
	log.Printf("ProcessGenre, genre %s: %d known, %d neo-combinations, %d novel",
		genre.Name, len(known), neoCombinations.UniqueTokens,
		novelNeologisms.UniqueTokens)
	return nil
}

// ProcessAll classifies every genre concurrently. Genres are independent
// of each other so each gets its own goroutine. The first error observed
// is returned after all genres finish.
func ProcessAll(genres []library.Genre, ref reference.Vocabulary) error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(genres))
	for _, genre := range genres {
		wg.Add(1)
		go func(g library.Genre) {
			defer wg.Done()
			if err := ProcessGenre(g, ref); err != nil {
				errCh <- err
			}
		}(genre)
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return fmt.Errorf("ProcessAll: %v", err)
	}
	return nil
}
