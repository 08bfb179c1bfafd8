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

// Package classify partitions aggregated novel tokens into known words,
// neo-combinations and novel neologisms.
//
// Classification is a two-tier lookup against the combined reference
// vocabulary: a token whose surface form is attested is known; a token
// whose surface form is unattested but whose lemma is attested is a
// neo-combination; a token with neither attested is a novel neologism.
// Each token is classified independently of every other token.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neolexica/neodicter/reference"
)

// ErrMalformedRecord reports candidate metadata the upstream tagger should
// never produce, such as a missing lemma or a non-positive frequency.
var ErrMalformedRecord = errors.New("malformed token record")

// TokenRecord is the linguistic metadata for one aggregated surface token
type TokenRecord struct {
	FullForm  string `json:"full_form" firestore:"full_form"`
	Lemma     string `json:"lemma" firestore:"lemma"`
	POS       string `json:"pos" firestore:"pos"`
	Frequency int    `json:"frequency" firestore:"frequency"`
}

// TokenMap keys aggregated token records by lowercase surface form
type TokenMap map[string]TokenRecord

// Candidates is one bucket of classification output in the shape consumed
// by the review tool
type Candidates struct {
	AggregatedTokens TokenMap `json:"aggregated_tokens"`
	TotalTokens      int      `json:"total_tokens"`
	UniqueTokens     int      `json:"unique_tokens"`
}

func newCandidates() Candidates {
	return Candidates{AggregatedTokens: TokenMap{}}
}

// Partition classifies every aggregated token against the reference
// vocabulary. It returns the set of known surface forms, the
// neo-combination bucket and the novel-neologism bucket. Tokens or lemmas
// of a single character are too ambiguous to classify and are dropped.
// A record with an empty lemma or non-positive frequency fails the run
// with ErrMalformedRecord rather than being silently mis-classified.
//
// Classification of a token depends only on that token's form and lemma
// and the read-only reference set, so callers may partition the token map
// and run Partition concurrently per partition.
func Partition(tokens TokenMap, ref reference.Vocabulary) (map[string]bool, Candidates, Candidates, error) {
	known := map[string]bool{}
	neoCombinations := newCandidates()
	novelNeologisms := newCandidates()
	for token, record := range tokens {
		if len(token) <= 1 {
			continue
		}
		if record.Lemma == "" || record.Frequency <= 0 {
			return nil, Candidates{}, Candidates{},
				fmt.Errorf("classify.Partition, token %q: %w", token, ErrMalformedRecord)
		}
		tokenLower := strings.ToLower(token)
		lemmaLower := strings.ToLower(record.Lemma)
		if len(lemmaLower) <= 1 {
			continue
		}
		if ref.Contains(tokenLower) {
			known[token] = true
			continue
		}
		if ref.Contains(lemmaLower) {
			neoCombinations.AggregatedTokens[token] = record
			continue
		}
		novelNeologisms.AggregatedTokens[token] = record
	}
	neoCombinations.TotalTokens = len(neoCombinations.AggregatedTokens)
	neoCombinations.UniqueTokens = neoCombinations.TotalTokens
	novelNeologisms.TotalTokens = len(novelNeologisms.AggregatedTokens)
	novelNeologisms.UniqueTokens = novelNeologisms.TotalTokens
	return known, neoCombinations, novelNeologisms, nil
}
