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

package classify

import (
	"errors"
	"testing"

	"github.com/neolexica/neodicter/reference"
	"github.com/neolexica/neodicter/wordcount"
)

func testVocabulary() reference.Vocabulary {
	return reference.NewVocabulary([]string{"walk", "ray"}, wordcount.FreqMap{"gun": 3})
}

func TestPartition(t *testing.T) {
	tokens := TokenMap{
		"walk":      {FullForm: "walk", Lemma: "walk", POS: "VERB", Frequency: 12},
		"walked":    {FullForm: "Walked", Lemma: "walk", POS: "VERB", Frequency: 4},
		"glorbnik":  {FullForm: "glorbnik", Lemma: "glorbnik", POS: "NOUN", Frequency: 1},
		"rayproof":  {FullForm: "rayproof", Lemma: "rayproof", POS: "ADJ", Frequency: 2},
		"guns":      {FullForm: "Guns", Lemma: "gun", POS: "NOUN", Frequency: 5},
		"a":         {FullForm: "a", Lemma: "a", POS: "DET", Frequency: 900},
		"eh":        {FullForm: "eh", Lemma: "e", POS: "INTJ", Frequency: 2},
	}
	known, neo, novel, err := Partition(tokens, testVocabulary())
	if err != nil {
		t.Fatalf("TestPartition: unexpected error: %v", err)
	}
	if !known["walk"] {
		t.Error("TestPartition: expected walk to be known")
	}
	if _, ok := neo.AggregatedTokens["walked"]; !ok {
		t.Error("TestPartition: expected walked to be a neo-combination")
	}
	if _, ok := neo.AggregatedTokens["guns"]; !ok {
		t.Error("TestPartition: expected guns to be a neo-combination")
	}
	for _, token := range []string{"glorbnik", "rayproof"} {
		if _, ok := novel.AggregatedTokens[token]; !ok {
			t.Errorf("TestPartition: expected %s to be a novel neologism", token)
		}
	}
	// Single-character forms are dropped from every bucket
	for _, token := range []string{"a", "eh"} {
		if known[token] {
			t.Errorf("TestPartition: %s should not be known", token)
		}
		if _, ok := neo.AggregatedTokens[token]; ok {
			t.Errorf("TestPartition: %s should not be a neo-combination", token)
		}
		if _, ok := novel.AggregatedTokens[token]; ok {
			t.Errorf("TestPartition: %s should not be a novel neologism", token)
		}
	}
	if neo.TotalTokens != 2 || neo.UniqueTokens != 2 {
		t.Errorf("TestPartition: neo counts got (%d, %d) but want (2, 2)",
			neo.TotalTokens, neo.UniqueTokens)
	}
	if novel.TotalTokens != 2 || novel.UniqueTokens != 2 {
		t.Errorf("TestPartition: novel counts got (%d, %d) but want (2, 2)",
			novel.TotalTokens, novel.UniqueTokens)
	}
}

// Every classifiable token lands in exactly one partition
func TestPartitionComplete(t *testing.T) {
	tokens := TokenMap{
		"walk":     {FullForm: "walk", Lemma: "walk", POS: "VERB", Frequency: 1},
		"walked":   {FullForm: "walked", Lemma: "walk", POS: "VERB", Frequency: 1},
		"glorbnik": {FullForm: "glorbnik", Lemma: "glorbnik", POS: "NOUN", Frequency: 1},
	}
	known, neo, novel, err := Partition(tokens, testVocabulary())
	if err != nil {
		t.Fatalf("TestPartitionComplete: unexpected error: %v", err)
	}
	for token := range tokens {
		n := 0
		if known[token] {
			n++
		}
		if _, ok := neo.AggregatedTokens[token]; ok {
			n++
		}
		if _, ok := novel.AggregatedTokens[token]; ok {
			n++
		}
		if n != 1 {
			t.Errorf("TestPartitionComplete: %s appears in %d partitions", token, n)
		}
	}
}

func TestPartitionCaseFolding(t *testing.T) {
	tokens := TokenMap{
		"Walk":   {FullForm: "Walk", Lemma: "Walk", POS: "VERB", Frequency: 1},
		"WALKED": {FullForm: "WALKED", Lemma: "WALK", POS: "VERB", Frequency: 1},
	}
	known, neo, _, err := Partition(tokens, testVocabulary())
	if err != nil {
		t.Fatalf("TestPartitionCaseFolding: unexpected error: %v", err)
	}
	if !known["Walk"] {
		t.Error("TestPartitionCaseFolding: expected Walk to be known")
	}
	if _, ok := neo.AggregatedTokens["WALKED"]; !ok {
		t.Error("TestPartitionCaseFolding: expected WALKED to be a neo-combination")
	}
}

func TestPartitionEmpty(t *testing.T) {
	known, neo, novel, err := Partition(TokenMap{}, testVocabulary())
	if err != nil {
		t.Fatalf("TestPartitionEmpty: unexpected error: %v", err)
	}
	if len(known) != 0 || neo.TotalTokens != 0 || novel.TotalTokens != 0 {
		t.Error("TestPartitionEmpty: expected empty partitions")
	}
}

func TestPartitionMalformed(t *testing.T) {
	tests := []struct {
		name   string
		tokens TokenMap
	}{
		{
			name:   "Missing lemma",
			tokens: TokenMap{"gadget": {FullForm: "gadget", Frequency: 1}},
		},
		{
			name:   "Non-positive frequency",
			tokens: TokenMap{"gadget": {FullForm: "gadget", Lemma: "gadget"}},
		},
	}
	for _, tc := range tests {
		_, _, _, err := Partition(tc.tokens, testVocabulary())
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: got %v but want ErrMalformedRecord", tc.name, err)
		}
	}
}
