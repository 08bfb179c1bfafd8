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

package wordcount

import (
	"sort"
)

// Single record of the frequency of occurrence of a word
type WordFreq struct {
	Word string
	Freq int
}

// FreqMap is the frequency of occurrence of each word in a collection of
// texts
type FreqMap map[string]int

// Put adds one occurrence of the word to the map
func (m FreqMap) Put(word string) {
	m[word]++
}

// PutCount adds the given number of occurrences of the word to the map
func (m FreqMap) PutCount(word string, count int) {
	m[word] += count
}

// Merge adds the counts of another frequency map
func (m FreqMap) Merge(more FreqMap) {
	for w, count := range more {
		m[w] += count
	}
}

// Total sums the occurrence counts over all words
func (m FreqMap) Total() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// SortedFreq gets the word frequencies as an array sorted into descending
// order with the most frequent word first, ties broken alphabetically
func SortedFreq(m FreqMap) []WordFreq {
	f := make([]WordFreq, 0, len(m))
	for w, count := range m {
		f = append(f, WordFreq{w, count})
	}
	sort.Slice(f, func(i, j int) bool {
		if f[i].Freq != f[j].Freq {
			return f[i].Freq > f[j].Freq
		}
		return f[i].Word < f[j].Word
	})
	return f
}
