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

// Package extractor scans OCR'd dictionary text for headword entries.
//
// The scan is a single ordered pass over stripped lines. A headword is a
// run of ASCII letters, hyphens or apostrophes at the start of a line,
// separated from the definition text by the dictionary's two-space column
// convention. Bracketed pronunciation and etymology notes, words broken
// across lines by hyphenation, and several classes of OCR noise are
// handled by cross-line state threaded through the pass.
package extractor

import (
	"regexp"
	"sort"
	"strings"
)

// MaxLetterJump is the largest alphabet distance between the leading
// letters of consecutive accepted entries that is taken as genuine lexical
// progression. A larger jump is skipped once per target letter.
const MaxLetterJump = 1

var (
	entryPattern  = regexp.MustCompile(`^([A-Za-z'-]+)  `)
	hyphenPattern = regexp.MustCompile(`. ([a-zA-Z]+)-$`)
)

// scanState is the extractor state carried from one line to the next.
type scanState struct {
	stack       bracketStack
	incomplete  string
	prevEntry   string
	prevIsEntry bool
	firstSeen   map[byte]bool
}

// proposeEntry matches the headword grammar at the start of the line,
// prefixing any word fragment carried over from a hyphenated break. It
// returns the proposed entry, or "", and the remaining carried fragment.
func proposeEntry(line, incomplete string) (string, string) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return "", incomplete
	}
	if incomplete != "" {
		return incomplete + m[1], ""
	}
	return m[1], ""
}

// carryHyphen detects a word broken by a trailing hyphen at the end of the
// line. Letters found there complete a fragment already being carried;
// otherwise they start a new fragment and any fragment previously carried
// is handed back to the caller, which skips the current line.
func carryHyphen(incomplete, line string) (newIncomplete, held string) {
	m := hyphenPattern.FindStringSubmatch(line)
	if m == nil {
		return "", incomplete
	}
	if incomplete != "" {
		return incomplete + m[1], ""
	}
	return m[1] + "-", incomplete
}

// shouldSkip implements the letter-jump heuristic. An entry whose leading
// letter is more than MaxLetterJump positions away from the previous
// accepted entry's is skipped, but only the first time that letter appears
// as a jump target in the run.
func shouldSkip(current, previous string, firstSeen map[byte]bool) bool {
	if previous == "" || current == "" {
		return false
	}
	prev := lower(previous[0])
	curr := lower(current[0])
	d := int(curr) - int(prev)
	if d < 0 {
		d = -d
	}
	if d > MaxLetterJump {
		if firstSeen[curr] {
			return false
		}
		firstSeen[curr] = true
		return true
	}
	return false
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Extract scans the lines for headword entries in a single ordered pass.
// The returned sequence is in insertion order and may contain duplicates.
// The function is total: malformed lines contribute nothing but never fail.
func Extract(lines []string) []string {
	st := scanState{firstSeen: map[byte]bool{}}
	entries := []string{}
	for _, line := range lines {
		var current string
		current, st.incomplete = proposeEntry(line, st.incomplete)
		bracketIdx := firstBracket(line)
		switch {
		case current != "" && bracketIdx != -1 && bracketIdx > strings.Index(line, current):
			// The bracket opens after the headword, so the bracketed text
			// belongs to the definition and the entry stands. Bracket
			// bookkeeping still carries over to later lines.
			st.stack.update(line)
			st.stack.ageAndClose(line == "")
		case current == "":
			st.prevIsEntry = false
			st.stack.update(line)
			st.stack.ageAndClose(line == "")
			continue
		default:
			st.stack.update(line)
			st.stack.ageAndClose(line == "")
			if st.stack.open() {
				// A headword-shaped token inside a multi-line parenthetical
				// is almost always pronunciation or etymology noise.
				continue
			}
		}
		var held string
		st.incomplete, held = carryHyphen(st.incomplete, line)
		if held != "" {
			continue
		}
		if st.prevIsEntry || shouldSkip(current, st.prevEntry, st.firstSeen) {
			st.prevIsEntry = false
			continue
		}
		entries = append(entries, current)
		st.prevIsEntry = true
		st.prevEntry = current
	}
	return entries
}

// Headwords extracts entries from the lines and finalizes them into a
// deduplicated, lexicographically sorted list.
func Headwords(lines []string) []string {
	seen := map[string]bool{}
	headwords := []string{}
	for _, e := range Extract(lines) {
		if !seen[e] {
			seen[e] = true
			headwords = append(headwords, e)
		}
	}
	sort.Strings(headwords)
	return headwords
}
