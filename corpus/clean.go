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

// Pre-cleaning of raw novel text before it is handed to the NLP tagger.

package corpus

import (
	"regexp"
	"strings"
)

var (
	// A table of contents block up to the first blank line
	contentsPattern = regexp.MustCompile(`(?is)CONTENTS.*?\n\s*\n`)
	// Chapter headings with roman numerals, e.g. CHAPTER IV
	chapterPattern = regexp.MustCompile(`(?im)^CHAPTER\s+[IVXLCDM]+\b.*$`)
	// Runs of punctuation that confuse the tokenizer
	repeatedPunct   = regexp.MustCompile(`([!?.,;:"'-]){2,}`)
	punctThenLetter = regexp.MustCompile(`([!?.,;:"'-])([A-Za-z])`)
	letterThenPunct = regexp.MustCompile(`([A-Za-z])([!?.,;:"'-])`)
	spaceRuns       = regexp.MustCompile(`[ \t]+`)
)

// PreClean removes front-matter noise and normalizes punctuation spacing.
// Newlines are preserved so that chunking can still break on paragraphs.
func PreClean(text string) string {
	text = contentsPattern.ReplaceAllString(text, "")
	text = chapterPattern.ReplaceAllString(text, "")
	text = repeatedPunct.ReplaceAllString(text, "$1")
	text = punctThenLetter.ReplaceAllString(text, "$1 $2")
	text = letterThenPunct.ReplaceAllString(text, "$1 $2")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
