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

package extractor

// MaxBracketAge is the number of lines a bracketed region may span before
// its frame is discarded as unclosed OCR noise.
const MaxBracketAge = 10

// A bracketFrame records one open bracket and the number of lines it has
// survived since it was opened.
type bracketFrame struct {
	kind byte
	age  int
}

// A bracketStack tracks open brackets across lines. Frames are pruned by
// age and by blank lines rather than by strict nesting, which tolerates the
// unbalanced brackets common in OCR output.
type bracketStack []bracketFrame

// update pushes a frame for each opening bracket in the line and pops a
// frame for each closing bracket.
func (s *bracketStack) update(line string) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(', '[':
			*s = append(*s, bracketFrame{kind: line[i]})
		case ')', ']':
			if n := len(*s); n > 0 {
				*s = (*s)[:n-1]
			}
		}
	}
}

// ageAndClose ages every open frame by one line. Frames that have reached
// MaxBracketAge are discarded, and a blank line discards all frames.
func (s *bracketStack) ageAndClose(emptyLine bool) {
	kept := (*s)[:0]
	for _, f := range *s {
		if f.age >= MaxBracketAge || emptyLine {
			continue
		}
		f.age++
		kept = append(kept, f)
	}
	*s = kept
}

// open reports whether any bracketed region is still considered open.
func (s *bracketStack) open() bool {
	return len(*s) > 0
}

// firstBracket returns the position of the earliest opening bracket in the
// line, or -1 if the line has none.
func firstBracket(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == '(' || line[i] == '[' {
			return i
		}
	}
	return -1
}
