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

package corpus

import (
	"strings"
	"testing"
)

func TestPreClean(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Contents block removed",
			text: "CONTENTS\nI. One\nII. Two\n\nIt was a dark night",
			want: "It was a dark night",
		},
		{
			name: "Chapter heading removed",
			text: "CHAPTER IV\nIt began again",
			want: "It began again",
		},
		{
			name: "Stuck punctuation spaced",
			text: "hello,world",
			want: "hello , world",
		},
		{
			name: "Repeated punctuation collapsed",
			text: "word--another",
			want: "word - another",
		},
		{
			name: "Space runs collapsed",
			text: "a  lot\tof   space",
			want: "a lot of space",
		},
	}
	for _, tc := range tests {
		if got := PreClean(tc.text); got != tc.want {
			t.Errorf("%s: got %q but want %q", tc.name, got, tc.want)
		}
	}
}

func TestPreCleanKeepsNewlines(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph."
	got := PreClean(text)
	if !strings.Contains(got, "\n\n") {
		t.Error("TestPreCleanKeepsNewlines: paragraph break was lost")
	}
}
