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

package library

import (
	"strings"
	"testing"
)

func TestLoadGenres(t *testing.T) {
	tsv := "# name\traw\tprocessed\tfiltered\tcandidates\n" +
		"scifi\tdata/raw/scifi\tdata/processed/scifi\tdata/filtered/scifi_filtered.json\tdata/candidates/scifi\n" +
		"romance\tdata/raw/romance\tdata/processed/romance\tdata/filtered/romance_filtered.json\tdata/candidates/romance\n"
	genres, err := loadGenres(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("TestLoadGenres: unexpected error: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("TestLoadGenres: got %d genres but want 2", len(genres))
	}
	if genres[0].Name != "scifi" {
		t.Error("TestLoadGenres: expected scifi, got ", genres[0].Name)
	}
	if genres[1].FilteredFile != "data/filtered/romance_filtered.json" {
		t.Error("TestLoadGenres: wrong filtered file, got ",
			genres[1].FilteredFile)
	}
}

func TestLoadGenresBadRow(t *testing.T) {
	tsv := "scifi\tdata/raw/scifi\n"
	_, err := loadGenres(strings.NewReader(tsv))
	if err == nil {
		t.Error("TestLoadGenresBadRow: expected an error")
	}
}

func TestMockLibraryLoader(t *testing.T) {
	loader := MockLibraryLoader{Label: "Mock"}
	genres, err := loader.LoadGenres()
	if err != nil {
		t.Fatalf("TestMockLibraryLoader: unexpected error: %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("TestMockLibraryLoader: got %d genres but want 2", len(genres))
	}
}
