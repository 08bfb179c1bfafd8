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

// Package library manages the genre partitions of the novel library.
package library

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// The library file listing the genre partitions
const LibraryFile = "data/library.tsv"

// A Genre is one partition of the novel library, e.g. scifi or romance
type Genre struct {
	Name          string
	RawDir        string
	ProcessedDir  string
	FilteredFile  string
	CandidatesDir string
}

// A Library is the set of genre partitions loaded using a LibraryLoader
type Library struct {
	Title, Summary, DateUpdated string
	Loader                      LibraryLoader
}

// LibraryLoader loads the genre partitions into the library
type LibraryLoader interface {

	// LoadGenres loads the genre partitions in the library
	LoadGenres() ([]Genre, error)
}

// fileLibraryLoader loads the genre partitions from a TSV file
type fileLibraryLoader struct {
	FileName string
}

// LoadGenres implements the LibraryLoader interface
func (loader fileLibraryLoader) LoadGenres() ([]Genre, error) {
	f, err := os.Open(loader.FileName)
	if err != nil {
		return nil, fmt.Errorf("LoadGenres, could not open %s: %v",
			loader.FileName, err)
	}
	defer f.Close()
	return loadGenres(f)
}

// NewLibraryLoader creates a new LibraryLoader
func NewLibraryLoader(fname string) LibraryLoader {
	return fileLibraryLoader{
		FileName: fname,
	}
}

// loadGenres reads the genre partition list
func loadGenres(r io.Reader) ([]Genre, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comma = rune('\t')
	reader.Comment = rune('#')
	rawCSVdata, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loadGenres, error reading file: %v", err)
	}
	genres := []Genre{}
	for i, row := range rawCSVdata {
		if len(row) != 5 {
			return nil, fmt.Errorf("loadGenres, row %d has %d fields but want 5",
				i, len(row))
		}
		genres = append(genres, Genre{
			Name:          row[0],
			RawDir:        row[1],
			ProcessedDir:  row[2],
			FilteredFile:  row[3],
			CandidatesDir: row[4],
		})
	}
	return genres, nil
}
