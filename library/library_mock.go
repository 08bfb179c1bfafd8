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

// Implements the LibraryLoader interface with trivial implementation
type EmptyLibraryLoader struct{ Label string }

func (loader EmptyLibraryLoader) LoadGenres() ([]Genre, error) {
	return []Genre{}, nil
}

// Implements the LibraryLoader interface with mock data
type MockLibraryLoader struct{ Label string }

func (loader MockLibraryLoader) LoadGenres() ([]Genre, error) {
	genres := []Genre{
		{
			Name:          "scifi",
			RawDir:        "data/raw/scifi",
			ProcessedDir:  "data/processed/scifi",
			FilteredFile:  "data/filtered/scifi_filtered.json",
			CandidatesDir: "data/candidates/scifi",
		},
		{
			Name:          "romance",
			RawDir:        "data/raw/romance",
			ProcessedDir:  "data/processed/romance",
			FilteredFile:  "data/filtered/romance_filtered.json",
			CandidatesDir: "data/candidates/romance",
		},
	}
	return genres, nil
}
