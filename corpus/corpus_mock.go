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

// Implements the CorpusLoader interface with trivial implementation
type EmptyCorpusLoader struct{ Label string }

func (loader EmptyCorpusLoader) LoadMetadata(fName string) ([]MetadataRecord, error) {
	return []MetadataRecord{}, nil
}

func (loader EmptyCorpusLoader) ReadText(fName string) (string, error) {
	return "", nil
}

// Implements the CorpusLoader interface with mock data
type MockCorpusLoader struct{ Label string }

func (loader MockCorpusLoader) LoadMetadata(fName string) ([]MetadataRecord, error) {
	records := []MetadataRecord{
		{
			ID:          "10001",
			Title:       "A Mock Novel",
			Author:      "A Mock Author",
			AuthorDeath: 1890,
			Languages:   []string{"English"},
			ArchivePath: "100/10001/10001.txt",
		},
		{
			ID:          "10002",
			Title:       "Un Roman Simule",
			Author:      "Un Auteur Simule",
			AuthorDeath: 1885,
			Languages:   []string{"French"},
			ArchivePath: "100/10002/10002.txt",
		},
	}
	return records, nil
}

func (loader MockCorpusLoader) ReadText(fName string) (string, error) {
	return "The air-ship rose into the night. The night was dark.", nil
}
