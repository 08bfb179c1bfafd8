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

//Package for loading and tokenizing the novel and background corpora
package corpus

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"regexp"
	"strings"

	"github.com/neolexica/neodicter/wordcount"
)

// DefaultCutoffYear is the era boundary for the background corpus: only
// texts by authors who died before this year contribute to the reference
// vocabulary.
const DefaultCutoffYear = 1900

// Tokens shorter than this are not counted
const minTokenLen = 2

// Tokenization preserves hyphenated words, e.g. air-ship
var tokenPattern = regexp.MustCompile(`\b[a-zA-Z]+(?:-[a-zA-Z]+)*\b`)

// MetadataRecord describes one text in the background archive
type MetadataRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	AuthorDeath int      `json:"author_death"`
	Languages   []string `json:"languages"`
	ArchivePath string   `json:"archive_path"`
}

// CorpusConfig encapsulates parameters for corpus configuration
type CorpusConfig struct {
	CorpusDataDir string
	CutoffYear    int
	ProjectHome   string
}

type CorpusLoader interface {

	// Method to load the archive metadata records
	// Param:
	//   fName: The file name of the metadata file
	LoadMetadata(fName string) ([]MetadataRecord, error)

	// Method to read the contents of a corpus text
	// Parameter:
	//  fName: the file name containing the text
	ReadText(fName string) (string, error)
}

// A FileCorpusLoader loads the corpora from files
type FileCorpusLoader struct {
	Config CorpusConfig
}

// LoadMetadata implements the CorpusLoader interface
func (loader FileCorpusLoader) LoadMetadata(fName string) ([]MetadataRecord, error) {
	f, err := os.Open(fName)
	if err != nil {
		return nil, fmt.Errorf("LoadMetadata, could not open %s: %v", fName, err)
	}
	defer f.Close()
	var records []MetadataRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("LoadMetadata, could not decode %s: %v", fName, err)
	}
	return records, nil
}

// ReadText implements the CorpusLoader interface
func (loader FileCorpusLoader) ReadText(fName string) (string, error) {
	bs, err := ioutil.ReadFile(fName)
	if err != nil {
		return "", fmt.Errorf("ReadText, could not read %s: %v", fName, err)
	}
	return string(bs), nil
}

// FilterMetadata keeps the records usable for the reference vocabulary:
// English texts whose author died before the cutoff year. Records with no
// recorded death year are dropped.
func FilterMetadata(records []MetadataRecord, cutoffYear int) []MetadataRecord {
	filtered := []MetadataRecord{}
	for _, record := range records {
		if record.AuthorDeath == 0 || record.AuthorDeath >= cutoffYear {
			continue
		}
		for _, lang := range record.Languages {
			if strings.EqualFold(lang, "english") {
				filtered = append(filtered, record)
				break
			}
		}
	}
	return filtered
}

// ChunkText safely splits a long text into chunks no longer than chunkSize,
// breaking on paragraph boundaries so that sentences stay intact. A single
// paragraph longer than chunkSize becomes its own oversized chunk.
func ChunkText(text string, chunkSize int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n\n")
	chunks := []string{}
	current := ""
	for _, para := range paragraphs {
		if len(current)+len(para)+2 < chunkSize {
			current += para + "\n\n"
		} else {
			if current != "" {
				chunks = append(chunks, current)
			}
			current = para + "\n\n"
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// CountTokens tokenizes the text into lowercase words, preserving
// hyphenated words, and counts occurrences
func CountTokens(text string) wordcount.FreqMap {
	freq := wordcount.FreqMap{}
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(token) < minTokenLen {
			continue
		}
		freq.Put(token)
	}
	return freq
}
