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

package checkpoint

import (
	"path/filepath"
	"testing"

	"github.com/neolexica/neodicter/wordcount"
)

func testStore(t *testing.T, dbPath string) *Store {
	t.Helper()
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("testStore: could not open store: %v", err)
	}
	if err := s.BeginRun("gutenberg"); err != nil {
		t.Fatalf("testStore: could not begin run: %v", err)
	}
	return s
}

func TestMarkProcessed(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "checkpoint.db"))
	defer s.Close()
	done, err := s.IsProcessed("pg100")
	if err != nil {
		t.Fatalf("TestMarkProcessed: unexpected error: %v", err)
	}
	if done {
		t.Error("TestMarkProcessed: pg100 reported processed before marking")
	}
	counts := wordcount.FreqMap{"airship": 2, "night": 1}
	if err := s.MarkProcessed("pg100", counts); err != nil {
		t.Fatalf("TestMarkProcessed: could not mark: %v", err)
	}
	done, err = s.IsProcessed("pg100")
	if err != nil {
		t.Fatalf("TestMarkProcessed: unexpected error: %v", err)
	}
	if !done {
		t.Error("TestMarkProcessed: pg100 not reported processed after marking")
	}
	n, err := s.ProcessedCount()
	if err != nil {
		t.Fatalf("TestMarkProcessed: unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("TestMarkProcessed: got %d processed but want 1", n)
	}
}

func TestCountsAccumulate(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "checkpoint.db"))
	defer s.Close()
	if err := s.MarkProcessed("pg1", wordcount.FreqMap{"airship": 2}); err != nil {
		t.Fatalf("TestCountsAccumulate: could not mark pg1: %v", err)
	}
	if err := s.MarkProcessed("pg2", wordcount.FreqMap{"airship": 3, "ray": 1}); err != nil {
		t.Fatalf("TestCountsAccumulate: could not mark pg2: %v", err)
	}
	freq, err := s.Counts()
	if err != nil {
		t.Fatalf("TestCountsAccumulate: unexpected error: %v", err)
	}
	if freq["airship"] != 5 {
		t.Errorf("TestCountsAccumulate: airship got %d but want 5",
			freq["airship"])
	}
	if freq["ray"] != 1 {
		t.Errorf("TestCountsAccumulate: ray got %d but want 1", freq["ray"])
	}
}

func TestBeginRunResumes(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "checkpoint.db")
	s := testStore(t, dbPath)
	if err := s.MarkProcessed("pg1", wordcount.FreqMap{"ray": 1}); err != nil {
		t.Fatalf("TestBeginRunResumes: could not mark: %v", err)
	}
	s.Close()

	resumed := testStore(t, dbPath)
	defer resumed.Close()
	done, err := resumed.IsProcessed("pg1")
	if err != nil {
		t.Fatalf("TestBeginRunResumes: unexpected error: %v", err)
	}
	if !done {
		t.Error("TestBeginRunResumes: progress was lost across reopen")
	}
	freq, err := resumed.Counts()
	if err != nil {
		t.Fatalf("TestBeginRunResumes: unexpected error: %v", err)
	}
	if freq["ray"] != 1 {
		t.Errorf("TestBeginRunResumes: ray got %d but want 1", freq["ray"])
	}
}
