// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"strings"
	"testing"
)

func TestLoadCorpusEntries(t *testing.T) {
	tsv := "# file\trecord\n" +
		"pg100.txt\tpg100\n" +
		"pg200.txt\tpg200\n"
	entries, err := loadCorpusEntries(strings.NewReader(tsv))
	if err != nil {
		t.Fatalf("TestLoadCorpusEntries: unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("TestLoadCorpusEntries: got %d entries but want 2", len(entries))
	}
	if entries[0].RawFile != "pg100.txt" || entries[0].RecordID != "pg100" {
		t.Errorf("TestLoadCorpusEntries: wrong first entry %v", entries[0])
	}
}

func TestLoadCorpusEntriesBadRow(t *testing.T) {
	tsv := "pg100.txt\n"
	if _, err := loadCorpusEntries(strings.NewReader(tsv)); err == nil {
		t.Error("TestLoadCorpusEntriesBadRow: expected an error")
	}
}

func TestExtractFn(t *testing.T) {
	f := extractFn{MinLen: minWordLen}
	got := map[string]int{}
	emit := func(word string, e WordFreqEntry) {
		got[word] += e.Freq
	}
	f.ProcessElement(context.Background(), "The air-ship rose, O rose!", emit)
	if got["air-ship"] != 1 {
		t.Errorf("TestExtractFn: air-ship got %d but want 1", got["air-ship"])
	}
	if got["rose"] != 2 {
		t.Errorf("TestExtractFn: rose got %d but want 2", got["rose"])
	}
	if _, ok := got["o"]; ok {
		t.Error("TestExtractFn: single letter word should be dropped")
	}
}

func TestSumWordFreq(t *testing.T) {
	got := sumWordFreq(WordFreqEntry{Word: "airship", Freq: 2},
		WordFreqEntry{Word: "airship", Freq: 3})
	if got.Freq != 5 {
		t.Errorf("TestSumWordFreq: got %d but want 5", got.Freq)
	}
}

func TestFormatFn(t *testing.T) {
	got := formatFn("airship", WordFreqEntry{Word: "airship", Freq: 5})
	want := "airship\t5"
	if got != want {
		t.Errorf("TestFormatFn: got %q but want %q", got, want)
	}
}
