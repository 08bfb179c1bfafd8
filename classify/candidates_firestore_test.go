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

package classify

import (
	"context"
	"flag"
	"testing"

	"cloud.google.com/go/firestore"
)

var projectID = flag.String("project_id", "", "GCP project ID")

// Requires a real GCP project, run with -project_id
func TestUpdateCandidateIndex(t *testing.T) {
	if *projectID == "" {
		t.Skip("TestUpdateCandidateIndex: skipping, no -project_id given")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, *projectID)
	if err != nil {
		t.Fatalf("TestUpdateCandidateIndex: failed to create client: %v", err)
	}
	defer client.Close()
	candidates := Candidates{
		AggregatedTokens: TokenMap{
			"aerofoil": {FullForm: "aerofoil", Lemma: "aerofoil", POS: "NOUN", Frequency: 3},
		},
		TotalTokens:  1,
		UniqueTokens: 1,
	}
	err = UpdateCandidateIndex(ctx, client, candidates, "neodicter", "scifi",
		"novel_neologisms", 0)
	if err != nil {
		t.Errorf("TestUpdateCandidateIndex: unexpected error: %v", err)
	}
}
