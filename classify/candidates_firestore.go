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

// Functions for uploading candidate buckets for human review.

package classify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FsClient defines Firestore interfaces needed
type FsClient interface {
	Collection(path string) *firestore.CollectionRef
}

// CandidateDoc is one candidate token written for review
type CandidateDoc struct {
	Token     string `firestore:"token"`
	FullForm  string `firestore:"full_form"`
	Lemma     string `firestore:"lemma"`
	POS       string `firestore:"pos"`
	Frequency int    `firestore:"frequency"`
	Genre     string `firestore:"genre"`
	Bucket    string `firestore:"bucket"`
}

// UpdateCandidateIndex writes one candidate bucket to a Firestore
// collection named for the corpus, genre, bucket and generation. Existing
// documents are left untouched so that review state is not clobbered by a
// re-run.
func UpdateCandidateIndex(ctx context.Context, client FsClient, candidates Candidates, corpus, genre, bucket string, generation int) error {
	fsCol := fmt.Sprintf("%s_%s_%s_%d", corpus, strings.ToLower(genre), bucket, generation)
	log.Printf("UpdateCandidateIndex writing %d candidates to %s",
		candidates.TotalTokens, fsCol)
	i := 0
	for token, record := range candidates.AggregatedTokens {
		ref := client.Collection(fsCol).Doc(token)
		_, err := ref.Get(ctx)
		if err == nil {
			// Already uploaded, possibly already reviewed
			continue
		}
		if status.Code(err) != codes.NotFound {
			return fmt.Errorf("UpdateCandidateIndex, failed getting candidate for ref %v: %v", ref, err)
		}
		doc := CandidateDoc{
			Token:     token,
			FullForm:  record.FullForm,
			Lemma:     record.Lemma,
			POS:       record.POS,
			Frequency: record.Frequency,
			Genre:     genre,
			Bucket:    bucket,
		}
		_, err = ref.Set(ctx, doc)
		if err != nil {
			return fmt.Errorf("UpdateCandidateIndex, failed setting candidate %v: %v", doc, err)
		}
		i++
	}
	log.Printf("UpdateCandidateIndex wrote %d new entries", i)
	return nil
}
