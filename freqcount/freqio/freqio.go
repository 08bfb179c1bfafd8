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

// freqio provides IO functions to write word frequency information to
// Firestore
package freqio

import (
	"context"
	"reflect"

	"cloud.google.com/go/firestore"

	"github.com/apache/beam/sdks/v2/go/pkg/beam"
	"github.com/apache/beam/sdks/v2/go/pkg/beam/log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func init() {
	beam.RegisterType(reflect.TypeOf((*UpdateWordCountDoc)(nil)))
}

// WordCountDoc is the corpus-wide frequency of one word
type WordCountDoc struct {
	Word string `firestore:"word"`
	Freq int    `firestore:"freq"`
}

// UpdateWordCountDoc is a ParDo that writes word counts to Firestore
type UpdateWordCountDoc struct {
	FbCol     string
	ProjectID string
	client    *firestore.Client
}

// Setup establishes the client connection
func (f *UpdateWordCountDoc) Setup() {
	ctx := context.Background()
	var err error
	f.client, err = firestore.NewClient(ctx, f.ProjectID)
	if err != nil {
		log.Fatalf(ctx, "Failed to create Firestore client: %v", err)
	}
}

// ProcessElement writes the given word count to Firestore. A count from
// a previous run is overwritten since a re-run recomputes the totals.
func (f *UpdateWordCountDoc) ProcessElement(ctx context.Context, word string, freq int) {
	ref := f.client.Collection(f.FbCol).Doc(word)
	_, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			log.Infof(ctx, "Failed getting count for ref %v: %v", ref, err)
			return
		}
	}
	_, err = ref.Set(ctx, WordCountDoc{Word: word, Freq: freq})
	if err != nil {
		log.Infof(ctx, "Failed setting count for ref %v: %v", ref, err)
	}
}
