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

// Package generator writes the per-genre candidate review report.
//
// The report body is composed in Markdown, rendered to HTML and embedded
// in an HTML page template. Custom templates can be provided by passing a
// template directory to NewTemplateMap.
package generator

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/neolexica/neodicter/classify"
)

// reportContent holds content for the report template
type reportContent struct {
	Title       string
	Content     string
	DateUpdated string
}

// candidateRow pairs a bucket key with its record for sorting
type candidateRow struct {
	Token  string
	Record classify.TokenRecord
}

// sortedRows orders a bucket by descending frequency, ties alphabetical
func sortedRows(candidates classify.Candidates) []candidateRow {
	rows := make([]candidateRow, 0, len(candidates.AggregatedTokens))
	for token, record := range candidates.AggregatedTokens {
		rows = append(rows, candidateRow{Token: token, Record: record})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Record.Frequency != rows[j].Record.Frequency {
			return rows[i].Record.Frequency > rows[j].Record.Frequency
		}
		return rows[i].Token < rows[j].Token
	})
	return rows
}

// candidateSection writes one bucket as a Markdown section with a table
func candidateSection(sb *strings.Builder, title string,
	candidates classify.Candidates, maxRows int) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	fmt.Fprintf(sb, "%d unique tokens\n\n", candidates.UniqueTokens)
	if candidates.UniqueTokens == 0 {
		return
	}
	sb.WriteString("| Rank | Token | Lemma | POS | Frequency |\n")
	sb.WriteString("|------|-------|-------|-----|-----------|\n")
	for i, row := range sortedRows(candidates) {
		if maxRows > 0 && i >= maxRows {
			break
		}
		fmt.Fprintf(sb, "| %d | %s | %s | %s | %d |\n", i+1, row.Record.FullForm,
			row.Record.Lemma, row.Record.POS, row.Record.Frequency)
	}
	sb.WriteString("\n")
}

// reportMarkdown composes the Markdown body of a genre report
func reportMarkdown(neoCombinations,
	novelNeologisms classify.Candidates, maxRows int) string {
	var sb strings.Builder
	candidateSection(&sb, "Neo-combinations", neoCombinations, maxRows)
	candidateSection(&sb, "Novel neologisms", novelNeologisms, maxRows)
	return sb.String()
}

// WriteReport renders the candidate review report for one genre. A
// maxRows of zero or less includes every candidate.
func WriteReport(w io.Writer, tmpl *template.Template, genre string,
	neoCombinations, novelNeologisms classify.Candidates, maxRows int) error {
	if tmpl == nil {
		return fmt.Errorf("WriteReport, template is nil for genre %s", genre)
	}
	md := reportMarkdown(neoCombinations, novelNeologisms, maxRows)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML([]byte(md), p, renderer)
	content := reportContent{
		Title:       fmt.Sprintf("Neologism candidates: %s", genre),
		Content:     string(body),
		DateUpdated: time.Now().Format("2006-01-02"),
	}
	if err := tmpl.Execute(w, content); err != nil {
		return fmt.Errorf("WriteReport, error executing template: %v", err)
	}
	return nil
}
