/*
Command line utility to detect neologism candidates in historical genre
fiction by comparing novel vocabulary against a period dictionary and a
background corpus.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"cloud.google.com/go/firestore"

	"github.com/neolexica/neodicter/analysis"
	"github.com/neolexica/neodicter/checkpoint"
	"github.com/neolexica/neodicter/classify"
	"github.com/neolexica/neodicter/corpus"
	"github.com/neolexica/neodicter/extractor"
	"github.com/neolexica/neodicter/generator"
	"github.com/neolexica/neodicter/library"
	"github.com/neolexica/neodicter/reference"
)

const (
	metadataFile   = "data/corpus/metadata.json"
	checkpointFile = "data/corpus/checkpoint.db"
	dictsDir       = "dicts"
	reportFile     = "report.html"
)

var projectHome string

func init() {
	projectHome = os.Getenv("NEODICTER_HOME")
	log.Printf("config.init: projectHome: '%s'\n", projectHome)
	if len(projectHome) == 0 {
		projectHome = "."
	}
}

func getCorpusConfig() corpus.CorpusConfig {
	return corpus.CorpusConfig{
		CorpusDataDir: projectHome + "/data/corpus",
		CutoffYear:    corpus.DefaultCutoffYear,
		ProjectHome:   projectHome,
	}
}

// extractDict scans the OCR dictionary file and writes the extracted
// headwords to the dicts directory
func extractDict(srcFile string) error {
	f, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("extractDict, could not open %s: %v", srcFile, err)
	}
	defer f.Close()
	lines := []string{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("extractDict, error scanning %s: %v", srcFile, err)
	}
	headwords := extractor.Headwords(lines)
	destFile := filepath.Join(projectHome, dictsDir, reference.HeadwordsFile)
	if err := os.MkdirAll(filepath.Dir(destFile), 0755); err != nil {
		return fmt.Errorf("extractDict, could not create dicts dir: %v", err)
	}
	dest, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("extractDict, could not create %s: %v", destFile, err)
	}
	defer dest.Close()
	if err := reference.WriteHeadwords(dest, headwords); err != nil {
		return fmt.Errorf("extractDict: %v", err)
	}
	log.Printf("extractDict: wrote %d headwords to %s", len(headwords), destFile)
	return nil
}

// countCorpus counts word frequencies over the background archive,
// checkpointing progress per record so an interrupted run can resume
func countCorpus(corpusConfig corpus.CorpusConfig) error {
	loader := corpus.FileCorpusLoader{Config: corpusConfig}
	records, err := loader.LoadMetadata(filepath.Join(projectHome, metadataFile))
	if err != nil {
		return fmt.Errorf("countCorpus: %v", err)
	}
	filtered := corpus.FilterMetadata(records, corpusConfig.CutoffYear)
	log.Printf("countCorpus: %d of %d records usable", len(filtered),
		len(records))
	store, err := checkpoint.Open(filepath.Join(projectHome, checkpointFile))
	if err != nil {
		return fmt.Errorf("countCorpus: %v", err)
	}
	defer store.Close()
	if err := store.BeginRun("background"); err != nil {
		return fmt.Errorf("countCorpus: %v", err)
	}
	for _, record := range filtered {
		done, err := store.IsProcessed(record.ID)
		if err != nil {
			return fmt.Errorf("countCorpus: %v", err)
		}
		if done {
			continue
		}
		text, err := loader.ReadText(filepath.Join(corpusConfig.CorpusDataDir,
			record.ArchivePath))
		if err != nil {
			return fmt.Errorf("countCorpus, record %s: %v", record.ID, err)
		}
		counts := corpus.CountTokens(corpus.PreClean(text))
		if err := store.MarkProcessed(record.ID, counts); err != nil {
			return fmt.Errorf("countCorpus, record %s: %v", record.ID, err)
		}
	}
	n, err := store.ProcessedCount()
	if err != nil {
		return fmt.Errorf("countCorpus: %v", err)
	}
	log.Printf("countCorpus: %d records counted", n)
	freq, err := store.Counts()
	if err != nil {
		return fmt.Errorf("countCorpus: %v", err)
	}
	destFile := filepath.Join(projectHome, dictsDir, reference.CorpusFreqFile)
	if err := os.MkdirAll(filepath.Dir(destFile), 0755); err != nil {
		return fmt.Errorf("countCorpus, could not create dicts dir: %v", err)
	}
	dest, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("countCorpus, could not create %s: %v", destFile, err)
	}
	defer dest.Close()
	if err := reference.WriteCorpusFreq(dest, freq); err != nil {
		return fmt.Errorf("countCorpus: %v", err)
	}
	log.Printf("countCorpus: wrote %d words to %s", len(freq), destFile)
	return nil
}

// loadReference combines the extracted headwords and the background
// corpus vocabulary into the reference vocabulary
func loadReference() (reference.Vocabulary, error) {
	hwFile := filepath.Join(projectHome, dictsDir, reference.HeadwordsFile)
	hwReader, err := os.Open(hwFile)
	if err != nil {
		return nil, fmt.Errorf("loadReference, could not open %s: %v", hwFile, err)
	}
	defer hwReader.Close()
	headwords, err := reference.ReadHeadwords(hwReader)
	if err != nil {
		return nil, fmt.Errorf("loadReference: %v", err)
	}
	freqFile := filepath.Join(projectHome, dictsDir, reference.CorpusFreqFile)
	freqReader, err := os.Open(freqFile)
	if err != nil {
		return nil, fmt.Errorf("loadReference, could not open %s: %v", freqFile,
			err)
	}
	defer freqReader.Close()
	corpusFreq, err := reference.ReadCorpusFreq(freqReader)
	if err != nil {
		return nil, fmt.Errorf("loadReference: %v", err)
	}
	log.Printf("loadReference: %d headwords, %d corpus words", len(headwords),
		len(corpusFreq))
	return reference.NewVocabulary(headwords, corpusFreq), nil
}

// loadGenres loads the genre partitions, optionally restricted to one
func loadGenres(genreName string) ([]library.Genre, error) {
	fname := projectHome + "/" + library.LibraryFile
	loader := library.NewLibraryLoader(fname)
	genres, err := loader.LoadGenres()
	if err != nil {
		return nil, fmt.Errorf("loadGenres: %v", err)
	}
	if genreName == "" {
		return genres, nil
	}
	for _, genre := range genres {
		if genre.Name == genreName {
			return []library.Genre{genre}, nil
		}
	}
	return nil, fmt.Errorf("loadGenres, no genre named %s", genreName)
}

// writeReports renders the candidate review report for each genre into
// its candidates directory
func writeReports(genres []library.Genre, maxRows int) error {
	templates := generator.NewTemplateMap(os.Getenv("TEMPLATE_HOME"))
	tmpl := templates["report-template.html"]
	for _, genre := range genres {
		neo, err := analysis.ReadCandidates(filepath.Join(genre.CandidatesDir,
			analysis.NeoCombinationsFile))
		if err != nil {
			return fmt.Errorf("writeReports: %v", err)
		}
		novel, err := analysis.ReadCandidates(filepath.Join(genre.CandidatesDir,
			analysis.NovelNeologismsFile))
		if err != nil {
			return fmt.Errorf("writeReports: %v", err)
		}
		destFile := filepath.Join(genre.CandidatesDir, reportFile)
		dest, err := os.Create(destFile)
		if err != nil {
			return fmt.Errorf("writeReports, could not create %s: %v", destFile,
				err)
		}
		err = generator.WriteReport(dest, tmpl, genre.Name, neo, novel, maxRows)
		dest.Close()
		if err != nil {
			return fmt.Errorf("writeReports: %v", err)
		}
		log.Printf("writeReports: wrote %s", destFile)
	}
	return nil
}

// uploadCandidates writes each genre's candidate buckets to Firestore for
// human review
func uploadCandidates(ctx context.Context, project, corpusName string,
	generation int, genres []library.Genre) error {
	client, err := firestore.NewClient(ctx, project)
	if err != nil {
		return fmt.Errorf("uploadCandidates, could not create client: %v", err)
	}
	defer client.Close()
	for _, genre := range genres {
		buckets := map[string]string{
			"neo_combinations": analysis.NeoCombinationsFile,
			"novel_neologisms": analysis.NovelNeologismsFile,
		}
		for bucket, fName := range buckets {
			candidates, err := analysis.ReadCandidates(
				filepath.Join(genre.CandidatesDir, fName))
			if err != nil {
				return fmt.Errorf("uploadCandidates: %v", err)
			}
			err = classify.UpdateCandidateIndex(ctx, client, candidates,
				corpusName, genre.Name, bucket, generation)
			if err != nil {
				return fmt.Errorf("uploadCandidates: %v", err)
			}
		}
	}
	return nil
}

// Entry point for the neodicter command line tool.
// Default action is to classify all genres against the reference
// vocabulary
func main() {
	var extractFile = flag.String("extractdict", "",
		"Extract headwords from the given OCR dictionary text file and write "+
			"them to the dicts directory.")
	var countcorpus = flag.Bool("countcorpus", false, "Count word frequencies "+
		"in the background archive listed in data/corpus/metadata.json, "+
		"checkpointing progress.")
	var aggregate = flag.Bool("aggregate", false, "Aggregate tagged chunk "+
		"files into a filtered aggregate for each genre.")
	var classifyAll = flag.Bool("classify", false, "Classify each genre's "+
		"aggregate against the reference vocabulary. This is also the "+
		"default action.")
	var report = flag.Bool("report", false, "Write the candidate review "+
		"report for each genre.")
	var maxRows = flag.Int("maxrows", 0, "Limit report tables to this many "+
		"rows, 0 for no limit.")
	var upload = flag.Bool("upload", false, "Upload candidate buckets to "+
		"Firestore for review.")
	var project = flag.String("project", "", "GCP project ID for Firestore.")
	var corpusName = flag.String("corpus", "neodicter", "Corpus name used in "+
		"Firestore collection names.")
	var generation = flag.Int("generation", 0, "Upload generation used in "+
		"Firestore collection names.")
	var genreName = flag.String("genre", "", "Restrict the operation to one "+
		"genre.")
	var memprofile = flag.String("memprofile", "", "write memory profile to "+
		"this file")
	flag.Parse()

	corpusConfig := getCorpusConfig()

	if *extractFile != "" {
		log.Printf("main: extracting headwords from %s\n", *extractFile)
		if err := extractDict(*extractFile); err != nil {
			log.Fatalf("main: %v", err)
		}
	} else if *countcorpus {
		log.Println("main: counting the background corpus")
		if err := countCorpus(corpusConfig); err != nil {
			log.Fatalf("main: %v", err)
		}
	} else if *aggregate {
		log.Println("main: aggregating tagged chunks")
		genres, err := loadGenres(*genreName)
		if err != nil {
			log.Fatalf("main: %v", err)
		}
		for _, genre := range genres {
			if err := analysis.AggregateGenre(genre); err != nil {
				log.Fatalf("main: %v", err)
			}
		}
	} else if *report {
		log.Println("main: writing candidate reports")
		genres, err := loadGenres(*genreName)
		if err != nil {
			log.Fatalf("main: %v", err)
		}
		if err := writeReports(genres, *maxRows); err != nil {
			log.Fatalf("main: %v", err)
		}
	} else if *upload {
		if *project == "" {
			log.Fatal("main: -upload requires -project")
		}
		log.Println("main: uploading candidates to Firestore")
		genres, err := loadGenres(*genreName)
		if err != nil {
			log.Fatalf("main: %v", err)
		}
		ctx := context.Background()
		err = uploadCandidates(ctx, *project, *corpusName, *generation, genres)
		if err != nil {
			log.Fatalf("main: %v", err)
		}
	} else {
		if *classifyAll {
			log.Println("main: classifying genres")
		} else {
			log.Println("main: no operation given, classifying all genres")
		}
		ref, err := loadReference()
		if err != nil {
			log.Fatalf("main: %v", err)
		}
		genres, err := loadGenres(*genreName)
		if err != nil {
			log.Fatalf("main: %v", err)
		}
		if err := analysis.ProcessAll(genres, ref); err != nil {
			log.Fatalf("main: %v", err)
		}
	}

	// Memory profiling
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
