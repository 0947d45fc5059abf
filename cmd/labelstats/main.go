package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/labelkit/pkg/labelkit"
	"github.com/cognicore/labelkit/pkg/labelkit/store/sqlite"
)

func main() {
	var (
		input   = flag.String("input", "", "Labeled JSONL record stream (required)")
		csvPath = flag.String("csv", "", "Optional CSV report output path")
		dbPath  = flag.String("db", "", "Optional run archive to list alongside the report")
		runs    = flag.Int("runs", 10, "Archived runs to list with --db")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	ctx := context.Background()

	in, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	pipeline := labelkit.New(labelkit.Options{})
	report, err := pipeline.Stats(ctx, in)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}

	if err := report.WriteText(os.Stdout); err != nil {
		log.Fatalf("render report: %v", err)
	}

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("create csv: %v", err)
		}
		if err := report.WriteCSV(f); err != nil {
			f.Close()
			log.Fatalf("write csv: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close csv: %v", err)
		}
	}

	if *dbPath != "" {
		archive, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()

		archived, err := archive.ListRuns(ctx, *runs)
		if err != nil {
			log.Fatalf("list runs: %v", err)
		}
		fmt.Println("\narchived runs:")
		for _, r := range archived {
			fmt.Printf("  %s  %-8s  %s  %d records, %d labeled\n",
				r.ID, r.Tool, r.StartedAt.Format("2006-01-02 15:04"), r.Records, r.Labeled)
		}
	}
}
