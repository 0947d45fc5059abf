package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/cognicore/labelkit/pkg/labelkit"
	"github.com/cognicore/labelkit/pkg/labelkit/config"
	"github.com/cognicore/labelkit/pkg/labelkit/store"
	"github.com/cognicore/labelkit/pkg/labelkit/store/sqlite"
)

func main() {
	var (
		input  = flag.String("input", "", "Input JSONL record stream (required)")
		output = flag.String("output", "", "Output JSONL record stream (required)")
		rules  = flag.String("rules", "", "Optional YAML rule file (built-in rules when empty)")
		dbPath = flag.String("db", "", "Optional run archive database")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *output == "" {
		log.Fatal("--output required")
	}

	ctx := context.Background()

	loader := config.Loader{RulesPath: *rules}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var archive store.Store
	if *dbPath != "" {
		archive, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
	}

	in, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer out.Close()

	pipeline := labelkit.New(labelkit.Options{
		Engine:  components.Engine,
		Archive: archive,
	})

	sum, err := pipeline.Prelabel(ctx, in, out)
	if err != nil {
		log.Fatalf("prelabel: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("close output: %v", err)
	}

	log.Printf("run %s: %d records, %d matched, %d labeled", sum.RunID, sum.Records, sum.Matched, sum.Labeled)
}
