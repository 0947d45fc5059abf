package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/labelkit/pkg/labelkit/config"
	"github.com/cognicore/labelkit/pkg/labelkit/record"
	"github.com/cognicore/labelkit/pkg/labelkit/review"
)

func main() {
	var (
		input  = flag.String("input", "", "Input JSONL record stream (required)")
		output = flag.String("output", "", "Output JSONL record stream (required)")
		labels = flag.String("labels", "", "Optional YAML manual vocabulary override")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *output == "" {
		log.Fatal("--output required")
	}

	loader := config.Loader{LabelsPath: *labels}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
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

	sess := review.NewSession(review.NewScannerSource(os.Stdin), os.Stdout)
	sess.Vocab = components.Manual

	fmt.Println("labelkit review — confirm or correct each record's label")
	fmt.Println("(invalid input is stored as \"none\")")

	sum, err := sess.Run(context.Background(), record.NewReader(in), record.NewWriter(out))
	if err != nil {
		// Records already confirmed are committed to the output file.
		log.Fatalf("review aborted after %d records: %v", sum.Records, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("close output: %v", err)
	}

	log.Printf("confirmed %d records (%d invalid inputs downgraded)", sum.Records, sum.Downgraded)
}
