package main

import (
	"flag"
	"log"
	"os"

	"github.com/cognicore/labelkit/internal/listing"
	"github.com/cognicore/labelkit/pkg/labelkit/record"
)

func main() {
	var (
		input  = flag.String("input", "", "HTML listing export (required)")
		output = flag.String("output", "", "Output JSONL record stream (required)")
		lot    = flag.String("lot", "", "Lot code carried onto every extracted record")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *output == "" {
		log.Fatal("--output required")
	}

	in, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer in.Close()

	recs, err := listing.Extract(in, *lot)
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	if err := record.SaveFile(*output, recs); err != nil {
		log.Fatalf("write output: %v", err)
	}

	log.Printf("imported %d candidate tokens from %s", len(recs), *input)
}
