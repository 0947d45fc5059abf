package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/cognicore/labelkit/pkg/labelkit/store/sqlite"
)

// First-run setup: creates the working directory layout and the run
// archive schema so the labeling tools have somewhere to read and write.
func main() {
	var (
		dataDir = flag.String("data-dir", "data", "Working directory for record streams and the archive")
	)
	flag.Parse()

	for _, sub := range []string{"incoming", "labeled", "reports"} {
		dir := filepath.Join(*dataDir, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create %s: %v", dir, err)
		}
	}

	ctx := context.Background()
	dbPath := filepath.Join(*dataDir, "archive.db")
	archive, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		log.Fatalf("initialize archive %s: %v", dbPath, err)
	}
	if err := archive.Close(); err != nil {
		log.Fatalf("close archive: %v", err)
	}

	log.Printf("bootstrapped %s (incoming/, labeled/, reports/, archive.db)", *dataDir)
}
