// newswatch-archive relocates aged records from the primary news store
// into an archive file sharing the same schema. Invocation is external;
// the tool performs a single pass and exits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pevans/newswatch/archive"
	"github.com/pevans/newswatch/news"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	storePath := flag.String("store", getEnv("NEWSWATCH_STORE", "news.json"),
		"path to the primary news store file")
	archivePath := flag.String("archive", getEnv("NEWSWATCH_ARCHIVE", "news-archive.json"),
		"path to the archive store file")
	days := flag.Int("days", 90, "archive records older than this many days")
	flag.Parse()

	if *days < 1 {
		fmt.Fprintln(os.Stderr, "Error: -days must be at least 1")
		os.Exit(1)
	}

	cutoff := time.Now().AddDate(0, 0, -*days)
	result, err := archive.Run(news.NewStore(*storePath), news.NewStore(*archivePath), cutoff)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Archive completed:")
	fmt.Printf("  Records moved:   %d\n", result.Moved-result.Skipped)
	fmt.Printf("  Records kept:    %d\n", result.Kept)
	fmt.Printf("  Already archived: %d\n", result.Skipped)
}
