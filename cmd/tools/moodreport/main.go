// moodreport summarizes the append-only mood log from the command line.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/konantech/hr-assistant/backend/internal/config"
	"github.com/konantech/hr-assistant/backend/internal/store/moodlog"
)

func main() {
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] could not load .env, using system environment variables: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	path := flag.String("log", cfg.MoodLog.Path, "mood log file path")
	last := flag.Int("last", 10, "number of recent entries to print")
	flag.Parse()

	store := moodlog.NewStore(*path)
	entries, err := store.Entries()
	if err != nil {
		log.Fatalf("failed to read mood log: %v", err)
	}

	if len(entries) == 0 {
		fmt.Printf("%s: no mood entries recorded yet\n", *path)
		return
	}

	min, max, sum := entries[0].Score, entries[0].Score, 0
	for _, entry := range entries {
		if entry.Score < min {
			min = entry.Score
		}
		if entry.Score > max {
			max = entry.Score
		}
		sum += entry.Score
	}

	fmt.Printf("mood log: %s\n", *path)
	fmt.Printf("entries:  %d\n", len(entries))
	fmt.Printf("average:  %.1f\n", float64(sum)/float64(len(entries)))
	fmt.Printf("min/max:  %d/%d\n", min, max)

	start := len(entries) - *last
	if start < 0 {
		start = 0
	}
	fmt.Printf("\nlast %d entries:\n", len(entries)-start)
	for _, entry := range entries[start:] {
		fmt.Printf("  %s  %2d/10\n", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Score)
	}
}
