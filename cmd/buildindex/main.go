// Command buildindex builds an on-disk inverted index from a stream of
// JSON document records (§6).
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/harvestidx/harvest"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		indexDir       string
		spillThreshold int
		simhashThresh  int
		skipDuplicates bool
	)

	cmd := &cobra.Command{
		Use:   "buildindex [records.jsonl]",
		Short: "Build an inverted index from newline-delimited JSON document records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			if err := os.MkdirAll(indexDir, 0o755); err != nil {
				return err
			}

			opts := harvest.DefaultBuildOptions(indexDir)
			opts.SpillThreshold = spillThreshold
			opts.SimHashThreshold = simhashThresh
			opts.SkipDuplicates = skipDuplicates
			opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

			builder := harvest.NewBuilder(opts)

			scanner := bufio.NewScanner(r)
			scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
			for scanner.Scan() {
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				var rec harvest.Record
				if err := json.Unmarshal(line, &rec); err != nil {
					opts.Logger.Warn("skipping unreadable record", "error", err)
					continue
				}
				if _, err := builder.AddDocument(rec); err != nil {
					return fmt.Errorf("%w", err)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			stats, err := builder.Finalize()
			if err != nil {
				return err
			}
			fmt.Printf("documents=%d empty=%d duplicates_found=%d duplicates_skipped=%d terms=%d index_bytes=%d\n",
				stats.DocumentsProcessed, stats.EmptyContentCount, stats.DuplicatesFound,
				stats.DuplicatesSkipped, stats.TermCount, stats.IndexBytes)
			return nil
		},
	}

	cmd.Flags().StringVar(&indexDir, "index-dir", "index", "directory to write index artifacts into")
	cmd.Flags().IntVar(&spillThreshold, "spill-threshold", 15000, "documents between in-memory spills (F)")
	cmd.Flags().IntVar(&simhashThresh, "simhash-threshold", 3, "Hamming distance threshold for near-duplicates (T)")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "exclude near-duplicates from indexing")

	return cmd
}
