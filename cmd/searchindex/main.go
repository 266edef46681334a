// Command searchindex queries a finalized inverted index (§6) and, via
// its "serve" subcommand, demonstrates wrapping the retrieval engine in
// a minimal HTTP handler. Neither is a production service — both are
// thin drivers over package harvest.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

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
	var indexDir string
	var topK int

	root := &cobra.Command{
		Use:   "searchindex",
		Short: "Query a finalized inverted index",
	}
	root.PersistentFlags().StringVar(&indexDir, "index-dir", "index", "directory holding index artifacts")
	root.PersistentFlags().IntVar(&topK, "top-k", 20, "maximum results to return")

	root.AddCommand(newQueryCmd(&indexDir, &topK))
	root.AddCommand(newServeCmd(&indexDir, &topK))
	return root
}

func newQueryCmd(indexDir *string, topK *int) *cobra.Command {
	return &cobra.Command{
		Use:   "query <terms...>",
		Short: "Run a single query and print ranked URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := harvest.NewEngine(harvest.QueryOptions{
				IndexDir: *indexDir,
				TopK:     *topK,
				Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
			})
			if err != nil {
				return err
			}
			defer engine.Close()

			query := joinArgs(args)
			start := time.Now()
			results, err := engine.Search(query, *topK)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			for _, r := range results {
				fmt.Printf("%.4f\t%s\n", r.Score, r.URL)
			}
			fmt.Fprintf(os.Stderr, "results=%d search_time_ms=%d\n", len(results), elapsed.Milliseconds())
			return nil
		},
	}
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

// searchResponse is the HTTP wrapper's JSON body shape (§6).
type searchResponse struct {
	Query        string   `json:"query"`
	ResultsCount int      `json:"results_count"`
	Results      []string `json:"results"`
	SearchTimeMs int64    `json:"search_time_ms"`
}

func newServeCmd(indexDir *string, topK *int) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /search?q=<query> over HTTP (demonstration wrapper, not a production service)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			engine, err := harvest.NewEngine(harvest.QueryOptions{
				IndexDir: *indexDir,
				TopK:     *topK,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			defer engine.Close()

			mux := http.NewServeMux()
			mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query().Get("q")
				start := time.Now()
				results, err := engine.Search(q, *topK)
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				urls := make([]string, len(results))
				for i, res := range results {
					urls[i] = res.URL
				}
				resp := searchResponse{
					Query:        q,
					ResultsCount: len(urls),
					Results:      urls,
					SearchTimeMs: time.Since(start).Milliseconds(),
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(resp)
			})

			logger.Info("serving", "addr", addr)
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
