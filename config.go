package harvest

import (
	"log/slog"
	"os"
)

// BuildOptions configures a Builder. Construct with DefaultBuildOptions
// and override only the fields that need to change; the zero value is
// not meaningful on its own (SpillThreshold of 0 disables mid-build
// spills, so every posting stays in memory until Finalize).
type BuildOptions struct {
	// IndexDir is where partial segments, the final index, the lexicon,
	// the URL mapping, and the fingerprint store are written.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// SpillThreshold is F: the in-memory segment is flushed to disk
	// every time the admitted document count is a multiple of F.
	SpillThreshold int `json:"spill_threshold" yaml:"spill_threshold"`

	// SimHashThreshold is T: the maximum Hamming distance at which two
	// fingerprints are considered a near-duplicate pair.
	SimHashThreshold int `json:"simhash_threshold" yaml:"simhash_threshold"`

	// SkipDuplicates, when true, excludes near-duplicate documents from
	// indexing (no postings emitted); when false, duplicates are still
	// indexed and only counted.
	SkipDuplicates bool `json:"skip_duplicates" yaml:"skip_duplicates"`

	// Logger receives structured build progress. DefaultBuildOptions sets
	// it to slog.Default(); if nil, a text logger writing to stderr is
	// used. The package never calls slog.SetDefault.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// DefaultBuildOptions returns the spec's defaults: F=15000, T=3,
// skip_duplicates=false.
func DefaultBuildOptions(indexDir string) BuildOptions {
	return BuildOptions{
		IndexDir:         indexDir,
		SpillThreshold:   15000,
		SimHashThreshold: 3,
		SkipDuplicates:   false,
		Logger:           slog.Default(),
	}
}

func (o BuildOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// QueryOptions configures an Engine.
type QueryOptions struct {
	// IndexDir is where inverted_index.txt, lexicon.txt, and
	// url_mapping.txt are loaded from.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// TopK is the maximum number of results Search returns.
	TopK int `json:"top_k" yaml:"top_k"`

	// Logger receives structured query diagnostics (skipped malformed
	// lines, lexicon mismatches).
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// DefaultQueryOptions returns top_k=20, as specified in §4.8.
func DefaultQueryOptions(indexDir string) QueryOptions {
	return QueryOptions{
		IndexDir: indexDir,
		TopK:     20,
		Logger:   slog.Default(),
	}
}

func (o QueryOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
