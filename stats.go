package harvest

// BuildStats summarizes a single build run (supplemented from the
// original implementation's end-of-build report, not present in the
// distilled spec's component list): document counts, token volume,
// duplicate detection outcomes, and on-disk index size. Returned by
// Builder.Finalize.
type BuildStats struct {
	// DocumentsProcessed is every record passed to AddDocument,
	// regardless of outcome.
	DocumentsProcessed int
	// EmptyContentCount is documents with no alphanumeric tokens after
	// cleaning (the TokenizationEmpty case, §7).
	EmptyContentCount int
	// TotalTokens is the sum, across all indexed documents, of distinct
	// (term, doc) postings emitted — a proxy for vocabulary volume, not
	// raw word count.
	TotalTokens int
	// AverageTokens is TotalTokens / DocumentsProcessed.
	AverageTokens float64
	// DuplicatesFound is documents whose fingerprint matched an
	// already-admitted fingerprint within the configured threshold.
	DuplicatesFound int
	// DuplicatesSkipped is the subset of DuplicatesFound that were
	// excluded from indexing under SkipDuplicates=true.
	DuplicatesSkipped int
	// IndexBytes is the size in bytes of the final inverted_index.txt.
	IndexBytes int64
	// TermCount is the number of distinct terms in the final index.
	TermCount int
}
