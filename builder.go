package harvest

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
)

// Record is one input document: a URL, its raw HTML content, and an
// optional declared encoding (§6). The encoding field is accepted for
// forward compatibility with non-UTF-8 crawls but this package only
// processes already-decoded UTF-8 text; re-encoding is a crawler
// concern.
type Record struct {
	URL      string `json:"url"`
	Content  string `json:"content"`
	Encoding string `json:"encoding,omitempty"`
}

// Builder accumulates postings across a stream of documents, spilling
// to disk every SpillThreshold documents, and produces the final index
// artifacts on Finalize (§4.5).
type Builder struct {
	opts BuildOptions
	log  *slog.Logger
	runID string

	analyzer *Analyzer
	urls     *URLMapper
	dedup    *NearDuplicateDetector

	current *segment
	partials []string

	stats BuildStats
}

// NewBuilder constructs a Builder using opts. It touches nothing on
// disk; IndexDir is not created by the Builder and must exist before
// the first spill or Finalize writes into it.
func NewBuilder(opts BuildOptions) *Builder {
	return &Builder{
		opts:     opts,
		log:      opts.logger(),
		runID:    uuid.NewString(),
		analyzer: NewAnalyzer(),
		urls:     NewURLMapper(),
		dedup:    NewNearDuplicateDetector(opts.SimHashThreshold),
		current:  newSegment(),
	}
}

// AddDocument implements §4.5's add_document contract. rec.Content is
// parsed to (normal, important) text, tokenized into doc's token
// table, and checked for near-duplication before its postings are
// admitted. Returns true if the document was indexed, false if it was
// recorded (doc_id assigned) but skipped under the duplicate policy.
func (b *Builder) AddDocument(rec Record) (bool, error) {
	doc := NewDocument(rec.URL)
	doc.DocID = b.urls.IDFor(doc.URL)

	normal, important := ParseHTML(rec.Content)
	doc.Ingest(b.analyzer, normal, important)

	b.stats.DocumentsProcessed++
	if doc.Empty() {
		b.stats.EmptyContentCount++
		b.log.Warn("document produced no tokens", "url", doc.URL, "run_id", b.runID)
		return true, nil
	}

	doc.Fingerprint = Fingerprint(doc.Tokens)
	isDup, matches := b.dedup.IsNearDuplicate(doc.Fingerprint)

	if isDup {
		b.stats.DuplicatesFound++
		b.log.Info("near-duplicate detected", "url", doc.URL, "matches", matches, "run_id", b.runID)
		if b.opts.SkipDuplicates {
			b.stats.DuplicatesSkipped++
			return false, nil
		}
	}
	b.dedup.Add(doc.DocID, doc.Fingerprint)

	for term, counts := range doc.Tokens {
		b.current.add(term, doc.DocID, counts.Weight())
		b.stats.TotalTokens++
	}
	b.current.docs++

	if b.opts.SpillThreshold > 0 && b.current.docs%b.opts.SpillThreshold == 0 {
		if err := b.spill(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// spill writes the current in-memory segment to
// partial_index_<k>.txt, sorted by term ascending, then clears it
// (§4.5).
func (b *Builder) spill() error {
	if b.current.empty() {
		return nil
	}
	path := filepath.Join(b.opts.IndexDir, fmt.Sprintf("partial_index_%d.txt", len(b.partials)))
	if err := writeSegmentFile(path, b.current); err != nil {
		return fmt.Errorf("%w: %v", ErrSpillIO, err)
	}
	b.log.Info("spilled partial segment", "path", path, "terms", len(b.current.postings), "run_id", b.runID)
	b.partials = append(b.partials, path)
	b.current = newSegment()
	return nil
}

// Finalize flushes any remaining in-memory postings, runs the external
// merge, and writes the URL map and fingerprint store. Returns build
// statistics for the whole run.
func (b *Builder) Finalize() (BuildStats, error) {
	if !b.current.empty() {
		if err := b.spill(); err != nil {
			return b.stats, err
		}
	}

	indexPath := filepath.Join(b.opts.IndexDir, "inverted_index.txt")
	indexBytes, err := mergePartials(b.partials, indexPath)
	if err != nil {
		return b.stats, fmt.Errorf("%w: %v", ErrMergeIO, err)
	}
	b.stats.IndexBytes = indexBytes

	if err := b.urls.Save(filepath.Join(b.opts.IndexDir, "url_mapping.txt")); err != nil {
		return b.stats, err
	}
	if err := b.dedup.Save(filepath.Join(b.opts.IndexDir, "fingerprints.txt")); err != nil {
		return b.stats, err
	}

	lex, err := BuildLexicon(indexPath)
	if err != nil {
		return b.stats, err
	}
	if err := lex.Save(filepath.Join(b.opts.IndexDir, "lexicon.txt")); err != nil {
		return b.stats, err
	}

	b.stats.TermCount = len(lex.entries)
	if b.stats.DocumentsProcessed > 0 {
		b.stats.AverageTokens = float64(b.stats.TotalTokens) / float64(b.stats.DocumentsProcessed)
	}

	b.log.Info("build finalized",
		"run_id", b.runID,
		"documents", b.stats.DocumentsProcessed,
		"empty_content", b.stats.EmptyContentCount,
		"duplicates_found", b.stats.DuplicatesFound,
		"duplicates_skipped", b.stats.DuplicatesSkipped,
		"index_bytes", b.stats.IndexBytes,
		"terms", b.stats.TermCount,
	)
	return b.stats, nil
}

// writeSegmentFile writes seg's postings, one line per term in sorted
// order, using the shared posting-line encoding (§3).
func writeSegmentFile(path string, seg *segment) error {
	return writeLines(path, seg.sortedTerms(), func(term string) string {
		return encodePostingLine(term, seg.postings[term])
	})
}
