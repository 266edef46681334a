package harvest

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Result is one ranked hit returned by Engine.Search.
type Result struct {
	URL   string
	DocID uint32
	Score float64
}

// Engine answers queries against a finalized index directory (§4.8).
// It opens the index file once and keeps it open for the lifetime of
// the Engine; all three artifacts (index, lexicon, URL map) are
// treated as immutable, write-once/read-many — no locking is needed.
type Engine struct {
	opts     QueryOptions
	log      *slog.Logger
	analyzer *Analyzer

	indexFile *os.File
	lexicon   *Lexicon
	urls      *URLMapper
	n         int
}

// NewEngine loads the lexicon and URL map into memory and opens the
// final index file for reads. Returns ErrIndexNotFound,
// ErrLexiconNotFound, or ErrURLMappingNotFound if any artifact is
// missing — the engine refuses to serve queries in that state (§4.8
// failure semantics).
func NewEngine(opts QueryOptions) (*Engine, error) {
	indexPath := filepath.Join(opts.IndexDir, "inverted_index.txt")
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotFound, err)
	}

	lex, err := LoadLexicon(filepath.Join(opts.IndexDir, "lexicon.txt"))
	if err != nil {
		f.Close()
		return nil, err
	}

	urls, err := LoadURLMapper(filepath.Join(opts.IndexDir, "url_mapping.txt"))
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Engine{
		opts:      opts,
		log:       opts.logger(),
		analyzer:  NewAnalyzer(),
		indexFile: f,
		lexicon:   lex,
		urls:      urls,
		n:         urls.Len(),
	}, nil
}

// Close releases the open index file handle.
func (e *Engine) Close() error {
	return e.indexFile.Close()
}

// Search implements §4.8's per-query processing. An empty query, or
// one that stems to zero tokens, returns an empty result and no error
// (the QueryEmpty case, §7). topK <= 0 falls back to
// QueryOptions.TopK.
//
// EXAMPLE:
//
//	index contains: gaza -> {1:3}, report -> {1:1}, gaza_report -> {1:2}
//	Search("gaza report", 5) finds the bigram gaza_report in the
//	lexicon, so the candidate set is the union of gaza, report, and
//	gaza_report postings; doc 1's score sums all three contributions,
//	the bigram's scaled by 1.5.
func (e *Engine) Search(query string, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = e.opts.TopK
	}

	parts, explicitAnd := splitLiteralAND(query)
	effective := strings.Join(parts, " ")

	tokens := e.analyzer.Tokens(effective)
	if len(tokens) == 0 {
		return nil, nil
	}
	bigrams, trigrams := e.analyzer.Ngrams(tokens)

	firstSeen := make(map[uint32]int)
	scores := make(map[uint32]float64)

	var unigramSets, ngramSets []postingSet

	// lookup records term's postings for scoring and, for unigrams,
	// always appends a postingSet (empty if the term isn't in the
	// lexicon) — conjunctive intersection (§4.8 step 4) must see every
	// query term, including misses, so a missing term correctly empties
	// the intersection rather than being silently ignored.
	lookup := func(term string, isNgram bool) {
		entry, ok := e.lexicon.Lookup(term)
		if !ok {
			if !isNgram {
				unigramSets = append(unigramSets, newPostingSet(term, nil, false))
			}
			return
		}
		postings, err := ReadPostings(e.indexFile, term, entry)
		if err != nil {
			e.log.Warn("lexicon mismatch", "term", term, "error", err)
		}
		ps := newPostingSet(term, postings, isNgram)
		if isNgram {
			ngramSets = append(ngramSets, ps)
		} else {
			unigramSets = append(unigramSets, ps)
		}

		idf := e.idf(entry.DocFreq)
		boost := 1.0
		if isNgram {
			boost = 1.5
		}
		for _, p := range postings {
			if _, seen := firstSeen[p.DocID]; !seen {
				firstSeen[p.DocID] = len(firstSeen)
			}
			scores[p.DocID] += float64(p.Weight) * idf * boost
		}
	}

	for _, t := range tokens {
		lookup(t, false)
	}
	for _, b := range bigrams {
		lookup(b, true)
	}
	for _, t := range trigrams {
		lookup(t, true)
	}

	candidates := candidateSet(tokens, unigramSets, ngramSets, explicitAnd)

	results := make([]Result, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		docID := it.Next()
		url, ok := e.urls.URLFor(docID)
		if !ok {
			continue
		}
		results = append(results, Result{URL: url, DocID: docID, Score: scores[docID]})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return firstSeen[results[i].DocID] < firstSeen[results[j].DocID]
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// candidateSet implements §4.8 step 4: n-gram union takes priority
// over conjunctive intersection unless the query used an explicit AND,
// in which case conjunction is forced regardless of n-gram presence.
func candidateSet(tokens []string, unigramSets, ngramSets []postingSet, explicitAnd bool) *roaring.Bitmap {
	switch {
	case explicitAnd:
		return intersectCandidates(unigramSets)
	case len(ngramSets) > 0:
		return unionCandidates(append(append([]postingSet{}, unigramSets...), ngramSets...))
	case len(tokens) >= 2:
		return intersectCandidates(unigramSets)
	default:
		return unionCandidates(unigramSets)
	}
}

func (e *Engine) idf(df int) float64 {
	if df <= 0 {
		return 0
	}
	return math.Log(float64(e.n) / float64(df))
}

// splitLiteralAND splits query on the literal uppercase token "AND",
// matching the original implementation's explicit-conjunction handling
// (§4.8's "Explicit AND" note). Returns the non-"AND" segments and
// whether any AND keyword was found.
func splitLiteralAND(query string) (parts []string, explicit bool) {
	fields := strings.Fields(query)
	var current []string
	for _, f := range fields {
		if f == "AND" {
			parts = append(parts, strings.Join(current, " "))
			current = nil
			explicit = true
			continue
		}
		current = append(current, f)
	}
	parts = append(parts, strings.Join(current, " "))
	return parts, explicit
}
