// Package harvest implements an on-disk inverted index over a corpus of
// crawled HTML pages: an HTML-to-token pipeline, stemmed unigram/bigram/
// trigram posting accumulation with importance weighting, SimHash-based
// near-duplicate suppression, spill-to-disk and external merge of partial
// indexes, a compact term lexicon for O(1) disk seeks, and a tf·idf
// retrieval engine over the on-disk postings.
//
// The package consumes a stream of documents — url, raw HTML, and a
// declared encoding — and produces a directory of index artifacts that a
// Engine can load read-only to answer queries. The web crawler that
// discovers those documents, the storage layer that persists raw crawl
// records, and any HTTP service wrapping Engine.Search are all external
// collaborators; this package only implements the indexing and retrieval
// core.
package harvest
