package harvest

import "strings"

// TokenCounts holds the per-stream occurrence counts accumulated for a
// single term within one document (§3). Weight is their sum.
type TokenCounts struct {
	Normal    uint32
	Important uint32
}

// Weight is normal_count + important_count, the value written into a
// posting for this term in this document.
func (c TokenCounts) Weight() uint32 {
	return c.Normal + c.Important
}

// Document is one crawled page carried through a single tokenization
// pass. It is built from an input record, mutated only while its
// tokens are being counted, and discarded once its postings have been
// handed to a Builder.
type Document struct {
	// URL is the cleaned URL (fragment stripped).
	URL string

	// DocID is assigned by the URLMapper when the document is admitted.
	DocID uint32

	// Tokens maps each stemmed term to its accumulated counts across
	// both streams, including n-grams.
	Tokens map[string]*TokenCounts

	// Fingerprint is the 64-bit SimHash computed from Tokens. Zero for
	// a document with no alphanumeric tokens (TokenizationEmpty, §7).
	Fingerprint uint64
}

// NewDocument creates an empty Document for url, stripping any
// fragment before storing it.
func NewDocument(url string) *Document {
	return &Document{
		URL:    CleanURL(url),
		Tokens: make(map[string]*TokenCounts),
	}
}

// CleanURL strips everything from the first '#' onward, per §3/§4.1.
func CleanURL(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i]
	}
	return url
}

// add increments the counts for term in the given stream by delta.
func (d *Document) add(term string, stream Stream, delta uint32) {
	tc, ok := d.Tokens[term]
	if !ok {
		tc = &TokenCounts{}
		d.Tokens[term] = tc
	}
	switch stream {
	case StreamImportant:
		tc.Important += delta
	default:
		tc.Normal += delta
	}
}

// Empty reports whether the document produced no alphanumeric tokens
// at all (the TokenizationEmpty case, §7): the document's URL and
// doc_id are still recorded by the caller, but no postings are
// emitted and its fingerprint is left at zero.
func (d *Document) Empty() bool {
	return len(d.Tokens) == 0
}

// Ingest runs the Analyzer over the document's normal and important
// text streams and populates Tokens per the weighting table in §4.2:
// unigrams/bigrams/trigrams each contribute +1 (normal) or +2
// (important).
func (d *Document) Ingest(a *Analyzer, normalText, importantText string) {
	d.ingestStream(a, normalText, StreamNormal, 1)
	d.ingestStream(a, importantText, StreamImportant, 2)
}

func (d *Document) ingestStream(a *Analyzer, text string, stream Stream, weight uint32) {
	tokens := a.Tokens(text)
	for _, t := range tokens {
		d.add(t, stream, weight)
	}
	bigrams, trigrams := a.Ngrams(tokens)
	for _, b := range bigrams {
		d.add(b, stream, weight)
	}
	for _, t := range trigrams {
		d.add(t, stream, weight)
	}
}
