package harvest

import "errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is rather than string matching.

// ErrParse identifies an input record whose HTML cannot be read at
// all (not merely malformed — a tolerant parser handles malformed HTML
// by design). ParseHTML does not return it: on a parser failure it
// yields empty text streams instead.
var ErrParse = errors.New("harvest: unreadable document")

// ErrSpillIO is returned when writing a partial segment to disk fails.
// Partials already written remain valid; the build may be retried.
var ErrSpillIO = errors.New("harvest: spill write failed")

// ErrMergeIO is returned when the external merge fails to read a
// partial segment or write the final index file.
var ErrMergeIO = errors.New("harvest: merge failed")

// ErrLexiconMismatch is returned when a lexicon-directed read of the
// final index file does not line up with the expected term: the bytes
// at offset/length do not end in a newline, or the leading term does
// not match. The affected term contributes zero to the query it was
// read for; it does not abort the query.
var ErrLexiconMismatch = errors.New("harvest: lexicon offset mismatch")

// ErrQueryEmpty is returned by callers that require a non-empty token
// set; Engine.Search itself does not return it — an empty token query
// simply yields an empty result, per §7.
var ErrQueryEmpty = errors.New("harvest: query has no usable tokens")

// ErrIndexNotFound is returned when the final index file is missing at
// engine startup.
var ErrIndexNotFound = errors.New("harvest: inverted index file not found")

// ErrLexiconNotFound is returned when the lexicon file is missing at
// engine startup.
var ErrLexiconNotFound = errors.New("harvest: lexicon file not found")

// ErrURLMappingNotFound is returned when the URL mapping file is
// missing at engine startup.
var ErrURLMappingNotFound = errors.New("harvest: url mapping file not found")
