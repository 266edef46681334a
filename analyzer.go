package harvest

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Text analysis turns a cleaned text stream into the stemmed unigrams,
// bigrams, and trigrams that get accumulated into postings. The same
// pipeline runs at index time (once per document, per stream) and at
// query time (once per query) — a single Analyzer is the one code path
// both sides call, so indexing and retrieval can never drift apart on
// what counts as "the same term".
//
// PIPELINE:
// ---------
//  1. Tokenize   → split on anything that isn't a letter or digit
//  2. Smart-stem → lowercase + Porter-family stem, with two exceptions:
//     - tokens under 3 characters are kept as-is
//     - 2-3 character ALL-CAPS alphabetic tokens (acronyms) are kept,
//       lowercased but unstemmed
//  3. N-grams    → join adjacent stemmed tokens with "_" for bigrams
//     and trigrams
//
// EXAMPLE:
// --------
// Input:  "Machine Learning and the ACM"
// Step 1: ["Machine", "Learning", "and", "the", "ACM"]
// Step 2: ["machin", "learn", "and", "the", "acm"]   (ACM preserved, lowercased)
// Step 3: unigrams as above, plus bigrams "machin_learn", "learn_and", ...
// ═══════════════════════════════════════════════════════════════════════════════

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// Stream identifies which of a document's two text streams a token came
// from. Normal and important streams are weighted differently (§4.2).
type Stream int

const (
	// StreamNormal is all visible text.
	StreamNormal Stream = iota
	// StreamImportant is the concatenation of title, h1-h3, and b/strong
	// content, in document order.
	StreamImportant
)

// Analyzer implements the one tokenization/stemming/n-gram capability
// shared by document indexing and query processing (REDESIGN: the
// source had two hand-maintained code paths for this — one for
// documents, one for queries — that had to be kept in sync by hand.
// Analyzer removes that duplication by construction).
type Analyzer struct{}

// NewAnalyzer returns the default Analyzer. It carries no state and no
// configuration knobs: stemming, acronym preservation, and stop-word
// handling (there is none — §4.2 requires every alphanumeric token be
// kept) are fixed by the spec, not made configurable, because indexing
// and querying must always apply them identically.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Tokens runs the full pipeline over a text stream and returns the
// stemmed unigrams in order of appearance. Call Ngrams on the result to
// get bigrams and trigrams for the same stream.
func (a *Analyzer) Tokens(text string) []string {
	raw := tokenize(text)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		lower := strings.ToLower(tok)
		if !isAlphanumeric(lower) {
			continue
		}
		out = append(out, a.SmartStem(tok, lower))
	}
	return out
}

// SmartStem applies the preservation rule from §4.2 before falling back
// to Porter-family stemming.
//
//   - original, length <= 3, all-uppercase, all-alphabetic -> lowercased, unstemmed (acronym)
//   - lower, length < 3 -> returned as-is (too short to stem usefully)
//   - otherwise -> snowball's English (Porter2) stem of lower
//
// original is the token exactly as it appeared in the source text; lower
// is its lowercased form. Both are needed because acronym detection
// depends on the *original* casing.
func (a *Analyzer) SmartStem(original, lower string) string {
	if len(original) <= 3 && isAllUpperAlpha(original) {
		return strings.ToLower(original)
	}
	if len(lower) < 3 {
		return lower
	}
	return snowballeng.Stem(lower, false)
}

// Ngrams joins adjacent stemmed tokens into bigrams and trigrams,
// returning them in the order they occur. A stream with fewer than two
// tokens yields no bigrams; fewer than three yields no trigrams.
func (a *Analyzer) Ngrams(tokens []string) (bigrams, trigrams []string) {
	if len(tokens) >= 2 {
		bigrams = make([]string, 0, len(tokens)-1)
		for i := 0; i < len(tokens)-1; i++ {
			bigrams = append(bigrams, tokens[i]+"_"+tokens[i+1])
		}
	}
	if len(tokens) >= 3 {
		trigrams = make([]string, 0, len(tokens)-2)
		for i := 0; i < len(tokens)-2; i++ {
			trigrams = append(trigrams, tokens[i]+"_"+tokens[i+1]+"_"+tokens[i+2])
		}
	}
	return bigrams, trigrams
}

// tokenize splits text on any rune that is not a letter or a digit.
// Unicode-aware via strings.FieldsFunc, same approach as the teacher's
// word splitter.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// isAlphanumeric reports whether every rune in s is a letter or digit.
// s is expected to already be lowercased; tokenize already stripped
// punctuation, but a token made entirely of non-ASCII digits/letters
// from mixed scripts still needs this check for consistency with §4.2's
// "keep only alphanumeric tokens" rule.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func isAllUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
