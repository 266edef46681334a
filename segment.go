package harvest

import (
	"sort"
	"strconv"
	"strings"
)

// Posting is one (doc_id, weight) pair within a term's postings list
// (§3).
type Posting struct {
	DocID  uint32
	Weight uint32
}

// segment is an in-memory `{term -> ordered postings}` accumulator.
// Postings are appended in document-arrival order, not sorted — that
// happens at spill time (§3's "In-memory Index Segment").
type segment struct {
	postings map[string][]Posting
	docs     int
}

func newSegment() *segment {
	return &segment{postings: make(map[string][]Posting)}
}

// add appends one posting for term. Multiple calls for the same term
// within one document would append multiple postings; builder.go
// guards against that by calling add once per term per document with
// the already-summed per-document weight.
func (s *segment) add(term string, docID uint32, weight uint32) {
	s.postings[term] = append(s.postings[term], Posting{DocID: docID, Weight: weight})
}

func (s *segment) empty() bool {
	return len(s.postings) == 0
}

// sortedTerms returns every term currently in the segment, sorted
// ascending — the order partial segments and the final index are
// written in.
func (s *segment) sortedTerms() []string {
	terms := make([]string, 0, len(s.postings))
	for t := range s.postings {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// encodePostingLine renders term and its postings as the shared
// on-disk line format: "term:doc_id:weight,doc_id:weight,...\n".
// Used identically by partial segments and the final index file
// (§3, §6).
func encodePostingLine(term string, postings []Posting) string {
	var b strings.Builder
	b.WriteString(term)
	b.WriteByte(':')
	for i, p := range postings {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(p.DocID), 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(p.Weight), 10))
	}
	b.WriteByte('\n')
	return b.String()
}

// decodePostingLine parses one line (without its trailing newline)
// into a term and its postings. Malformed postings entries are
// skipped rather than aborting the whole line, consistent with §7's
// "malformed lines are skipped with a warning" posture; the caller is
// responsible for logging.
func decodePostingLine(line string) (term string, postings []Posting, malformed bool) {
	term, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", nil, true
	}
	if rest == "" {
		return term, nil, false
	}
	parts := strings.Split(rest, ",")
	postings = make([]Posting, 0, len(parts))
	for _, part := range parts {
		docStr, wStr, ok := strings.Cut(part, ":")
		if !ok {
			malformed = true
			continue
		}
		docID, err1 := strconv.ParseUint(docStr, 10, 32)
		weight, err2 := strconv.ParseUint(wStr, 10, 32)
		if err1 != nil || err2 != nil {
			malformed = true
			continue
		}
		postings = append(postings, Posting{DocID: uint32(docID), Weight: uint32(weight)})
	}
	return term, postings, malformed
}

// docFrequency returns the document frequency for an already-decoded
// postings value string, per §4.7: the comma count plus one, or zero
// for an empty value.
func docFrequency(value string) int {
	if value == "" {
		return 0
	}
	return strings.Count(value, ",") + 1
}

// sumPostings merges postings from multiple sources for the same
// term, summing weights for duplicate doc_ids and returning the result
// sorted by doc_id ascending — the contract of §4.6's merge step.
func sumPostings(groups ...[]Posting) []Posting {
	sums := make(map[uint32]uint32)
	for _, g := range groups {
		for _, p := range g {
			sums[p.DocID] += p.Weight
		}
	}
	out := make([]Posting, 0, len(sums))
	for docID, weight := range sums {
		out = append(out, Posting{DocID: docID, Weight: weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocID < out[j].DocID })
	return out
}
