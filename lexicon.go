package harvest

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LexiconEntry locates one term's postings within the final index file
// (§3, §4.7).
type LexiconEntry struct {
	Offset  int64
	Length  int64
	DocFreq int
}

// Lexicon maps every term in the final index to its on-disk location
// and document frequency, enabling a single seek+read per query term
// instead of scanning the whole index (§4.7).
type Lexicon struct {
	entries map[string]LexiconEntry
	// order preserves the scan order (== term order, since the final
	// index is term-sorted) so contiguity can be verified and so Save
	// writes deterministically.
	order []string
}

// BuildLexicon scans indexPath in binary mode and records, for each
// line, the byte offset of its start, its byte length including the
// terminating newline, and its document frequency (§4.7).
//
// EXAMPLE:
//
//	line 0: "acm:1:2\n"        (8 bytes)  -> offset=0,  length=8, df=1
//	line 1: "gaza:1:3,2:1\n"   (13 bytes) -> offset=8,  length=13, df=2
//
// offset[i+1] == offset[i] + length[i] always holds, since entries are
// built from consecutive line boundaries in one pass.
func BuildLexicon(indexPath string) (*Lexicon, error) {
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotFound, err)
	}
	defer f.Close()

	lex := &Lexicon{entries: make(map[string]LexiconEntry)}
	reader := bufio.NewReader(f)
	var offset int64

	for {
		line, err := reader.ReadString('\n')
		if len(line) == 0 && err != nil {
			break
		}
		length := int64(len(line))
		term, value, _ := decodePostingLineRaw(strings.TrimSuffix(line, "\n"))
		lex.entries[term] = LexiconEntry{
			Offset:  offset,
			Length:  length,
			DocFreq: docFrequency(value),
		}
		lex.order = append(lex.order, term)
		offset += length
		if err != nil {
			break
		}
	}
	return lex, nil
}

// Save writes lexicon.txt: one line per term in scan order,
// "term offset length df" (§4.7, §6).
func (l *Lexicon) Save(path string) error {
	return writeLines(path, l.order, func(term string) string {
		e := l.entries[term]
		return fmt.Sprintf("%s %d %d %d\n", term, e.Offset, e.Length, e.DocFreq)
	})
}

// LoadLexicon reads a lexicon.txt file written by Save.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconNotFound, err)
	}
	defer f.Close()

	lex := &Lexicon{entries: make(map[string]LexiconEntry)}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}
		offset, err1 := strconv.ParseInt(fields[1], 10, 64)
		length, err2 := strconv.ParseInt(fields[2], 10, 64)
		df, err3 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		lex.entries[fields[0]] = LexiconEntry{Offset: offset, Length: length, DocFreq: df}
		lex.order = append(lex.order, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconNotFound, err)
	}
	return lex, nil
}

// Lookup returns term's lexicon entry, if present.
func (l *Lexicon) Lookup(term string) (LexiconEntry, bool) {
	e, ok := l.entries[term]
	return e, ok
}

// Len returns the number of distinct terms in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// ReadPostings seeks to term's offset in the final index file, reads
// exactly its length in bytes, and decodes the postings list. Returns
// ErrLexiconMismatch if the read bytes don't start with "term:" and
// end with a newline — a corrupted or stale lexicon entry — in which
// case the caller should treat the term as contributing zero rather
// than aborting the query (§7).
func ReadPostings(indexFile *os.File, term string, e LexiconEntry) ([]Posting, error) {
	buf := make([]byte, e.Length)
	if _, err := indexFile.ReadAt(buf, e.Offset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexiconMismatch, err)
	}
	line := string(buf)
	if !strings.HasSuffix(line, "\n") || !strings.HasPrefix(line, term+":") {
		return nil, ErrLexiconMismatch
	}
	_, postings, malformed := decodePostingLine(strings.TrimSuffix(line, "\n"))
	if malformed {
		return postings, ErrLexiconMismatch
	}
	return postings, nil
}
