package harvest

import (
	"bufio"
	"log/slog"
	"os"
)

// partialCursor tracks one open partial segment file's current line.
type partialCursor struct {
	scanner *bufio.Scanner
	file    *os.File
	term    string
	value   string
	done    bool
}

func openCursor(path string) (*partialCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	c := &partialCursor{file: f, scanner: bufio.NewScanner(f)}
	c.scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	c.advance()
	return c, nil
}

// advance reads the next line into the cursor's term/value, or marks
// it done if the file is exhausted.
func (c *partialCursor) advance() {
	if !c.scanner.Scan() {
		c.done = true
		c.term, c.value = "", ""
		return
	}
	line := c.scanner.Text()
	if line == "" {
		c.advance()
		return
	}
	term, value, _ := decodePostingLineRaw(line)
	c.term, c.value = term, value
}

// decodePostingLineRaw splits a line into its term and raw postings
// value without parsing individual postings; mergePartials only needs
// to regroup and re-parse values for terms it is about to emit.
func decodePostingLineRaw(line string) (term, value string, ok bool) {
	for i := 0; i < len(line); i++ {
		if line[i] == ':' {
			return line[:i], line[i+1:], true
		}
	}
	return line, "", false
}

// mergePartials implements §4.6's k-way merge: every partial segment
// is already sorted by term, so repeatedly taking the smallest current
// term across all open partials (via the frontier skip list),
// combining their postings, and advancing those partials produces one
// fully sorted, deduplicated final index. If there are no partials
// (no document produced any postings; Finalize spills whatever is left
// in memory before merging, so a corpus smaller than the spill
// threshold arrives here as one partial), outPath is still written,
// empty. Returns the final file's size in bytes.
func mergePartials(partials []string, outPath string) (int64, error) {
	cursors := make([]*partialCursor, 0, len(partials))
	for _, p := range partials {
		c, err := openCursor(p)
		if err != nil {
			return 0, err
		}
		defer c.file.Close()
		cursors = append(cursors, c)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	fr := newFrontier()
	for i, c := range cursors {
		if !c.done {
			fr.insert(c.term, i)
		}
	}

	for !fr.empty() {
		term, sources, _ := fr.popMin()

		groups := make([][]Posting, 0, len(sources))
		for _, idx := range sources {
			_, postings, malformed := decodePostingLine(term + ":" + cursors[idx].value)
			if malformed {
				slog.Default().Warn("malformed posting entry during merge", "term", term)
			}
			groups = append(groups, postings)
		}
		merged := sumPostings(groups...)
		if _, err := w.WriteString(encodePostingLine(term, merged)); err != nil {
			return 0, err
		}

		for _, idx := range sources {
			cursors[idx].advance()
			if !cursors[idx].done {
				fr.insert(cursors[idx].term, idx)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return 0, err
	}
	info, err := out.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
