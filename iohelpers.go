package harvest

import (
	"bufio"
	"os"
)

// writeLines opens path and writes render(item) for each item in
// items, in order, buffering writes. Used by spill, merge, and lexicon
// output, all of which share the "one line per sorted key" shape.
func writeLines[T any](path string, items []T, render func(T) string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, item := range items {
		if _, err := w.WriteString(render(item)); err != nil {
			return err
		}
	}
	return w.Flush()
}
