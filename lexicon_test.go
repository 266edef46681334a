package harvest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLexiconContiguity(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "inverted_index.txt")
	content := "acm:1:2\ngaza:1:3,2:1\nreport:1:1\n"
	if err := os.WriteFile(indexPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	lex, err := BuildLexicon(indexPath)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}

	terms := []string{"acm", "gaza", "report"}
	for i := 0; i < len(terms)-1; i++ {
		cur, ok := lex.Lookup(terms[i])
		if !ok {
			t.Fatalf("missing lexicon entry for %q", terms[i])
		}
		next, ok := lex.Lookup(terms[i+1])
		if !ok {
			t.Fatalf("missing lexicon entry for %q", terms[i+1])
		}
		if cur.Offset+cur.Length != next.Offset {
			t.Errorf("contiguity broken: %q ends at %d, %q starts at %d",
				terms[i], cur.Offset+cur.Length, terms[i+1], next.Offset)
		}
	}

	gaza, _ := lex.Lookup("gaza")
	if gaza.DocFreq != 2 {
		t.Errorf("gaza DocFreq = %d, want 2", gaza.DocFreq)
	}
	report, _ := lex.Lookup("report")
	if report.DocFreq != 1 {
		t.Errorf("report DocFreq = %d, want 1", report.DocFreq)
	}
}

func TestLexiconSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "inverted_index.txt")
	os.WriteFile(indexPath, []byte("cat:1:1\ndog:2:3\n"), 0o644)

	lex, err := BuildLexicon(indexPath)
	if err != nil {
		t.Fatalf("BuildLexicon: %v", err)
	}
	lexPath := filepath.Join(dir, "lexicon.txt")
	if err := lex.Save(lexPath); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadLexicon(lexPath)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if loaded.Len() != lex.Len() {
		t.Errorf("loaded.Len() = %d, want %d", loaded.Len(), lex.Len())
	}
	for _, term := range []string{"cat", "dog"} {
		want, _ := lex.Lookup(term)
		got, ok := loaded.Lookup(term)
		if !ok || got != want {
			t.Errorf("loaded entry for %q = %+v, want %+v", term, got, want)
		}
	}
}

func TestReadPostingsDetectsMismatch(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "inverted_index.txt")
	os.WriteFile(indexPath, []byte("cat:1:1\n"), 0o644)

	f, err := os.Open(indexPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	_, err = ReadPostings(f, "dog", LexiconEntry{Offset: 0, Length: 8, DocFreq: 1})
	if err == nil {
		t.Error("expected ErrLexiconMismatch for a term that doesn't match the bytes at offset")
	}
}
