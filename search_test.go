package harvest

import "testing"

func TestSearchNgramBoostRanksPhraseHigher(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(DefaultBuildOptions(dir))

	// A: "machine learning" appears together in a heading (important
	// stream), so it earns the bigram's 1.5x boost.
	if _, err := b.AddDocument(Record{
		URL:     "http://e.com/a",
		Content: `<html><body><h1>Machine Learning</h1></body></html>`,
	}); err != nil {
		t.Fatalf("AddDocument a: %v", err)
	}
	// B: "machine" and "learning" both occur, but far apart, never
	// adjacent, so no machine_learning bigram is ever formed for B.
	if _, err := b.AddDocument(Record{
		URL:     "http://e.com/b",
		Content: `<html><body><p>machine parts and tools</p><p>learning about history</p></body></html>`,
	}); err != nil {
		t.Fatalf("AddDocument b: %v", err)
	}

	if _, err := b.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	engine, err := NewEngine(DefaultQueryOptions(dir))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer engine.Close()

	results, err := engine.Search("machine learning", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("expected both documents to match on individual terms, got %d", len(results))
	}
	if results[0].URL != "http://e.com/a" {
		t.Errorf("expected http://e.com/a (bigram boost) ranked first, got %s", results[0].URL)
	}
}

func TestSearchEmptyQuerySafety(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(DefaultBuildOptions(dir))
	if _, err := b.AddDocument(Record{URL: "http://e.com/a", Content: "<p>hello world</p>"}); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if _, err := b.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	engine, err := NewEngine(DefaultQueryOptions(dir))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer engine.Close()

	results, err := engine.Search("   ", 10)
	if err != nil {
		t.Fatalf("Search(empty) returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search(empty) = %v, want empty result", results)
	}
}

func TestSearchMissingArtifactsRefusesToServe(t *testing.T) {
	dir := t.TempDir()
	_, err := NewEngine(DefaultQueryOptions(dir))
	if err == nil {
		t.Error("expected an initialization error when index artifacts are missing")
	}
}

func TestSplitLiteralAND(t *testing.T) {
	parts, explicit := splitLiteralAND("cats AND dogs")
	if !explicit {
		t.Error("expected explicit AND to be detected")
	}
	if len(parts) != 2 || parts[0] != "cats" || parts[1] != "dogs" {
		t.Errorf("parts = %v, want [\"cats\" \"dogs\"]", parts)
	}

	parts, explicit = splitLiteralAND("cats dogs")
	if explicit {
		t.Error("expected no explicit AND for a plain multi-word query")
	}
	if len(parts) != 1 || parts[0] != "cats dogs" {
		t.Errorf("parts = %v, want [\"cats dogs\"]", parts)
	}
}
