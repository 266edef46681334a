package harvest

import "testing"

func TestParseHTMLEmptyInput(t *testing.T) {
	normal, important := ParseHTML("   \n\t  ")
	if normal != "" || important != "" {
		t.Errorf("ParseHTML(whitespace) = (%q, %q), want (\"\", \"\")", normal, important)
	}
}

func TestParseHTMLExtractsImportantStream(t *testing.T) {
	html := `<html><title>Gaza report</title><p>Gaza is in the news.</p></html>`
	normal, important := ParseHTML(html)

	if important != "Gaza report" {
		t.Errorf("important = %q, want %q", important, "Gaza report")
	}
	if normal != "Gaza report Gaza is in the news." {
		t.Errorf("normal = %q, want %q", normal, "Gaza report Gaza is in the news.")
	}
}

func TestParseHTMLRemovesScriptAndStyle(t *testing.T) {
	html := `<html><body><script>evil()</script><style>.x{}</style><p>hello world</p></body></html>`
	normal, _ := ParseHTML(html)
	if normal != "hello world" {
		t.Errorf("normal = %q, want %q (script/style removed)", normal, "hello world")
	}
}

func TestParseHTMLImportantIncludesHeadingsAndBold(t *testing.T) {
	html := `<html><body><h2>Breaking</h2><b>urgent</b><p>filler text</p></body></html>`
	_, important := ParseHTML(html)
	if important != "Breaking urgent" {
		t.Errorf("important = %q, want %q", important, "Breaking urgent")
	}
}

func TestParseHTMLCollapsesWhitespace(t *testing.T) {
	html := "<html><body><p>too   much\n\n  whitespace</p></body></html>"
	normal, _ := ParseHTML(html)
	if normal != "too much whitespace" {
		t.Errorf("normal = %q, want whitespace collapsed", normal)
	}
}
