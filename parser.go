package harvest

import (
	"strings"

	"golang.org/x/net/html"
)

// importantTags is the set of elements whose text content contributes
// to the important stream (§4.1): title, h1-h3, bold/strong.
var importantTags = map[string]bool{
	"title":  true,
	"h1":     true,
	"h2":     true,
	"h3":     true,
	"b":      true,
	"strong": true,
}

// skippedTags are removed wholesale before any text is extracted.
var skippedTags = map[string]bool{
	"script": true,
	"style":  true,
}

// ParseHTML decodes raw HTML and returns the two cleaned text streams
// from §4.1: normal (all visible text) and important (title/h1-h3/
// bold/strong content, in document order). Empty or whitespace-only
// input yields ("", "") and never fails — a tolerant parser handles
// malformed markup rather than erroring.
//
// EXAMPLE:
//
//	<html><title>Gaza report</title><p>Gaza is in the news.</p></html>
//	-> normal:    "Gaza report Gaza is in the news."
//	-> important: "Gaza report"
func ParseHTML(raw string) (normal, important string) {
	if strings.TrimSpace(raw) == "" {
		return "", ""
	}
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		// A tolerant parser practically never errors on byte input; if it
		// does, there is nothing recoverable to extract from.
		return "", ""
	}

	var normalBuf, importantBuf strings.Builder
	var walk func(n *html.Node, important bool)
	walk = func(n *html.Node, important bool) {
		if n.Type == html.ElementNode && skippedTags[n.Data] {
			return
		}
		inImportant := important || (n.Type == html.ElementNode && importantTags[n.Data])

		if n.Type == html.TextNode {
			normalBuf.WriteString(n.Data)
			normalBuf.WriteByte(' ')
			if inImportant {
				importantBuf.WriteString(n.Data)
				importantBuf.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inImportant)
		}
	}
	walk(doc, false)

	return collapseWhitespace(normalBuf.String()), collapseWhitespace(importantBuf.String())
}

// collapseWhitespace replaces every run of whitespace with a single
// space and trims the result, per §4.1.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
