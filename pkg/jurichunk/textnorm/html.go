package textnorm

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the text content of an HTML fragment. Extraction
// services occasionally hand us markup instead of plain text; callers opt
// in through the StripHTML request option. If parsing fails the input is
// returned unchanged.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
