// Package htmltext extracts plain text from HTML documents so markup-heavy
// corpora (feeds, exported pages) can be scored without tags and scripts
// polluting the term space.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract returns the visible text of an HTML fragment. Script and style
// bodies are dropped; block boundaries become spaces so adjacent fragments
// don't fuse into one token. Unparseable input falls back to the input
// string.
func Extract(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
