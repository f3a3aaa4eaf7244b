package htmltext

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Flatten converts an HTML document into the plain-text search space used by
// the contact matchers: visible text nodes joined by newlines, non-breaking
// spaces replaced with ordinary spaces, then every whitespace run collapsed
// to a single space. The result is one long blob.
func Flatten(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, node)
	text := strings.ReplaceAll(b.String(), "\u00a0", " ")
	return collapseWhitespace(text)
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// collapseWhitespace replaces every run of whitespace with a single space,
// including runs at the start and end of the text. Match offsets feed the
// fixed-size context windows downstream, so the mapping must be stable.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
