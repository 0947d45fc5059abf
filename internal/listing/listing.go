// Package listing converts HTML product-listing exports into token
// record streams. It feeds the labeling pipeline; the pipeline itself
// never depends on it.
package listing

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/labelkit/pkg/labelkit/record"
)

// Extract parses an HTML listing export and returns one record per
// candidate identifier token. Only tokens that look like identifiers
// (containing a digit, or an uppercase run with separators) survive;
// prose words are noise for the classifier.
func Extract(r io.Reader, lotCode string) ([]record.Record, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var recs []record.Record
	for _, tok := range strings.Fields(buf.String()) {
		tok = strings.Trim(tok, ".,;:()[]")
		if !identifierShaped(tok) {
			continue
		}
		recs = append(recs, record.Record{
			Text:    tok,
			LotCode: lotCode,
		})
	}
	return recs, nil
}

// identifierShaped reports whether a token plausibly carries a product
// identifier: it holds a digit, or reads like a dashed/slashed code.
func identifierShaped(tok string) bool {
	if len(tok) < 3 {
		return false
	}
	hasDigit := false
	hasUpper := false
	hasSep := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r == '-' || r == '/' || r == '_':
			hasSep = true
		}
	}
	return hasDigit || (hasUpper && hasSep)
}
