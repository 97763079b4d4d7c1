// Package goquery implements the portal document extractors on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gradeforge"
	"golang.org/x/net/html"
)

// parseDocument parses raw document bytes into a goquery document.
func parseDocument(doc *gradeforge.Document) (*goquery.Document, error) {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Content))
	if err != nil {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "%s: failed to parse HTML: %v", doc.Name, err)
	}
	return d, nil
}

// listingRows returns the direct rows of the full-width data tables.
// The HTML parser always inserts tbody, so rows are addressed through it.
func listingRows(tables *goquery.Selection) *goquery.Selection {
	return tables.ChildrenFiltered("tbody").ChildrenFiltered("tr")
}

// isHeaderRow reports whether row is the title row of a header/body pair.
func isHeaderRow(row *goquery.Selection) bool {
	return row.ChildrenFiltered("th, td.nttitle").Length() > 0
}

// checkAlternation verifies that rows strictly alternate header, body.
func checkAlternation(name string, rows *goquery.Selection) error {
	n := rows.Length()
	if n%2 != 0 {
		return gradeforge.Errorf(gradeforge.ESTRUCTURE, "%s: odd row count %d; rows must pair header and body", name, n)
	}
	var err error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		wantHeader := i%2 == 0
		if isHeaderRow(row) != wantHeader {
			kind := "body"
			if wantHeader {
				kind = "header"
			}
			err = gradeforge.Errorf(gradeforge.ESTRUCTURE, "%s: row %d: expected %s row", name, i, kind)
			return false
		}
		return true
	})
	return err
}

// textNodes returns the non-blank text nodes below sel in document order.
func textNodes(sel *goquery.Selection) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if strings.TrimSpace(n.Data) != "" {
				out = append(out, n.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

// spanTails returns the text nodes that follow a <span> sibling, looking
// into the node itself and into its direct a, b and p children. Values are
// trimmed and blank ones dropped.
func spanTails(n *html.Node) []string {
	var out []string
	afterSpan := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.ElementNode && c.Data == "span":
			afterSpan = true
		case c.Type == html.ElementNode && (c.Data == "a" || c.Data == "b" || c.Data == "p"):
			out = append(out, spanTails(c)...)
		case c.Type == html.TextNode && afterSpan:
			if s := strings.TrimSpace(c.Data); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// leadingText returns the text before the first child element of n.
func leadingText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil && c.Type != html.ElementNode; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// textAfter returns the first non-blank text node that follows the first
// child element named tag.
func textAfter(n *html.Node, tag string) string {
	seen := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			seen = true
			continue
		}
		if seen && c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return c.Data
		}
	}
	return ""
}

// tailText returns the text node directly following n.
func tailText(n *html.Node) string {
	if s := n.NextSibling; s != nil && s.Type == html.TextNode {
		return s.Data
	}
	return ""
}

// cleanText normalizes text scraped from the portal: NBSP and the stray
// "Â" of double-encoded NBSP are dropped before collapsing whitespace.
func cleanText(s string) string {
	return gradeforge.CollapseSpace(strings.ReplaceAll(s, "Â", ""))
}
