// Package webresp is the core's view of a fetched HTTP response: just
// enough to drive link extraction, XPath evaluation and file-content
// capture. The fetch engine that actually performs HTTP is an external
// collaborator; this package owns none of the networking.
package webresp

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeSet is an ordered set of DOM nodes, the result of scoping a
// response to a content selector.
type NodeSet []*html.Node

// Response is the fetched page the Planner observes. Doc is parsed once
// by Parse and borrowed by every component invoked during a single
// Plan call; it is never mutated.
type Response struct {
	URL        *url.URL
	StatusCode int
	Header     http.Header
	Body       []byte
	Doc        *html.Node
}

// Parse builds a Response from a raw body, parsing it as HTML. Callers
// that already have a parsed document should construct Response
// directly instead of re-parsing; the Planner's pass-through recursion
// simply reuses the same Response.
func Parse(u *url.URL, statusCode int, header http.Header, body []byte) (*Response, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("webresp: parsing html from %q: %w", u, err)
	}
	return &Response{
		URL:        u,
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
		Doc:        doc,
	}, nil
}

// Whole returns the default content scope: the entire parsed document.
func (r *Response) Whole() NodeSet {
	return NodeSet{r.Doc}
}

// Title returns the text of the first <title> element found, or "" if
// there isn't one. Used to synthesize the pseudo anchor for the start
// response.
func (r *Response) Title() string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" || n == nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Title {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = n.FirstChild.Data
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(r.Doc)
	return title
}
