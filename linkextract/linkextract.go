// Package linkextract finds (anchor element, absolute URL) pairs within
// a scoped content subtree.
package linkextract

import (
	"log"
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/TheSnook/mediaspider/webresp"
)

// Link pairs the element that carried a URL with the URL itself,
// already resolved to absolute form.
type Link struct {
	El  *html.Node
	URL string
}

var hrefElements = map[atom.Atom]bool{atom.A: true, atom.Area: true, atom.Link: true}

var srcElements = map[atom.Atom]bool{
	atom.Img: true, atom.Embed: true, atom.Iframe: true, atom.Input: true,
	atom.Script: true, atom.Source: true, atom.Track: true, atom.Video: true,
}

// Extract walks every node in nodes (and their descendants) in document
// order, returning one Link per element bearing a link-like attribute,
// resolved against base.
func Extract(nodes webresp.NodeSet, base *url.URL) []Link {
	var links []Link
	seen := map[*html.Node]bool{}

	visit := func(n *html.Node) {
		if n.Type != html.ElementNode || seen[n] {
			return
		}
		seen[n] = true
		raw, ok := pickURLAttr(n)
		if !ok {
			return
		}
		resolved, err := base.Parse(raw)
		if err != nil {
			log.Printf("linkextract: skipping unresolvable url %q on <%s>: %v", raw, n.Data, err)
			return
		}
		links = append(links, Link{El: n, URL: resolved.String()})
	}

	for _, root := range nodes {
		visit(root)
		for d := range root.Descendants() {
			visit(d)
		}
	}
	return links
}

func pickURLAttr(n *html.Node) (string, bool) {
	href, hasHref := getAttr(n, "href")
	src, hasSrc := getAttr(n, "src")
	switch {
	case hrefElements[n.DataAtom] && hasHref:
		return href, true
	case srcElements[n.DataAtom] && hasSrc:
		return src, true
	case hasHref:
		return href, true
	case hasSrc:
		return src, true
	default:
		return "", false
	}
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
