package options

import (
	"fmt"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"

	"github.com/TheSnook/mediaspider/webresp"
)

// evalXPathNodes evaluates expr relative to n, returning the selected
// node set.
func evalXPathNodes(n *html.Node, expr string) (webresp.NodeSet, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling xpath %q: %w", expr, err)
	}
	nav := htmlquery.CreateXPathNavigator(n)
	result := e.Evaluate(nav)
	iter, ok := result.(*xpath.NodeIterator)
	if !ok {
		return nil, fmt.Errorf("xpath %q did not select a node-set", expr)
	}
	var nodes webresp.NodeSet
	for iter.MoveNext() {
		cur := iter.Current().(*htmlquery.NodeNavigator)
		nodes = append(nodes, cur.Current())
	}
	return nodes, nil
}

// evalXPathBoolean evaluates boolean(expr) relative to n.
func evalXPathBoolean(n *html.Node, expr string) (bool, error) {
	e, err := xpath.Compile("boolean(" + expr + ")")
	if err != nil {
		return false, fmt.Errorf("compiling xpath %q: %w", expr, err)
	}
	nav := htmlquery.CreateXPathNavigator(n)
	v, ok := e.Evaluate(nav).(bool)
	if !ok {
		return false, fmt.Errorf("xpath %q did not evaluate to a boolean", expr)
	}
	return v, nil
}

// evalXPathStrings evaluates expr relative to n and stringifies every
// result: a node-set yields one string per selected node (its text, or
// its serialized HTML for element nodes); a scalar xpath result (string,
// number) yields a single string.
func evalXPathStrings(n *html.Node, expr string) ([]string, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling xpath %q: %w", expr, err)
	}
	nav := htmlquery.CreateXPathNavigator(n)
	switch v := e.Evaluate(nav).(type) {
	case *xpath.NodeIterator:
		var out []string
		for v.MoveNext() {
			cur := v.Current().(*htmlquery.NodeNavigator)
			out = append(out, nodeString(cur.Current()))
		}
		return out, nil
	case string:
		return []string{v}, nil
	case float64:
		return []string{fmt.Sprintf("%g", v)}, nil
	case bool:
		return []string{fmt.Sprintf("%t", v)}, nil
	default:
		return nil, fmt.Errorf("xpath %q produced an unsupported result type", expr)
	}
}

func nodeString(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	return htmlquery.OutputHTML(n, true)
}
