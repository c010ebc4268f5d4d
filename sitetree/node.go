// Package sitetree holds the compiled structure tree: the typed tree of
// nodes that the Command Planner walks.
package sitetree

import (
	"fmt"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/options"
	"github.com/TheSnook/mediaspider/webresp"
)

// Node is one level of the declarative site-topology tree. Parent is a
// non-owning back reference: the tree is small enough that a direct
// pointer, never traversed for ownership, is the natural Go shape here.
type Node struct {
	Parent   *Node
	Children []*Node
	Index    int // position among Parent.Children; together with the chain of such indices this is the node's structure path
	Source   any // the original definition value, kept for diagnostics
	IsRoot   bool

	URLMatcher           *callable.Adapter[options.MatchResult]
	URLConverter         *callable.Adapter[string]
	ContentSelector      *callable.Adapter[webresp.NodeSet]
	FileContentExtractor *callable.Adapter[[]byte]
	FilePathExtractor    *callable.Adapter[string]
	Assertion            *callable.Adapter[bool]
	Paging               bool
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// NeedsNoRequest reports whether n is pass-through: it has no
// url_matcher and so is evaluated against the parent's response rather
// than issuing a new request.
func (n *Node) NeedsNoRequest() bool { return n.URLMatcher == nil }

// NodeByPath walks down from n following a structure path (a sequence
// of child indices).
func (n *Node) NodeByPath(path []int) (*Node, error) {
	cur := n
	for depth, idx := range path {
		if idx < 0 || idx >= len(cur.Children) {
			return nil, fmt.Errorf("sitetree: structure path %v invalid at depth %d", path, depth)
		}
		cur = cur.Children[idx]
	}
	return cur, nil
}

// MatchURL runs n's url matcher against rawURL. A pass-through node
// (NeedsNoRequest) never matches on its own.
func (n *Node) MatchURL(rawURL string) (bool, *callable.RegexMatch, error) {
	if n.URLMatcher == nil {
		return false, nil, nil
	}
	result, err := n.URLMatcher.Invoke(callable.Kit{URL: rawURL})
	if err != nil {
		return false, nil, err
	}
	return result.Matched, result.Match, nil
}

// ConvertURL applies n's url converter (as_url), or returns kit.URL
// unchanged if none is configured.
func (n *Node) ConvertURL(kit callable.Kit) (string, error) {
	if n.URLConverter == nil {
		return kit.URL, nil
	}
	return n.URLConverter.Invoke(kit)
}

// ContentScope evaluates n's content selector, defaulting to the whole
// response document when none is configured.
func (n *Node) ContentScope(kit callable.Kit, res *webresp.Response) (webresp.NodeSet, error) {
	if n.ContentSelector == nil {
		return res.Whole(), nil
	}
	return n.ContentSelector.Invoke(kit)
}

// check enforces that file_content can only be set on a leaf node.
func (n *Node) check() error {
	if !n.IsLeaf() && n.FileContentExtractor != nil {
		return &mserrors.ConfigError{
			Message: "file_content can only be set on a leaf structure node",
			Source:  fmt.Sprint(n.Source),
		}
	}
	for _, c := range n.Children {
		if err := c.check(); err != nil {
			return err
		}
	}
	return nil
}
