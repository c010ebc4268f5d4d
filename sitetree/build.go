package sitetree

import (
	"fmt"

	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/options"
)

var recognizedOptions = map[string]bool{
	"url": true, "as_url": true, "content": true, "file_content": true,
	"file_path": true, "assert": true, "paging": true,
}

// Build compiles a mixed list of strings, option maps, and branch lists
// (as decoded from YAML, or assembled directly in Go) into a structure
// tree rooted at a synthetic root node.
func Build(defs []any) (*Node, error) {
	root := &Node{IsRoot: true}
	if err := appendDefs(root, defs); err != nil {
		return nil, err
	}
	if err := root.check(); err != nil {
		return nil, err
	}
	return root, nil
}

func appendDefs(root *Node, defs []any) error {
	parent := root
	branched := false
	for _, def := range defs {
		if branched {
			return &mserrors.ConfigError{
				Message: "once a structure list has branched, no further siblings may follow",
				Source:  fmt.Sprint(def),
			}
		}

		branch, isBranch := def.([]any)
		if !isBranch {
			node, err := parseOne(def)
			if err != nil {
				return err
			}
			node.Parent = parent
			node.Index = len(parent.Children)
			parent.Children = append(parent.Children, node)
			parent = node
			continue
		}

		for _, entry := range branch {
			entryList, ok := entry.([]any)
			if !ok {
				return &mserrors.ConfigError{
					Message: "every branch entry must itself be a structure list",
					Source:  fmt.Sprint(entry),
				}
			}
			subRoot := &Node{IsRoot: true}
			if err := appendDefs(subRoot, entryList); err != nil {
				return err
			}
			for _, child := range subRoot.Children {
				child.Parent = parent
				child.Index = len(parent.Children)
				parent.Children = append(parent.Children, child)
			}
		}
		branched = true
	}
	return nil
}

func parseOne(def any) (*Node, error) {
	switch v := def.(type) {
	case string:
		matcher, err := options.CompileURLMatcher(v)
		if err != nil {
			return nil, err
		}
		return &Node{Source: v, URLMatcher: matcher}, nil

	case map[string]any:
		for key := range v {
			if !recognizedOptions[key] {
				return nil, &mserrors.ConfigError{
					Message: fmt.Sprintf("unrecognized structure option %q", key),
					Source:  fmt.Sprint(v),
				}
			}
		}

		n := &Node{Source: v}

		if raw, ok := v["url"]; ok {
			m, err := options.CompileURLMatcher(raw)
			if err != nil {
				return nil, err
			}
			n.URLMatcher = m
		}
		if raw, ok := v["as_url"]; ok {
			c, err := options.CompileURLConverter(raw)
			if err != nil {
				return nil, err
			}
			n.URLConverter = c
		}
		if raw, ok := v["content"]; ok {
			c, err := options.CompileContentSelector(raw)
			if err != nil {
				return nil, err
			}
			n.ContentSelector = c
		}
		if raw, ok := v["file_content"]; ok {
			c, err := options.CompileFileContentExtractor(raw)
			if err != nil {
				return nil, err
			}
			n.FileContentExtractor = c
		}
		if raw, ok := v["file_path"]; ok {
			c, err := options.CompileFilePathExtractor(raw)
			if err != nil {
				return nil, err
			}
			n.FilePathExtractor = c
		}
		if raw, ok := v["assert"]; ok {
			c, err := options.CompileAssertion(raw)
			if err != nil {
				return nil, err
			}
			n.Assertion = c
		}
		if raw, ok := v["paging"]; ok {
			b, ok := raw.(bool)
			if !ok {
				return nil, &mserrors.ConfigError{Message: "paging must be a boolean", Source: fmt.Sprint(raw)}
			}
			n.Paging = b
		}

		return n, nil

	default:
		return nil, &mserrors.ConfigError{
			Message: "a structure definition must be a string, an option map, or a branch list",
			Source:  fmt.Sprint(def),
		}
	}
}
