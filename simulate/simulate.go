// Package simulate implements a dry run: for an arbitrary URL, it
// reports every structure path whose chain of url matchers accepts it,
// together with a synthesized file-path template. It is the core
// support behind an interactive debug flow; the REPL itself lives
// elsewhere.
package simulate

import (
	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/sitetree"
)

// UnknownFilePath is the placeholder used when a node's file_path
// extractor needs the response to produce its value — which the
// Simulator, by design, never has.
const UnknownFilePath = "__unknown__"

// PathReport is one hit: a structure path whose full chain of url
// matchers (root excluded) accepted rawURL, and the file path that
// chain would synthesize.
type PathReport struct {
	StructurePath []int
	FilePath      string
}

// Explain walks root against rawURL, collecting one PathReport per
// structure path along the way whose matcher chain accepts it.
func Explain(root *sitetree.Node, rawURL string) ([]PathReport, error) {
	var reports []PathReport
	if err := walk(root, rawURL, nil, "", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func walk(n *sitetree.Node, rawURL string, path []int, filePath string, parentMatch *callable.RegexMatch, reports *[]PathReport) error {
	for _, child := range n.Children {
		var (
			matched bool
			match   *callable.RegexMatch
			err     error
		)
		if child.NeedsNoRequest() {
			matched, match = true, parentMatch
		} else {
			matched, match, err = child.MatchURL(rawURL)
			if err != nil {
				return err
			}
		}
		if !matched {
			continue
		}

		childPath := append(append([]int{}, path...), child.Index)
		childFilePath := filePath

		switch {
		case child.FilePathExtractor == nil:
			// no component contributed
		case child.FilePathExtractor.NeedsResponse():
			childFilePath = joinFilePath(childFilePath, UnknownFilePath)
		default:
			component, err := child.FilePathExtractor.Invoke(callable.Kit{URL: rawURL, URLMatch: match})
			if err != nil {
				return err
			}
			childFilePath = joinFilePath(childFilePath, component)
		}

		*reports = append(*reports, PathReport{StructurePath: childPath, FilePath: childFilePath})

		if err := walk(child, rawURL, childPath, childFilePath, match, reports); err != nil {
			return err
		}
	}
	return nil
}

func joinFilePath(base, component string) string {
	if base == "" {
		return component
	}
	if component == "" {
		return base
	}
	return base + "/" + component
}
