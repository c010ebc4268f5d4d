// Package planner implements the Command Planner: given a fetched
// response and optional parent context, it walks the structure tree and
// produces the ordered list of commands describing what to fetch,
// download, or save next.
package planner

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/linkextract"
	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/sitetree"
	"github.com/TheSnook/mediaspider/urlinfo"
	"github.com/TheSnook/mediaspider/webresp"
)

// Plan is pure and single-threaded per invocation: it reads only root,
// res and parent, performs no I/O, and produces the full command list
// or an error — it never emits a partial result.
func Plan(root *sitetree.Node, res *webresp.Response, parent *urlinfo.UrlInfo) ([]urlinfo.Command, error) {
	var (
		parentPath     []int
		parentLinkEl   *html.Node
		parentFilePath string
		parentMatch    *callable.RegexMatch
	)

	if parent == nil {
		parentLinkEl = syntheticAnchor(res)
	} else {
		parentPath = parent.StructurePath
		parentLinkEl = parent.LinkEl
		parentFilePath = parent.FilePath
		parentMatch = parent.URLMatch
	}

	return planFrom(root, res, parentPath, parentFilePath, parentLinkEl, parentMatch)
}

// syntheticAnchor builds the pseudo parent anchor for the start
// response: an <a href="..."> whose text is the page title.
func syntheticAnchor(res *webresp.Response) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr:     []html.Attribute{{Key: "href", Val: res.URL.String()}},
	}
	if title := res.Title(); title != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	}
	return n
}

func planFrom(root *sitetree.Node, res *webresp.Response, parentPath []int, parentFilePath string, parentLinkEl *html.Node, parentMatch *callable.RegexMatch) ([]urlinfo.Command, error) {
	parentNode, err := root.NodeByPath(parentPath)
	if err != nil {
		return nil, err
	}

	kit := callable.Kit{URL: res.URL.String(), LinkEl: parentLinkEl, URLMatch: parentMatch, Res: res}

	contentNode, err := parentNode.ContentScope(kit, res)
	if err != nil {
		return nil, err
	}
	kit.ContentNode = contentNode

	if parentNode.Assertion != nil {
		ok, err := parentNode.Assertion.Invoke(kit)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &mserrors.AssertionFailedError{Source: parentNode.Assertion.SourceString()}
		}
	}

	// originalParentFilePath is the file path as it stood before this
	// call's own (post-request) file-path refinement below. Paging's
	// next-page path is built from this, not from the refined one.
	originalParentFilePath := parentFilePath

	if parentNode.FilePathExtractor != nil && parentNode.FilePathExtractor.NeedsResponse() {
		component, err := parentNode.FilePathExtractor.Invoke(kit)
		if err != nil {
			return nil, err
		}
		parentFilePath = path.Join(parentFilePath, component)
	}

	if parentNode.IsLeaf() {
		var content []byte
		if parentNode.FileContentExtractor != nil {
			content, err = parentNode.FileContentExtractor.Invoke(kit)
			if err != nil {
				return nil, err
			}
		} else {
			content = res.Body
		}
		return []urlinfo.Command{urlinfo.SaveFileContent{FilePath: parentFilePath, FileContent: content}}, nil
	}

	var links []linkextract.Link
	linksLoaded := false
	ensureLinks := func() []linkextract.Link {
		if !linksLoaded {
			links = linkextract.Extract(contentNode, res.URL)
			linksLoaded = true
		}
		return links
	}

	var commands []urlinfo.Command

	if parentNode.Paging {
		for _, link := range ensureLinks() {
			matched, match, err := parentNode.MatchURL(link.URL)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
			linkKit := callable.Kit{URL: link.URL, LinkEl: link.El, URLMatch: match}
			convertedURL, err := parentNode.ConvertURL(linkKit)
			if err != nil {
				return nil, err
			}

			nextFilePath := ""
			if parentNode.FilePathExtractor != nil && !parentNode.FilePathExtractor.NeedsResponse() {
				component, err := parentNode.FilePathExtractor.Invoke(linkKit)
				if err != nil {
					return nil, err
				}
				nextFilePath = path.Join(path.Dir(originalParentFilePath), component)
			}

			commands = append(commands, urlinfo.RequestURL{Info: urlinfo.UrlInfo{
				URL:           convertedURL,
				FilePath:      nextFilePath,
				StructurePath: copyPath(parentPath),
				LinkEl:        link.El,
				URLMatch:      match,
			}})
		}
	}

	forwardableFound := false

	for _, child := range parentNode.Children {
		if child.NeedsNoRequest() || parentNode.IsRoot {
			childMatch := parentMatch
			if parentNode.IsRoot {
				ok, m, err := child.MatchURL(res.URL.String())
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				childMatch = m
			}
			forwardableFound = true

			childKit := callable.Kit{URL: res.URL.String(), LinkEl: parentLinkEl, URLMatch: childMatch, Res: res, ContentNode: contentNode}

			filePath := parentFilePath
			if child.FilePathExtractor != nil && !child.FilePathExtractor.NeedsResponse() {
				component, err := child.FilePathExtractor.Invoke(childKit)
				if err != nil {
					return nil, err
				}
				filePath = path.Join(filePath, component)
			}
			if _, err := child.ConvertURL(childKit); err != nil {
				// Computed for parity with the non-pass-through case below,
				// but unused here: re-interpreting the same response never
				// issues a new request, so the converted URL is discarded.
				return nil, err
			}

			childPath := append(copyPath(parentPath), child.Index)
			sub, err := planFrom(root, res, childPath, filePath, parentLinkEl, childMatch)
			if err != nil {
				return nil, err
			}
			commands = append(commands, sub...)
			continue
		}

		for _, link := range ensureLinks() {
			matched, match, err := child.MatchURL(link.URL)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}

			linkKit := callable.Kit{URL: link.URL, LinkEl: link.El, URLMatch: match, Res: res, ContentNode: contentNode}

			filePath := parentFilePath
			if child.FilePathExtractor != nil && !child.FilePathExtractor.NeedsResponse() {
				component, err := child.FilePathExtractor.Invoke(linkKit)
				if err != nil {
					return nil, err
				}
				filePath = path.Join(filePath, component)
			}

			convertedURL, err := child.ConvertURL(linkKit)
			if err != nil {
				return nil, err
			}

			needsResponseForFile := (child.FilePathExtractor != nil && child.FilePathExtractor.NeedsResponse()) ||
				(child.FileContentExtractor != nil && child.FileContentExtractor.NeedsResponse())

			switch {
			case child.IsLeaf() && !needsResponseForFile && child.FileContentExtractor != nil:
				content, err := child.FileContentExtractor.Invoke(linkKit)
				if err != nil {
					return nil, err
				}
				commands = append(commands, urlinfo.SaveFileContent{FilePath: filePath, FileContent: content})
			case child.IsLeaf() && !needsResponseForFile:
				commands = append(commands, urlinfo.DownloadURL{URL: convertedURL, FilePath: filePath})
			default:
				commands = append(commands, urlinfo.RequestURL{Info: urlinfo.UrlInfo{
					URL:           convertedURL,
					FilePath:      filePath,
					StructurePath: append(copyPath(parentPath), child.Index),
					LinkEl:        link.El,
					URLMatch:      match,
				}})
			}
		}
	}

	if parentNode.IsRoot && !forwardableFound {
		lines := make([]string, 0, len(parentNode.Children))
		for i, c := range parentNode.Children {
			src := "<no url matcher in definition>"
			if c.URLMatcher != nil {
				src = c.URLMatcher.SourceString()
			}
			lines = append(lines, fmt.Sprintf("%d: %s", i, src))
		}
		return nil, &mserrors.ConfigError{
			Message: "start url doesn't match any url matcher",
			Source:  strings.Join(lines, "\n"),
		}
	}

	return commands, nil
}

func copyPath(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)
	return out
}
