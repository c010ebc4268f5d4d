// Package urlinfo defines the Planner's output vocabulary: the UrlInfo
// context bundle carried across fetches, and the Command values the
// Planner emits.
package urlinfo

import (
	"golang.org/x/net/html"

	"github.com/TheSnook/mediaspider/callable"
)

// UrlInfo is the state bundle threaded across fetches: everything the
// next Plan call needs to resume traversal at the right structure node.
type UrlInfo struct {
	URL           string
	FilePath      string
	StructurePath []int
	LinkEl        *html.Node
	URLMatch      *callable.RegexMatch
}

// Command is the Planner's atomic output: a closed sum over three kinds,
// dispatched by a type switch rather than a common base class.
type Command interface {
	isCommand()
}

// RequestURL asks the fetch engine to retrieve Info.URL and route the
// response back through the Planner with Info as parent context.
type RequestURL struct {
	Info UrlInfo
}

func (RequestURL) isCommand() {}

// DownloadURL asks the writer to retrieve URL and persist it verbatim
// to FilePath, without further parsing.
type DownloadURL struct {
	URL      string
	FilePath string
}

func (DownloadURL) isCommand() {}

// SaveFileContent asks the writer to persist already-extracted content
// to FilePath; no further request is needed.
type SaveFileContent struct {
	FilePath    string
	FileContent []byte
}

func (SaveFileContent) isCommand() {}
