package callable

import (
	"golang.org/x/net/html"

	"github.com/TheSnook/mediaspider/webresp"
)

// Kit is the parameter kit passed to every compiled component: a record
// with every field a component could possibly want, all optional. The
// Planner populates one per invocation and passes it by value; each
// Adapter consumes only the fields its accepted-name set declared.
//
// Go closures carry no runtime-introspectable parameter names, so there
// is no reflection here at all — components declare upfront, at
// compile time, which Kit fields they read (see Adapter.acceptedNames).
type Kit struct {
	URL         string
	LinkEl      *html.Node
	URLMatch    *RegexMatch
	Res         *webresp.Response
	ContentNode webresp.NodeSet
}
