package options

import (
	"encoding/json"
	"fmt"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
)

var fileContentPermitted = map[string]bool{
	"url": true, "link_el": true, "url_match": true, "res": true, "content_node": true,
}

// CompileFileContentExtractor validates and compiles the `file_content`
// option: a literal XPath evaluated over the content scope, its string
// results JSON-encoded as UTF-8 bytes, or a UserFunc[[]byte] invoked
// with a subset of {url, link_el, url_match, res, content_node}. A
// UserFunc that wants to return a string result should encode it to
// UTF-8 itself.
func CompileFileContentExtractor(def any) (*callable.Adapter[[]byte], error) {
	switch v := def.(type) {
	case string:
		expr := v
		return callable.New(expr, []string{"content_node"}, false, true, func(k callable.Kit) ([]byte, error) {
			var texts []string
			for _, n := range k.ContentNode {
				vals, err := evalXPathStrings(n, expr)
				if err != nil {
					return nil, err
				}
				texts = append(texts, vals...)
			}
			return json.Marshal(texts)
		}), nil
	case UserFunc[[]byte]:
		if err := callable.ValidateNames(v.Source, v.Names, v.Variadic, fileContentPermitted); err != nil {
			return nil, err
		}
		return callable.New(v.Source, v.Names, v.Variadic, true, v.Fn), nil
	default:
		return nil, &mserrors.ConfigError{Message: "file_content must be a string or function", Source: fmt.Sprint(def)}
	}
}
