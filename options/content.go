package options

import (
	"fmt"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/webresp"
)

var contentPermitted = map[string]bool{"url": true, "link_el": true, "url_match": true, "res": true}

// CompileContentSelector validates and compiles the `content` option: a
// literal XPath string evaluated over the whole response, or a
// UserFunc[webresp.NodeSet] invoked with a subset of
// {url, link_el, url_match, res}.
func CompileContentSelector(def any) (*callable.Adapter[webresp.NodeSet], error) {
	switch v := def.(type) {
	case string:
		expr := v
		return callable.New(expr, []string{"res"}, false, true, func(k callable.Kit) (webresp.NodeSet, error) {
			if k.Res == nil {
				return nil, fmt.Errorf("content selector %q requires a response", expr)
			}
			return evalXPathNodes(k.Res.Doc, expr)
		}), nil
	case UserFunc[webresp.NodeSet]:
		if err := callable.ValidateNames(v.Source, v.Names, v.Variadic, contentPermitted); err != nil {
			return nil, err
		}
		return callable.New(v.Source, v.Names, v.Variadic, true, v.Fn), nil
	default:
		return nil, &mserrors.ConfigError{Message: "content must be a string or function", Source: fmt.Sprint(def)}
	}
}
