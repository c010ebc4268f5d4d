package options

import (
	"fmt"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
)

var assertPermitted = map[string]bool{
	"url": true, "link_el": true, "url_match": true, "res": true, "content_node": true,
}

// CompileAssertion validates and compiles the `assert` option: a
// literal XPath whose boolean(...) must hold over every node in the
// content scope, a list of assertions (each compiled independently, all
// of which must pass), or a UserFunc[bool] invoked with a subset of
// {url, link_el, url_match, res, content_node}.
func CompileAssertion(def any) (*callable.Adapter[bool], error) {
	switch v := def.(type) {
	case []any:
		subs := make([]*callable.Adapter[bool], 0, len(v))
		for _, sub := range v {
			compiled, err := CompileAssertion(sub)
			if err != nil {
				return nil, err
			}
			subs = append(subs, compiled)
		}
		return callable.New(fmt.Sprintf("%d combined assertions", len(subs)), []string{"url", "link_el", "url_match", "res", "content_node"}, false, true, func(k callable.Kit) (bool, error) {
			for _, s := range subs {
				ok, err := s.Invoke(k)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
			return true, nil
		}), nil
	case string:
		expr := v
		return callable.New(expr, []string{"content_node"}, false, true, func(k callable.Kit) (bool, error) {
			for _, n := range k.ContentNode {
				ok, err := evalXPathBoolean(n, expr)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
			return true, nil
		}), nil
	case UserFunc[bool]:
		if err := callable.ValidateNames(v.Source, v.Names, v.Variadic, assertPermitted); err != nil {
			return nil, err
		}
		return callable.New(v.Source, v.Names, v.Variadic, true, v.Fn), nil
	default:
		return nil, &mserrors.ConfigError{Message: "assert must be a string, list, or function", Source: fmt.Sprint(def)}
	}
}
