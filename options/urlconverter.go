package options

import (
	"fmt"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
)

var asURLPermitted = map[string]bool{"url": true, "link_el": true, "url_match": true}

// CompileURLConverter validates and compiles the `as_url` option: a
// literal regex-expansion template applied to the current url_match, or
// a UserFunc[string] invoked with a subset of {url, link_el, url_match}.
func CompileURLConverter(def any) (*callable.Adapter[string], error) {
	switch v := def.(type) {
	case string:
		tmpl := v
		return callable.New(tmpl, []string{"url_match"}, false, false, func(k callable.Kit) (string, error) {
			if k.URLMatch == nil {
				return tmpl, nil
			}
			return k.URLMatch.Expand(tmpl), nil
		}), nil
	case UserFunc[string]:
		if err := callable.ValidateNames(v.Source, v.Names, v.Variadic, asURLPermitted); err != nil {
			return nil, err
		}
		return callable.New(v.Source, v.Names, v.Variadic, false, v.Fn), nil
	default:
		return nil, &mserrors.ConfigError{Message: "as_url must be a string or function", Source: fmt.Sprint(def)}
	}
}
