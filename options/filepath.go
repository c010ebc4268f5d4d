package options

import (
	"fmt"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
)

var filePathPermitted = map[string]bool{
	"url": true, "link_el": true, "url_match": true, "res": true, "content_node": true,
}

// CompileFilePathExtractor validates and compiles the `file_path`
// option: a literal regex-expansion template (never needs the
// response), or a UserFunc[string] invoked with a subset of
// {url, link_el, url_match, res, content_node}.
func CompileFilePathExtractor(def any) (*callable.Adapter[string], error) {
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
		if err := callable.ValidateNames(v.Source, v.Names, v.Variadic, filePathPermitted); err != nil {
			return nil, err
		}
		return callable.New(v.Source, v.Names, v.Variadic, true, v.Fn), nil
	default:
		return nil, &mserrors.ConfigError{Message: "file_path must be a string or function", Source: fmt.Sprint(def)}
	}
}
