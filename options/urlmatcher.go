package options

import (
	"fmt"
	"regexp"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
)

// MatchResult is the url matcher's return contract (bool or a
// regex-match): either a plain accept/reject, or an accept carrying the
// match that produced it.
type MatchResult struct {
	Matched bool
	Match   *callable.RegexMatch
}

var urlMatcherPermitted = map[string]bool{"url": true}

// CompileURLMatcher validates and compiles the `url` option. Accepts a
// literal string or *regexp.Regexp (full-match against the candidate
// URL), or a UserFunc[MatchResult] invoked with {url}.
func CompileURLMatcher(def any) (*callable.Adapter[MatchResult], error) {
	switch v := def.(type) {
	case string:
		re, err := regexp.Compile(v)
		if err != nil {
			return nil, &mserrors.ConfigError{Message: "invalid regular expression for url", Source: v}
		}
		return compileRegexURLMatcher(v, re), nil
	case *regexp.Regexp:
		return compileRegexURLMatcher(v.String(), v), nil
	case UserFunc[MatchResult]:
		if err := callable.ValidateNames(v.Source, v.Names, v.Variadic, urlMatcherPermitted); err != nil {
			return nil, err
		}
		return callable.New(v.Source, v.Names, v.Variadic, false, v.Fn), nil
	default:
		return nil, &mserrors.ConfigError{Message: "url must be a string, regexp, or function", Source: fmt.Sprint(def)}
	}
}

func compileRegexURLMatcher(source string, re *regexp.Regexp) *callable.Adapter[MatchResult] {
	full := regexp.MustCompile(`^(?:` + re.String() + `)$`)
	return callable.New(source, []string{"url"}, false, false, func(k callable.Kit) (MatchResult, error) {
		m := callable.NewRegexMatch(full, k.URL)
		if m == nil {
			return MatchResult{}, nil
		}
		return MatchResult{Matched: true, Match: m}, nil
	})
}
