package callable

import "regexp"

// RegexMatch is an owned copy of a regexp match: the compiled pattern,
// the matched input, and the submatch byte offsets. Safe to carry
// across call boundaries — it never retains a borrowed match view.
type RegexMatch struct {
	re      *regexp.Regexp
	input   string
	indices []int
}

// NewRegexMatch runs re against input and, on a match, returns an owned
// RegexMatch. Returns nil if re does not match input at all.
func NewRegexMatch(re *regexp.Regexp, input string) *RegexMatch {
	idx := re.FindStringSubmatchIndex(input)
	if idx == nil {
		return nil
	}
	return &RegexMatch{re: re, input: input, indices: idx}
}

// Group returns the i'th submatch (0 is the whole match), or "" if it
// did not participate in the match.
func (m *RegexMatch) Group(i int) string {
	if m == nil || 2*i+1 >= len(m.indices) {
		return ""
	}
	lo, hi := m.indices[2*i], m.indices[2*i+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return m.input[lo:hi]
}

// Expand fills in a regex-expansion template using this match's
// captures. Templates use the `\g<name>` / `\g<N>` / `\N` group-reference
// forms, translated here to Go's `regexp` expansion syntax (`${name}`,
// `${N}`).
func (m *RegexMatch) Expand(tmpl string) string {
	goTmpl := translateExpandTemplate(tmpl)
	return string(m.re.ExpandString(nil, goTmpl, m.input, m.indices))
}

var groupRefPattern = regexp.MustCompile(`\\g<(\w+)>|\\(\d+)`)

func translateExpandTemplate(tmpl string) string {
	return groupRefPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		sub := groupRefPattern.FindStringSubmatch(m)
		if sub[1] != "" {
			return "${" + sub[1] + "}"
		}
		return "${" + sub[2] + "}"
	})
}
