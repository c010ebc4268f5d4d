package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSnook/mediaspider/callable"
)

func TestCompileURLMatcherStringFullMatchOnly(t *testing.T) {
	m, err := CompileURLMatcher(`/posts/(?P<id>\d+)`)
	require.NoError(t, err)

	result, err := m.Invoke(callable.Kit{URL: "/posts/42"})
	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.NotNil(t, result.Match)
	assert.Equal(t, "42", result.Match.Group(1))

	result, err = m.Invoke(callable.Kit{URL: "/posts/42/comments"})
	require.NoError(t, err)
	assert.False(t, result.Matched, "url option must fully match, not merely find a substring")
}

func TestCompileURLMatcherUserFunc(t *testing.T) {
	uf := UserFunc[MatchResult]{
		Source: "<inline>",
		Names:  []string{"url"},
		Fn: func(k callable.Kit) (MatchResult, error) {
			return MatchResult{Matched: k.URL == "/ok"}, nil
		},
	}
	m, err := CompileURLMatcher(uf)
	require.NoError(t, err)

	result, err := m.Invoke(callable.Kit{URL: "/ok"})
	require.NoError(t, err)
	assert.True(t, result.Matched)
}

func TestCompileURLMatcherUserFuncRejectsDisallowedName(t *testing.T) {
	uf := UserFunc[MatchResult]{
		Source: "<inline>",
		Names:  []string{"res"},
		Fn:     func(callable.Kit) (MatchResult, error) { return MatchResult{}, nil },
	}
	_, err := CompileURLMatcher(uf)
	assert.Error(t, err)
}

func TestCompileURLMatcherInvalidRegex(t *testing.T) {
	_, err := CompileURLMatcher(`(unclosed`)
	assert.Error(t, err)
}

func TestCompileURLMatcherRejectsUnsupportedType(t *testing.T) {
	_, err := CompileURLMatcher(42)
	assert.Error(t, err)
}
