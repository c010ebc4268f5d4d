package options

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSnook/mediaspider/callable"
)

func TestCompileURLConverterStringExpandsMatch(t *testing.T) {
	conv, err := CompileURLConverter(`https://cdn.example.com/\g<id>`)
	require.NoError(t, err)

	re := regexp.MustCompile(`/posts/(?P<id>\d+)`)
	match := callable.NewRegexMatch(re, "/posts/42")
	require.NotNil(t, match)

	result, err := conv.Invoke(callable.Kit{URLMatch: match})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/42", result)
}

func TestCompileURLConverterStringWithoutMatchReturnsLiteral(t *testing.T) {
	conv, err := CompileURLConverter("https://static.example.com/fallback")
	require.NoError(t, err)

	result, err := conv.Invoke(callable.Kit{})
	require.NoError(t, err)
	assert.Equal(t, "https://static.example.com/fallback", result)
}

func TestCompileURLConverterRejectsDisallowedName(t *testing.T) {
	uf := UserFunc[string]{Source: "<inline>", Names: []string{"content_node"}, Fn: func(callable.Kit) (string, error) { return "", nil }}
	_, err := CompileURLConverter(uf)
	assert.Error(t, err)
}
