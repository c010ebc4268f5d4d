package sitetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSnook/mediaspider/mserrors"
)

func TestBuildLinearChain(t *testing.T) {
	root, err := Build([]any{
		"/posts/",
		map[string]any{"url": `/posts/\d+`, "file_path": `post.html`},
	})
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	level1 := root.Children[0]
	assert.False(t, level1.IsLeaf())
	require.Len(t, level1.Children, 1)

	level2 := level1.Children[0]
	assert.True(t, level2.IsLeaf())
	assert.Equal(t, 0, level2.Index)
}

func TestBuildBranchesAttachToSameParent(t *testing.T) {
	root, err := Build([]any{
		"/section/",
		[]any{
			[]any{map[string]any{"url": `/a`, "file_path": "a.html"}},
			[]any{map[string]any{"url": `/b`, "file_path": "b.html"}},
		},
	})
	require.NoError(t, err)

	section := root.Children[0]
	require.Len(t, section.Children, 2)
	assert.Equal(t, 0, section.Children[0].Index)
	assert.Equal(t, 1, section.Children[1].Index)
}

func TestBuildRejectsSiblingAfterBranch(t *testing.T) {
	_, err := Build([]any{
		"/section/",
		[]any{
			[]any{map[string]any{"url": `/a`}},
		},
		"/trailing/",
	})
	require.Error(t, err)
	var ce *mserrors.ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestBuildRejectsUnrecognizedOption(t *testing.T) {
	_, err := Build([]any{
		map[string]any{"url": "/x", "bogus": true},
	})
	require.Error(t, err)
}

func TestBuildRejectsFileContentOnNonLeaf(t *testing.T) {
	_, err := Build([]any{
		map[string]any{"url": "/x", "file_content": "//p/text()"},
		"/y",
	})
	require.Error(t, err)
	var ce *mserrors.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "leaf")
}

func TestBuildPassThroughNodeHasNoURLMatcher(t *testing.T) {
	root, err := Build([]any{
		map[string]any{"content": "//main"},
	})
	require.NoError(t, err)
	assert.True(t, root.Children[0].NeedsNoRequest())
}
