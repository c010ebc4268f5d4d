package planner

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSnook/mediaspider/callable"
	"github.com/TheSnook/mediaspider/mserrors"
	"github.com/TheSnook/mediaspider/options"
	"github.com/TheSnook/mediaspider/sitetree"
	"github.com/TheSnook/mediaspider/urlinfo"
	"github.com/TheSnook/mediaspider/webresp"
)

func mustResponse(t *testing.T, rawURL, body string) *webresp.Response {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	res, err := webresp.Parse(u, http.StatusOK, http.Header{}, []byte(body))
	require.NoError(t, err)
	return res
}

func downloads(cmds []urlinfo.Command) []urlinfo.DownloadURL {
	var out []urlinfo.DownloadURL
	for _, c := range cmds {
		if d, ok := c.(urlinfo.DownloadURL); ok {
			out = append(out, d)
		}
	}
	return out
}

func requests(cmds []urlinfo.Command) []urlinfo.RequestURL {
	var out []urlinfo.RequestURL
	for _, c := range cmds {
		if r, ok := c.(urlinfo.RequestURL); ok {
			out = append(out, r)
		}
	}
	return out
}

// single-level download.
func TestPlanSingleLevelDownload(t *testing.T) {
	root, err := sitetree.Build([]any{
		map[string]any{"url": `http://example\.com/`, "file_path": "foo"},
		map[string]any{"url": `http://example\.com/contents/(\w+)`, "file_path": `\g<1>.txt`},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `<a href="/contents/foo">foo</a><a href="/contents/bar">bar</a>`)

	cmds, err := Plan(root, res, nil)
	require.NoError(t, err)

	dls := downloads(cmds)
	require.Len(t, dls, 2)
	assert.Contains(t, dls, urlinfo.DownloadURL{URL: "http://example.com/contents/foo", FilePath: "foo/foo.txt"})
	assert.Contains(t, dls, urlinfo.DownloadURL{URL: "http://example.com/contents/bar", FilePath: "foo/bar.txt"})
}

// URL rewrite via as_url.
func TestPlanURLRewriteViaAsURL(t *testing.T) {
	root, err := sitetree.Build([]any{
		map[string]any{"url": `http://example\.com/`, "file_path": "foo"},
		map[string]any{
			"url":       `http://example\.com/contents/(\w+)`,
			"file_path": `\g<1>.jpg`,
			"as_url":    `http://cdn.example.com/images/\g<1>.jpg`,
		},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `<a href="/contents/baz">baz</a>`)

	cmds, err := Plan(root, res, nil)
	require.NoError(t, err)

	dls := downloads(cmds)
	require.Len(t, dls, 1)
	assert.Equal(t, "http://cdn.example.com/images/baz.jpg", dls[0].URL)
	assert.Equal(t, "foo/baz.jpg", dls[0].FilePath)
}

// paging, pre-request file-path extractor.
func TestPlanPagingPreRequestFilePath(t *testing.T) {
	pageNumber := options.UserFunc[string]{
		Source: "<page number>",
		Names:  []string{"url_match"},
		Fn: func(k callable.Kit) (string, error) {
			if k.URLMatch == nil {
				return "1", nil
			}
			if n := k.URLMatch.Group(2); n != "" {
				return n, nil
			}
			return "1", nil
		},
	}

	root, err := sitetree.Build([]any{
		map[string]any{
			"url":       `http://example\.com/(\?page=(\d+))?`,
			"paging":    true,
			"file_path": pageNumber,
		},
		map[string]any{"url": `http://example\.com/contents/(\w+)`, "file_path": `\g<1>.txt`},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `
		<a href="/contents/x">x</a>
		<a href="/contents/y">y</a>
		<a href="/?page=2">next</a>
	`)

	cmds, err := Plan(root, res, nil)
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	dls := downloads(cmds)
	require.Len(t, dls, 2)
	assert.Contains(t, dls, urlinfo.DownloadURL{URL: "http://example.com/contents/x", FilePath: "1/x.txt"})
	assert.Contains(t, dls, urlinfo.DownloadURL{URL: "http://example.com/contents/y", FilePath: "1/y.txt"})

	reqs := requests(cmds)
	require.Len(t, reqs, 1)
	assert.Equal(t, "http://example.com/?page=2", reqs[0].Info.URL)
	assert.Equal(t, "2", reqs[0].Info.FilePath)
}

// paging variant: a post-request file-path extractor leaves the
// outgoing page request's file_path empty.
func TestPlanPagingPostRequestFilePathIsEmpty(t *testing.T) {
	needsResponse := options.UserFunc[string]{
		Source: "<page number from response>",
		Names:  []string{"res"},
		Fn:     func(k callable.Kit) (string, error) { return "1", nil },
	}

	root, err := sitetree.Build([]any{
		map[string]any{
			"url":       `http://example\.com/(\?page=(\d+))?`,
			"paging":    true,
			"file_path": needsResponse,
		},
		map[string]any{"url": `http://example\.com/contents/(\w+)`, "file_path": `\g<1>.txt`},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `<a href="/?page=2">next</a>`)

	cmds, err := Plan(root, res, nil)
	require.NoError(t, err)

	reqs := requests(cmds)
	require.Len(t, reqs, 1)
	assert.Equal(t, "", reqs[0].Info.FilePath)
}

// branches: only the matching branch contributes commands; the
// non-matching sibling branch is skipped silently, not an error.
func TestPlanBranchesOnlyMatchingBranchContributes(t *testing.T) {
	root, err := sitetree.Build([]any{
		[]any{
			[]any{map[string]any{"url": `http://example\.com/unrelated`}},
			[]any{
				map[string]any{"url": `http://example\.com/`, "file_path": "foo"},
				map[string]any{"url": `http://example\.com/contents/(\w+)`, "file_path": `\g<1>.txt`},
			},
		},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `<a href="/contents/x">x</a>`)

	cmds, err := Plan(root, res, nil)
	require.NoError(t, err)

	dls := downloads(cmds)
	require.Len(t, dls, 1)
	assert.Equal(t, urlinfo.DownloadURL{URL: "http://example.com/contents/x", FilePath: "foo/x.txt"}, dls[0])
}

// assert failure.
func TestPlanAssertionFailure(t *testing.T) {
	root, err := sitetree.Build([]any{
		map[string]any{"url": `http://example\.com/`, "assert": `//a[.='baz']`},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `<a href="/contents/foo">foo</a>`)

	_, err = Plan(root, res, nil)
	require.Error(t, err)
	var af *mserrors.AssertionFailedError
	assert.ErrorAs(t, err, &af)
}

// leaf inline content.
func TestPlanLeafInlineContent(t *testing.T) {
	root, err := sitetree.Build([]any{
		map[string]any{"url": `http://example\.com/`, "file_content": `//p/text()`},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/", `<p>foo</p><p>bar</p>`)

	cmds, err := Plan(root, res, nil)
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	save, ok := cmds[0].(urlinfo.SaveFileContent)
	require.True(t, ok)
	assert.JSONEq(t, `["foo","bar"]`, string(save.FileContent))
}

// an unmatched start URL is a ConfigError.
func TestPlanStartURLNotMatchedIsConfigError(t *testing.T) {
	root, err := sitetree.Build([]any{
		map[string]any{"url": `http://example\.com/only-this`, "file_path": "x"},
	})
	require.NoError(t, err)

	res := mustResponse(t, "http://example.com/elsewhere", `<html></html>`)

	_, err = Plan(root, res, nil)
	require.Error(t, err)
	var ce *mserrors.ConfigError
	assert.ErrorAs(t, err, &ce)
}
