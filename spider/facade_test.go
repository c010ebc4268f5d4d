package spider

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSnook/mediaspider/siteconfig"
	"github.com/TheSnook/mediaspider/webresp"
)

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string) (*webresp.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	body, ok := f.pages[rawURL]
	if !ok {
		body = "<html></html>"
	}
	return webresp.Parse(u, http.StatusOK, http.Header{}, []byte(body))
}

type fakeWriterRecorder struct {
	downloaded map[string]string
	saved      map[string][]byte
}

func newFakeWriterRecorder() *fakeWriterRecorder {
	return &fakeWriterRecorder{downloaded: map[string]string{}, saved: map[string][]byte{}}
}

func (f *fakeWriterRecorder) Download(ctx context.Context, url, filePath string) error {
	f.downloaded[filePath] = url
	return nil
}

func (f *fakeWriterRecorder) Save(filePath string, content []byte) error {
	f.saved[filePath] = content
	return nil
}

func (f *fakeWriterRecorder) Close() error { return nil }

func TestFacadeStartDrivesFullCrawl(t *testing.T) {
	def := &siteconfig.Definition{
		StartURL: "http://example.com/",
		SaveDir:  "out",
		Structure: []any{
			map[string]any{"url": `http://example\.com/`, "file_path": "foo"},
			map[string]any{"url": `http://example\.com/contents/(\w+)`, "file_path": `\g<1>.txt`},
		},
	}
	cfg, err := siteconfig.New(def)
	require.NoError(t, err)

	fetcher := &fakeFetcher{pages: map[string]string{
		"http://example.com/": `<a href="/contents/a">a</a><a href="/contents/b">b</a>`,
	}}
	writer := newFakeWriterRecorder()

	facade := New(cfg, fetcher, writer)
	require.NoError(t, facade.Start(context.Background()))

	assert.Equal(t, "http://example.com/contents/a", writer.downloaded["foo/a.txt"])
	assert.Equal(t, "http://example.com/contents/b", writer.downloaded["foo/b.txt"])
}

func TestFacadeStartFailsOnUnmatchedStartURL(t *testing.T) {
	def := &siteconfig.Definition{
		StartURL: "http://example.com/",
		SaveDir:  "out",
		Structure: []any{
			map[string]any{"url": `http://example\.com/only-this`, "file_path": "x"},
		},
	}
	cfg, err := siteconfig.New(def)
	require.NoError(t, err)

	facade := New(cfg, &fakeFetcher{pages: map[string]string{}}, newFakeWriterRecorder())
	err = facade.Start(context.Background())
	assert.Error(t, err)
}
