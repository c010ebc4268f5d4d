package webresp

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndWhole(t *testing.T) {
	u, err := url.Parse("https://example.com/")
	require.NoError(t, err)

	res, err := Parse(u, http.StatusOK, http.Header{}, []byte(`<html><head><title>Hi</title></head><body>ok</body></html>`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, res.Whole(), 1)
	assert.Equal(t, "Hi", res.Title())
}

func TestTitleEmptyWhenMissing(t *testing.T) {
	u, err := url.Parse("https://example.com/")
	require.NoError(t, err)

	res, err := Parse(u, http.StatusOK, http.Header{}, []byte(`<html><body>no title</body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "", res.Title())
}
