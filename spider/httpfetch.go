package spider

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/TheSnook/mediaspider/webresp"
)

// noRedirects leaves redirects as plain 3xx responses rather than
// following them, since the structure tree itself decides how to treat
// a Location header via its own matchers.
func noRedirects(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}

// HTTPFetcher is the reference Fetcher implementation: a single
// sequential net/http client. Real concurrency, retries and rate
// limiting belong to a fancier Fetcher, not this one.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher builds an HTTPFetcher with the no-follow redirect
// policy.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{CheckRedirect: noRedirects}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*webresp.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("spider: reading body of %q: %w", rawURL, err)
	}

	return webresp.Parse(resp.Request.URL, resp.StatusCode, resp.Header, body)
}
