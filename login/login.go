// Package login performs one form submission before a crawl starts,
// entirely outside the Command Planner. It is deliberately thin — real
// form handling (CSRF tokens, redirects, cookie jars) is the fetch
// engine's job.
package login

import (
	"net/http"
	"net/url"
	"strings"
)

// FormSubmit builds a POST request against loginURL with formdata
// encoded as application/x-www-form-urlencoded.
func FormSubmit(loginURL string, formdata map[string]string) (*http.Request, error) {
	values := url.Values{}
	for k, v := range formdata {
		values.Set(k, v)
	}
	req, err := http.NewRequest(http.MethodPost, loginURL, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}
