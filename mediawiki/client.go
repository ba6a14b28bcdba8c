// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mediawiki

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// allPagesLimit caps the number of titles requested from the allpages
// listing.
const allPagesLimit = 40

// DefaultTimeout is the maximum transfer duration of a single API call.
var DefaultTimeout = 3 * time.Second

// Options are options for a Client.
type Options struct {
	// Timeout is the maximum transfer duration of a single API call. If
	// zero, DefaultTimeout is used.
	Timeout time.Duration

	// HTTPClient overrides the HTTP client used for API calls. If nil, a
	// client that tolerates invalid TLS certificates is used; community
	// wiki mirrors are frequently self-signed or misconfigured.
	HTTPClient *http.Client
}

// Client issues calls against one MediaWiki-compatible api.php endpoint.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient returns a Client for the site rooted at baseURL, e.g.
// "https://en.wikipedia.org/w".
func NewClient(baseURL string, options *Options) *Client {
	if options == nil {
		options = &Options{}
	}

	timeout := options.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	hc := options.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true, //nolint:gosec // See Options.HTTPClient.
				},
			},
		}
	}

	return &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		hc:   hc,
	}
}

// ParseURL returns the API URL fetching the rendered text, revision id and
// section list for the given page title, following redirects.
func (c *Client) ParseURL(page string) string {
	return c.base + "/api.php?action=parse&prop=text|revid|sections&format=xml&redirects&page=" +
		escapeTerm(page)
}

// AllPagesURL returns the API URL listing page titles lexicographically
// greater than or equal to the given term.
func (c *Client) AllPagesURL(from string) string {
	return fmt.Sprintf("%s/api.php?action=query&list=allpages&aplimit=%d&format=xml&apfrom=%s",
		c.base, allPagesLimit, escapeTerm(from))
}

// Get performs a GET request for the given URL and returns the response
// body.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response for %q: %w", rawURL, err)
	}
	return body, nil
}

// escapeTerm percent-encodes a query term. A literal "+" must be encoded
// since the API would otherwise treat it as a space.
func escapeTerm(term string) string {
	return url.QueryEscape(term)
}
