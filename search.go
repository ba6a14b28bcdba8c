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

package wikidict

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/ianlewis/go-wikidict/mediawiki"
)

// SearchRequest holds the titles matched by a prefix search.
type SearchRequest struct {
	request

	// matches is guarded by request.mu.
	matches []string
}

// SearchPrefix requests up to maxResults page titles lexicographically
// greater than or equal to word. A maxResults of 0 or less keeps every
// title the API returns.
func (d *Dictionary) SearchPrefix(word string, maxResults int) *SearchRequest {
	r := &SearchRequest{
		request: newRequest(),
	}

	if utf8.RuneCountInString(word) > maxWordLength {
		// Excessively large queries are fruitless anyway.
		r.finish()
		return r
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go r.run(ctx, d, word, maxResults)

	return r
}

func (r *SearchRequest) run(ctx context.Context, d *Dictionary, word string, maxResults int) {
	defer r.finish()
	defer r.cancel()

	body, err := d.client.Get(ctx, d.client.AllPagesURL(word))
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			r.setErr(err.Error())
		}
		return
	}

	titles, err := mediawiki.ParseAllPages(body)
	if err != nil {
		r.setErr(err.Error())
		return
	}
	if maxResults > 0 && len(titles) > maxResults {
		titles = titles[:maxResults]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		// Cancelled while the response was in flight; discard the late
		// completion.
		return
	}
	r.matches = titles
}

// Matches returns a snapshot of the matched titles, in the order the API
// returned them.
func (r *SearchRequest) Matches() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := make([]string, len(r.matches))
	copy(matches, r.matches)
	return matches
}
