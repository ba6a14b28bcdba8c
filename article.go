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

	"github.com/ianlewis/go-wikidict/internal/pageset"
	"github.com/ianlewis/go-wikidict/mediawiki"
	"github.com/ianlewis/go-wikidict/rewrite"
)

// subQuery is one in-flight transfer for a single term variant. Its result
// channel is buffered so a completion delivered after cancellation parks
// there instead of leaking the fetch goroutine.
type subQuery struct {
	word   string
	result chan fetchResult
}

type fetchResult struct {
	body []byte
	err  error
}

// ArticleRequest accumulates the article bodies for a headword and its
// alternate spellings. Content is appended in submission order (headword
// first, then alternates in input order) regardless of network completion
// order, and each page appears at most once.
type ArticleRequest struct {
	request

	d *Dictionary

	// data and hasAnyData are guarded by request.mu; a consumer may read a
	// snapshot while the collector is still appending.
	data       []byte
	hasAnyData bool

	// pages filters out duplicate articles when the headword and an
	// alternate redirect to the same page. Only the collector touches it.
	pages pageset.Set

	updates chan struct{}
}

// LookupArticle requests the article for the given headword and its
// alternate spellings. All queries are issued immediately; the returned
// handle accumulates results as they are merged.
func (d *Dictionary) LookupArticle(word string, alts []string) *ArticleRequest {
	r := &ArticleRequest{
		request: newRequest(),
		d:       d,
		updates: make(chan struct{}, 1),
	}

	if utf8.RuneCountInString(word) > maxWordLength {
		// Excessively large queries are fruitless anyway.
		r.finish()
		return r
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	terms := make([]string, 0, len(alts)+1)
	terms = append(terms, word)
	terms = append(terms, alts...)

	queries := make([]*subQuery, len(terms))
	for i, term := range terms {
		queries[i] = d.startQuery(ctx, term)
	}

	go r.collect(ctx, queries)

	return r
}

// startQuery begins one transfer and returns its subQuery.
func (d *Dictionary) startQuery(ctx context.Context, word string) *subQuery {
	q := &subQuery{
		word:   word,
		result: make(chan fetchResult, 1),
	}

	d.log.Debug("requesting article", "site", d.name, "word", word)

	go func() {
		body, err := d.client.Get(ctx, d.client.ParseURL(word))
		q.result <- fetchResult{body: body, err: err}
	}()

	return q
}

// collect merges completions in submission order: the front of the queue is
// always consumed first, so the headword's article appears before any
// alternate's even when an alternate's transfer returns faster. collect is
// the only goroutine that mutates the request, which keeps the merge free
// of internal locking.
func (r *ArticleRequest) collect(ctx context.Context, queries []*subQuery) {
	defer r.finish()
	defer r.cancel()

	for _, q := range queries {
		select {
		case <-ctx.Done():
			return
		case res := <-q.result:
			r.consume(q.word, res)
		}
	}
}

// consume processes one completed subQuery. A failed variant records a
// diagnostic and contributes nothing; it never aborts its siblings.
func (r *ArticleRequest) consume(word string, res fetchResult) {
	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			return
		}
		r.setErr(res.err.Error())
		return
	}

	article, err := mediawiki.ParseArticle(res.body)
	if err != nil {
		r.setErr(err.Error())
		return
	}
	if article == nil || article.RevID == mediawiki.NoPageRevID {
		// No such page. Expected for a nonexistent alternate spelling.
		r.d.log.Debug("no page", "site", r.d.name, "word", word)
		return
	}

	if !r.pages.Insert(article.PageID()) {
		// Don't show the same article more than once.
		return
	}

	if !article.HasText {
		return
	}

	body := r.d.transformer.Transform(rewrite.Input{
		Text:        article.Text,
		Sections:    article.Sections,
		HasSections: article.HasSections,
	})

	if r.append(body) {
		r.notifyUpdate()
	}
}

// append adds one transformed article to the output buffer. It returns
// false if the request was cancelled in the meantime.
func (r *ArticleRequest) append(body []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return false
	}
	r.data = append(r.data, body...)
	r.hasAnyData = true
	return true
}

// notifyUpdate signals that more bytes are available. Notifications are
// coalesced; a consumer that missed several still observes a single pending
// update.
func (r *ArticleRequest) notifyUpdate() {
	select {
	case r.updates <- struct{}{}:
	default:
	}
}

// Data returns a snapshot of the bytes accumulated so far. The buffer is
// append-only; it is safe to read while more content may still arrive.
func (r *ArticleRequest) Data() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return data
}

// HasAnyData reports whether any article content has been appended.
func (r *ArticleRequest) HasAnyData() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasAnyData
}

// Updates returns a channel that receives a notification each time new
// bytes are appended.
func (r *ArticleRequest) Updates() <-chan struct{} {
	return r.updates
}
