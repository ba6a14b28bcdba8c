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
	"sync"
)

// request is the state shared by all request handles. All in-flight
// transfers of a request run under a common context; cancelling the request
// cancels the context, which aborts the transfers and renders any late
// completion inert.
type request struct {
	mu sync.Mutex

	// errString is the last error observed. Errors are diagnostics, not
	// terminal: a failed variant never aborts its siblings.
	errString string

	// finished is set exactly once, on terminal state. Guarded by mu.
	finished bool

	done   chan struct{}
	cancel context.CancelFunc
}

func newRequest() request {
	return request{
		done: make(chan struct{}),
	}
}

// Err returns the last error observed, or the empty string. An error does
// not imply the request failed as a whole; content that did arrive is still
// available.
func (r *request) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errString
}

// Finished reports whether the request has reached its terminal state.
func (r *request) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}

// Done returns a channel that is closed when the request reaches its
// terminal state.
func (r *request) Done() <-chan struct{} {
	return r.done
}

// Cancel aborts all in-flight transfers and forces the request to its
// terminal state synchronously. Cancel is idempotent and produces no
// visible error.
func (r *request) Cancel() {
	r.finish()
	if r.cancel != nil {
		r.cancel()
	}
}

// finish transitions the request to its terminal state. It returns false if
// the request had already finished.
func (r *request) finish() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return false
	}
	r.finished = true
	close(r.done)
	return true
}

func (r *request) setErr(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Last error wins.
	r.errString = msg
}
