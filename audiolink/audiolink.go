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

// Package audiolink implements a registry of pronunciation audio links.
//
// The article rewrite pipeline reports every recognized audio media URL it
// encounters. Hosts can use the registered links to offer a "pronounce"
// action for an endpoint; the returned markup fragment is embedded into the
// article in place of the raw link.
package audiolink

import (
	"html"
	"sync"
)

// Registry records audio links per owning endpoint. The zero value is ready
// to use. Registration is safe for concurrent use; separate lookups may run
// at the same time.
type Registry struct {
	mu    sync.Mutex
	links map[string][]string
}

// RegisterAndWrap records audioURL for the endpoint identified by ownerID
// and returns an embeddable play-control fragment for it. The fragment is
// self-contained: it references no external icon resources.
func (r *Registry) RegisterAndWrap(audioURL, ownerID string) string {
	r.mu.Lock()
	if r.links == nil {
		r.links = map[string][]string{}
	}
	r.links[ownerID] = append(r.links[ownerID], audioURL)
	r.mu.Unlock()

	escaped := html.EscapeString(audioURL)
	return `<a href="` + escaped + `" class="wikidict-audio" title="Play">&#x1F50A;</a>`
}

// Links returns a snapshot of the audio links registered for ownerID, in
// registration order.
func (r *Registry) Links(ownerID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	links := make([]string, len(r.links[ownerID]))
	copy(links, r.links[ownerID])
	return links
}
