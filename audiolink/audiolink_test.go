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

package audiolink

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RegisterAndWrap(t *testing.T) {
	t.Parallel()

	r := &Registry{}

	control := r.RegisterAndWrap("https://example.com/a.ogg", "site-1")
	if !strings.Contains(control, `href="https://example.com/a.ogg"`) {
		t.Errorf("RegisterAndWrap: control does not link the audio URL: %q", control)
	}

	r.RegisterAndWrap("https://example.com/b.ogg", "site-1")
	r.RegisterAndWrap("https://example.com/c.ogg", "site-2")

	expected := []string{
		"https://example.com/a.ogg",
		"https://example.com/b.ogg",
	}
	if diff := cmp.Diff(expected, r.Links("site-1")); diff != "" {
		t.Errorf("Links(site-1) (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"https://example.com/c.ogg"}, r.Links("site-2")); diff != "" {
		t.Errorf("Links(site-2) (-want, +got):\n%s", diff)
	}
	if links := r.Links("unknown"); len(links) != 0 {
		t.Errorf("Links(unknown) = %v, want none", links)
	}
}

func TestRegistry_snapshot(t *testing.T) {
	t.Parallel()

	r := &Registry{}
	r.RegisterAndWrap("https://example.com/a.ogg", "site-1")

	links := r.Links("site-1")
	r.RegisterAndWrap("https://example.com/b.ogg", "site-1")

	// The earlier snapshot is unaffected by later registration.
	if diff := cmp.Diff([]string{"https://example.com/a.ogg"}, links); diff != "" {
		t.Errorf("Links snapshot (-want, +got):\n%s", diff)
	}
}

func TestRegistry_concurrent(t *testing.T) {
	t.Parallel()

	r := &Registry{}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				r.RegisterAndWrap(fmt.Sprintf("https://example.com/%d-%d.ogg", i, j), "site-1")
			}
		}()
	}
	wg.Wait()

	if want, got := 1000, len(r.Links("site-1")); want != got {
		t.Errorf("len(Links) = %d, want %d", got, want)
	}
}
