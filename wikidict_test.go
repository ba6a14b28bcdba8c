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
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	d, err := New(Site{
		ID:   "wikipedia-en",
		Name: "English Wikipedia",
		URL:  "https://en.wikipedia.org/w",
		Icon: "wikipedia.png",
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if want, got := "wikipedia-en", d.ID(); want != got {
		t.Errorf("ID() = %q, want %q", got, want)
	}
	if want, got := "English Wikipedia", d.Name(); want != got {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if want, got := "https://en.wikipedia.org/w", d.URL(); want != got {
		t.Errorf("URL() = %q, want %q", got, want)
	}
	if want, got := "wikipedia.png", d.Icon(); want != got {
		t.Errorf("Icon() = %q, want %q", got, want)
	}
	if want, got := "en", d.Lang(); want != got {
		t.Errorf("Lang() = %q, want %q", got, want)
	}
}

func TestNew_badURL(t *testing.T) {
	t.Parallel()

	if _, err := New(Site{Name: "bad", URL: "en.wikipedia.org/w"}, nil); err == nil {
		t.Fatal("New: expected error, got nil")
	}
}

func TestNewAll(t *testing.T) {
	t.Parallel()

	sites := []Site{
		{ID: "a", Name: "A", URL: "https://en.wikipedia.org/w", Enabled: true},
		{ID: "b", Name: "B", URL: "https://en.wiktionary.org/w", Enabled: false},
		{ID: "c", Name: "C", URL: "no-scheme", Enabled: true},
		{ID: "d", Name: "D", URL: "https://ru.wikipedia.org/w", Enabled: true},
	}

	dicts, errs := NewAll(sites, nil)

	if want, got := 2, len(dicts); want != got {
		t.Fatalf("len(dicts) = %d, want %d", got, want)
	}
	if want, got := "a", dicts[0].ID(); want != got {
		t.Errorf("dicts[0].ID() = %q, want %q", got, want)
	}
	if want, got := "d", dicts[1].ID(); want != got {
		t.Errorf("dicts[1].ID() = %q, want %q", got, want)
	}
	if want, got := 1, len(errs); want != got {
		t.Fatalf("len(errs) = %d, want %d", got, want)
	}
}
