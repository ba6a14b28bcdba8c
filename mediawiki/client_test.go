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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClient_ParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		baseURL  string
		page     string
		expected string
	}{
		{
			name:    "simple",
			baseURL: "https://en.wikipedia.org/w",
			page:    "example",
			expected: "https://en.wikipedia.org/w/api.php?" +
				"action=parse&prop=text|revid|sections&format=xml&redirects&page=example",
		},
		{
			name:    "trailing slash trimmed",
			baseURL: "https://en.wikipedia.org/w/",
			page:    "example",
			expected: "https://en.wikipedia.org/w/api.php?" +
				"action=parse&prop=text|revid|sections&format=xml&redirects&page=example",
		},
		{
			name:    "space escaped",
			baseURL: "https://en.wikipedia.org/w",
			page:    "two words",
			expected: "https://en.wikipedia.org/w/api.php?" +
				"action=parse&prop=text|revid|sections&format=xml&redirects&page=two+words",
		},
		{
			name:    "plus escaped",
			baseURL: "https://en.wikipedia.org/w",
			page:    "C++",
			expected: "https://en.wikipedia.org/w/api.php?" +
				"action=parse&prop=text|revid|sections&format=xml&redirects&page=C%2B%2B",
		},
		{
			name:    "non-ascii escaped",
			baseURL: "https://de.wiktionary.org/w",
			page:    "schön",
			expected: "https://de.wiktionary.org/w/api.php?" +
				"action=parse&prop=text|revid|sections&format=xml&redirects&page=sch%C3%B6n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := NewClient(test.baseURL, nil)
			if got := c.ParseURL(test.page); got != test.expected {
				t.Errorf("ParseURL(%q) = %q, want %q", test.page, got, test.expected)
			}
		})
	}
}

func TestClient_AllPagesURL(t *testing.T) {
	t.Parallel()

	c := NewClient("https://en.wikipedia.org/w", nil)

	expected := "https://en.wikipedia.org/w/api.php?" +
		"action=query&list=allpages&aplimit=40&format=xml&apfrom=exa"
	if got := c.AllPagesURL("exa"); got != expected {
		t.Errorf("AllPagesURL = %q, want %q", got, expected)
	}
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<api/>"))
		}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, nil)

	body, err := c.Get(context.Background(), server.URL+"/api.php")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff("<api/>", string(body)); diff != "" {
		t.Fatalf("Get (-want, +got):\n%s", diff)
	}
}

func TestClient_Get_httpError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, nil)

	if _, err := c.Get(context.Background(), server.URL+"/api.php"); err == nil {
		t.Fatal("Get: expected error, got nil")
	}
}

func TestClient_Get_canceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
	t.Cleanup(server.Close)

	c := NewClient(server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Get(ctx, server.URL+"/api.php"); err == nil {
		t.Fatal("Get: expected error, got nil")
	}
}
