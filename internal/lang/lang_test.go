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

package lang

import (
	"testing"
)

func TestCodeFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url      string
		expected string
	}{
		{"https://en.wikipedia.org/w", "en"},
		{"https://ru.wiktionary.org/w", "ru"},
		{"https://ar.wikipedia.org/w", "ar"},
		{"en.wikipedia.org", "en"},
		{"https://wikipedia.org/w", ""},
		{"https://meta.wikimedia.org/w", ""},
		{"https://12.wikipedia.org/w", ""},
		{"", ""},
		{"no-dots-here", ""},
	}

	for _, test := range tests {
		t.Run(test.url, func(t *testing.T) {
			t.Parallel()

			if got := CodeFromURL(test.url); got != test.expected {
				t.Errorf("CodeFromURL(%q) = %q, want %q", test.url, got, test.expected)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		expected bool
	}{
		{"ar", true},
		{"he", true},
		{"fa", true},
		{"ur", true},
		{"en", false},
		{"ru", false},
		{"ja", false},
		{"", false},
		{"zz", false},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			t.Parallel()

			if got := IsRTL(test.code); got != test.expected {
				t.Errorf("IsRTL(%q) = %v, want %v", test.code, got, test.expected)
			}
		})
	}
}
