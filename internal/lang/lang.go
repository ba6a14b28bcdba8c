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

// Package lang implements language-code heuristics for wiki site URLs.
package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// rtlScripts are the ISO 15924 codes of right-to-left scripts.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
	"Yezi": true,
}

// CodeFromURL extracts a two-letter language code from a wiki site URL.
// Sites of the major wiki farms carry the language as the first subdomain,
// e.g. "https://en.wikipedia.org/w". The code is accepted when the two
// characters before the first "." either start the URL or directly follow a
// "/". CodeFromURL returns the empty string if no code can be extracted.
func CodeFromURL(rawURL string) string {
	n := strings.Index(rawURL, ".")
	if n != 2 && !(n > 3 && rawURL[n-3] == '/') {
		return ""
	}

	code := strings.ToLower(rawURL[n-2 : n])
	if !isASCIILetters(code) {
		return ""
	}
	if _, err := language.Parse(code); err != nil {
		return ""
	}
	return code
}

// IsRTL reports whether the given two-letter language code denotes a language
// written in a right-to-left script. The script is inferred from the language
// tag; an empty or unparsable code is never right-to-left.
func IsRTL(code string) bool {
	if code == "" {
		return false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	script, _ := tag.Script()
	return rtlScripts[script.String()]
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
