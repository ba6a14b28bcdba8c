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

// Package wikidict implements online dictionary lookups against
// MediaWiki-compatible sites such as Wikipedia and Wiktionary mirrors.
//
// A Dictionary represents one configured site. Looking up a headword fans
// out one API query per spelling variant, merges the asynchronous
// completions back into submission order, deduplicates pages that several
// variants redirect to, and rewrites each article body into a portable,
// self-contained HTML fragment. Prefix title search against the same site
// is also supported.
//
// Both operations return request handles immediately. A handle exposes
// thread-safe snapshot reads of the data accumulated so far, an update
// notification channel, a done channel, and cancellation; consumers can
// begin rendering partial content while later variants are still in
// flight.
package wikidict
