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

// Package rewrite converts the HTML fragment of a MediaWiki parse response
// into a portable, self-contained article fragment.
//
// The conversion is an ordered pipeline of full-text scan-and-replace
// passes: internal links are rewritten, relative and scheme-relative URLs
// are made absolute, audio elements are replaced with play controls, and a
// table of contents is synthesized when the API omitted it from the body.
// Pass ordering is significant; each pass's output is the next pass's
// input, and the passes are written so that running the pipeline on its own
// output changes nothing.
package rewrite

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/ianlewis/go-wikidict/toc"
)

// emptyTocIndicator marks the spot where the API omitted table of contents
// markup from the article body.
const emptyTocIndicator = `<meta property="mw:PageProp/toc" />`

// playControl is the self-contained play icon substituted for audio
// elements.
const playControl = `<span class="wikidict-play" title="Play">&#x25B6;</span>`

// AudioRegistry registers pronunciation audio links, returning an
// embeddable play-control fragment. Implementations must be safe for
// concurrent registration; separate lookups run at the same time.
type AudioRegistry interface {
	RegisterAndWrap(audioURL, ownerID string) string
}

var (
	reInternalLink  = regexp.MustCompile(`<a\s+href="/([^"]+)"`)
	reIndexPHP      = regexp.MustCompile(`<a\shref="(/(?:\w*/)*index.php\?)`)
	reAudioElement  = regexp.MustCompile(`(?is)<audio\s.+?</audio>`)
	reAudioSource   = regexp.MustCompile(`(?i)<source\s+src="([^"]+)`)
	reAudioFileLink = regexp.MustCompile(`<a\s+href="(//upload\.wikimedia\.org/wikipedia/[^"'&]*\.og[ga](?:\.mp3|))"`)
	reBareLink      = regexp.MustCompile(`<a\s+href="[^/:">#]+`)
	reFileLink      = regexp.MustCompile(`(?i)<a\s+href="([^:/"]*file%3A[^/"]+")`)
	reSrcset        = regexp.MustCompile(` srcset\s*=\s*"/[^"]+"`)
)

// Options are options for a Transformer.
type Options struct {
	// RTL wraps output in a right-to-left container.
	RTL bool

	// Audio receives every recognized audio media link. If nil, audio
	// links are still rewritten but no play control is embedded.
	Audio AudioRegistry

	// OwnerID identifies the owning endpoint to the audio registry.
	OwnerID string

	// Logger receives warnings about degradations such as an aborted
	// table of contents. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Input is one fetched article body plus its section metadata.
type Input struct {
	// Text is the raw article body fragment.
	Text string

	// Sections is the flat section list accompanying the response.
	// HasSections distinguishes an absent section list from an empty one.
	Sections    []toc.Section
	HasSections bool
}

// Transformer rewrites article fragments fetched from one site.
type Transformer struct {
	baseURL string // full site URL, e.g. https://en.wiktionary.org/w
	scheme  string // e.g. https
	root    string // site root without trailing slash, e.g. https://en.wiktionary.org
	rtl     bool
	audio   AudioRegistry
	ownerID string
	log     *slog.Logger
}

// New returns a Transformer for articles fetched from the site rooted at
// baseURL.
func New(baseURL string, options *Options) (*Transformer, error) {
	if options == nil {
		options = &Options{}
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing site URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("site URL %q missing scheme or host", baseURL)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Transformer{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		scheme:  u.Scheme,
		root:    u.Scheme + "://" + u.Host,
		rtl:     options.RTL,
		audio:   options.Audio,
		ownerID: options.OwnerID,
		log:     logger,
	}, nil
}

// Transform runs the full rewrite pipeline over one article and returns the
// finished fragment wrapped in a directional container.
func (t *Transformer) Transform(in Input) []byte {
	article := in.Text

	article = t.rewriteInternalLinks(article)
	article = t.absolutizeIndexPHP(article)
	article = t.replaceAudioElements(article)
	article = t.rewriteAudioFileLinks(article)
	article = t.fixSchemeRelativeURLs(article)
	article = t.absolutizeSrc(article)
	article = stripWikiPrefix(article)
	article = normalizeUnderscores(article)
	article = t.repairFileLinks(article)
	article = t.fixSrcset(article)
	// The ToC goes in last: the generated markup needs no rewriting, and
	// earlier passes would only waste time scanning it.
	article = t.insertTableOfContents(article, in)

	open := `<div class="mwiki">`
	if t.rtl {
		open = `<div class="mwiki" dir="rtl">`
	}

	out := make([]byte, 0, len(open)+len(article)+len("</div>"))
	out = append(out, open...)
	out = append(out, article...)
	out = append(out, "</div>"...)
	return out
}

// rewriteInternalLinks percent-encodes colons in root-relative link targets
// and relocates any #fragment into a gdanchor query parameter. Fragment
// navigation stops working once the fragment is embedded elsewhere, so deep
// links ride along as a query parameter instead. Scheme-qualified targets
// are left untouched.
func (t *Transformer) rewriteInternalLinks(article string) string {
	matches := reInternalLink.FindAllStringSubmatchIndex(article, -1)
	if matches == nil {
		return article
	}

	var b strings.Builder
	b.Grow(len(article))
	pos := 0
	for _, m := range matches {
		b.WriteString(article[pos:m[0]])
		pos = m[1]

		link := article[m[2]:m[3]]
		if strings.Contains(link, "://") {
			// External link.
			b.WriteString(article[m[0]:m[1]])
			continue
		}

		// Colons collide with wiki namespace syntax once the link is
		// re-resolved by title.
		link = strings.ReplaceAll(link, ":", "%3A")

		if n := strings.Index(link[1:], "#"); n >= 0 {
			n++
			anchor := strings.ReplaceAll(link[n+1:], "_", "%5F")
			link = link[:n] + "?gdanchor=" + anchor
		}

		b.WriteString(`<a href="/`)
		b.WriteString(link)
		b.WriteString(`"`)
	}
	b.WriteString(article[pos:])
	return b.String()
}

// absolutizeIndexPHP makes relative index.php links absolute against the
// site root.
func (t *Transformer) absolutizeIndexPHP(article string) string {
	return reIndexPHP.ReplaceAllString(article, `<a href="`+t.root+`${1}`)
}

// replaceAudioElements replaces each audio element with a play control
// linking to the first inner source. An audio element without a source is
// left untouched.
func (t *Transformer) replaceAudioElements(article string) string {
	matches := reAudioElement.FindAllStringIndex(article, -1)
	if matches == nil {
		return article
	}

	var b strings.Builder
	b.Grow(len(article))
	pos := 0
	for _, m := range matches {
		b.WriteString(article[pos:m[0]])
		pos = m[1]

		tag := article[m[0]:m[1]]
		sm := reAudioSource.FindStringSubmatch(tag)
		if sm == nil {
			b.WriteString(tag)
			continue
		}

		b.WriteString(`<a href="`)
		b.WriteString(sm[1])
		b.WriteString(`">`)
		b.WriteString(playControl)
		b.WriteString(`</a>`)
	}
	b.WriteString(article[pos:])
	return b.String()
}

// rewriteAudioFileLinks registers Wikimedia-hosted audio file links with the
// audio registry and rewrites their scheme-relative targets to be
// scheme-qualified.
func (t *Transformer) rewriteAudioFileLinks(article string) string {
	matches := reAudioFileLink.FindAllStringSubmatchIndex(article, -1)
	if matches == nil {
		return article
	}

	var b strings.Builder
	b.Grow(len(article))
	pos := 0
	for _, m := range matches {
		b.WriteString(article[pos:m[0]])
		pos = m[1]

		ref := t.scheme + ":" + article[m[2]:m[3]]
		if t.audio != nil {
			b.WriteString(t.audio.RegisterAndWrap(ref, t.ownerID))
		}
		b.WriteString(`<a href="`)
		b.WriteString(ref)
		b.WriteString(`"`)
	}
	b.WriteString(article[pos:])
	return b.String()
}

// fixSchemeRelativeURLs prefixes scheme-relative src, href and CSS url()
// references with the site's scheme. Scheme-relative URLs are meaningless
// once content is detached from a browsing context.
func (t *Transformer) fixSchemeRelativeURLs(article string) string {
	article = strings.ReplaceAll(article, ` src="//`, ` src="`+t.scheme+`://`)
	article = strings.ReplaceAll(article, ` href="//`, ` href="`+t.scheme+`://`)
	article = strings.ReplaceAll(article, `url("//`, `url("`+t.scheme+`://`)
	return article
}

// absolutizeSrc makes root-relative src attributes absolute against the
// site root.
func (t *Transformer) absolutizeSrc(article string) string {
	return strings.ReplaceAll(article, `src="/`, `src="`+t.root+`/`)
}

// stripWikiPrefix drops the literal /wiki/ prefix from links; the target is
// re-resolved by article title.
func stripWikiPrefix(article string) string {
	return strings.ReplaceAll(article, `<a href="/wiki/`, `<a href="`)
}

// normalizeUnderscores replaces underscores with spaces in bare title
// links. Wiki storage uses underscores for spaces in titles, which is
// redundant here since the target is re-resolved by title.
func normalizeUnderscores(article string) string {
	matches := reBareLink.FindAllStringIndex(article, -1)
	if matches == nil {
		return article
	}

	b := []byte(article)
	for _, m := range matches {
		// Skip the fixed-width `<a href="` prefix of the match.
		for i := m[0] + 9; i < m[1]; i++ {
			if b[i] == '_' {
				b[i] = ' '
			}
		}
	}
	return string(b)
}

// repairFileLinks rewrites percent-encoded File: namespace targets to the
// site's index.php form; direct file-namespace paths are not servable.
func (t *Transformer) repairFileLinks(article string) string {
	return reFileLink.ReplaceAllString(article, `<a href="`+t.baseURL+`/index.php?title=${1}`)
}

// fixSrcset reapplies the scheme-relative fix to every URL inside a srcset
// attribute value.
func (t *Transformer) fixSrcset(article string) string {
	return reSrcset.ReplaceAllStringFunc(article, func(srcset string) string {
		return strings.ReplaceAll(srcset, "//", t.scheme+"://")
	})
}

// insertTableOfContents expands the empty-ToC placeholder from the section
// list. A malformed section sequence or a response without section data
// degrades to leaving the placeholder unexpanded.
func (t *Transformer) insertTableOfContents(article string, in Input) string {
	pos := strings.Index(article, emptyTocIndicator)
	if pos < 0 {
		// The ToC is absent or nonempty.
		return article
	}

	if !in.HasSections {
		t.log.Warn("empty table of contents and missing sections element")
		return article
	}

	markup, err := toc.Build(in.Sections)
	if err != nil {
		t.log.Warn("generating table of contents", "error", err)
		return article
	}

	return article[:pos] + markup + article[pos+len(emptyTocIndicator):]
}
