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
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ianlewis/go-wikidict/internal/lang"
	"github.com/ianlewis/go-wikidict/mediawiki"
	"github.com/ianlewis/go-wikidict/rewrite"
)

// maxWordLength is the longest term a query is issued for. The remote API
// is certain to reject or time out on longer terms, so such lookups return
// an immediately-terminal empty result instead.
const maxWordLength = 80

// Site is one persisted dictionary site record.
type Site struct {
	// ID uniquely identifies the site to the host application.
	ID string `yaml:"id"`

	// Name is the site's display name.
	Name string `yaml:"name"`

	// URL is the site root the api.php endpoint lives under, e.g.
	// "https://en.wikipedia.org/w".
	URL string `yaml:"url"`

	// Icon is an opaque icon reference for the host to resolve.
	Icon string `yaml:"icon"`

	// Enabled records whether the site takes part in lookups.
	Enabled bool `yaml:"enabled"`
}

// Options are options for a Dictionary.
type Options struct {
	// Timeout is the maximum transfer duration of a single API call. If
	// zero, mediawiki.DefaultTimeout is used.
	Timeout time.Duration

	// HTTPClient overrides the transport used for API calls. If nil, a
	// client that tolerates invalid TLS certificates is used.
	HTTPClient *http.Client

	// Audio receives every recognized pronunciation audio link. If nil,
	// audio links are rewritten but not registered.
	Audio rewrite.AudioRegistry

	// Logger receives debug and degradation messages. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// Dictionary is one MediaWiki-compatible dictionary site. It is immutable
// after construction and safe for concurrent use; separate lookups can run
// at the same time.
type Dictionary struct {
	id   string
	name string
	url  string
	icon string

	// lang is the two-letter language code derived from the site URL, or
	// empty if none could be derived. The site is a monolingual gloss
	// source: source and target language are the same.
	lang string

	client      *mediawiki.Client
	transformer *rewrite.Transformer
	log         *slog.Logger
}

// New returns a Dictionary for the given site record. The site's Enabled
// flag is not consulted; use NewAll to instantiate a persisted site list.
func New(site Site, options *Options) (*Dictionary, error) {
	if options == nil {
		options = &Options{}
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	code := lang.CodeFromURL(site.URL)

	transformer, err := rewrite.New(site.URL, &rewrite.Options{
		RTL:     lang.IsRTL(code),
		Audio:   options.Audio,
		OwnerID: site.ID,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("dictionary %q: %w", site.Name, err)
	}

	return &Dictionary{
		id:   site.ID,
		name: site.Name,
		url:  site.URL,
		icon: site.Icon,
		lang: code,
		client: mediawiki.NewClient(site.URL, &mediawiki.Options{
			Timeout:    options.Timeout,
			HTTPClient: options.HTTPClient,
		}),
		transformer: transformer,
		log:         logger,
	}, nil
}

// NewAll instantiates dictionaries for all enabled sites in the list. It
// returns the successfully constructed dictionaries along with any errors
// that occurred.
func NewAll(sites []Site, options *Options) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	for _, site := range sites {
		if !site.Enabled {
			continue
		}
		d, err := New(site, options)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dicts = append(dicts, d)
	}
	return dicts, errs
}

// ID returns the site's identifier.
func (d *Dictionary) ID() string {
	return d.id
}

// Name returns the site's display name.
func (d *Dictionary) Name() string {
	return d.name
}

// URL returns the site root URL.
func (d *Dictionary) URL() string {
	return d.url
}

// Icon returns the site's icon reference.
func (d *Dictionary) Icon() string {
	return d.icon
}

// Lang returns the two-letter language code derived from the site URL, or
// the empty string if none could be derived. The code applies to both the
// headword and the gloss.
func (d *Dictionary) Lang() string {
	return d.lang
}
