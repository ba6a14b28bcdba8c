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

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wikidict"
)

// sitesFile is the on-disk site list.
type sitesFile struct {
	Sites []wikidict.Site `yaml:"sites"`
}

// loadSites reads the site list named by the --config flag, falling back to
// the first config file found in the platform's config locations, and
// finally to a built-in default list.
func loadSites(c *cli.Context) ([]wikidict.Site, error) {
	path := c.String("config")
	if path == "" {
		for _, loc := range configLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path == "" {
		return defaultSites(), nil
	}

	var cfg sitesFile
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrWdutil, path, err)
	}

	for i := range cfg.Sites {
		if cfg.Sites[i].ID == "" {
			cfg.Sites[i].ID = uuid.NewString()
		}
	}

	return cfg.Sites, nil
}

// defaultSites is the site list used when no config file exists.
func defaultSites() []wikidict.Site {
	return []wikidict.Site{
		{
			ID:      "wikipedia-en",
			Name:    "English Wikipedia",
			URL:     "https://en.wikipedia.org/w",
			Enabled: true,
		},
		{
			ID:      "wiktionary-en",
			Name:    "English Wiktionary",
			URL:     "https://en.wiktionary.org/w",
			Enabled: true,
		},
	}
}

// newDictionaries instantiates dictionaries for the enabled configured
// sites, printing any per-site errors to stderr.
func newDictionaries(c *cli.Context) ([]*wikidict.Dictionary, error) {
	sites, err := loadSites(c)
	if err != nil {
		return nil, err
	}

	dicts, errs := wikidict.NewAll(sites, nil)
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
	if len(dicts) == 0 {
		return nil, fmt.Errorf("%w: no usable sites configured", ErrWdutil)
	}
	return dicts, nil
}
