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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wikidict"
	"github.com/ianlewis/go-wikidict/internal/lang"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List configured dictionary sites",
	Action: func(c *cli.Context) error {
		sites, err := loadSites(c)
		if err != nil {
			return err
		}

		tbl := table.New("ID", "NAME", "URL", "LANG", "ENABLED")
		tbl.WithWriter(c.App.Writer)
		for _, site := range sites {
			tbl.AddRow(site.ID, site.Name, site.URL, lang.CodeFromURL(site.URL), site.Enabled)
		}
		tbl.Print()

		return nil
	},
}

// filterDictionaries returns the dictionaries whose site id or name
// matches, or all dictionaries when name is empty.
func filterDictionaries(dicts []*wikidict.Dictionary, name string) []*wikidict.Dictionary {
	if name == "" {
		return dicts
	}
	var matched []*wikidict.Dictionary
	for _, d := range dicts {
		if d.ID() == name || d.Name() == name {
			matched = append(matched, d)
		}
	}
	return matched
}
