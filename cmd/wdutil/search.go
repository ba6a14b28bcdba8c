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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wikidict"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "Search page titles by prefix",
	ArgsUsage: "TERM",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "site",
			Usage:   "only search the site with this id or `NAME`",
			Aliases: []string{"s"},
		},
		&cli.IntFlag{
			Name:    "max-results",
			Usage:   "show at most `N` titles per site",
			Aliases: []string{"n"},
			Value:   20,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one TERM argument", ErrWdutil)
		}
		term := c.Args().First()

		dicts, err := newDictionaries(c)
		if err != nil {
			return err
		}
		dicts = filterDictionaries(dicts, c.String("site"))
		if len(dicts) == 0 {
			return fmt.Errorf("%w: no site matches %q", ErrWdutil, c.String("site"))
		}

		// Issue all searches up front; they run concurrently.
		requests := make([]*wikidict.SearchRequest, len(dicts))
		for i, d := range dicts {
			requests[i] = d.SearchPrefix(term, c.Int("max-results"))
		}

		tbl := table.New("SITE", "TITLE")
		tbl.WithWriter(c.App.Writer)

		failed := false
		for i, d := range dicts {
			r := requests[i]
			<-r.Done()
			if errStr := r.Err(); errStr != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", d.Name(), errStr)
				failed = true
				continue
			}
			for _, title := range r.Matches() {
				tbl.AddRow(d.Name(), title)
			}
		}
		tbl.Print()

		if failed {
			os.Exit(1)
		}
		return nil
	},
}
