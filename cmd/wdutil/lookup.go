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

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wikidict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up a word's article",
	ArgsUsage: "WORD [ALTERNATE...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "site",
			Usage:   "only query the site with this id or `NAME`",
			Aliases: []string{"s"},
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "print the raw HTML fragment instead of text",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return fmt.Errorf("%w: expected a WORD argument", ErrWdutil)
		}
		word := c.Args().First()
		alts := c.Args().Slice()[1:]

		dicts, err := newDictionaries(c)
		if err != nil {
			return err
		}
		dicts = filterDictionaries(dicts, c.String("site"))
		if len(dicts) == 0 {
			return fmt.Errorf("%w: no site matches %q", ErrWdutil, c.String("site"))
		}

		// Issue all lookups up front; they run concurrently.
		requests := make([]*wikidict.ArticleRequest, len(dicts))
		for i, d := range dicts {
			requests[i] = d.LookupArticle(word, alts)
		}

		failed := false
		for i, d := range dicts {
			r := requests[i]
			<-r.Done()

			if errStr := r.Err(); errStr != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", d.Name(), errStr)
				if !r.HasAnyData() {
					failed = true
				}
			}
			if !r.HasAnyData() {
				continue
			}

			fmt.Fprintln(c.App.Writer, d.Name())
			fmt.Fprintln(c.App.Writer)
			if c.Bool("html") {
				fmt.Fprintln(c.App.Writer, string(r.Data()))
			} else {
				fmt.Fprintln(c.App.Writer, html2text.HTML2Text(string(r.Data())))
			}
			fmt.Fprintln(c.App.Writer)
		}

		if failed {
			os.Exit(1)
		}
		return nil
	},
}
