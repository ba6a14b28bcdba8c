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

// Package toc builds nested table-of-contents markup from the flat,
// depth-annotated section list a MediaWiki parse response carries.
//
// Since the Wikipedia UI redesign the table of contents is no longer part of
// an article's HTML; the API reply marks the spot with an empty placeholder
// and reports the sections separately. Build reconstructs the classic
// Wiktionary-style nested list from that flat sequence.
package toc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadLevel indicates a section level that cannot be represented as nested
// list markup.
var ErrBadLevel = errors.New("bad section level")

// Section is one entry of the flat section list, in document order.
type Section struct {
	// Level is the raw toclevel attribute. The top level is "1".
	Level string

	// Anchor is the section's element id, suitable for lookup by id.
	Anchor string

	// LinkAnchor carries additional escaping appropriate for a URL fragment
	// and is the value to place in an href.
	LinkAnchor string

	// Number is the hierarchical section number, e.g. "7.1".
	Number string

	// Line is the section's display text.
	Line string
}

// header opens the ToC container. Double quotes are avoided so the generated
// markup nests cleanly inside attribute values should a host ever need that.
const header = "<div id='toc' class='toc' role='navigation' aria-labelledby='mw-toc-heading'>" +
	"<div class='toctitle'><h2 id='mw-toc-heading'>Contents</h2></div>"

// Build generates nested list markup for the given sections. An empty section
// list yields an empty string. A level that is not a positive integer, or
// that increases by more than one between consecutive sections, returns
// ErrBadLevel: such a sequence is not representable from a flat list without
// look-ahead.
func Build(sections []Section) (string, error) {
	if len(sections) == 0 {
		return "", nil
	}

	b := builder{}
	b.out.WriteString(header)

	for _, s := range sections {
		if err := b.openItem(s.Level); err != nil {
			return "", err
		}

		b.out.WriteString("<a href='#")
		b.out.WriteString(s.LinkAnchor)
		b.out.WriteString("'>")
		b.out.WriteString(s.Number)
		b.out.WriteByte(' ')
		b.out.WriteString(s.Line)
		b.out.WriteString("</a>")
	}

	b.closeItems(1)
	// Close the first-level list tag and the toc div tag.
	b.out.WriteString("</ul>\n</div>")

	return b.out.String(), nil
}

// builder tracks the currently open nesting depth while list markup is
// emitted. previous is 0 before any list has been opened.
type builder struct {
	out      strings.Builder
	previous int
}

// openItem opens the list item for a section at the given raw level,
// opening or closing list levels as needed.
func (b *builder) openItem(levelString string) error {
	level, err := strconv.Atoi(levelString)
	if err != nil {
		return fmt.Errorf("%w: not an integer: %q", ErrBadLevel, levelString)
	}
	if level <= 0 {
		return fmt.Errorf("%w: nonpositive level %d", ErrBadLevel, level)
	}
	if level > b.previous+1 {
		return fmt.Errorf("%w: increase by more than one: from %d to %d", ErrBadLevel, b.previous, level)
	}

	if level == b.previous+1 {
		// The previous list item tag stays open so the deeper level's list
		// nests inside it.
		b.out.WriteString("\n<ul>\n")
		b.previous = level
	} else {
		b.closeItems(level)
	}

	b.out.WriteString("<li>")
	return nil
}

// closeItems closes the open list item and any list levels deeper than
// level.
func (b *builder) closeItems(level int) {
	b.out.WriteString("</li>\n")
	for level < b.previous {
		b.out.WriteString("</ul>\n</li>\n")
		b.previous--
	}
}
