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

package mediawiki

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"

	"github.com/ianlewis/go-wikidict/toc"
)

// NoPageRevID is the revision id the API reports for a page that does not
// exist.
const NoPageRevID = "0"

// ParseError is a malformed XML envelope error with position detail.
type ParseError struct {
	Msg    string
	Line   int
	Column int
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("XML parse error: %s at %d,%d", e.Msg, e.Line, e.Column)
}

// Article is the payload of one action=parse response.
type Article struct {
	// RevID is the raw revision id attribute. It equals NoPageRevID when
	// the requested page does not exist.
	RevID string

	// Text is the rendered article body fragment. HasText distinguishes a
	// missing text node from an empty one.
	Text    string
	HasText bool

	// Sections is the flat section list, in document order. HasSections
	// distinguishes an absent sections element from an empty one.
	Sections    []toc.Section
	HasSections bool

	pageID string
}

// PageID returns the article's numeric page id, or 0 if the attribute is
// missing or malformed.
func (a *Article) PageID() int64 {
	id, err := strconv.ParseInt(a.pageID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

type articleEnvelope struct {
	XMLName xml.Name      `xml:"api"`
	Parse   *articleParse `xml:"parse"`
}

type articleParse struct {
	RevID    string       `xml:"revid,attr"`
	PageID   string       `xml:"pageid,attr"`
	Text     *string      `xml:"text"`
	Sections *sectionList `xml:"sections"`
}

type sectionList struct {
	S []sectionEntry `xml:"s"`
}

// sectionEntry is one child of the sections element. A typical example:
//
//	<s linkAnchor="Marginal_densities" toclevel="2" level="3"
//	   line="Marginal densities" anchor="Marginal_densities" number="7.1"/>
type sectionEntry struct {
	TocLevel   string `xml:"toclevel,attr"`
	Anchor     string `xml:"anchor,attr"`
	LinkAnchor string `xml:"linkAnchor,attr"`
	Number     string `xml:"number,attr"`
	Line       string `xml:"line,attr"`
}

// ParseArticle decodes an action=parse response envelope. It returns nil
// without error when the envelope is well-formed but carries no parse node;
// that is the expected outcome for a miss, not an error.
func ParseArticle(data []byte) (*Article, error) {
	var envelope articleEnvelope
	if err := decode(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Parse == nil {
		return nil, nil
	}

	article := &Article{
		RevID:  envelope.Parse.RevID,
		pageID: envelope.Parse.PageID,
	}
	if envelope.Parse.Text != nil {
		article.Text = *envelope.Parse.Text
		article.HasText = true
	}
	if envelope.Parse.Sections != nil {
		article.HasSections = true
		for _, s := range envelope.Parse.Sections.S {
			article.Sections = append(article.Sections, toc.Section{
				Level:      s.TocLevel,
				Anchor:     s.Anchor,
				LinkAnchor: s.LinkAnchor,
				Number:     s.Number,
				Line:       s.Line,
			})
		}
	}
	return article, nil
}

type allPagesEnvelope struct {
	XMLName xml.Name      `xml:"api"`
	Query   *allPagesNode `xml:"query"`
}

type allPagesNode struct {
	AllPages *pageList `xml:"allpages"`
}

type pageList struct {
	P []pageEntry `xml:"p"`
}

type pageEntry struct {
	Title string `xml:"title,attr"`
}

// ParseAllPages decodes a list=allpages response envelope and returns the
// page titles in response order. A well-formed envelope without an allpages
// node yields no titles and no error.
func ParseAllPages(data []byte) ([]string, error) {
	var envelope allPagesEnvelope
	if err := decode(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Query == nil || envelope.Query.AllPages == nil {
		return nil, nil
	}

	var titles []string
	for _, p := range envelope.Query.AllPages.P {
		titles = append(titles, p.Title)
	}
	return titles, nil
}

// decode unmarshals an XML envelope, mapping failures to ParseError with
// line and column detail.
func decode(data []byte, v any) error {
	d := xml.NewDecoder(bytes.NewReader(data))
	err := d.Decode(v)
	if err == nil {
		return nil
	}

	line, column := position(data, d.InputOffset())
	msg := err.Error()
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		msg = syntaxErr.Msg
		line = syntaxErr.Line
	}
	return &ParseError{Msg: msg, Line: line, Column: column}
}

// position converts a byte offset into 1-based line and column numbers.
func position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	column = int(offset) - bytes.LastIndexByte(head, '\n')
	return line, column
}
