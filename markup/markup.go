// Package markup turns tagged text such as
//
//	<a href="http://example.com">Hello</a> <b>World</b>
//
// into a rich.Text with one detection per element. Each element is
// styled from a StyleSheet keyed by tag name.
package markup

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rjkroege/richlabel/rich"
	"golang.org/x/net/html"
)

// ErrUnbalanced is returned for an end tag that does not close the
// innermost open element.
var ErrUnbalanced = errors.New("unbalanced end tag")

// Tuner adjusts the style of one element after the style sheet has
// been applied.
type Tuner func(s rich.Style, tag rich.Tag) rich.Style

// LinkTuner makes the href of an a element its link attribute.
func LinkTuner(s rich.Style, tag rich.Tag) rich.Style {
	if tag.Name != "a" {
		return s
	}
	if href, ok := tag.Attrs["href"]; ok {
		return s.Link(rich.Normal, href)
	}
	return s
}

// Doc is the result of parsing.
type Doc struct {
	Text  *rich.Text
	Links *LinkMap
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

type open struct {
	name  string
	start int // byte offset
	entry int
}

// Parse reads src, which may use HTML entities, and returns its text
// with a detection for every element that encloses some text, in the
// order the start tags appear. Elements still open at the end of src
// are closed there. An element whose edge falls inside a grapheme
// cluster, such as one holding only a combining mark, is widened to
// the whole cluster. A nil tuner leaves styles as the sheet has them.
func Parse(src string, sheet StyleSheet, tuner Tuner) (*Doc, error) {
	z := html.NewTokenizer(strings.NewReader(src))
	var (
		sb         strings.Builder
		entries    []rich.Entry
		byteRanges []rich.Range // offsets into sb of each entry
		stack      []open
	)
	closeTop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		byteRanges[top.entry] = rich.Range{Start: top.start, End: sb.Len()}
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("markup: %w", err)
			}
			for len(stack) > 0 {
				closeTop()
			}
			return build(sb.String(), entries, byteRanges)

		case html.TextToken:
			sb.Write(z.Text())

		case html.StartTagToken, html.SelfClosingTagToken:
			tag := readTag(z)
			if tag.Name == "br" {
				sb.WriteByte('\n')
			}
			if tt == html.SelfClosingTagToken || voidElements[tag.Name] {
				continue
			}
			style := sheet.Style(tag.Name)
			if tuner != nil {
				style = tuner(style, tag)
			}
			stack = append(stack, open{name: tag.Name, start: sb.Len(), entry: len(entries)})
			entries = append(entries, rich.Entry{
				Class: rich.TagClass(tag.Name, tag.Attrs),
				Style: style,
			})
			byteRanges = append(byteRanges, rich.Range{})

		case html.EndTagToken:
			name, _ := z.TagName()
			n := string(name)
			if voidElements[n] {
				continue
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("markup: %w: </%s> with nothing open", ErrUnbalanced, n)
			}
			if top := stack[len(stack)-1].name; top != n {
				return nil, fmt.Errorf("markup: %w: </%s> closes <%s>", ErrUnbalanced, n, top)
			}
			closeTop()
		}
	}
}

func readTag(z *html.Tokenizer) rich.Tag {
	name, more := z.TagName()
	tag := rich.Tag{Name: string(name)}
	for more {
		var k, v []byte
		k, v, more = z.TagAttr()
		if tag.Attrs == nil {
			tag.Attrs = make(map[string]string)
		}
		tag.Attrs[string(k)] = string(v)
	}
	return tag
}

// build converts the byte range of each entry to clusters of base and
// drops the entries that enclose no text.
func build(base string, entries []rich.Entry, byteRanges []rich.Range) (*Doc, error) {
	offs := rich.ClusterOffsets(base)
	kept := entries[:0]
	for i, e := range entries {
		b := byteRanges[i]
		if b.IsEmpty() {
			continue
		}
		// The cluster holding the first byte through the cluster
		// holding the last.
		e.Range.Start = sort.Search(len(offs), func(k int) bool { return offs[k] > b.Start }) - 1
		e.Range.End = sort.SearchInts(offs, b.End)
		kept = append(kept, e)
	}
	txt, err := rich.NewText(base, kept...)
	if err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	links := NewLinkMap()
	for _, d := range txt.Detections() {
		if v, ok := d.Style.Effective(rich.Normal).Get(rich.Link); ok {
			url, _ := v.Link()
			links.Add(d.Range, url)
		}
	}
	return &Doc{Text: txt, Links: links}, nil
}
