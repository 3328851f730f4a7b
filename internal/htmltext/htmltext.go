// Package htmltext converts HTML pages and fragments into plain text.
package htmltext

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// Page is the readable part of an HTML document.
type Page struct {
	Title string
	Text  string
}

var (
	spacesRe  = regexp.MustCompile(`[ \t\f\r\v\x{00a0}]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

const blockSelector = "p,li,h1,h2,h3,h4,h5,h6,div,tr,section,article,ul,ol,dd,dt,blockquote"

// Extract decodes r to UTF-8 using contentType and meta tags, drops
// non-content elements and returns the text with one line per block.
func Extract(r io.Reader, contentType string) (Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Page{}, err
	}

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return Page{}, err
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return Page{}, err
	}

	doc.Find("script,noscript,style,template,svg,nav,footer,form,iframe").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).AppendHtml("\n")

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	return Page{Title: title, Text: Clean(root.Text())}, nil
}

// FromFragment converts an HTML fragment such as a vacancy description.
func FromFragment(fragment string) (string, error) {
	page, err := Extract(strings.NewReader(fragment), "text/html; charset=utf-8")
	if err != nil {
		return "", err
	}
	return page.Text, nil
}

// Clean collapses horizontal whitespace, trims every line and squeezes
// blank line runs.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spacesRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
