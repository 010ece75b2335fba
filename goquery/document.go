// Package goquery implements the ktorrent extractors on top of
// github.com/PuerkitoBio/goquery. Documents are parsed by
// golang.org/x/net/html, which recovers from malformed markup the way
// browsers do and decodes entities in text and attribute values.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ktorrent"
)

// Document is a parsed HTML page.
type Document = goquery.Document

// NewDocument parses html into a Document.
func NewDocument(html string) (*Document, error) {
	return NewDocumentFromReader(strings.NewReader(html))
}

// NewDocumentFromReader parses the HTML read from r into a Document.
// Returns EMALFORMED if the input cannot be read or parsed.
func NewDocumentFromReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, ktorrent.Errorf(ktorrent.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
