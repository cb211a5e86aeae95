// Package xml provides a streaming implementation of t2e.Extractor that
// lists the names of live templates in a template-set XML document.
package xml

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultElement is the element whose start tags are collected.
	DefaultElement = "template"

	// DefaultAttribute is the attribute read from each collected tag.
	DefaultAttribute = "name"
)

// Ensure TemplateExtractor implements t2e.Extractor at compile time.
var _ t2e.Extractor = (*TemplateExtractor)(nil)

// TemplateExtractor scans XML start tags and returns the decoded value of
// one attribute per matching element. It never builds a document tree.
type TemplateExtractor struct {
	element       string
	attribute     string
	charsetReader func(label string, input io.Reader) (io.Reader, error)
}

// Option configures a TemplateExtractor.
type Option func(*TemplateExtractor)

// WithElement sets the element name to match.
// Defaults to DefaultElement if not specified.
func WithElement(name string) Option {
	return func(e *TemplateExtractor) {
		e.element = name
	}
}

// WithAttribute sets the attribute to read from matching elements.
// Defaults to DefaultAttribute if not specified.
func WithAttribute(name string) Option {
	return func(e *TemplateExtractor) {
		e.attribute = name
	}
}

// WithDeclaredEncoding decodes the input from the encoding named in its XML
// declaration. Only use it for raw file content; text from the clipboard or
// a terminal is already UTF-8 whatever the declaration says.
func WithDeclaredEncoding() Option {
	return func(e *TemplateExtractor) {
		e.charsetReader = charset.NewReaderLabel
	}
}

// NewTemplateExtractor creates a TemplateExtractor.
// By default the input is read as UTF-8 and the declared encoding is ignored.
func NewTemplateExtractor(opts ...Option) *TemplateExtractor {
	e := &TemplateExtractor{
		element:       DefaultElement,
		attribute:     DefaultAttribute,
		charsetReader: passThrough,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the attribute values of every matching start tag in
// document order. Self-closing tags count as start tags. End tags are not
// checked against their start tags.
//
// Element and attribute names are compared as written, so a prefixed
// element such as <ns:template> does not match. If a tag repeats the
// attribute, the first occurrence wins.
//
// Returns EMALFORMED if the input is not well-formed XML up to the point
// of failure, and EMISSINGATTR if a matching tag lacks the attribute.
// Both carry the byte offset at which scanning stopped.
func (e *TemplateExtractor) Extract(input string) ([]string, error) {
	d := xml.NewDecoder(strings.NewReader(input))
	d.CharsetReader = e.charsetReader

	names := []string{}
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			return names, nil
		} else if err != nil {
			offset := d.InputOffset()
			return nil, t2e.OffsetErrorf(t2e.EMALFORMED, offset, "malformed XML at position %d: %s", offset, syntaxMessage(err))
		}

		start, ok := tok.(xml.StartElement)
		if !ok || !matches(start.Name, e.element) {
			continue
		}

		value, ok := lookupAttr(start.Attr, e.attribute)
		if !ok {
			offset := d.InputOffset()
			return nil, t2e.OffsetErrorf(t2e.EMISSINGATTR, offset, "<%s> ending at position %d has no %q attribute", e.element, offset, e.attribute)
		}
		names = append(names, value)
	}
}

// passThrough keeps the input as is for any declared encoding.
func passThrough(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}

// matches reports whether a raw, unprefixed name equals local.
func matches(name xml.Name, local string) bool {
	return name.Space == "" && name.Local == local
}

// lookupAttr returns the value of the first attribute named key.
// Values have already been entity-decoded by the decoder.
func lookupAttr(attrs []xml.Attr, key string) (string, bool) {
	for _, a := range attrs {
		if matches(a.Name, key) {
			return a.Value, true
		}
	}
	return "", false
}

// syntaxMessage strips the line prefix from decoder syntax errors since the
// byte offset is reported instead.
func syntaxMessage(err error) string {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Msg
	}
	return err.Error()
}
