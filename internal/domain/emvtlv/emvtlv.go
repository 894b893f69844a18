// Package emvtlv encodes and parses the ASCII tag-length-value format used by
// EMV merchant-presented QR codes: a two digit tag, a two digit decimal
// length and the value itself. Values may be templates, nested collections
// serialized with the same rule.
package emvtlv

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	TagLen    = 2
	LengthLen = 2
	MaxValue  = 99
)

var (
	ErrInvalidTag   = errors.New("tag must be two decimal digits")
	ErrValueTooLong = errors.New("value exceeds 99 characters")
	ErrMalformed    = errors.New("malformed tlv data")
)

type Field struct {
	Tag   string
	Value string
}

// Len is the length prefix the field is rendered with.
func (f Field) Len() int {
	return len(f.Value)
}

func (f Field) String() string {
	return fmt.Sprintf("%s%02d%s", f.Tag, len(f.Value), f.Value)
}

func NewField(tag, value string) (Field, error) {
	if !validTag(tag) {
		return Field{}, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	if len(value) > MaxValue {
		return Field{}, fmt.Errorf("tag %s: %w (got %d)", tag, ErrValueTooLong, len(value))
	}
	return Field{Tag: tag, Value: value}, nil
}

type entry struct {
	value string
	inner *Template
}

func (e entry) render() string {
	if e.inner != nil {
		return e.inner.String()
	}
	return e.value
}

// Template is a tag-unique collection of fields. Fields always render in
// ascending tag order regardless of when they were set.
// A Template is not safe for concurrent mutation.
type Template struct {
	entries map[string]entry
}

func NewTemplate() *Template {
	return &Template{entries: make(map[string]entry)}
}

// Set stores value under tag, replacing any previous field with that tag.
// On error the template is unchanged.
func (t *Template) Set(tag, value string) error {
	if _, err := NewField(tag, value); err != nil {
		return err
	}
	t.entries[tag] = entry{value: value}
	return nil
}

// SetTemplate stores a copy of inner as the value of tag. Later changes to
// inner are not reflected.
func (t *Template) SetTemplate(tag string, inner *Template) error {
	owned := inner.Clone()
	if _, err := NewField(tag, owned.String()); err != nil {
		return err
	}
	t.entries[tag] = entry{inner: owned}
	return nil
}

func (t *Template) Delete(tag string) {
	delete(t.entries, tag)
}

func (t *Template) Has(tag string) bool {
	_, ok := t.entries[tag]
	return ok
}

func (t *Template) Get(tag string) (Field, bool) {
	e, ok := t.entries[tag]
	if !ok {
		return Field{}, false
	}
	return Field{Tag: tag, Value: e.render()}, true
}

// Sub returns a copy of the nested template stored under tag.
func (t *Template) Sub(tag string) (*Template, bool) {
	e, ok := t.entries[tag]
	if !ok || e.inner == nil {
		return nil, false
	}
	return e.inner.Clone(), true
}

func (t *Template) Tags() []string {
	tags := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Fields returns the rendered fields in ascending tag order. Nested
// templates are flattened into their serialized value.
func (t *Template) Fields() []Field {
	tags := t.Tags()
	fields := make([]Field, 0, len(tags))
	for _, tag := range tags {
		fields = append(fields, Field{Tag: tag, Value: t.entries[tag].render()})
	}
	return fields
}

func (t *Template) String() string {
	return Encode(t.Fields()...)
}

func (t *Template) Clone() *Template {
	c := NewTemplate()
	for tag, e := range t.entries {
		if e.inner != nil {
			e.inner = e.inner.Clone()
		}
		c.entries[tag] = e
	}
	return c
}

// Encode concatenates already validated fields in the given order.
func Encode(fields ...Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Parse splits data into top-level fields. Nested values are returned as-is
// and can be passed to Parse again.
func Parse(data string) ([]Field, error) {
	var fields []Field
	offset := 0
	for offset < len(data) {
		if offset+TagLen+LengthLen > len(data) {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformed, offset)
		}
		tag := data[offset : offset+TagLen]
		if !validTag(tag) {
			return nil, fmt.Errorf("%w: %w %q at offset %d", ErrMalformed, ErrInvalidTag, tag, offset)
		}
		offset += TagLen

		lengthStr := data[offset : offset+LengthLen]
		length, err := strconv.Atoi(lengthStr)
		if err != nil || length < 0 || !isDigits(lengthStr) {
			return nil, fmt.Errorf("%w: invalid length %q at offset %d", ErrMalformed, lengthStr, offset)
		}
		offset += LengthLen

		if offset+length > len(data) {
			return nil, fmt.Errorf("%w: tag %s needs %d characters, got %d", ErrMalformed, tag, length, len(data)-offset)
		}
		fields = append(fields, Field{Tag: tag, Value: data[offset : offset+length]})
		offset += length
	}
	return fields, nil
}

func validTag(tag string) bool {
	return len(tag) == TagLen && isDigits(tag)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
