package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

var (
	// ErrMissingSectionHeader is returned when a key appears before any [section]
	ErrMissingSectionHeader = errors.New("key outside of any section")
	// ErrMalformedLine is returned for lines that are neither header, comment nor key=value
	ErrMalformedLine = errors.New("malformed line")
)

// Polybar values carry '#' and ';' (colors, format tags), quotes and
// trailing backslashes, so all of them are kept verbatim.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

func init() {
	// key = value, no column alignment
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// ParseError reports the line a document failed to parse at
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Section is an ordered set of key/value pairs
type Section struct {
	sec *ini.Section
}

// Name returns the section name without brackets
func (s *Section) Name() string {
	return s.sec.Name()
}

// has reports whether key is set in this section itself. The ini lookups
// also consult parent sections of dotted names.
func (s *Section) has(key string) bool {
	return slices.Contains(s.sec.KeyStrings(), key)
}

// Get returns the value for key
func (s *Section) Get(key string) (string, bool) {
	if !s.has(key) {
		return "", false
	}
	return s.sec.Key(key).Value(), true
}

// Set updates key in place, or appends it when the section lacks it
func (s *Section) Set(key, value string) {
	if s.has(key) {
		s.sec.Key(key).SetValue(value)
		return
	}
	_, _ = s.sec.NewKey(key, value)
}

// Keys returns the section's keys in file order
func (s *Section) Keys() []string {
	return s.sec.KeyStrings()
}

// Document is an INI file held in memory with section and key order intact.
// Comments travel with the key or header below them; comments after the
// last entry are kept as a trailer.
type Document struct {
	file    *ini.File
	trailer []string
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{file: ini.Empty(loadOptions)}
}

// Section returns the named section
func (d *Document) Section(name string) (*Section, bool) {
	sec, err := d.file.GetSection(name)
	if err != nil {
		return nil, false
	}
	return &Section{sec: sec}, true
}

// EnsureSection returns the named section, appending it if missing
func (d *Document) EnsureSection(name string) *Section {
	return &Section{sec: d.file.Section(name)}
}

// Sections returns the sections in file order
func (d *Document) Sections() []*Section {
	var out []*Section
	for _, sec := range d.file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		out = append(out, &Section{sec: sec})
	}
	return out
}

// ParseDocument reads "[section]" headers and "key = value" lines.
// Lines starting with ';' or '#' are comments. A repeated header continues
// the earlier section; a repeated key keeps its first position and takes
// the last value.
func ParseDocument(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	f, err := ini.LoadSources(loadOptions, src)
	if err != nil {
		return nil, locate(src, err)
	}

	if keys := f.Section(ini.DefaultSection).KeyStrings(); len(keys) > 0 {
		n, text := findLine(src, func(l string) bool {
			k, _, ok := strings.Cut(l, "=")
			return ok && strings.TrimSpace(k) == keys[0]
		})
		return nil, &ParseError{Line: n, Text: text, Err: ErrMissingSectionHeader}
	}

	return &Document{file: f, trailer: trailingComments(src)}, nil
}

// locate turns a parser error into a ParseError carrying the line number
func locate(src []byte, err error) error {
	var text string
	switch e := err.(type) {
	case ini.ErrDelimiterNotFound:
		text = strings.TrimSpace(e.Line)
	case ini.ErrEmptyKeyName:
		text = strings.TrimSpace(e.Line)
	}

	var n int
	if text != "" {
		n, text = findLine(src, func(l string) bool { return l == text })
	} else {
		n, text = findLine(src, func(l string) bool {
			return strings.HasPrefix(l, "[") && (!strings.Contains(l, "]") || strings.HasPrefix(l, "[]"))
		})
	}
	if n == 0 {
		return fmt.Errorf("parsing document: %w", err)
	}
	return &ParseError{Line: n, Text: text, Err: ErrMalformedLine}
}

// findLine returns the 1-based number and text of the first trimmed line
// matching fn, or 0 when none does.
func findLine(src []byte, fn func(string) bool) (int, string) {
	for i, l := range strings.Split(string(src), "\n") {
		if l = strings.TrimSpace(l); fn(l) {
			return i + 1, l
		}
	}
	return 0, ""
}

// trailingComments returns the comment lines after the last header or key
func trailingComments(src []byte) []string {
	var tail []string
	for _, l := range strings.Split(string(src), "\n") {
		l = strings.TrimSpace(l)
		switch {
		case l == "":
		case l[0] == ';' || l[0] == '#':
			tail = append(tail, l)
		default:
			tail = tail[:0]
		}
	}
	return tail
}

// WriteTo serializes the document. Sections are separated by one blank
// line and the output ends with a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if _, err := d.file.WriteTo(&buf); err != nil {
		return 0, err
	}

	if len(d.trailer) > 0 {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.Join(d.trailer, "\n"))
		buf.WriteString("\n")
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String returns the serialized document
func (d *Document) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)
	return sb.String()
}
