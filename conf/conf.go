// Package conf loads a small line oriented configuration format with
// full source tracking.
//
// A file holds comments introduced by #, blank lines, key = value
// entries, and include directives that splice another file:
//
//	# listener settings
//	host = "0.0.0.0"    # quoted values may hold spaces
//	port = 9090
//	include limits.conf
//
// Every key and value keeps the span it was read from, so reports for
// bad values point at the exact bytes, across include boundaries.
package conf

import (
	"path/filepath"
	"time"

	"github.com/satishbabariya/spanned-go/internal/debug"
	"github.com/satishbabariya/spanned-go/spanned"
)

// maxIncludeDepth bounds include nesting.
const maxIncludeDepth = 8

// Entry is one key = value line.
type Entry struct {
	Key   spanned.Spanned[string]
	Value spanned.Spanned[string]
}

// File is a parsed configuration, includes flattened, entries in
// definition order.
type File struct {
	entries []Entry
	byKey   map[string]int
}

// Load reads and parses the configuration at path, following includes
// relative to the file that names them.
func Load(path string) (*File, *spanned.Error) {
	p := &parser{
		file:    &File{byKey: make(map[string]int)},
		visited: make(map[string]bool),
	}
	if err := p.loadFile(path, spanned.DummySpan()); err != nil {
		return nil, err
	}
	debug.Debug("configuration loaded", "path", path, "entries", len(p.file.entries))
	return p.file, nil
}

// Parse parses already loaded source. Include directives resolve
// relative to the file the source's span names.
func Parse(src spanned.Spanned[string]) (*File, *spanned.Error) {
	p := &parser{
		file:    &File{byKey: make(map[string]int)},
		visited: map[string]bool{src.Span.File(): true},
	}
	if err := p.parse(src); err != nil {
		return nil, err
	}
	return p.file, nil
}

// Entries returns the entries in definition order.
func (f *File) Entries() []Entry {
	return f.entries
}

// Get returns the value recorded for key.
func (f *File) Get(key string) (spanned.Spanned[string], bool) {
	i, ok := f.byKey[key]
	if !ok {
		return spanned.Spanned[string]{}, false
	}
	return f.entries[i].Value, true
}

// Text returns the value for key, failing when the key is not set.
func (f *File) Text(key string) (spanned.Spanned[string], *spanned.Error) {
	v, ok := f.Get(key)
	if !ok {
		return spanned.Spanned[string]{}, spanned.Errorf(spanned.DummySpan(), "key %q is not set", key)
	}
	return v, nil
}

// Int returns the value for key parsed as an integer.
func (f *File) Int(key string) (spanned.Spanned[int64], *spanned.Error) {
	v, err := f.Text(key)
	if err != nil {
		return spanned.Spanned[int64]{}, err
	}
	return spanned.ParseInt(v)
}

// Float returns the value for key parsed as a number.
func (f *File) Float(key string) (spanned.Spanned[float64], *spanned.Error) {
	v, err := f.Text(key)
	if err != nil {
		return spanned.Spanned[float64]{}, err
	}
	return spanned.ParseFloat(v)
}

// Bool returns the value for key parsed as true or false.
func (f *File) Bool(key string) (spanned.Spanned[bool], *spanned.Error) {
	v, err := f.Text(key)
	if err != nil {
		return spanned.Spanned[bool]{}, err
	}
	return spanned.ParseBool(v)
}

// Duration returns the value for key parsed as a Go duration.
func (f *File) Duration(key string) (spanned.Spanned[time.Duration], *spanned.Error) {
	v, err := f.Text(key)
	if err != nil {
		return spanned.Spanned[time.Duration]{}, err
	}
	return spanned.ParseWith(v, time.ParseDuration)
}

type parser struct {
	file    *File
	depth   int
	visited map[string]bool
}

// loadFile reads one file and parses it. at is the include directive's
// span, or the dummy span for the root file.
func (p *parser) loadFile(path string, at spanned.Span) *spanned.Error {
	if p.visited[path] {
		return spanned.Errorf(at, "%s included twice", path)
	}
	p.visited[path] = true

	src, err := spanned.ReadFileString(path)
	if err != nil {
		if at.IsDummy() {
			return spanned.WithPathContext(err, path, "loading configuration")
		}
		return spanned.NewError(err, src.Span).Wrapf(at, "while including %s", path)
	}

	p.depth++
	perr := p.parse(src)
	p.depth--
	if perr != nil && !at.IsDummy() {
		return perr.Wrapf(at, "while including %s", path)
	}
	return perr
}

func (p *parser) parse(src spanned.Spanned[string]) *spanned.Error {
	for line := range spanned.Lines(src) {
		if err := p.parseLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseLine(line spanned.Spanned[string]) *spanned.Error {
	trimmed := spanned.Trim(line)
	if spanned.IsEmpty(trimmed) || spanned.StartsWith(trimmed, "#") {
		return nil
	}

	if rest, ok := spanned.StripPrefix(trimmed, "include"); ok && startsWithSpace(rest) {
		target := spanned.TrimStart(rest)
		// An = right after the keyword makes this an entry named
		// include, not a directive
		if !spanned.StartsWith(target, "=") {
			return p.include(target)
		}
	}

	keyPart, valuePart, ok := spanned.SplitOnce(trimmed, "=")
	if !ok {
		return spanned.NewMessage("expected key = value", trimmed.Span)
	}

	key := spanned.Trim(keyPart)
	if spanned.IsEmpty(key) {
		return spanned.NewMessage("missing key before =", key.Span)
	}
	if _, bad, ok := spanned.TakeWhile(key, isKeyRune); ok {
		for c := range spanned.Chars(bad) {
			return spanned.Errorf(c.Span, "invalid character %q in key", c.Content)
		}
	}

	value, err := p.value(valuePart)
	if err != nil {
		return err
	}
	return p.record(key, value)
}

// value trims raw, unquotes it when it is quoted, and drops a trailing
// comment when it is not.
func (p *parser) value(raw spanned.Spanned[string]) (spanned.Spanned[string], *spanned.Error) {
	v := spanned.Trim(raw)
	if !spanned.StartsWith(v, `"`) {
		if bare, _, ok := spanned.SplitOnce(v, "#"); ok {
			v = spanned.TrimEnd(bare)
		}
		return v, nil
	}

	open, _ := spanned.StripPrefix(v, `"`)
	inner, after, ok := spanned.SplitOnce(open, `"`)
	if !ok {
		return v, spanned.NewMessage("unterminated quoted value", v.Span.ShrinkToEnd())
	}
	tail := spanned.Trim(after)
	if !spanned.IsEmpty(tail) && !spanned.StartsWith(tail, "#") {
		return v, spanned.NewMessage("unexpected text after quoted value", tail.Span)
	}
	return inner, nil
}

func (p *parser) include(target spanned.Spanned[string]) *spanned.Error {
	if p.depth >= maxIncludeDepth {
		return spanned.Errorf(target.Span, "includes nested deeper than %d files", maxIncludeDepth)
	}
	name, err := p.value(target)
	if err != nil {
		return err
	}
	if spanned.IsEmpty(name) {
		return spanned.NewMessage("include needs a path", name.Span)
	}

	path := name.Content
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(name.Span.File()), path)
	}
	return p.loadFile(path, name.Span)
}

func (p *parser) record(key, value spanned.Spanned[string]) *spanned.Error {
	if i, ok := p.file.byKey[key.Content]; ok {
		first := p.file.entries[i]
		return spanned.NewMessage("first defined here", first.Key.Span).
			Wrapf(key.Span, "duplicate key %q", key.Content)
	}
	p.file.byKey[key.Content] = len(p.file.entries)
	p.file.entries = append(p.file.entries, Entry{Key: key, Value: value})
	return nil
}

func startsWithSpace(s spanned.Spanned[string]) bool {
	return len(s.Content) > 0 && (s.Content[0] == ' ' || s.Content[0] == '\t')
}

func isKeyRune(r rune) bool {
	return r == '_' || r == '.' || r == '-' ||
		('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
