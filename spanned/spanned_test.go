package spanned

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestReadFile(t *testing.T) {
	mem := useMemFs(t)
	afero.WriteFile(mem, "data.conf", []byte("key = 1\n"), 0o644)

	s, err := ReadFile("data.conf")
	if err != nil {
		t.Fatalf("Expected the file to read: %v", err)
	}
	if string(s.Content) != "key = 1\n" {
		t.Errorf("Expected the file content, got %q", s.Content)
	}
	if s.Span != NewSpan(0, 8, "data.conf") {
		t.Errorf("Expected span 0..8, got %d..%d", s.Span.Start(), s.Span.End())
	}
}

func TestReadFileMissing(t *testing.T) {
	useMemFs(t)

	s, err := ReadFile("gone.conf")
	if err == nil {
		t.Fatal("Expected a read failure")
	}
	// The span still names the file, for wrapping the error
	if s.Span.File() != "gone.conf" || s.Span.Len() != 0 {
		t.Errorf("Expected a zero width span at gone.conf, got %v", s.Span)
	}
}

func TestReadFileString(t *testing.T) {
	mem := useMemFs(t)
	afero.WriteFile(mem, "ok.conf", []byte("héllo"), 0o644)
	afero.WriteFile(mem, "bad.conf", []byte("ok\xffrest"), 0o644)

	s, err := ReadFileString("ok.conf")
	if err != nil {
		t.Fatalf("Expected valid UTF-8 to read: %v", err)
	}
	if s.Content != "héllo" {
		t.Errorf("Expected héllo, got %q", s.Content)
	}

	_, err = ReadFileString("bad.conf")
	if err == nil {
		t.Fatal("Expected invalid UTF-8 to fail")
	}
	if !strings.Contains(err.Error(), "byte 2") {
		t.Errorf("Expected the offending offset in %q", err.Error())
	}
}

func TestToText(t *testing.T) {
	raw := NewSpanned([]byte("ok\xffrest"), NewSpan(10, 17, "bad.conf"))
	_, cerr := ToText(raw)
	if cerr == nil {
		t.Fatal("Expected invalid UTF-8 to fail")
	}
	// The chain pinpoints the offending byte
	if cerr.Span() != NewSpan(12, 12, "bad.conf") {
		t.Errorf("Expected the failure at 12..12, got %d..%d", cerr.Span().Start(), cerr.Span().End())
	}

	text, cerr := ToText(NewSpanned([]byte("fine"), NewSpan(0, 4, "ok.conf")))
	if cerr != nil {
		t.Fatalf("Expected valid UTF-8 to convert: %v", cerr.Message())
	}
	if text.Content != "fine" {
		t.Errorf("Expected fine, got %q", text.Content)
	}
}

func TestMapSpanned(t *testing.T) {
	s := NewSpanned("12", NewSpan(3, 5, "t.conf"))
	n := MapSpanned(s, func(text string) int { return len(text) })
	if n.Content != 2 {
		t.Errorf("Expected 2, got %d", n.Content)
	}
	if n.Span != s.Span {
		t.Error("Expected the span to survive the map")
	}
}

func TestDummyAndHereSpanned(t *testing.T) {
	d := DummySpanned(42)
	if !d.Span.IsDummy() || d.Content != 42 {
		t.Errorf("Expected a dummy 42, got %v", d)
	}

	h := HereSpanned("x")
	if !strings.HasSuffix(h.Span.File(), "spanned_test.go") {
		t.Errorf("Expected a span in spanned_test.go, got %s", h.Span.File())
	}
}
