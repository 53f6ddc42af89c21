package spanned

import (
	"testing"
	"unicode"
)

func spannedText(text string, file string) Spanned[string] {
	return NewSpanned(text, NewSpan(0, len(text), file))
}

func checkSpan(t *testing.T, name string, s Spanned[string], content string, start, end int) {
	t.Helper()
	if s.Content != content {
		t.Errorf("Expected %s content %q, got %q", name, content, s.Content)
	}
	if s.Span.Start() != start || s.Span.End() != end {
		t.Errorf("Expected %s span %d..%d, got %d..%d", name, start, end, s.Span.Start(), s.Span.End())
	}
}

func TestSplitOnce(t *testing.T) {
	left, right, ok := SplitOnce(spannedText("foo=bar", "t.conf"), "=")
	if !ok {
		t.Fatal("Expected a split")
	}
	checkSpan(t, "left", left, "foo", 0, 3)
	checkSpan(t, "right", right, "bar", 4, 7)

	if _, _, ok := SplitOnce(spannedText("foobar", "t.conf"), "="); ok {
		t.Error("Expected no split without the delimiter")
	}
}

func TestSplitOnceMultiByteDelimiter(t *testing.T) {
	left, right, ok := SplitOnce(spannedText("a<=>b", "t.conf"), "<=>")
	if !ok {
		t.Fatal("Expected a split")
	}
	checkSpan(t, "left", left, "a", 0, 1)
	checkSpan(t, "right", right, "b", 4, 5)
}

func TestSplitOnceInsideLargerSpan(t *testing.T) {
	// A value that itself sits at offset 10 of its file
	s := NewSpanned("key=value", NewSpan(10, 19, "t.conf"))
	left, right, ok := SplitOnce(s, "=")
	if !ok {
		t.Fatal("Expected a split")
	}
	checkSpan(t, "left", left, "key", 10, 13)
	checkSpan(t, "right", right, "value", 14, 19)
}

func TestSplitAt(t *testing.T) {
	s := spannedText("abcdef", "t.conf")
	left, right := SplitAt(s, 2)
	checkSpan(t, "left", left, "ab", 0, 2)
	checkSpan(t, "right", right, "cdef", 2, 6)
	if left.Span.End() != right.Span.Start() {
		t.Error("Expected the two halves to be adjacent")
	}
	if left.Content+right.Content != s.Content {
		t.Error("Expected the two halves to partition the content")
	}

	left, right = SplitAt(s, 0)
	checkSpan(t, "left", left, "", 0, 0)
	checkSpan(t, "right", right, "abcdef", 0, 6)

	left, right = SplitAt(s, 6)
	checkSpan(t, "left", left, "abcdef", 0, 6)
	checkSpan(t, "right", right, "", 6, 6)

	mustPanic(t, "SplitAt out of range", func() { SplitAt(s, 7) })
	mustPanic(t, "SplitAt negative", func() { SplitAt(s, -1) })
}

func TestTakeWhile(t *testing.T) {
	taken, rest, ok := TakeWhile(spannedText("123abc", "t.conf"), unicode.IsDigit)
	if !ok {
		t.Fatal("Expected a split")
	}
	checkSpan(t, "taken", taken, "123", 0, 3)
	checkSpan(t, "rest", rest, "abc", 3, 6)

	// Predicate failing immediately still splits, into an empty prefix
	taken, rest, ok = TakeWhile(spannedText("abc", "t.conf"), unicode.IsDigit)
	if !ok {
		t.Fatal("Expected a split")
	}
	checkSpan(t, "taken", taken, "", 0, 0)
	checkSpan(t, "rest", rest, "abc", 0, 3)

	if _, _, ok := TakeWhile(spannedText("123", "t.conf"), unicode.IsDigit); ok {
		t.Error("Expected no split when the predicate never fails")
	}
	if _, _, ok := TakeWhile(spannedText("", "t.conf"), unicode.IsDigit); ok {
		t.Error("Expected no split on empty content")
	}
}

func TestTrim(t *testing.T) {
	s := NewSpanned("  foo \t", NewSpan(10, 17, "t.conf"))
	trimmed := Trim(s)
	checkSpan(t, "trimmed", trimmed, "foo", 12, 15)

	// Trimming is idempotent
	if again := Trim(trimmed); again != trimmed {
		t.Errorf("Expected Trim to be idempotent, got %v", again)
	}

	checkSpan(t, "start", TrimStart(s), "foo \t", 12, 17)
	checkSpan(t, "end", TrimEnd(s), "  foo", 10, 15)

	// All whitespace collapses to a zero width span
	blank := NewSpanned("   ", NewSpan(5, 8, "t.conf"))
	checkSpan(t, "blank trim", Trim(blank), "", 5, 5)
	checkSpan(t, "blank start", TrimStart(blank), "", 8, 8)
	checkSpan(t, "blank end", TrimEnd(blank), "", 5, 5)
}

func TestTrimStartMatches(t *testing.T) {
	s := spannedText("///path", "t.conf")
	checkSpan(t, "trimmed", TrimStartMatches(s, '/'), "path", 3, 7)
	checkSpan(t, "untouched", TrimStartMatches(spannedText("path", "t.conf"), '/'), "path", 0, 4)
}

func TestStripPrefixSuffix(t *testing.T) {
	s := spannedText("--flag--", "t.conf")

	stripped, ok := StripPrefix(s, "--")
	if !ok {
		t.Fatal("Expected the prefix to strip")
	}
	checkSpan(t, "prefix", stripped, "flag--", 2, 8)

	stripped, ok = StripSuffix(s, "--")
	if !ok {
		t.Fatal("Expected the suffix to strip")
	}
	checkSpan(t, "suffix", stripped, "--flag", 0, 6)

	if _, ok := StripPrefix(s, "++"); ok {
		t.Error("Expected no strip for an absent prefix")
	}
	if _, ok := StripSuffix(s, "++"); ok {
		t.Error("Expected no strip for an absent suffix")
	}
}

func TestChars(t *testing.T) {
	s := NewSpanned("héllo", NewSpan(4, 10, "t.conf"))

	var runes []rune
	var offsets []int
	for c := range Chars(s) {
		runes = append(runes, c.Content)
		offsets = append(offsets, c.Span.Start())
		if c.Span.Len() != 0 {
			t.Errorf("Expected zero width span, got %d..%d", c.Span.Start(), c.Span.End())
		}
	}
	if string(runes) != "héllo" {
		t.Errorf("Expected héllo, got %s", string(runes))
	}
	wantOffsets := []int{4, 5, 7, 8, 9}
	for i, want := range wantOffsets {
		if offsets[i] != want {
			t.Errorf("Expected rune %d at offset %d, got %d", i, want, offsets[i])
		}
	}

	// The sequence restarts from the top on every range
	count := 0
	for range Chars(s) {
		count++
		break
	}
	for range Chars(s) {
		count++
	}
	if count != 6 {
		t.Errorf("Expected a restartable sequence, got %d visits", count)
	}
}

func TestSplitChar(t *testing.T) {
	collect := func(text string) (segments []Spanned[string]) {
		for seg := range SplitChar(spannedText(text, "t.conf"), ',') {
			segments = append(segments, seg)
		}
		return segments
	}

	segs := collect("a,b,,c")
	if len(segs) != 4 {
		t.Fatalf("Expected 4 segments, got %d", len(segs))
	}
	checkSpan(t, "seg 0", segs[0], "a", 0, 1)
	checkSpan(t, "seg 1", segs[1], "b", 2, 3)
	checkSpan(t, "seg 2", segs[2], "", 4, 4)
	checkSpan(t, "seg 3", segs[3], "c", 5, 6)

	// n delimiters always give n+1 segments
	if segs := collect(",x,"); len(segs) != 3 {
		t.Errorf("Expected 3 segments, got %d", len(segs))
	}
	if segs := collect(""); len(segs) != 1 || segs[0].Content != "" {
		t.Errorf("Expected a single empty segment, got %v", segs)
	}
}

func TestLines(t *testing.T) {
	var lines []Spanned[string]
	for line := range Lines(spannedText("one\ntwo\r\n\nfour", "t.conf")) {
		lines = append(lines, line)
	}
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	checkSpan(t, "line 0", lines[0], "one", 0, 3)
	checkSpan(t, "line 1", lines[1], "two", 4, 7)
	checkSpan(t, "line 2", lines[2], "", 9, 9)
	checkSpan(t, "line 3", lines[3], "four", 10, 14)
}

func TestLinesEdgeCases(t *testing.T) {
	count := func(text string) int {
		n := 0
		for range Lines(spannedText(text, "t.conf")) {
			n++
		}
		return n
	}

	// A trailing terminator does not open an empty final line
	if got := count("a\n"); got != 1 {
		t.Errorf("Expected 1 line, got %d", got)
	}
	if got := count(""); got != 0 {
		t.Errorf("Expected no lines, got %d", got)
	}

	// A lone carriage return is content, not a terminator
	for line := range Lines(spannedText("a\rb", "t.conf")) {
		if line.Content != "a\rb" {
			t.Errorf("Expected a\\rb kept whole, got %q", line.Content)
		}
	}
}

func TestStartsWithAndIsEmpty(t *testing.T) {
	s := spannedText("key=1", "t.conf")
	if !StartsWith(s, "key") {
		t.Error("Expected StartsWith key")
	}
	if StartsWith(s, "value") {
		t.Error("Expected StartsWith value to be false")
	}
	if IsEmpty(s) {
		t.Error("Expected non-empty")
	}
	if !IsEmpty(spannedText("", "t.conf")) {
		t.Error("Expected empty")
	}
}

func TestOperationsOnDummySpans(t *testing.T) {
	s := DummySpanned("a=b")
	left, right, ok := SplitOnce(s, "=")
	if !ok {
		t.Fatal("Expected a split")
	}
	if !left.Span.IsDummy() || !right.Span.IsDummy() {
		t.Error("Expected derived spans of a dummy to stay dummy")
	}
	if left.Content != "a" || right.Content != "b" {
		t.Errorf("Expected contents a and b, got %q and %q", left.Content, right.Content)
	}
}
