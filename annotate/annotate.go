// Package annotate renders source snippets with underlined, labelled
// ranges in the style of modern compiler diagnostics.
//
// A Message is a small document: a title, any number of source snippets,
// and trailing notes. The renderer prints the familiar layout with a
// severity header, an origin arrow, a line number gutter, and caret or
// dash underlines beneath the annotated ranges.
package annotate

// Level classifies an annotation.
type Level int

const (
	// LevelError marks the range the diagnostic is primarily about.
	LevelError Level = iota
	// LevelNote marks a supporting range.
	LevelNote
)

// Annotation underlines the byte range [Start, End) of a snippet's source.
// A zero width range renders as a single caret pointing at Start. Ranges
// outside the source are clipped, never rejected.
type Annotation struct {
	Start int
	End   int
	Level Level
	Label string
}

// Snippet is one block of source text with its annotations.
type Snippet struct {
	// Source is the complete text the annotation offsets refer to.
	Source string
	// Origin is the path shown in the block header.
	Origin string
	// Fold elides unannotated line runs between annotated lines.
	Fold bool
	// Annotations are the ranges to underline, in any order.
	Annotations []Annotation
}

// Message is a renderable diagnostic document.
type Message struct {
	// Title is the headline printed before any snippet.
	Title string
	// Severity is the word printed before the title, "error" when empty.
	Severity string
	// Snippets are the source blocks, rendered in order.
	Snippets []Snippet
	// Notes are free form lines printed after the last snippet.
	Notes []string
}
