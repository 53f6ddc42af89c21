package spanned

import (
	"github.com/satishbabariya/spanned-go/annotate"
	"github.com/satishbabariya/spanned-go/internal/debug"
)

// Document lays the chain out as an annotation document. The outermost
// frame provides the title and, when it has a real span, the primary
// annotation. All frames pointing into one file share a single snippet;
// the outer frame's file comes first, the remaining files follow in
// order of first appearance. Frames with the dummy span carry no
// location and become trailing notes.
//
// Rendering must not fail, so a file that cannot be read back
// contributes a placeholder snippet instead of its content.
func (e *Error) Document() annotate.Message {
	frames := e.Frames()
	msg := annotate.Message{Title: frames[0].Message}

	var files []string
	index := make(map[string]int)
	for _, f := range frames {
		if f.Span.IsDummy() {
			continue
		}
		if _, ok := index[f.Span.File()]; !ok {
			index[f.Span.File()] = len(files)
			files = append(files, f.Span.File())
		}
	}

	msg.Snippets = make([]annotate.Snippet, len(files))
	unreadable := make(map[string]bool)
	for i, path := range files {
		source, err := readSource(path)
		if err != nil {
			debug.Warn("source unavailable for report", "path", path, "error", err)
			source = "<source unavailable: " + path + ">"
			unreadable[path] = true
		}
		msg.Snippets[i] = annotate.Snippet{Source: source, Origin: path, Fold: true}
	}

	for i, f := range frames {
		if f.Span.IsDummy() {
			if i > 0 {
				msg.Notes = append(msg.Notes, f.Message)
			}
			continue
		}
		sn := &msg.Snippets[index[f.Span.File()]]
		ann := annotate.Annotation{
			Start: f.Span.Start(),
			End:   f.Span.End(),
			Level: annotate.LevelNote,
			Label: f.Message,
		}
		if unreadable[f.Span.File()] {
			ann.Start, ann.End = 0, len(sn.Source)
		}
		if i == 0 {
			ann.Level = annotate.LevelError
			ann.Label = ""
		}
		sn.Annotations = append(sn.Annotations, ann)
	}
	return msg
}

// renderDocument formats a document with the styled renderer, which
// itself honors the process wide color capability.
func renderDocument(m annotate.Message) string {
	return annotate.Styled().Render(m)
}
