package annotate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Renderer turns a Message into display text.
type Renderer struct {
	plain bool

	title     *color.Color
	arrow     *color.Color
	filePath  *color.Color
	lineNum   *color.Color
	primary   *color.Color
	secondary *color.Color
}

// Styled returns a renderer whose output is colored, subject to the
// process-wide color capability.
func Styled() *Renderer {
	return newRenderer(false)
}

// Plain returns a renderer that never colors output.
func Plain() *Renderer {
	return newRenderer(true)
}

func newRenderer(plain bool) *Renderer {
	return &Renderer{
		plain:     plain,
		title:     color.New(color.Bold),
		arrow:     color.New(color.FgCyan, color.Bold),
		filePath:  color.New(color.Underline),
		lineNum:   color.New(color.FgCyan, color.Bold),
		primary:   color.New(color.FgRed, color.Bold),
		secondary: color.New(color.FgCyan, color.Bold),
	}
}

func (r *Renderer) paint(c *color.Color, text string) string {
	if r.plain {
		return text
	}
	return c.Sprint(text)
}

func (r *Renderer) levelColor(level Level) *color.Color {
	if level == LevelError {
		return r.primary
	}
	return r.secondary
}

// Render formats the message as a multi line string.
func (r *Renderer) Render(m Message) string {
	severity := m.Severity
	if severity == "" {
		severity = "error"
	}
	var b strings.Builder
	b.WriteString(r.paint(r.title, severity+": "+m.Title))
	b.WriteByte('\n')
	for i := range m.Snippets {
		r.renderSnippet(&b, &m.Snippets[i])
	}
	for _, note := range m.Notes {
		b.WriteString(" = ")
		b.WriteString(r.paint(r.title, "note:"))
		b.WriteString(" ")
		b.WriteString(note)
		b.WriteByte('\n')
	}
	return b.String()
}

// placed is an annotation resolved to line coordinates.
type placed struct {
	Annotation
	line     int // line holding the underline
	startCol int // byte offset of Start within line
	endCol   int // byte offset of End within line, clipped to the line
}

func (r *Renderer) renderSnippet(b *strings.Builder, sn *Snippet) {
	lines := strings.Split(sn.Source, "\n")

	// Byte offset of each line start
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}

	anns := make([]Annotation, len(sn.Annotations))
	copy(anns, sn.Annotations)
	sort.SliceStable(anns, func(i, j int) bool {
		if anns[i].Start != anns[j].Start {
			return anns[i].Start < anns[j].Start
		}
		return anns[i].End < anns[j].End
	})

	all := make([]placed, 0, len(anns))
	byLine := make(map[int][]placed)
	shown := make(map[int]bool)
	for _, a := range anns {
		a.Start = clamp(a.Start, 0, len(sn.Source))
		a.End = clamp(a.End, a.Start, len(sn.Source))

		startLine := lineAt(starts, a.Start)
		effEnd := a.End
		if effEnd > a.Start {
			effEnd--
		}
		endLine := lineAt(starts, effEnd)

		endCol := a.End - starts[startLine]
		if endCol > len(lines[startLine]) {
			endCol = len(lines[startLine])
		}
		p := placed{
			Annotation: a,
			line:       startLine,
			startCol:   a.Start - starts[startLine],
			endCol:     endCol,
		}
		all = append(all, p)
		byLine[startLine] = append(byLine[startLine], p)

		for l := startLine; l <= endLine; l++ {
			shown[l] = true
		}
		// One line of leading context, like the surrounding code a
		// reader needs to orient themselves
		if startLine > 0 {
			shown[startLine-1] = true
		}
	}

	// Header arrow, positioned at the first primary annotation
	var head *placed
	for i := range all {
		if all[i].Level == LevelError {
			head = &all[i]
			break
		}
	}
	if head == nil && len(all) > 0 {
		head = &all[0]
	}

	b.WriteString(r.paint(r.arrow, "  --> "))
	if head != nil {
		col := utf8.RuneCountInString(lines[head.line][:head.startCol]) + 1
		b.WriteString(r.paint(r.filePath, fmt.Sprintf("%s:%d:%d", sn.Origin, head.line+1, col)))
	} else {
		b.WriteString(r.paint(r.filePath, sn.Origin))
	}
	b.WriteByte('\n')
	if head == nil {
		return
	}

	lineNos := make([]int, 0, len(shown))
	for l := range shown {
		lineNos = append(lineNos, l)
	}
	sort.Ints(lineNos)

	width := len(strconv.Itoa(lineNos[len(lineNos)-1] + 1))
	if width < 2 {
		width = 2
	}
	blank := strings.Repeat(" ", width) + " | "

	b.WriteString(r.paint(r.lineNum, blank))
	b.WriteByte('\n')
	prev := -1
	for _, ln := range lineNos {
		if prev >= 0 {
			gap := ln - prev - 1
			if gap > 0 {
				if sn.Fold && gap > 1 {
					b.WriteString(r.paint(r.lineNum, "..."))
					b.WriteByte('\n')
				} else {
					for l := prev + 1; l < ln; l++ {
						r.sourceLine(b, width, l, lines[l], nil)
					}
				}
			}
		}
		r.sourceLine(b, width, ln, lines[ln], byLine[ln])
		prev = ln
	}
	b.WriteString(r.paint(r.lineNum, blank))
	b.WriteByte('\n')
}

// sourceLine prints one gutter prefixed source line followed by an
// underline row for every annotation anchored on it.
func (r *Renderer) sourceLine(b *strings.Builder, width, lineNo int, line string, anns []placed) {
	b.WriteString(r.paint(r.lineNum, fmt.Sprintf("%*d | ", width, lineNo+1)))

	pos := 0
	for _, a := range anns {
		if a.startCol < pos {
			continue
		}
		b.WriteString(line[pos:a.startCol])
		b.WriteString(r.paint(r.levelColor(a.Level), line[a.startCol:a.endCol]))
		pos = a.endCol
	}
	b.WriteString(line[pos:])
	b.WriteByte('\n')

	blank := strings.Repeat(" ", width) + " | "
	for _, a := range anns {
		marker := "^"
		if a.Level == LevelNote {
			marker = "-"
		}
		pad := runewidth.StringWidth(line[:a.startCol])
		n := runewidth.StringWidth(line[a.startCol:a.endCol])
		if n < 1 {
			n = 1
		}
		row := strings.Repeat(" ", pad) + strings.Repeat(marker, n)
		if a.Label != "" {
			row += " " + a.Label
		}
		b.WriteString(r.paint(r.lineNum, blank))
		b.WriteString(r.paint(r.levelColor(a.Level), row))
		b.WriteByte('\n')
	}
}

// lineAt returns the index of the line containing byte offset off.
func lineAt(starts []int, off int) int {
	return sort.SearchInts(starts, off+1) - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
