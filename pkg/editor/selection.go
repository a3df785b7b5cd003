//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"

	"github.com/timburks/scribe/pkg/types"
)

// A Selection runs from a fixed anchor to the buffer cursor.
// The zero value selects nothing.
type Selection struct {
	Kind   int // one of the types.Select* kinds
	Anchor types.Cursor
}

func (b *Buffer) GetSelection() Selection {
	return b.selection
}

func (b *Buffer) HasSelection() bool {
	return b.selection.Kind != types.SelectNone
}

// StartSelection anchors a new selection at the cursor.
func (b *Buffer) StartSelection() {
	b.selection = Selection{Kind: types.SelectNormal, Anchor: b.cursor}
}

// StartOrContinueSelection anchors a selection unless one is in progress.
// Repeated shifted moves use this to extend the selection.
func (b *Buffer) StartOrContinueSelection() {
	if b.selection.Kind == types.SelectNone {
		b.StartSelection()
	}
}

func (b *Buffer) StartLineSelection() {
	b.selection = Selection{Kind: types.SelectLine, Anchor: b.cursor}
}

func (b *Buffer) StartWordSelection() {
	b.selection = Selection{Kind: types.SelectWord, Anchor: b.cursor}
}

func (b *Buffer) ClearSelection() {
	b.selection = Selection{}
}

// SelectionBounds returns the ordered ends of the selection.
// When anchor and cursor are at the same position the cursor is the end.
func (b *Buffer) SelectionBounds() (start, end types.Cursor, ok bool) {
	anchor := b.selection.Anchor
	switch b.selection.Kind {
	case types.SelectNormal:
		start, end = orderCursors(anchor, b.cursor)
		return start, end, true
	case types.SelectLine:
		first := min(anchor.Line, b.cursor.Line)
		last := max(anchor.Line, b.cursor.Line)
		return types.Cursor{Line: first, Index: 0},
			types.Cursor{Line: last, Index: b.lines[last].Length()}, true
	case types.SelectWord:
		start, end = orderCursors(anchor, b.cursor)
		start.Index, _ = wordAround(b.lines[start.Line].Content, start.Index)
		_, end.Index = wordAround(b.lines[end.Line].Content, end.Index)
		return start, end, true
	default:
		return types.Cursor{}, types.Cursor{}, false
	}
}

func orderCursors(anchor, cursor types.Cursor) (types.Cursor, types.Cursor) {
	switch {
	case anchor.Line > cursor.Line:
		return cursor, anchor
	case anchor.Line < cursor.Line:
		return anchor, cursor
	case anchor.Index <= cursor.Index:
		return anchor, cursor
	default:
		return cursor, anchor
	}
}

// SelectedText returns the selected text with lines joined by newlines.
func (b *Buffer) SelectedText() string {
	start, end, ok := b.SelectionBounds()
	if !ok {
		return ""
	}
	if start.Line == end.Line {
		return b.lines[start.Line].Content[start.Index:end.Index]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[start.Line].Content[start.Index:])
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i].Content)
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[end.Line].Content[:end.Index])
	return sb.String()
}

// SelectionSpan returns the columns [from, to) of a row that lie inside the
// selection. Interior lines of a multi-line selection are highlighted
// completely, the first and last lines partially.
func (b *Buffer) SelectionSpan(row Row) (from, to int, ok bool) {
	start, end, ok := b.SelectionBounds()
	if !ok || row.LineIndex < start.Line || row.LineIndex > end.Line {
		return 0, 0, false
	}
	lineFrom, lineTo := 0, b.lines[row.LineIndex].Length()
	if row.LineIndex == start.Line {
		lineFrom = start.Index
	}
	if row.LineIndex == end.Line {
		lineTo = end.Index
	}
	rowStart := row.Index * b.size.Cols
	from = clip(lineFrom-rowStart, 0, len(row.Content))
	to = clip(lineTo-rowStart, 0, len(row.Content))
	if from >= to {
		return 0, 0, false
	}
	return from, to, true
}

func clip(i, low, high int) int {
	if i > high {
		i = high
	}
	if i < low {
		i = low
	}
	return i
}
