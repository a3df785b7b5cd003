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
	"iter"

	"github.com/timburks/scribe/pkg/types"
)

// A Row is one display row of a wrapped line. Rows are computed on demand
// and share their text with the owning line.
type Row struct {
	Num       int // 1-based position of the row in the whole buffer
	Index     int // position of the row within its line
	LineIndex int
	Content   string
}

// Rows wraps every line at the viewport width. A line longer than the width
// is cut into full-width rows followed by the remainder; an empty line is a
// single empty row. When the width is not positive, lines are not wrapped.
// Each call starts over, and the buffer must not change while iterating.
func (b *Buffer) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		width := b.size.Cols
		num := 0
		for i, line := range b.lines {
			text := line.Content
			for index := 0; ; index++ {
				num++
				if width <= 0 || len(text) <= width {
					if !yield(Row{Num: num, Index: index, LineIndex: i, Content: text}) {
						return
					}
					break
				}
				if !yield(Row{Num: num, Index: index, LineIndex: i, Content: text[:width]}) {
					return
				}
				text = text[width:]
			}
		}
	}
}

// VisibleRows returns the rows inside the viewport at the current scroll offset.
func (b *Buffer) VisibleRows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		skipped, taken := 0, 0
		if b.size.Rows <= 0 {
			return
		}
		for row := range b.Rows() {
			if skipped < b.scroll {
				skipped++
				continue
			}
			if !yield(row) {
				return
			}
			taken++
			if taken == b.size.Rows {
				return
			}
		}
	}
}

// RowCount returns the number of rows line i wraps into.
func (b *Buffer) RowCount(i int) int {
	length := b.line(i).Length()
	width := b.size.Cols
	if width <= 0 || length == 0 {
		return 1
	}
	return (length + width - 1) / width
}

// rowOf returns the row of the cursor line that holds the cursor
// and the cursor's offset into that row.
func (b *Buffer) rowOf(c types.Cursor) (row int, offset int) {
	width := b.size.Cols
	if width <= 0 {
		return 0, c.Index
	}
	row = min(c.Index/width, b.RowCount(c.Line)-1)
	return row, c.Index - row*width
}

// indexAt returns the byte index of an offset into a row of line i, clamped
// to the row and moved back onto a character boundary.
func (b *Buffer) indexAt(i int, row int, offset int) int {
	line := b.line(i)
	width := b.size.Cols
	if width <= 0 {
		return line.floorBoundary(offset)
	}
	if row < b.RowCount(i)-1 && offset >= width {
		offset = width - 1
	}
	return line.floorBoundary(row*width + offset)
}

// CursorPosition returns the column and visible row of the cursor.
// ok is false when the cursor is scrolled out of the viewport.
func (b *Buffer) CursorPosition() (col int, row int, ok bool) {
	cursorRow, offset := b.rowOf(b.cursor)
	y := 0
	for r := range b.VisibleRows() {
		if r.LineIndex == b.cursor.Line && r.Index == cursorRow {
			return offset, y, true
		}
		y++
	}
	return 0, 0, false
}

// cursorRowNumber returns the 0-based row of the cursor counted from the
// top of the buffer.
func (b *Buffer) cursorRowNumber() int {
	n := 0
	for i := 0; i < b.cursor.Line; i++ {
		n += b.RowCount(i)
	}
	row, _ := b.rowOf(b.cursor)
	return n + row
}

// RevealCursor scrolls the smallest distance that brings the cursor into view.
func (b *Buffer) RevealCursor() {
	if b.size.Rows <= 0 {
		return
	}
	n := b.cursorRowNumber()
	if n < b.scroll {
		b.scroll = n
	}
	if n-b.scroll >= b.size.Rows {
		b.scroll = n - b.size.Rows + 1
	}
}
