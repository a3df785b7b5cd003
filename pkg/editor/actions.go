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
	"unicode/utf8"

	"github.com/timburks/scribe/pkg/types"
)

// Perform applies one edit action. Actions that can't apply at the current
// position do nothing; any sequence of actions leaves the buffer valid.
func (b *Buffer) Perform(action types.Action) {
	switch action.Kind {
	case types.ActionInsert:
		if action.Text == "\n" {
			b.Perform(types.Do(types.ActionNewLine))
		} else {
			b.InsertString(action.Text)
		}
	case types.ActionClearSelection:
		b.ClearSelection()
	case types.ActionDeleteSelection:
		b.DeleteSelection()
	case types.ActionNewLine:
		b.InsertString("\n")
	case types.ActionBackspace:
		b.backspace()
	case types.ActionDelete:
		b.deleteForward()
	case types.ActionClick:
		b.click(action.X, action.Y)
	case types.ActionMoveLeft:
		b.moveLeft()
	case types.ActionMoveRight:
		b.moveRight()
	case types.ActionMoveUp:
		b.moveUp()
	case types.ActionMoveDown:
		b.moveDown()
	case types.ActionMovePrevWord:
		b.movePreviousWord()
	case types.ActionMoveNextWord:
		b.moveNextWord()
	case types.ActionMoveLineStart:
		b.cursor.Index = 0
	case types.ActionMoveLineEnd:
		b.cursor.Index = b.lines[b.cursor.Line].Length()
	case types.ActionScrollUp:
		if b.scroll > 0 {
			b.scroll--
		}
	case types.ActionScrollDown:
		b.scroll = min(b.scroll+1, len(b.lines))
	case types.ActionSelectAll:
		b.selection = Selection{Kind: types.SelectNormal}
		last := len(b.lines) - 1
		b.cursor = types.Cursor{Line: last, Index: b.lines[last].Length()}
	}
}

func (b *Buffer) backspace() {
	if b.DeleteSelection() {
		return
	}
	end := b.cursor
	if b.cursor.Index > 0 {
		// back up one character
		_, size := utf8.DecodeLastRuneInString(b.lines[b.cursor.Line].Content[:b.cursor.Index])
		b.cursor.Index -= size
	} else if b.cursor.Line > 0 {
		// join this line to the end of the previous one
		b.cursor.Line--
		b.cursor.Index = b.lines[b.cursor.Line].Length()
	}
	if b.cursor != end {
		b.DeleteRange(b.cursor, end)
	}
}

func (b *Buffer) deleteForward() {
	if b.DeleteSelection() {
		return
	}
	start := b.cursor
	end := b.cursor
	line := b.lines[start.Line]
	if start.Index < line.Length() {
		start.Index, end.Index = graphemeAt(line.Content, start.Index)
	} else if start.Line+1 < len(b.lines) {
		// join the next line to this one
		end.Line++
		end.Index = 0
	}
	if start != end {
		b.cursor = start
		b.DeleteRange(start, end)
	}
}

// click moves the cursor to the character under a cell of the viewport.
// Clicks past the end of a row land at the end of the row.
func (b *Buffer) click(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	v := 0
	for row := range b.VisibleRows() {
		if v == y {
			index := row.Index*max(b.size.Cols, 0) + min(x, len(row.Content))
			b.cursor = types.Cursor{
				Line:  row.LineIndex,
				Index: b.lines[row.LineIndex].floorBoundary(index),
			}
			return
		}
		v++
	}
}

func (b *Buffer) moveLeft() {
	if b.cursor.Index > 0 {
		_, size := utf8.DecodeLastRuneInString(b.lines[b.cursor.Line].Content[:b.cursor.Index])
		b.cursor.Index -= size
	} else if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Index = b.lines[b.cursor.Line].Length()
	}
}

func (b *Buffer) moveRight() {
	line := b.lines[b.cursor.Line]
	if b.cursor.Index < line.Length() {
		_, size := utf8.DecodeRuneInString(line.Content[b.cursor.Index:])
		b.cursor.Index += size
	} else if b.cursor.Line+1 < len(b.lines) {
		b.cursor.Line++
		b.cursor.Index = 0
	}
}

// moveUp goes to the same column of the row above, which may be the last
// row of the previous line.
func (b *Buffer) moveUp() {
	row, offset := b.rowOf(b.cursor)
	if row > 0 {
		b.cursor.Index = b.indexAt(b.cursor.Line, row-1, offset)
	} else if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Index = b.indexAt(b.cursor.Line, b.RowCount(b.cursor.Line)-1, offset)
	}
}

// moveDown goes to the same column of the row below, which may be the first
// row of the next line.
func (b *Buffer) moveDown() {
	row, offset := b.rowOf(b.cursor)
	if row+1 < b.RowCount(b.cursor.Line) {
		b.cursor.Index = b.indexAt(b.cursor.Line, row+1, offset)
	} else if b.cursor.Line+1 < len(b.lines) {
		b.cursor.Line++
		b.cursor.Index = b.indexAt(b.cursor.Line, 0, offset)
	}
}

func (b *Buffer) movePreviousWord() {
	if b.cursor.Index > 0 {
		b.cursor.Index = previousWordStart(b.lines[b.cursor.Line].Content, b.cursor.Index)
	} else if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Index = b.lines[b.cursor.Line].Length()
	}
}

func (b *Buffer) moveNextWord() {
	line := b.lines[b.cursor.Line]
	if b.cursor.Index < line.Length() {
		b.cursor.Index = nextWordEnd(line.Content, b.cursor.Index)
	} else if b.cursor.Line+1 < len(b.lines) {
		b.cursor.Line++
		b.cursor.Index = 0
	}
}
