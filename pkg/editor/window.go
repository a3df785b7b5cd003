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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/scribe/pkg/types"
)

const gutterWidth = 5

// A Colorizer supplies a color for every byte of a line.
type Colorizer interface {
	Colors(b *Buffer, line int) []types.Color
}

// A Window paints the current buffer of a BufferSet into a rectangle of a
// display. From left to right it has a side bar, a gutter with line numbers
// and the text area; the last row is an info bar.
type Window struct {
	label     string // shown at the top of the side bar
	colorizer Colorizer
	origin    types.Point
	size      types.Size
	sideWidth int
	text      types.Rect // text area, in display coordinates
}

func NewWindow(label string, colorizer Colorizer) *Window {
	return &Window{label: label, colorizer: colorizer}
}

// Layout assigns the window its rectangle and computes the text area.
func (w *Window) Layout(r types.Rect) {
	w.origin = r.Origin
	w.size = r.Size
	w.sideWidth = r.Size.Cols / 5
	w.text = types.Rect{
		Origin: types.Point{
			Row: r.Origin.Row,
			Col: r.Origin.Col + w.sideWidth + gutterWidth,
		},
		Size: types.Size{
			Rows: max(r.Size.Rows-1, 0),
			Cols: max(r.Size.Cols-w.sideWidth-gutterWidth, 0),
		},
	}
}

// TextSize returns the size of the text area.
func (w *Window) TextSize() types.Size {
	return w.text.Size
}

// TextPoint converts a display position to a cell of the text area.
func (w *Window) TextPoint(p types.Point) (x int, y int, ok bool) {
	x = p.Col - w.text.Origin.Col
	y = p.Row - w.text.Origin.Row
	if x < 0 || y < 0 || x >= w.text.Size.Cols || y >= w.text.Size.Rows {
		return 0, 0, false
	}
	return x, y, true
}

func (w *Window) Render(d types.Display, set *BufferSet) {
	b := set.Current()
	b.SetSize(w.text.Size)

	w.renderSideBar(d, set)
	w.renderBuffer(d, b)
	w.renderInfoBar(d, set)

	if col, row, ok := b.CursorPosition(); ok {
		d.SetCursor(types.Point{Col: w.text.Origin.Col + col, Row: w.text.Origin.Row + row})
	} else {
		d.HideCursor()
	}
}

func (w *Window) renderSideBar(d types.Display, set *BufferSet) {
	if w.sideWidth == 0 {
		return
	}
	w.putString(d, w.origin.Col, w.origin.Row, w.sideWidth, w.label, types.ColorGray, types.ColorDefault)
	for i, b := range set.Buffers() {
		row := w.origin.Row + i + 1
		if row >= w.origin.Row+w.text.Size.Rows {
			break
		}
		fg := types.ColorGray
		name := "  " + b.GetName()
		if i == set.CurrentIndex() {
			fg = types.ColorWhite
			name = "> " + b.GetName()
		}
		w.putString(d, w.origin.Col, row, w.sideWidth, name, fg, types.ColorDefault)
	}
}

func (w *Window) renderBuffer(d types.Display, b *Buffer) {
	y := 0
	gutterCol := w.text.Origin.Col - gutterWidth
	for row := range b.VisibleRows() {
		screenRow := w.text.Origin.Row + y
		if row.Index == 0 {
			number := fmt.Sprintf("%d", row.LineIndex+1)
			w.putString(d, gutterCol, screenRow, gutterWidth-1, number, types.ColorGray, types.ColorDefault)
		}

		var colors []types.Color
		if w.colorizer != nil {
			colors = w.colorizer.Colors(b, row.LineIndex)
		}
		rowStart := row.Index * b.GetSize().Cols
		from, to, selected := b.SelectionSpan(row)

		// cells are bytes, so each character is painted at its byte offset
		for x, c := range row.Content {
			if c == utf8.RuneError || c == '\t' {
				c = ' '
			}
			fg := types.ColorWhite
			if rowStart+x < len(colors) && colors[rowStart+x] != types.ColorDefault {
				fg = colors[rowStart+x]
			}
			bg := types.ColorDefault
			if selected && x >= from && x < to {
				bg = types.ColorSelect
			}
			d.SetCell(w.text.Origin.Col+x, screenRow, c, fg, bg)
		}
		y++
	}
	// mark rows past the end of the buffer
	for ; y < w.text.Size.Rows; y++ {
		d.SetCell(w.text.Origin.Col, w.text.Origin.Row+y, '~', types.ColorGray, types.ColorDefault)
	}
}

// Compute the text to display on the info bar.
func (w *Window) computeInfoBarText(set *BufferSet, length int) string {
	b := set.Current()
	cursor := b.GetCursor()
	finalText := fmt.Sprintf(" %d:%d/%d ", cursor.Line+1, cursor.Index, b.GetLineCount())
	text := fmt.Sprintf("%d> %s ", set.CurrentIndex(), b.GetName())
	if b.HasSelection() {
		text += "(selecting) "
	}
	text = runewidth.Truncate(text, max(length-len(finalText), 0), "")
	if pad := length - runewidth.StringWidth(text) - len(finalText); pad > 0 {
		text += strings.Repeat(".", pad)
	}
	return text + finalText
}

func (w *Window) renderInfoBar(d types.Display, set *BufferSet) {
	if w.size.Rows == 0 {
		return
	}
	infoRow := w.origin.Row + w.size.Rows - 1
	w.putString(d, w.origin.Col, infoRow, w.size.Cols,
		w.computeInfoBarText(set, w.size.Cols), types.ColorBlack, types.ColorWhite)
}

// putString paints s from (x, y), cut to width cells.
func (w *Window) putString(d types.Display, x, y, width int, s string, fg, bg types.Color) {
	s = runewidth.Truncate(s, width, "")
	for _, c := range s {
		d.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
