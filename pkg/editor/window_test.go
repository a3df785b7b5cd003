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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/scribe/pkg/types"
)

type cell struct {
	c  rune
	fg types.Color
	bg types.Color
}

// testDisplay records painted cells.
type testDisplay struct {
	cells  map[types.Point]cell
	cursor *types.Point
}

func newTestDisplay() *testDisplay {
	return &testDisplay{cells: make(map[types.Point]cell)}
}

func (d *testDisplay) SetCell(x, y int, c rune, fg, bg types.Color) {
	d.cells[types.Point{Col: x, Row: y}] = cell{c: c, fg: fg, bg: bg}
}

func (d *testDisplay) SetCursor(p types.Point) {
	d.cursor = &p
}

func (d *testDisplay) HideCursor() {
	d.cursor = nil
}

func (d *testDisplay) text(row, from, to int) string {
	var sb strings.Builder
	for x := from; x < to; x++ {
		if c, ok := d.cells[types.Point{Col: x, Row: row}]; ok {
			sb.WriteRune(c.c)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

type redColorizer struct{}

func (redColorizer) Colors(b *Buffer, line int) []types.Color {
	colors := make([]types.Color, len(b.GetLine(line)))
	for i := range colors {
		colors[i] = types.ColorRed
	}
	return colors
}

func testWindow(colorizer Colorizer) *Window {
	w := NewWindow("project", colorizer)
	w.Layout(types.Rect{Size: types.Size{Rows: 6, Cols: 30}})
	return w
}

func TestWindowLayout(t *testing.T) {
	w := testWindow(nil)
	assert.Equal(t, types.Size{Rows: 5, Cols: 19}, w.TextSize())

	x, y, ok := w.TextPoint(types.Point{Col: 12, Row: 1})
	assert.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	_, _, ok = w.TextPoint(types.Point{Col: 3, Row: 1})
	assert.False(t, ok)
	_, _, ok = w.TextPoint(types.Point{Col: 12, Row: 5})
	assert.False(t, ok)
}

func TestWindowRender(t *testing.T) {
	set := NewBufferSet(NewBuffer("notes", "hello\nworld"))
	set.GotoNext(false)
	set.Current().SetCursor(at(1, 2))

	d := newTestDisplay()
	w := testWindow(nil)
	w.Render(d, set)

	assert.Equal(t, "projec", d.text(0, 0, 6))
	assert.Equal(t, "  *scr", d.text(1, 0, 6))
	assert.Equal(t, "> note", d.text(2, 0, 6))

	assert.Equal(t, "1   ", d.text(0, 6, 10))
	assert.Equal(t, "2   ", d.text(1, 6, 10))
	assert.Equal(t, "hello", d.text(0, 11, 16))
	assert.Equal(t, "world", d.text(1, 11, 16))
	for row := 2; row < 5; row++ {
		assert.Equal(t, '~', d.cells[types.Point{Col: 11, Row: row}].c)
	}

	assert.Equal(t, w.computeInfoBarText(set, 30), d.text(5, 0, 30))
	if assert.NotNil(t, d.cursor) {
		assert.Equal(t, types.Point{Col: 13, Row: 1}, *d.cursor)
	}
	assert.Equal(t, types.Size{Rows: 5, Cols: 19}, set.Current().GetSize())
}

func TestWindowRenderWrappedLine(t *testing.T) {
	set := NewBufferSet(NewBuffer("long", strings.Repeat("abcdefghij", 3)))
	set.GotoNext(false)
	set.Current().SetCursor(at(0, 25))

	d := newTestDisplay()
	testWindow(nil).Render(d, set)

	assert.Equal(t, "abcdefghijabcdefghi", d.text(0, 11, 30))
	assert.Equal(t, "jabcdefghij", d.text(1, 11, 22))
	// continuation rows have no line number
	assert.Equal(t, "    ", d.text(1, 6, 10))
	assert.Equal(t, types.Point{Col: 11 + 6, Row: 1}, *d.cursor)
}

func TestWindowRenderColorsAndSelection(t *testing.T) {
	set := NewBufferSet(NewBuffer("notes", "hello"))
	set.GotoNext(false)
	b := set.Current()
	b.SetCursor(at(0, 1))
	b.StartSelection()
	b.SetCursor(at(0, 3))

	d := newTestDisplay()
	testWindow(redColorizer{}).Render(d, set)

	assert.Equal(t, cell{c: 'h', fg: types.ColorRed, bg: types.ColorDefault}, d.cells[types.Point{Col: 11, Row: 0}])
	assert.Equal(t, cell{c: 'e', fg: types.ColorRed, bg: types.ColorSelect}, d.cells[types.Point{Col: 12, Row: 0}])
	assert.Equal(t, cell{c: 'l', fg: types.ColorRed, bg: types.ColorSelect}, d.cells[types.Point{Col: 13, Row: 0}])
	assert.Equal(t, types.ColorDefault, d.cells[types.Point{Col: 14, Row: 0}].bg)
}

func TestWindowHidesScrolledCursor(t *testing.T) {
	set := NewBufferSet(NewBuffer("notes", "a\nb\nc"))
	set.GotoNext(false)
	b := set.Current()
	b.Perform(types.Do(types.ActionScrollDown))

	d := newTestDisplay()
	d.cursor = &types.Point{}
	testWindow(nil).Render(d, set)
	assert.Nil(t, d.cursor)
	assert.Equal(t, 'b', d.cells[types.Point{Col: 11, Row: 0}].c)
	assert.Equal(t, "2   ", d.text(0, 6, 10))
}

func TestInfoBarText(t *testing.T) {
	set := NewBufferSet(NewBuffer("notes", "hello\nworld"))
	set.GotoNext(false)
	w := testWindow(nil)

	assert.Equal(t, "1> notes .............. 1:0/2 ", w.computeInfoBarText(set, 30))

	set.Current().StartSelection()
	text := w.computeInfoBarText(set, 30)
	assert.Equal(t, "1> notes (selecting) .. 1:0/2 ", text)

	assert.Equal(t, " 1:0/2 ", w.computeInfoBarText(set, 7))
	assert.Len(t, w.computeInfoBarText(set, 12), 12)
}
