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

// Package screen draws scribe on a terminal with termbox and reads
// terminal events.
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/scribe/pkg/editor"
	"github.com/timburks/scribe/pkg/types"
)

// The Screen is the terminal display.
type Screen struct {
	size types.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputAlt | termbox.InputMouse)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Render lays out the window over all but the last screen row and uses that
// row for the message bar.
func (s *Screen) Render(w *editor.Window, set *editor.BufferSet, message string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()

	w.Layout(types.Rect{Size: types.Size{Rows: max(s.size.Rows-1, 0), Cols: s.size.Cols}})
	w.Render(s, set)
	s.renderMessageBar(message)
	termbox.Flush()
}

func (s *Screen) renderMessageBar(message string) {
	line := runewidth.Truncate(message, s.size.Cols, "")
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) SetCell(x, y int, c rune, fg, bg types.Color) {
	termbox.SetCell(x, y, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) SetCursor(p types.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) HideCursor() {
	termbox.HideCursor()
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &types.Event{Type: types.EventResize}
	case termbox.EventMouse:
		return &types.Event{
			Type:   types.EventMouse,
			Key:    mouseKey(event.Key),
			MouseX: event.MouseX,
			MouseY: event.MouseY,
		}
	case termbox.EventKey:
		return keyEvent(event)
	default:
		return &types.Event{Type: types.EventError}
	}
}

// keyEvent converts a termbox key event. Characters arrive with a zero key,
// which termbox also uses for ctrl-space.
func keyEvent(event termbox.Event) *types.Event {
	e := &types.Event{Type: types.EventKey, Ch: event.Ch}
	if event.Mod&termbox.ModAlt != 0 {
		e.Mod |= types.ModAlt
	}
	if event.Ch == 0 {
		e.Key = key(event.Key)
	}
	return e
}

func mouseKey(k termbox.Key) types.Key {
	switch k {
	case termbox.MouseLeft:
		return types.KeyMouseLeft
	case termbox.MouseWheelUp:
		return types.KeyMouseWheelUp
	case termbox.MouseWheelDown:
		return types.KeyMouseWheelDown
	default:
		return types.KeyUnsupported
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.KeyBackspace
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	case termbox.KeyCtrlSpace:
		return types.KeyCtrlSpace
	case termbox.KeyCtrlA:
		return types.KeyCtrlA
	case termbox.KeyCtrlB:
		return types.KeyCtrlB
	case termbox.KeyCtrlC:
		return types.KeyCtrlC
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyCtrlL:
		return types.KeyCtrlL
	case termbox.KeyCtrlN:
		return types.KeyCtrlN
	case termbox.KeyCtrlP:
		return types.KeyCtrlP
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyCtrlV:
		return types.KeyCtrlV
	case termbox.KeyCtrlW:
		return types.KeyCtrlW
	case termbox.KeyCtrlX:
		return types.KeyCtrlX
	default:
		return types.KeyUnsupported
	}
}
