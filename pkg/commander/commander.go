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
package commander

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"

	"github.com/timburks/scribe/pkg/config"
	"github.com/timburks/scribe/pkg/editor"
	"github.com/timburks/scribe/pkg/types"
	"github.com/timburks/scribe/pkg/workspace"
)

// A Clipboard holds copied text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard uses the desktop clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// The Commander converts user input into actions on the current buffer.
type Commander struct {
	buffers   *editor.BufferSet
	window    *editor.Window
	config    config.Config
	workspace workspace.Info
	clipboard Clipboard
	forget    func(b *editor.Buffer) // called when a buffer is closed
	mode      int                    // editor mode
	lispText  string                 // lisp command as it is being typed
	message   string                 // status message
	pasteText string                 // used when the clipboard is unavailable
}

func NewCommander(buffers *editor.BufferSet, window *editor.Window, cfg config.Config, ws workspace.Info) *Commander {
	c := &Commander{
		buffers:   buffers,
		window:    window,
		config:    cfg,
		workspace: ws,
		clipboard: SystemClipboard,
		mode:      types.ModeEdit,
	}
	c.bindPrimitives()
	return c
}

// SetClipboard replaces the clipboard used for copy and paste.
func (c *Commander) SetClipboard(cb Clipboard) {
	c.clipboard = cb
}

// OnClose registers a function that is called with every closed buffer.
func (c *Commander) OnClose(f func(b *editor.Buffer)) {
	c.forget = f
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetMessageBarText() string {
	if c.mode == types.ModeLisp {
		return "lisp> " + c.lispText
	}
	return c.message
}

// perform applies an action to the current buffer and keeps the cursor
// on screen unless the action scrolls.
func (c *Commander) perform(action types.Action) {
	b := c.buffers.Current()
	b.Perform(action)
	if action.Kind != types.ActionScrollUp && action.Kind != types.ActionScrollDown {
		b.RevealCursor()
	}
}

// performSelecting extends the selection while moving.
func (c *Commander) performSelecting(action types.Action) {
	c.buffers.Current().StartOrContinueSelection()
	c.perform(action)
}

// performMoving drops the selection while moving.
func (c *Commander) performMoving(action types.Action) {
	c.buffers.Current().ClearSelection()
	c.perform(action)
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		if c.mode == types.ModeLisp {
			return c.processKeyLispMode(event)
		}
		return c.processKeyEditMode(event)
	case types.EventMouse:
		return c.processMouse(event)
	default:
		return nil
	}
}

func (c *Commander) processMouse(event *types.Event) error {
	switch event.Key {
	case types.KeyMouseLeft:
		x, y, ok := c.window.TextPoint(types.Point{Col: event.MouseX, Row: event.MouseY})
		if ok {
			c.perform(types.Click(x, y))
		}
	case types.KeyMouseWheelUp:
		for i := 0; i < c.config.ScrollLines; i++ {
			c.perform(types.Do(types.ActionScrollUp))
		}
	case types.KeyMouseWheelDown:
		for i := 0; i < c.config.ScrollLines; i++ {
			c.perform(types.Do(types.ActionScrollDown))
		}
	}
	return nil
}

var arrowMoves = map[types.Key]string{
	types.KeyArrowLeft:  "left",
	types.KeyArrowRight: "right",
	types.KeyArrowUp:    "up",
	types.KeyArrowDown:  "down",
	types.KeyHome:       "beginning-of-line",
	types.KeyEnd:        "end-of-line",
	types.KeyCtrlB:      "previous-word",
	types.KeyCtrlF:      "next-word",
}

func (c *Commander) processKeyEditMode(event *types.Event) error {
	if move, ok := arrowMoves[event.Key]; ok {
		// the alt modifier stands in for shift, which terminals don't report
		if event.Mod&(types.ModShift|types.ModAlt) != 0 {
			move = "select-" + move
		}
		return c.eval("(" + move + ")")
	}
	switch event.Key {
	case types.KeyPgup:
		return c.eval(fmt.Sprintf("(scroll-up %d)", c.window.TextSize().Rows))
	case types.KeyPgdn:
		return c.eval(fmt.Sprintf("(scroll-down %d)", c.window.TextSize().Rows))
	case types.KeyBackspace:
		return c.eval("(backspace)")
	case types.KeyDelete:
		return c.eval("(delete)")
	case types.KeyEnter:
		return c.eval("(new-line)")
	case types.KeyTab:
		c.perform(types.Insert(c.config.TabText))
	case types.KeySpace:
		c.perform(types.Insert(" "))
	case types.KeyEsc:
		return c.eval("(clear-selection)")
	case types.KeyCtrlSpace:
		return c.eval("(start-selection)")
	case types.KeyCtrlA:
		return c.eval("(select-all)")
	case types.KeyCtrlC:
		return c.eval("(copy)")
	case types.KeyCtrlX:
		return c.eval("(cut)")
	case types.KeyCtrlV:
		return c.eval("(paste)")
	case types.KeyCtrlN:
		return c.eval("(next-buffer)")
	case types.KeyCtrlP:
		return c.eval("(previous-buffer)")
	case types.KeyCtrlW:
		return c.eval("(close-buffer)")
	case types.KeyCtrlS:
		return c.eval("(save)")
	case types.KeyCtrlL:
		c.mode = types.ModeLisp
		c.lispText = ""
	case types.KeyCtrlQ:
		c.mode = types.ModeQuit
	}
	if event.Key == types.KeyUnsupported && event.Ch != 0 {
		c.perform(types.Insert(string(event.Ch)))
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *types.Event) error {
	switch event.Key {
	case types.KeyEsc:
		c.mode = types.ModeEdit
	case types.KeyEnter:
		c.mode = types.ModeEdit
		c.message = c.parseEval(c.lispText)
	case types.KeyBackspace:
		if text := []rune(c.lispText); len(text) > 0 {
			c.lispText = string(text[:len(text)-1])
		}
	case types.KeySpace:
		c.lispText += " "
	}
	if event.Key == types.KeyUnsupported && event.Ch != 0 {
		c.lispText += string(event.Ch)
	}
	return nil
}

func (c *Commander) copySelection() bool {
	b := c.buffers.Current()
	if !b.HasSelection() {
		return false
	}
	c.pasteText = b.SelectedText()
	if err := c.clipboard.WriteAll(c.pasteText); err != nil {
		log.Printf("clipboard unavailable: %+v", err)
	}
	return true
}

func (c *Commander) paste() {
	text, err := c.clipboard.ReadAll()
	if err != nil {
		log.Printf("clipboard unavailable: %+v", err)
		text = c.pasteText
	}
	if text != "" {
		c.perform(types.Insert(text))
	}
}

func (c *Commander) save(path string) error {
	b := c.buffers.Current()
	if path == "" {
		path = b.GetPath()
	}
	if path == "" {
		return fmt.Errorf("%s has no file name", b.GetName())
	}
	if err := b.WriteFile(path, c.config.FormatOnSave); err != nil {
		return err
	}
	c.message = fmt.Sprintf("wrote %s", path)
	return nil
}

func (c *Commander) closeBuffer() error {
	b := c.buffers.Current()
	if err := c.buffers.Close(c.buffers.CurrentIndex()); err != nil {
		return err
	}
	if c.forget != nil {
		c.forget(b)
	}
	return nil
}
