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

// Package types contains the values shared by the scribe packages:
// cursor positions, sizes, edit actions and the display interface.
package types

// Editor modes
const (
	ModeEdit = 0
	ModeLisp = 1
	ModeQuit = 9999
)

// Selection kinds
const (
	SelectNone   = 0
	SelectNormal = 1
	SelectLine   = 2
	SelectWord   = 3
)

// A Cursor is a position in a buffer. Index is a byte offset into the line
// and always falls on a character boundary.
type Cursor struct {
	Line  int
	Index int
}

// Compare orders cursors by line, then by index.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.Line < other.Line:
		return -1
	case c.Line > other.Line:
		return 1
	case c.Index < other.Index:
		return -1
	case c.Index > other.Index:
		return 1
	default:
		return 0
	}
}

func (c Cursor) Less(other Cursor) bool {
	return c.Compare(other) < 0
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// An ActionKind names one edit command.
type ActionKind int

const (
	ActionInsert ActionKind = iota
	ActionClearSelection
	ActionDeleteSelection
	ActionNewLine
	ActionBackspace
	ActionDelete
	ActionClick
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMovePrevWord
	ActionMoveNextWord
	ActionMoveLineStart
	ActionMoveLineEnd
	ActionScrollUp
	ActionScrollDown
	ActionSelectAll
)

var actionNames = map[ActionKind]string{
	ActionInsert:          "insert",
	ActionClearSelection:  "clear-selection",
	ActionDeleteSelection: "delete-selection",
	ActionNewLine:         "new-line",
	ActionBackspace:       "backspace",
	ActionDelete:          "delete",
	ActionClick:           "click",
	ActionMoveLeft:        "left",
	ActionMoveRight:       "right",
	ActionMoveUp:          "up",
	ActionMoveDown:        "down",
	ActionMovePrevWord:    "previous-word",
	ActionMoveNextWord:    "next-word",
	ActionMoveLineStart:   "beginning-of-line",
	ActionMoveLineEnd:     "end-of-line",
	ActionScrollUp:        "scroll-up",
	ActionScrollDown:      "scroll-down",
	ActionSelectAll:       "select-all",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// An Action is one already-resolved edit command. Text is used by inserts,
// X and Y by clicks.
type Action struct {
	Kind ActionKind
	Text string
	X    int
	Y    int
}

func Insert(text string) Action {
	return Action{Kind: ActionInsert, Text: text}
}

func Click(x, y int) Action {
	return Action{Kind: ActionClick, X: x, Y: y}
}

func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Moves, clicks and scrolls leave the text unchanged.
func (a Action) ChangesText() bool {
	switch a.Kind {
	case ActionInsert, ActionNewLine, ActionBackspace, ActionDelete, ActionDeleteSelection:
		return true
	default:
		return false
	}
}

// Colors are 256-color terminal attributes.
type Color uint16

const (
	ColorDefault Color = 0
	ColorBlack   Color = 1
	ColorRed     Color = 2
	ColorGreen   Color = 3
	ColorYellow  Color = 4
	ColorBlue    Color = 5
	ColorMagenta Color = 6
	ColorCyan    Color = 7
	ColorWhite   Color = 8
	ColorGray    Color = 0xf0
	ColorSelect  Color = 0xee
)

// A Display receives painted cells.
type Display interface {
	SetCell(x, y int, c rune, fg, bg Color)
	SetCursor(p Point)
	HideCursor()
}

// Keys reported by the screen; characters arrive in Event.Ch.
type Key uint16

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyCtrlSpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlF
	KeyCtrlL
	KeyCtrlN
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyMouseLeft
	KeyMouseWheelUp
	KeyMouseWheelDown
)

// Modifier flags
const (
	ModNone  = 0
	ModShift = 1
	ModAlt   = 2
	ModCtrl  = 4
)

const (
	EventKey    = 0
	EventResize = 1
	EventMouse  = 2
	EventError  = 3
)

type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Mod    int
	MouseX int
	MouseY int
}
