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
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/timburks/scribe/pkg/types"
)

// A Buffer holds the lines of one document along with its cursor,
// selection and viewport. A buffer always has at least one line.
type Buffer struct {
	name         string
	path         string
	lines        []*Line
	cursor       types.Cursor
	selection    Selection
	size         types.Size // set by the window each frame
	scroll       int        // vertical scroll offset in rows
	needsReparse bool
}

func NewBuffer(name string, text string) *Buffer {
	b := &Buffer{name: name}
	b.lines = splitLines(text)
	b.needsReparse = true
	return b
}

// NewFileBuffer reads a file into a new buffer. If the file can't be read,
// no buffer is created.
func NewFileBuffer(path string) (*Buffer, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	b := NewBuffer(filepath.Base(path), string(bytes))
	b.path = path
	return b, nil
}

// Lines are split like a text file: a final newline does not start
// another line and carriage returns before newlines are dropped.
func splitLines(text string) []*Line {
	lines := make([]*Line, 0)
	if text != "" {
		text = strings.TrimSuffix(text, "\n")
		for _, s := range strings.Split(text, "\n") {
			lines = append(lines, NewLine(strings.TrimSuffix(s, "\r")))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, NewLine(""))
	}
	return lines
}

func (b *Buffer) GetName() string {
	return b.name
}

// GetPath returns the file path of the buffer or "" if it has none.
func (b *Buffer) GetPath() string {
	return b.path
}

func (b *Buffer) SetPath(path string) {
	b.path = path
	b.name = filepath.Base(path)
	b.needsReparse = true
}

func (b *Buffer) GetLineCount() int {
	return len(b.lines)
}

func (b *Buffer) GetLine(i int) string {
	return b.line(i).Content
}

func (b *Buffer) line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		panic(fmt.Sprintf("line %d out of range (buffer has %d lines)", i, len(b.lines)))
	}
	return b.lines[i]
}

func (b *Buffer) GetCursor() types.Cursor {
	return b.cursor
}

// SetCursor moves the cursor. The position must be valid for the buffer.
func (b *Buffer) SetCursor(cursor types.Cursor) {
	b.validate(cursor)
	b.cursor = cursor
}

func (b *Buffer) validate(c types.Cursor) {
	if !b.line(c.Line).IsBoundary(c.Index) {
		panic(fmt.Sprintf("cursor %d:%d is not a character boundary", c.Line, c.Index))
	}
}

func (b *Buffer) GetSize() types.Size {
	return b.size
}

// SetSize records the viewport in character cells; wrapping follows Cols.
func (b *Buffer) SetSize(size types.Size) {
	b.size = size
}

func (b *Buffer) GetScroll() int {
	return b.scroll
}

// NeedsReparse reports whether the text changed since the last MarkParsed.
func (b *Buffer) NeedsReparse() bool {
	return b.needsReparse
}

func (b *Buffer) MarkParsed() {
	b.needsReparse = false
}

// Text returns the buffer contents with lines joined by newlines.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Content)
	}
	return sb.String()
}

// Bytes returns the contents as a file, with every line newline-terminated.
func (b *Buffer) Bytes() []byte {
	return []byte(b.Text() + "\n")
}

// InsertAt inserts text at a cursor and returns the cursor just past the
// inserted text.
func (b *Buffer) InsertAt(cursor types.Cursor, text string) types.Cursor {
	if text == "" {
		return cursor
	}
	b.validate(cursor)
	line := b.lines[cursor.Line]
	after := line.SplitOff(cursor.Index)

	// a trailing newline leaves an empty final fragment
	fragments := strings.SplitAfter(text, "\n")
	line.Content += trimLineEnding(fragments[0])
	rest := fragments[1:]
	if len(rest) == 0 {
		line.Append(after)
		cursor.Index = line.Length() - after.Length()
		b.needsReparse = true
		return cursor
	}
	added := make([]*Line, 0, len(rest))
	for _, fragment := range rest {
		added = append(added, NewLine(trimLineEnding(fragment)))
	}
	added[len(added)-1].Append(after)
	b.lines = slices.Insert(b.lines, cursor.Line+1, added...)

	cursor.Line += len(rest)
	cursor.Index = b.lines[cursor.Line].Length() - after.Length()
	b.needsReparse = true
	return cursor
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// InsertString replaces any selection with text and leaves the cursor after it.
func (b *Buffer) InsertString(text string) {
	b.DeleteSelection()
	b.cursor = b.InsertAt(b.cursor, text)
}

// DeleteRange removes the text between two cursors. start must not be after end.
func (b *Buffer) DeleteRange(start, end types.Cursor) {
	b.validate(start)
	b.validate(end)
	if end.Less(start) {
		panic(fmt.Sprintf("range end %d:%d is before start %d:%d", end.Line, end.Index, start.Line, start.Index))
	}

	// detach what follows the range on the end line, then drop the end line
	var tail *Line
	if end.Line > start.Line {
		tail = b.lines[end.Line].SplitOff(end.Index)
		b.lines = slices.Delete(b.lines, end.Line, end.Line+1)
	}
	if end.Line > start.Line+1 {
		b.lines = slices.Delete(b.lines, start.Line+1, end.Line)
	}

	line := b.lines[start.Line]
	var after *Line
	if start.Line == end.Line {
		after = line.SplitOff(end.Index)
	}
	line.SplitOff(start.Index)
	if after != nil {
		line.Append(after)
	}
	if tail != nil {
		line.Append(tail)
	}
	b.needsReparse = true
}

// DeleteSelection removes the selected text, moving the cursor to its start.
// It returns false if nothing was selected.
func (b *Buffer) DeleteSelection() bool {
	start, end, ok := b.SelectionBounds()
	if !ok {
		return false
	}
	b.cursor = start
	b.selection = Selection{}
	b.DeleteRange(start, end)
	return true
}
