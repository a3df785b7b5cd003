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
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/scribe/pkg/types"
)

const source = "testdata/gettysburg-address.txt"

func setup(t *testing.T) *Buffer {
	b, err := NewFileBuffer(source)
	require.NoError(t, err)
	return b
}

// final writes the buffer out and checks that it matches the source file.
func final(t *testing.T, b *Buffer) {
	path := filepath.Join(t.TempDir(), "test-final.txt")
	require.NoError(t, b.WriteFile(path, false))
	expected, err := os.ReadFile(source)
	require.NoError(t, err)
	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))
}

func lines(b *Buffer) []string {
	result := make([]string, b.GetLineCount())
	for i := range result {
		result[i] = b.GetLine(i)
	}
	return result
}

func at(line, index int) types.Cursor {
	return types.Cursor{Line: line, Index: index}
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	b := setup(t)
	assert.Equal(t, "gettysburg-address.txt", b.GetName())
	assert.Equal(t, source, b.GetPath())
	assert.Equal(t, 24, b.GetLineCount())
	final(t, b)
}

func TestInsertAndBackspaceRestoresText(t *testing.T) {
	b := setup(t)
	b.SetCursor(at(19, 10))
	b.Perform(types.Insert("w\u00f6rld"))
	assert.Equal(t, at(19, 16), b.GetCursor())
	for range []rune("w\u00f6rld") {
		b.Perform(types.Do(types.ActionBackspace))
	}
	assert.Equal(t, at(19, 10), b.GetCursor())
	final(t, b)
}

func TestMissingFile(t *testing.T) {
	b, err := NewFileBuffer(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Nil(t, b)
}

func TestNewBufferSplitsLines(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{"", []string{""}},
		{"\n", []string{""}},
		{"abc", []string{"abc"}},
		{"abc\n", []string{"abc"}},
		{"a\r\nb\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\n\n", []string{"a", ""}},
	}
	for _, test := range tests {
		b := NewBuffer("test", test.text)
		assert.Equal(t, test.expected, lines(b), "text %q", test.text)
		assert.True(t, b.NeedsReparse())
	}
}

func TestInsertIntoEmptyBuffer(t *testing.T) {
	b := NewBuffer("test", "")
	b.InsertString("ab")
	assert.Equal(t, []string{"ab"}, lines(b))
	assert.Equal(t, at(0, 2), b.GetCursor())
}

func TestInsertNewlineAndText(t *testing.T) {
	b := NewBuffer("test", "ab")
	b.SetCursor(at(0, 2))
	b.InsertString("\ncd")
	assert.Equal(t, []string{"ab", "cd"}, lines(b))
	assert.Equal(t, at(1, 2), b.GetCursor())
}

func TestInsertMultipleLinesMidLine(t *testing.T) {
	b := NewBuffer("test", "hello world")
	b.SetCursor(at(0, 5))
	b.InsertString("X\nY\nZ")
	assert.Equal(t, []string{"helloX", "Y", "Z world"}, lines(b))
	assert.Equal(t, at(2, 1), b.GetCursor())
}

func TestInsertTrailingNewline(t *testing.T) {
	b := NewBuffer("test", "ab")
	b.SetCursor(at(0, 1))
	b.InsertString("x\r\n")
	assert.Equal(t, []string{"ax", "b"}, lines(b))
	assert.Equal(t, at(1, 0), b.GetCursor())
}

func TestInsertAdvancesLinePerNewline(t *testing.T) {
	for _, text := range []string{"a", "\n", "a\nb", "\n\n\n", "x\ny\nz\n", "\u65e5\u672c\n\u8a9e"} {
		b := NewBuffer("test", "first\nsecond")
		b.SetCursor(at(1, 3))
		b.InsertString(text)
		assert.Equal(t, 1+strings.Count(text, "\n"), b.GetCursor().Line, "text %q", text)
	}
}

func TestInsertThenDeleteRange(t *testing.T) {
	for _, text := range []string{"", "x", "w\u00f6rld", "\U0001F1FA\U0001F1F8 flag"} {
		b := NewBuffer("test", "h\u00e9llo\nthere")
		start := at(0, 3)
		b.SetCursor(start)
		end := b.InsertAt(start, text)
		b.DeleteRange(start, end)
		b.SetCursor(start)
		assert.Equal(t, []string{"h\u00e9llo", "there"}, lines(b), "text %q", text)
		assert.Equal(t, start, b.GetCursor())
	}
}

func TestDeleteRangeWithinLine(t *testing.T) {
	b := NewBuffer("test", "abcdef")
	b.DeleteRange(at(0, 1), at(0, 4))
	assert.Equal(t, []string{"aef"}, lines(b))
}

func TestDeleteRangeAcrossLines(t *testing.T) {
	b := NewBuffer("test", "abc\ndef\nghi\njkl")
	b.DeleteRange(at(0, 1), at(2, 2))
	assert.Equal(t, []string{"ai", "jkl"}, lines(b))

	b = NewBuffer("test", "abc\ndef")
	b.DeleteRange(at(0, 3), at(1, 0))
	assert.Equal(t, []string{"abcdef"}, lines(b))
}

func TestContractViolations(t *testing.T) {
	b := NewBuffer("test", "\u00e9\nb")
	assert.Panics(t, func() { b.SetCursor(at(0, 1)) })
	assert.Panics(t, func() { b.SetCursor(at(2, 0)) })
	assert.Panics(t, func() { b.GetLine(-1) })
	assert.Panics(t, func() { b.DeleteRange(at(1, 0), at(0, 0)) })
	assert.Panics(t, func() { b.InsertAt(at(0, 1), "x") })
}

func TestTextAndBytes(t *testing.T) {
	b := NewBuffer("test", "a\nb\n")
	assert.Equal(t, "a\nb", b.Text())
	assert.Equal(t, []byte("a\nb\n"), b.Bytes())
}

func TestWriteFileFormatsGo(t *testing.T) {
	text := "package main\nfunc main() {\nx:=1\n_ = x\n}\n"
	expected, err := format.Source([]byte(text))
	require.NoError(t, err)

	b := NewBuffer(ScratchName, text)
	b.SetCursor(at(2, 3))
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, b.WriteFile(path, true))

	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))
	assert.Equal(t, strings.TrimSuffix(string(expected), "\n"), b.Text())
	assert.Equal(t, path, b.GetPath())
	assert.Equal(t, "main.go", b.GetName())
}

func TestWriteFileKeepsBrokenGo(t *testing.T) {
	text := "package main\nfunc {\n"
	b := NewBuffer("test", text)
	path := filepath.Join(t.TempDir(), "broken.go")
	require.NoError(t, b.WriteFile(path, true))
	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(actual))
}

func TestWriteFileError(t *testing.T) {
	b := NewBuffer("test", "text")
	err := b.WriteFile(filepath.Join(t.TempDir(), "missing", "file.txt"), false)
	assert.Error(t, err)
	assert.Equal(t, "", b.GetPath())
}

func TestReplaceTextClampsCursor(t *testing.T) {
	b := NewBuffer("test", "one\ntwo\nthree")
	b.SetCursor(at(2, 5))
	b.StartSelection()
	b.ReplaceText("\u00e9\n")
	assert.Equal(t, []string{"\u00e9"}, lines(b))
	assert.Equal(t, at(0, 2), b.GetCursor())
	assert.False(t, b.HasSelection())
}
