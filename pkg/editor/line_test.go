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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOffAndAppend(t *testing.T) {
	line := NewLine("hello world")
	rest := line.SplitOff(5)
	assert.Equal(t, "hello", line.Content)
	assert.Equal(t, " world", rest.Content)

	line.Append(rest)
	assert.Equal(t, "hello world", line.Content)
	assert.Equal(t, 11, line.Length())

	empty := line.SplitOff(line.Length())
	assert.Equal(t, "", empty.Content)
	assert.Equal(t, "hello world", line.Content)
}

func TestSplitOffRequiresBoundary(t *testing.T) {
	line := NewLine("\u00e9t\u00e9")
	assert.Panics(t, func() { line.SplitOff(1) })
	assert.Panics(t, func() { line.SplitOff(-1) })
	assert.Panics(t, func() { line.SplitOff(6) })
	assert.Equal(t, "\u00e9t\u00e9", line.Content)
}

func TestBoundaries(t *testing.T) {
	line := NewLine("a\u00e9b")
	assert.True(t, line.IsBoundary(0))
	assert.True(t, line.IsBoundary(1))
	assert.False(t, line.IsBoundary(2))
	assert.True(t, line.IsBoundary(3))
	assert.True(t, line.IsBoundary(4))
	assert.False(t, line.IsBoundary(5))

	assert.Equal(t, 1, line.floorBoundary(2))
	assert.Equal(t, 4, line.floorBoundary(9))
	assert.Equal(t, 0, line.floorBoundary(-3))
}

func TestWordSpans(t *testing.T) {
	assert.Equal(t, []span{{0, 3}, {4, 7}, {9, 12}}, wordSpans("foo bar, baz"))
	assert.Empty(t, wordSpans(" -- "))

	start, end := wordAround("hello big world", 7)
	assert.Equal(t, 6, start)
	assert.Equal(t, 9, end)
	start, end = wordAround("a  b", 2)
	assert.Equal(t, 2, start)
	assert.Equal(t, 2, end)
}

func TestGraphemeAt(t *testing.T) {
	text := "ae\u0301x"
	from, to := graphemeAt(text, 1)
	assert.Equal(t, 1, from)
	assert.Equal(t, 4, to)
	from, to = graphemeAt(text, 4)
	assert.Equal(t, 4, from)
	assert.Equal(t, 5, to)
}
