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
	"unicode/utf8"
)

// A logical line of text in a buffer. Content never contains a newline.
type Line struct {
	Content string
}

func NewLine(text string) *Line {
	return &Line{Content: text}
}

func (l *Line) Length() int {
	return len(l.Content)
}

// joins lines by appending the passed-in line to the current line
func (l *Line) Append(other *Line) {
	l.Content += other.Content
}

// splits the line at a byte index, returning a new line containing the remaining text.
func (l *Line) SplitOff(index int) *Line {
	if !l.IsBoundary(index) {
		panic(fmt.Sprintf("split index %d is not a character boundary of a %d byte line", index, len(l.Content)))
	}
	after := l.Content[index:]
	l.Content = l.Content[:index]
	return NewLine(after)
}

// IsBoundary reports whether index falls between two characters of the line.
func (l *Line) IsBoundary(index int) bool {
	if index < 0 || index > len(l.Content) {
		return false
	}
	if index == len(l.Content) {
		return true
	}
	return utf8.RuneStart(l.Content[index])
}

// returns the nearest character boundary at or before index
func (l *Line) floorBoundary(index int) int {
	if index >= len(l.Content) {
		return len(l.Content)
	}
	if index < 0 {
		return 0
	}
	for index > 0 && !utf8.RuneStart(l.Content[index]) {
		index--
	}
	return index
}
