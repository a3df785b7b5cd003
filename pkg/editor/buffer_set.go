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
	"path/filepath"
	"slices"
)

// ScratchName names the buffer that is always present in a BufferSet.
const ScratchName = "*scratch*"

// A BufferSet is an ordered list of buffers with one current buffer.
// The first buffer is a scratch buffer that can't be closed, so a set is
// never empty.
type BufferSet struct {
	buffers []*Buffer
	current int
}

func NewBufferSet(buffers ...*Buffer) *BufferSet {
	s := &BufferSet{}
	s.buffers = append([]*Buffer{NewBuffer(ScratchName, "")}, buffers...)
	return s
}

func (s *BufferSet) Current() *Buffer {
	return s.buffers[s.current]
}

func (s *BufferSet) CurrentIndex() int {
	return s.current
}

func (s *BufferSet) Count() int {
	return len(s.buffers)
}

func (s *BufferSet) Buffers() []*Buffer {
	return slices.Clone(s.buffers)
}

func (s *BufferSet) IsFirst() bool {
	return s.current == 0
}

func (s *BufferSet) IsLast() bool {
	return s.current+1 == len(s.buffers)
}

// GotoNext makes the following buffer current. At the last buffer it wraps
// to the first only if wrap is set. It returns false if nothing changed.
func (s *BufferSet) GotoNext(wrap bool) bool {
	switch {
	case s.Count() == 1:
		return false
	case s.IsLast():
		if !wrap {
			return false
		}
		s.current = 0
		return true
	default:
		s.current++
		return true
	}
}

// GotoPrevious makes the preceding buffer current. At the first buffer it
// wraps to the last only if wrap is set. It returns false if nothing changed.
func (s *BufferSet) GotoPrevious(wrap bool) bool {
	switch {
	case s.Count() == 1:
		return false
	case s.IsFirst():
		if !wrap {
			return false
		}
		s.current = s.Count() - 1
		return true
	default:
		s.current--
		return true
	}
}

// Add appends a buffer, makes it current and returns its index.
func (s *BufferSet) Add(b *Buffer) int {
	s.buffers = append(s.buffers, b)
	s.current = len(s.buffers) - 1
	return s.current
}

// Find returns the index of the buffer editing path, or -1.
func (s *BufferSet) Find(path string) int {
	clean := filepath.Clean(path)
	for i, b := range s.buffers {
		if b.path != "" && filepath.Clean(b.path) == clean {
			return i
		}
	}
	return -1
}

// Open makes a buffer for path current, reading the file unless a buffer
// already edits it. On a read error the set is unchanged.
func (s *BufferSet) Open(path string) (*Buffer, error) {
	if i := s.Find(path); i >= 0 {
		s.current = i
		return s.buffers[i], nil
	}
	b, err := NewFileBuffer(path)
	if err != nil {
		return nil, err
	}
	s.Add(b)
	return b, nil
}

// Close removes the buffer at index. The scratch buffer can't be closed.
func (s *BufferSet) Close(index int) error {
	if index == 0 {
		return fmt.Errorf("the %s buffer can't be closed", ScratchName)
	}
	if index < 0 || index >= len(s.buffers) {
		return fmt.Errorf("no buffer exists for index %d", index)
	}
	s.buffers = slices.Delete(s.buffers, index, index+1)
	if s.current >= index {
		s.current--
	}
	return nil
}
