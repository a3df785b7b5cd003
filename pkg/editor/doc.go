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

// Package editor implements the text engine of scribe.
// A Buffer holds the lines of one document along with its cursor and
// selection, and performs edit actions on them. Buffers are projected
// into rows that wrap at the width of the window that shows them.
// A BufferSet keeps the open buffers in order and tracks the one with
// focus; the Window paints the focused buffer on a Display.
package editor
