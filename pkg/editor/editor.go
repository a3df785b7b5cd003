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
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/timburks/scribe/pkg/types"
)

// Gofmt formats Go source. Source with syntax errors is returned unchanged
// along with the error.
func Gofmt(filename string, input []byte) ([]byte, error) {
	output, err := format.Source(input)
	if err != nil {
		return input, fmt.Errorf("formatting %s: %w", filename, err)
	}
	return output, nil
}

// WriteFile saves the buffer to path, which becomes the buffer's path.
// With formatGo set, Go files are formatted first and the formatted text
// replaces the buffer contents.
func (b *Buffer) WriteFile(path string, formatGo bool) error {
	bytes := b.Bytes()
	if formatGo && strings.HasSuffix(path, ".go") {
		out, err := Gofmt(filepath.Base(path), bytes)
		if err != nil {
			log.Printf("%+v", err)
		} else if string(out) != string(bytes) {
			b.ReplaceText(string(out))
			bytes = b.Bytes()
		}
	}
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if path != b.path {
		b.SetPath(path)
	}
	return nil
}

// ReplaceText swaps in new contents, keeping the cursor on the same line
// where that line still exists. The selection is dropped.
func (b *Buffer) ReplaceText(text string) {
	b.lines = splitLines(text)
	b.selection = Selection{}
	line := min(b.cursor.Line, len(b.lines)-1)
	b.cursor = types.Cursor{Line: line, Index: b.lines[line].floorBoundary(b.cursor.Index)}
	b.scroll = min(b.scroll, len(b.lines))
	b.needsReparse = true
}
