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

// Package highlight colors buffer text using chroma lexers. Buffers are
// tokenized again only after their text changes.
package highlight

import (
	"log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/timburks/scribe/pkg/editor"
	"github.com/timburks/scribe/pkg/types"
)

// The Highlighter colors buffers whose file names match a chroma lexer.
type Highlighter struct {
	style *chroma.Style
	cache map[*editor.Buffer][][]types.Color
}

// NewHighlighter uses the named chroma style; unknown names get chroma's fallback style.
func NewHighlighter(theme string) *Highlighter {
	return &Highlighter{
		style: styles.Get(theme),
		cache: make(map[*editor.Buffer][][]types.Color),
	}
}

// Colors returns one color per byte of a line.
func (h *Highlighter) Colors(b *editor.Buffer, line int) []types.Color {
	lines, ok := h.cache[b]
	if !ok || b.NeedsReparse() {
		lines = h.Highlight(b)
		h.cache[b] = lines
		b.MarkParsed()
	}
	if line < len(lines) {
		return lines[line]
	}
	return nil
}

// Forget drops the colors saved for a buffer.
func (h *Highlighter) Forget(b *editor.Buffer) {
	delete(h.cache, b)
}

func lexerFor(path string) chroma.Lexer {
	if path == "" {
		return nil
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}

// Highlight tokenizes the whole buffer. Buffers without a matching lexer
// get no colors.
func (h *Highlighter) Highlight(b *editor.Buffer) [][]types.Color {
	lexer := lexerFor(b.GetPath())
	if lexer == nil {
		return nil
	}
	iterator, err := lexer.Tokenise(nil, b.Text())
	if err != nil {
		log.Printf("tokenizing %s: %+v", b.GetPath(), err)
		return nil
	}
	lines := make([][]types.Color, b.GetLineCount())
	for i := range lines {
		lines[i] = make([]types.Color, len(b.GetLine(i)))
	}
	line, col := 0, 0
	for _, token := range iterator.Tokens() {
		color := h.colorFor(token.Type)
		for i := 0; i < len(token.Value); i++ {
			if token.Value[i] == '\n' {
				line++
				col = 0
				continue
			}
			if line < len(lines) && col < len(lines[line]) {
				lines[line][col] = color
			}
			col++
		}
	}
	return lines
}

func (h *Highlighter) colorFor(t chroma.TokenType) types.Color {
	if entry := h.style.Get(t); entry.Colour.IsSet() {
		return xterm256(entry.Colour)
	}
	switch {
	case t.InCategory(chroma.Keyword):
		return types.ColorBlue
	case t.InCategory(chroma.Comment):
		return types.ColorGray
	case t.InSubCategory(chroma.LiteralString):
		return types.ColorYellow
	case t.InSubCategory(chroma.LiteralNumber):
		return types.ColorMagenta
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return types.ColorCyan
	default:
		return types.ColorDefault
	}
}

// xterm256 maps a color to the 6x6x6 cube of a 256 color terminal.
// Terminal attributes are offset by one so that zero means the default.
func xterm256(c chroma.Colour) types.Color {
	level := func(v uint8) int {
		return (int(v)*5 + 127) / 255
	}
	index := 16 + 36*level(c.Red()) + 6*level(c.Green()) + level(c.Blue())
	return types.Color(index + 1)
}
