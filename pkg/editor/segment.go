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
	"unicode"

	"github.com/rivo/uniseg"
)

type span struct {
	start int
	end   int
}

// wordSpans returns the byte ranges of the words of text. Segments between
// word boundaries count as words only if they contain a letter or a number.
func wordSpans(text string) []span {
	spans := make([]span, 0)
	state := -1
	position := 0
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(word) {
			spans = append(spans, span{start: position, end: position + len(word)})
		}
		position += len(word)
	}
	return spans
}

func isWord(segment string) bool {
	for _, c := range segment {
		if unicode.IsLetter(c) || unicode.IsNumber(c) {
			return true
		}
	}
	return false
}

// previousWordStart returns the start of the last word beginning before index.
func previousWordStart(text string, index int) int {
	spans := wordSpans(text)
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i].start < index {
			return spans[i].start
		}
	}
	return 0
}

// nextWordEnd returns the end of the first word ending after index.
func nextWordEnd(text string, index int) int {
	for _, s := range wordSpans(text) {
		if s.end > index {
			return s.end
		}
	}
	return len(text)
}

// wordAround returns the word touching index, or an empty range at index.
func wordAround(text string, index int) (int, int) {
	for _, s := range wordSpans(text) {
		if s.start <= index && index <= s.end {
			return s.start, s.end
		}
	}
	return index, index
}

// graphemeAt returns the byte range of the grapheme cluster that contains
// index, which may start before it.
func graphemeAt(text string, index int) (int, int) {
	from, to := index, index
	state := -1
	position := 0
	rest := text
	for len(rest) > 0 && position <= index {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		from, to = position, position+len(cluster)
		position = to
	}
	return from, to
}
