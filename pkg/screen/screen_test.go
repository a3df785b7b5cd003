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
package screen

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	"github.com/timburks/scribe/pkg/types"
)

func TestKeyEventCharacter(t *testing.T) {
	e := keyEvent(termbox.Event{Type: termbox.EventKey, Ch: 'x'})
	assert.Equal(t, types.EventKey, e.Type)
	assert.Equal(t, 'x', e.Ch)
	assert.Equal(t, types.KeyUnsupported, e.Key)
	assert.Equal(t, types.ModNone, e.Mod)
}

func TestKeyEventCtrlSpace(t *testing.T) {
	e := keyEvent(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlSpace})
	assert.Equal(t, types.KeyCtrlSpace, e.Key)
}

func TestKeyEventAlt(t *testing.T) {
	e := keyEvent(termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight, Mod: termbox.ModAlt})
	assert.Equal(t, types.KeyArrowRight, e.Key)
	assert.Equal(t, types.ModAlt, e.Mod)
}

func TestKeys(t *testing.T) {
	for k, want := range map[termbox.Key]types.Key{
		termbox.KeyBackspace:  types.KeyBackspace,
		termbox.KeyBackspace2: types.KeyBackspace,
		termbox.KeyEnter:      types.KeyEnter,
		termbox.KeyTab:        types.KeyTab,
		termbox.KeyCtrlL:      types.KeyCtrlL,
		termbox.KeyF1:         types.KeyUnsupported,
	} {
		assert.Equal(t, want, key(k))
	}
	assert.Equal(t, types.KeyMouseWheelUp, mouseKey(termbox.MouseWheelUp))
	assert.Equal(t, types.KeyUnsupported, mouseKey(termbox.MouseRight))
}
