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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/scribe/pkg/types"
)

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// Moves can be prefixed with "select-" to extend the selection.
var moves = []types.ActionKind{
	types.ActionMoveLeft,
	types.ActionMoveRight,
	types.ActionMoveUp,
	types.ActionMoveDown,
	types.ActionMovePrevWord,
	types.ActionMoveNextWord,
	types.ActionMoveLineStart,
	types.ActionMoveLineEnd,
}

// Edits take an optional repeat count.
var edits = []types.ActionKind{
	types.ActionNewLine,
	types.ActionBackspace,
	types.ActionDelete,
	types.ActionDeleteSelection,
	types.ActionScrollUp,
	types.ActionScrollDown,
}

// bindPrimitives makes the commander's operations callable from lisp.
// Primitives are global, so they act on the most recently created commander.
func (c *Commander) bindPrimitives() {
	for _, kind := range moves {
		action := types.Do(kind)
		golisp.MakePrimitiveFunction(kind.String(), "*", c.repeated(func() { c.performMoving(action) }))
		golisp.MakePrimitiveFunction("select-"+kind.String(), "*", c.repeated(func() { c.performSelecting(action) }))
	}
	for _, kind := range edits {
		action := types.Do(kind)
		golisp.MakePrimitiveFunction(kind.String(), "*", c.repeated(func() { c.perform(action) }))
	}
	golisp.MakePrimitiveFunction("clear-selection", "0", c.simple(func() error {
		c.perform(types.Do(types.ActionClearSelection))
		return nil
	}))
	golisp.MakePrimitiveFunction("select-all", "0", c.simple(func() error {
		c.perform(types.Do(types.ActionSelectAll))
		return nil
	}))
	golisp.MakePrimitiveFunction("start-selection", "0", c.simple(func() error {
		c.buffers.Current().StartSelection()
		return nil
	}))
	golisp.MakePrimitiveFunction("start-line-selection", "0", c.simple(func() error {
		c.buffers.Current().StartLineSelection()
		return nil
	}))
	golisp.MakePrimitiveFunction("start-word-selection", "0", c.simple(func() error {
		c.buffers.Current().StartWordSelection()
		return nil
	}))
	golisp.MakePrimitiveFunction("copy", "0", c.simple(func() error {
		c.copySelection()
		return nil
	}))
	golisp.MakePrimitiveFunction("cut", "0", c.simple(func() error {
		if c.copySelection() {
			c.perform(types.Do(types.ActionDeleteSelection))
		}
		return nil
	}))
	golisp.MakePrimitiveFunction("paste", "0", c.simple(func() error {
		c.paste()
		return nil
	}))
	golisp.MakePrimitiveFunction("next-buffer", "0", c.simple(func() error {
		c.buffers.GotoNext(c.config.WrapBuffers)
		return nil
	}))
	golisp.MakePrimitiveFunction("previous-buffer", "0", c.simple(func() error {
		c.buffers.GotoPrevious(c.config.WrapBuffers)
		return nil
	}))
	golisp.MakePrimitiveFunction("close-buffer", "0", c.simple(c.closeBuffer))
	golisp.MakePrimitiveFunction("quit", "0", c.simple(func() error {
		c.mode = types.ModeQuit
		return nil
	}))
	golisp.MakePrimitiveFunction("insert", "1", c.insertImpl)
	golisp.MakePrimitiveFunction("click", "2", c.clickImpl)
	golisp.MakePrimitiveFunction("open", "1", c.openImpl)
	golisp.MakePrimitiveFunction("save", "*", c.saveImpl)
	golisp.MakePrimitiveFunction("message", "1", c.messageImpl)
	golisp.MakePrimitiveFunction("cursor", "0", c.cursorImpl)
	golisp.MakePrimitiveFunction("text", "0", c.textImpl)
	golisp.MakePrimitiveFunction("selection", "0", c.selectionImpl)
	golisp.MakePrimitiveFunction("buffer-name", "0", c.bufferNameImpl)
	golisp.MakePrimitiveFunction("workspace", "0", c.workspaceImpl)
}

func (c *Commander) simple(f func() error) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if err := f(); err != nil {
			return nil, err
		}
		return golisp.BooleanWithValue(true), nil
	}
}

// repeated runs f once, or as many times as its integer argument says.
func (c *Commander) repeated(f func()) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		count := 1
		if !golisp.NilP(args) {
			n := golisp.Car(args)
			if !golisp.IntegerP(n) {
				return nil, errors.New("repeat count must be an integer")
			}
			count = int(golisp.IntegerValue(n))
		}
		for i := 0; i < count; i++ {
			f()
		}
		return golisp.BooleanWithValue(true), nil
	}
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func (c *Commander) insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArgument("insert", args)
	if err != nil {
		return nil, err
	}
	c.perform(types.Insert(text))
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) clickImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	x, y := golisp.Car(args), golisp.Cadr(args)
	if !golisp.IntegerP(x) || !golisp.IntegerP(y) {
		return nil, errors.New("click requires integer arguments")
	}
	c.perform(types.Click(int(golisp.IntegerValue(x)), int(golisp.IntegerValue(y))))
	return golisp.BooleanWithValue(true), nil
}

func (c *Commander) openImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArgument("open", args)
	if err != nil {
		return nil, err
	}
	b, err := c.buffers.Open(path)
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(b.GetName()), nil
}

func (c *Commander) saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path := ""
	if !golisp.NilP(args) {
		var err error
		if path, err = stringArgument("save", args); err != nil {
			return nil, err
		}
	}
	if err := c.save(path); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.buffers.Current().GetPath()), nil
}

func (c *Commander) messageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if golisp.StringP(val) {
		c.message = golisp.StringValue(val)
	} else {
		c.message = golisp.String(val)
	}
	return golisp.StringWithValue(c.message), nil
}

func (c *Commander) cursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	cursor := c.buffers.Current().GetCursor()
	return golisp.StringWithValue(fmt.Sprintf("%d:%d", cursor.Line, cursor.Index)), nil
}

func (c *Commander) textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.buffers.Current().Text()), nil
}

func (c *Commander) selectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.buffers.Current().SelectedText()), nil
}

func (c *Commander) bufferNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.buffers.Current().GetName()), nil
}

func (c *Commander) workspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.workspace.Path), nil
}

// eval runs a command bound to a key. Failures go to the message bar.
func (c *Commander) eval(command string) error {
	if _, err := golisp.ParseAndEval(command); err != nil {
		c.message = err.Error()
		log.Printf("%s: %+v", command, err)
	}
	return nil
}

// parseEval evaluates typed lisp and returns a printed result.
func (c *Commander) parseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", value)
	return golisp.String(value)
}

// Eval evaluates every expression in source.
func (c *Commander) Eval(source string) (string, error) {
	value, err := golisp.ParseAndEval("(begin " + source + "\n)")
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// EvalFile evaluates the lisp script at path.
func (c *Commander) EvalFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := c.Eval(string(source)); err != nil {
		return fmt.Errorf("evaluating %s: %w", path, err)
	}
	return nil
}
