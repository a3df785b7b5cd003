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
package main

import (
	"log"
	"os"

	"github.com/timburks/scribe/pkg/commander"
	"github.com/timburks/scribe/pkg/config"
	"github.com/timburks/scribe/pkg/editor"
	"github.com/timburks/scribe/pkg/highlight"
	"github.com/timburks/scribe/pkg/screen"
	"github.com/timburks/scribe/pkg/workspace"
)

func main() {

	filenames := make([]string, 0)
	configPath := config.DefaultPath()
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return
			}
		default:
			filenames = append(filenames, os.Args[i])
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Output(1, err.Error())
		return
	}

	// The workspace is found once and passed to whatever needs it.
	dir, err := workspace.WorkingDirectory()
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	ws := workspace.Find(dir)

	// The buffer set holds the scratch buffer followed by the named files.
	buffers := make([]*editor.Buffer, 0)
	for _, filename := range filenames {
		if fileinfo, err := os.Stat(filename); err == nil && fileinfo.IsDir() {
			log.Printf("Directory! %+v", filename)
			continue
		}
		b, err := editor.NewFileBuffer(filename)
		if err != nil {
			log.Printf("%+v", err)
			continue
		}
		buffers = append(buffers, b)
	}
	set := editor.NewBufferSet(buffers...)
	set.GotoNext(false)

	h := highlight.NewHighlighter(cfg.Theme)
	w := editor.NewWindow(ws.Name(), h)

	// The commander converts user inputs into commands for the buffers.
	c := commander.NewCommander(set, w, cfg, ws)
	c.OnClose(h.Forget)

	if script != "" {
		// Run a scribe script and exit.
		if err := c.EvalFile(script); err != nil {
			log.Output(1, err.Error())
		}
		return
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(w, set, c.GetMessageBarText())
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
