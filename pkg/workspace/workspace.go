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

// Package workspace locates the directory tree a scribe session works in.
// The working directory is read once at startup and the result is passed
// to whatever needs it.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Info describes a workspace.
type Info struct {
	Path          string // root of the workspace
	HasVersionCtl bool   // true if the root is under version control
}

// Name returns the last element of the workspace path.
func (i Info) Name() string {
	return filepath.Base(i.Path)
}

// WorkingDirectory returns the current directory, preferring $PWD when it
// names the same directory so that symlinked paths are kept as typed.
func WorkingDirectory() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("couldn't determine current working directory: %w", err)
	}
	pwd := os.Getenv("PWD")
	if pwd == "" {
		return cwd, nil
	}
	resolvedPwd, err1 := filepath.EvalSymlinks(pwd)
	resolvedCwd, err2 := filepath.EvalSymlinks(cwd)
	if err1 == nil && err2 == nil && resolvedPwd == resolvedCwd {
		return pwd, nil
	}
	return cwd, nil
}

// Find walks from dir up to the filesystem root. Every ancestor holding a
// .git entry replaces the previous match, so the outermost repository wins.
// Without a match the workspace is dir itself.
func Find(dir string) Info {
	info := Info{Path: dir}
	for ancestor := filepath.Clean(dir); ; ancestor = filepath.Dir(ancestor) {
		if _, err := os.Stat(filepath.Join(ancestor, ".git")); err == nil {
			info.Path = ancestor
			info.HasVersionCtl = true
		}
		if parent := filepath.Dir(ancestor); parent == ancestor {
			break
		}
	}
	return info
}
