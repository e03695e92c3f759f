// Command anchormark draws anchor and handle markers for the paths in a
// scene file and writes the annotation layer as PNG, PDF or SVG.
//
//	anchormark glyphs.yaml -f png,svg -o glyphs-annotated
//	anchormark --interactive glyphs.yaml
//	anchormark backends
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gogpu/anchormark/internal/notify"
)

func main() {
	if code := runSafely(os.Args[1:], runWithArgs, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

//nolint:nonamedreturns // set from the deferred recover
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "%s", fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack()))
			exitCode = 1
		}
	}()
	return runner(args)
}

func runWithArgs(args []string) int {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		notify.Errorf(root.ErrOrStderr(), "%v", err)
		return 1
	}
	return 0
}
