// Command coordparse detects and normalizes geographic coordinates from the
// command line. Values come from the arguments, or one per line on stdin.
// Values starting with a minus sign must follow "--".
//
// Usage:
//
//	coordparse detect "45°7'24.24\"N"
//	coordparse normalize --axis lng --notation ddm "170 30.5 E"
//	coordparse pair -o json -- "-45.12345, 170.50833"
//	coordparse notations -o yaml
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	a := newApp(os.Stdin, os.Stdout)
	if _, err := a.parser().Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
