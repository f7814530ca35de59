// ponysay prints a message in a speech balloon spoken by a pony.
//
// Usage:
//
//	ponysay [flags] [message...]
//
// The message comes from --fortune, the arguments, or standard input when
// it is not a terminal, in that order. Invoked under a name containing
// "think" (ponythink), the balloon is a thought bubble.
//
// Flags:
//
//	-f, --pony string        Pony name or file (default: best.pony or random)
//	-b, --balloon string     Balloon style name or file
//	    --think              Use a thought balloon
//	-W, --wrap int           Balloon width in columns, 0 fits the terminal (default 40)
//	    --ponydir strings    Pony search directories
//	    --balloondir strings Balloon search directories
//	-l, --list               List available ponies
//	-L, --balloonlist        List available balloon styles
//	    --info               Print the selected pony's metadata as YAML
//	-F, --fortune            Use a random fortune as the message
//	    --fortune-all        Include offensive fortune databases
//	    --fortune-equal      Give every fortune database the same weight
//	    --fortune-path       Fortune search directories
//	    --seed uint          Seed for pony and fortune selection
//	    --config string      Path to configuration file
//	    --color string       auto, always or never
//	-v, --verbose            Enable verbose logging
//	    --version            Print version and exit
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr, filepath.Base(os.Args[0]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}
