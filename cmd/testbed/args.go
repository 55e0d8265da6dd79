package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/testbed2d/config"
)

type cliOptions struct {
	help   bool
	paused bool
}

// parseArgs scans arguments after the program name
// Unrecognized arguments are ignored without a warning
func parseArgs(args []string) cliOptions {
	var opts cliOptions
	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			opts.help = true
		case "--pause":
			opts.paused = true
		}
	}
	return opts
}

func usage(w io.Writer, exe string) {
	fmt.Fprintf(w, "Usage: %s [OPTION]\n", exe)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "    --help  - prints this help message and exits.")
	fmt.Fprintln(w, "    --pause - do not start the simulation right away.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The following keyboard commands are supported:")
	fmt.Fprintln(w, "    t      - pause/continue the simulation.")
	fmt.Fprintln(w, "    s      - pause then execute only one simulation step.")
	fmt.Fprintln(w, "    arrows - pan the view.")
	fmt.Fprintln(w, "    + / -  - zoom in/out.")
	fmt.Fprintln(w, "    b      - show/hide the status bar.")
	fmt.Fprintln(w, "    q      - quit (also Esc, Ctrl+C).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hold the left mouse button over a moving body to highlight it.")
	fmt.Fprintf(w, "Configuration is read from $%s (default %s).\n", config.EnvPath, config.DefaultPath)
}
