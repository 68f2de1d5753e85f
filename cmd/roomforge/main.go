// RoomForge is a tile-grid room layout planner for colony builds.
// Usage: roomforge [--version] [--plain] [--script <file>] [--trace] [--grid WxH] <catalog_directory>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkarlsen/roomforge/cli"
	"github.com/mkarlsen/roomforge/loader"
	"github.com/mkarlsen/roomforge/planner"
	"github.com/mkarlsen/roomforge/tick"
	"github.com/mkarlsen/roomforge/tui"
	"github.com/mkarlsen/roomforge/world"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultGridSize = 200

func main() {
	plain := false
	trace := false
	gridW, gridH := defaultGridSize, defaultGridSize
	var catalogDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("roomforge %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--grid":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--grid requires a WxH size\n")
				os.Exit(1)
			}
			i++
			w, h, err := parseGridSize(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid grid size: %v\n", err)
				os.Exit(1)
			}
			gridW, gridH = w, h
		default:
			if catalogDir == "" {
				catalogDir = args[i]
			}
		}
	}

	if catalogDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: roomforge [--version] [--plain] [--script <file>] [--trace] [--grid WxH] <catalog_directory>\n")
		os.Exit(1)
	}

	// Load and compile Lua catalog content.
	defs, err := loader.Load(catalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	grid := world.NewGrid(gridW, gridH)
	ticks := tick.NewExecutor()
	defer ticks.Close()
	p := planner.New(defs, grid, ticks)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("%s\n\n", defs.Catalog.Title)
		c := cli.New(p, defs, grid)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s\n\n", defs.Catalog.Title)
		c := cli.New(p, defs, grid)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(p, defs, grid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseGridSize parses "WxH" into positive dimensions.
func parseGridSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("dimensions must be positive, got %q", s)
	}
	return w, h, nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
