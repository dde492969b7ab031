package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"uk.ac.bris.cs/lifestep/gol"
	"uk.ac.bris.cs/lifestep/sdl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, performs one generation step and writes the result to
// stdout. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "lifestep: ", 0)

	fs := flag.NewFlagSet("lifestep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rows := fs.Int("rows", 10, "number of rows on the board")
	cols := fs.Int("cols", 10, "number of columns on the board")
	seed := fs.Int64("seed", time.Now().UnixNano(), "seed for the random initial board")
	threads := fs.Int("threads", 0, "maximum concurrently running row workers (0 = one per row)")
	timeout := fs.Duration("timeout", 0, "fail the step if workers have not finished within this duration (0 = no limit)")
	pattern := fs.String("pattern", "", "comma-separated rows of 0/1 to use instead of a random board")
	verbose := fs.Bool("verbose", false, "log phase changes to stderr")
	window := fs.Bool("sdl", false, "show the result in an SDL window (requires -tags sdl)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	p := gol.Params{
		Rows:    *rows,
		Cols:    *cols,
		Threads: *threads,
		Timeout: *timeout,
		Seed:    *seed,
	}
	if *pattern != "" {
		p.Pattern = strings.Split(*pattern, ",")
		p.Rows, p.Cols = 0, 0
	}

	var w *sdl.Window
	if *window {
		height, width, err := boardSize(p)
		if err != nil {
			logger.Printf("step failed: %v", err)
			return 1
		}
		w, err = sdl.NewWindow(int32(width), int32(height), 8)
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer w.Destroy()
	}

	var events chan gol.Event
	consumed := make(chan error, 1)
	if *verbose || w != nil {
		events = make(chan gol.Event)
		go func() {
			if w != nil {
				consumed <- sdl.Run(w, logEvents(events, logger, *verbose))
				return
			}
			for range logEvents(events, logger, *verbose) {
			}
			consumed <- nil
		}()
	} else {
		close(consumed)
	}

	world, err := gol.Run(context.Background(), p, events)
	if cerr := <-consumed; err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		logger.Printf("step failed: %v", err)
		return 1
	}

	if err := gol.WriteGrid(stdout, world); err != nil {
		logger.Printf("write grid: %v", err)
		return 1
	}
	if w != nil {
		w.WaitForQuit()
	}
	return 0
}

// boardSize reports the rows and columns the step will run on, taking them
// from the pattern when one is given.
func boardSize(p gol.Params) (int, int, error) {
	if len(p.Pattern) == 0 {
		return p.Rows, p.Cols, nil
	}
	g, err := gol.ParseGrid(p.Pattern)
	if err != nil {
		return 0, 0, err
	}
	return g.Rows(), g.Cols(), nil
}

// logEvents forwards events, logging phase changes when verbose is set.
func logEvents(in <-chan gol.Event, logger *log.Logger, verbose bool) <-chan gol.Event {
	out := make(chan gol.Event)
	go func() {
		defer close(out)
		for e := range in {
			if pc, ok := e.(gol.PhaseChange); ok && verbose {
				logger.Printf("turn %d: %v", pc.CompletedTurns, pc.NewPhase)
			}
			out <- e
		}
	}()
	return out
}
