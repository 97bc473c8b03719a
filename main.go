package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/mengy007/catrix/internal/rain"
	"github.com/mengy007/catrix/internal/term"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)

	fs := flag.NewFlagSet("catrix", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "random seed, 0 derives one from the clock")
	debug := fs.Bool("debug", false, "enable debug logging")

	root := &ffcli.Command{
		Name:       "catrix",
		ShortUsage: "catrix [flags]",
		ShortHelp:  "Matrix-style digital rain for the terminal",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			return run(*seed, *debug)
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(seed int64, debug bool) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	engine, err := rain.NewEngine(term.Size(), rng, debug)
	if err != nil {
		return fmt.Errorf("initialize rain: %w", err)
	}

	var flags term.Flags
	stop := term.Notify(&flags)
	defer stop()

	screen := term.NewScreen(os.Stdout)
	screen.Setup()
	defer screen.Restore()

	return rain.NewRunner(engine, &flags, term.Size, os.Stdout, debug).Run()
}
