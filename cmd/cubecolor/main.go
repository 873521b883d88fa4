// SPDX-License-Identifier: MIT

// Command cubecolor turns an RGB scan of a cube into a facelet string.
//
// The scan is a JSON object mapping 1-based positions (ULFRBD side order,
// row-major) to [r,g,b] triples, read from the file named on the command line
// or from stdin:
//
//	cubecolor [-config resolver.json] [-json] [-html debug.html] scan.json
//	cubecolor -state UUUU...BBBB
//	cubecolor -synth 4 -moves "R 2U F2" [-noise 4 -seed 7] > scan.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/cubecolor/builder"
	"github.com/katalvlaran/cubecolor/config"
	"github.com/katalvlaran/cubecolor/facelets"
	"github.com/katalvlaran/cubecolor/monitoring"
	"github.com/katalvlaran/cubecolor/render"
	"github.com/katalvlaran/cubecolor/resolver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cubecolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "resolver configuration (.json)")
		htmlPath   = fs.String("html", "", "write the debug dashboard to this file")
		asJSON     = fs.Bool("json", false, "print the full result as JSON")
		state      = fs.String("state", "", "validate a URFDLB facelet string and exit")
		synth      = fs.Int("synth", 0, "print a synthetic scan of this width and exit")
		moves      = fs.String("moves", "", "move sequence for -synth")
		noise      = fs.Float64("noise", 0, "per-channel RGB noise for -synth")
		seed       = fs.Int64("seed", 1, "random seed for -synth")
		quiet      = fs.Bool("q", false, "silence diagnostic logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "cubecolor: ", 0)
	if *quiet {
		monitoring.SetLogger(nil)
	} else {
		monitoring.SetLogger(logger.Printf)
	}

	switch {
	case *state != "":
		if err := facelets.ValidateKociemba(*state); err != nil {
			logger.Printf("invalid state: %v", err)
			return 1
		}
		fmt.Fprintln(stdout, "ok")
		return 0

	case *synth != 0:
		scan, err := synthScan(*synth, *moves, *noise, *seed)
		if err != nil {
			logger.Printf("synth: %v", err)
			return 1
		}
		enc := json.NewEncoder(stdout)
		if err := enc.Encode(scan); err != nil {
			logger.Printf("synth: %v", err)
			return 1
		}
		return 0
	}

	var opts []resolver.Option
	if *configPath != "" {
		cfg, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Printf("%v", err)
			return 1
		}
		opts = cfg.Options()
	}

	var dash *render.Dashboard
	if *htmlPath != "" {
		dash = render.New("cubecolor debug")
		opts = append(opts, resolver.WithRenderer(dash))
	}

	in := stdin
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			logger.Printf("%v", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	scan, err := readScan(in)
	if err != nil {
		logger.Printf("read scan: %v", err)
		return 1
	}

	cube, resolveErr := resolver.Resolve(scan, opts...)
	if dash != nil {
		if err := dash.WriteFile(*htmlPath); err != nil {
			logger.Printf("%v", err)
		}
	}
	if resolveErr != nil {
		logger.Printf("resolve: %v", resolveErr)
		if errors.Is(resolveErr, resolver.ErrMalformedScan) || errors.Is(resolveErr, resolver.ErrUnsupportedWidth) {
			return 2
		}
		return 1
	}

	if *asJSON {
		d, err := cube.Dump()
		if err != nil {
			logger.Printf("%v", err)
			return 1
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			logger.Printf("%v", err)
			return 1
		}
		return 0
	}

	s, err := cube.Kociemba()
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	fmt.Fprintln(stdout, s)

	return 0
}

// readScan decodes {"1":[r,g,b],...}; channel values outside 0..255 fail.
func readScan(r io.Reader) (resolver.Scan, error) {
	var scan resolver.Scan
	dec := json.NewDecoder(r)
	if err := dec.Decode(&scan); err != nil {
		return nil, err
	}

	return scan, nil
}

func synthScan(width int, moves string, noise float64, seed int64) (map[int][3]uint8, error) {
	if noise < 0 {
		return nil, fmt.Errorf("noise must be non-negative, got %g", noise)
	}
	opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithNoise(noise)}
	if moves != "" {
		opts = append(opts, builder.WithMoves(moves))
	}
	scan, _, err := builder.Scrambled(width, opts...)

	return scan, err
}
