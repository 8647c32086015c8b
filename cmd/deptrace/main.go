// Command deptrace analyzes a dependency file and prints the path report:
// every walk from each still-uncovered root, classified as loop-free, a
// pure loop, or a path passing through a loop.
//
// Usage:
//
//	deptrace [-input dependencies.txt] [-generate] [-seed N]
//
// The input path resolves in order: -input flag, DEPTRACE_INPUT (from the
// environment or a .env file), then "dependencies.txt". With -generate the
// tool first writes a fresh random dependency file to that path.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/deptrace/builder"
	"github.com/katalvlaran/deptrace/core"
	"github.com/katalvlaran/deptrace/depio"
	"github.com/katalvlaran/deptrace/trace"
)

const (
	defaultInputFile = "dependencies.txt"
	inputEnvVar      = "DEPTRACE_INPUT"
)

func main() {
	// Diagnostics go to stderr; the report itself stays clean on stdout.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the full pipeline for easier testing and error handling.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("deptrace", flag.ContinueOnError)
	inputFlag := fs.String("input", "", "dependency file path (overrides "+inputEnvVar+")")
	generate := fs.Bool("generate", false, "write a fresh random dependency file before analysis")
	seed := fs.Int64("seed", 0, "generator seed; 0 derives one from the clock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// A .env file may supply defaults; a missing file is fine.
	_ = godotenv.Load()

	path := *inputFlag
	if path == "" {
		path = os.Getenv(inputEnvVar)
	}
	if path == "" {
		path = defaultInputFile
	}

	if *generate {
		if err := generateFile(path, *seed); err != nil {
			return err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("deptrace: open input: %w", err)
	}
	defer f.Close()

	edges, err := depio.ParseRecords(f)
	if err != nil {
		return err
	}
	g, err := core.FromEdges(edges)
	if err != nil {
		return err
	}

	res, err := trace.Explore(g)
	if err != nil {
		return err
	}
	slog.Info("trace complete",
		"input", path,
		"edges", g.EdgeCount(),
		"paths", res.Count(),
		"skippedRoots", res.Skipped,
	)

	return depio.WriteReport(out, res)
}

// generateFile writes a fresh random dependency file to path.
func generateFile(path string, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	edges, err := builder.RandomDependencies(builder.WithSeed(seed))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("deptrace: create dependency file: %w", err)
	}
	defer f.Close()

	if err = depio.WriteRecords(f, edges); err != nil {
		return err
	}
	slog.Info("dependency file generated", "path", path, "edges", len(edges), "seed", seed)

	return nil
}
