// Command pegc compiles a textual PEG grammar from a file and runs it
// line by line against input text, reporting each line's match result.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pegc/pegc"
)

func main() {
	os.Exit(run())
}

func run() int {
	grammarFile := flag.String("grammar", "", "path to a PEG grammar file (required)")
	inputFile := flag.String("input", "", "path to an input file; defaults to stdin")
	printOnly := flag.Bool("print", false, "print the compiled grammar back to canonical PEG text and exit")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if *grammarFile == "" {
		logger.Error("missing required -grammar flag")
		flag.Usage()
		return 2
	}

	src, err := os.ReadFile(*grammarFile)
	if err != nil {
		logger.Error("reading grammar file", zap.Error(err))
		return 1
	}

	g, err := peg.CompileNamed(*grammarFile, string(src))
	if err != nil {
		logger.Error("compiling grammar", zap.Error(err))
		return 1
	}
	logger.Debug("grammar compiled", zap.String("file", *grammarFile))

	if *printOnly {
		fmt.Print(peg.Print(g))
		return 0
	}

	in := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			logger.Error("opening input file", zap.Error(err))
			return 1
		}
		defer f.Close()
		in = f
	}

	return runMatches(logger, g, in)
}

// runMatches reads in line by line and reports each line's match result.
func runMatches(logger *zap.Logger, g *peg.Grammar, in *os.File) int {
	status := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		result, err := g.Match(line)
		if err != nil {
			logger.Error("match failed", zap.Error(err), zap.String("line", line))
			status = 1
			continue
		}
		if !result.Ok {
			fmt.Printf("no match: %q\n", line)
			continue
		}
		fmt.Printf("matched %d bytes: %q\n", result.N, line[:result.N])
		for i, c := range result.Captures {
			fmt.Printf("  $%d = %q\n", i+1, c)
		}
		logger.Debug("matched", zap.Int("bytes", result.N), zap.Int("captures", len(result.Captures)))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading input", zap.Error(err))
		return 1
	}
	return status
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}
