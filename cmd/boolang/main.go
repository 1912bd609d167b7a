package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/boolang/internal/config"
	"github.com/funvibe/boolang/internal/engine"
	"github.com/funvibe/boolang/internal/token"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Wrong number of parameters.")
		os.Exit(1)
	}

	rt := config.FromEnv()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: rt.LogLevel,
	}))

	if len(os.Args) == 2 {
		file, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open file '%s'.\n", os.Args[1])
			os.Exit(2)
		}
		defer file.Close()

		processStream(file, os.Stdout, rt, logger, false)
		return
	}

	if rt.Banner {
		fmt.Println(config.BannerTitle)
		fmt.Println()
		fmt.Println(config.BannerHint)
		fmt.Println()
	}

	processStream(os.Stdin, os.Stdout, rt, logger, true)
}

// processStream feeds the engine line by line. Errors abort only the
// line that caused them.
func processStream(r io.Reader, w io.Writer, rt config.Runtime, logger *slog.Logger, interactive bool) {
	eng := engine.New(logger)

	scanner := bufio.NewScanner(r)
	for {
		if interactive && rt.Prompt != "" {
			fmt.Fprint(w, rt.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if line == token.KeywordExit {
			break
		}

		output, err := eng.Process(line)
		if err != nil {
			fmt.Fprintf(w, "Error: %s\n", err)
			continue
		}
		if output != "" {
			fmt.Fprintln(w, output)
		}
	}
}
