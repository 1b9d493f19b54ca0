// Command intentcheck validates an intents file and shows which response
// each sample message would receive.
//
//	intentcheck -file intents.yaml "I have a fever" "my head hurts"
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/intent"
)

func main() {
	file := flag.String("file", "", "intents file (.json, .yaml, .toml); empty checks the built-in intents")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	os.Exit(run(os.Stdout, *file, flag.Args()))
}

func run(out io.Writer, path string, messages []string) int {
	ok := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	intents := intent.Load(path)
	source := path
	if source == "" {
		source = "built-in"
	}
	if len(intents) == 0 {
		bad.Fprintf(out, "✗ %s: no usable intents\n", source)
		return 1
	}
	ok.Fprintf(out, "✓ %s: %d intents, %d patterns\n", source, len(intents), countPatterns(intents))

	for _, msg := range messages {
		response := intent.Match(strings.ToLower(msg), intents)
		fmt.Fprintf(out, "\n%s\n", color.CyanString("> %s", msg))
		if response == intent.Fallback {
			dim.Fprintf(out, "  (no match) %s\n", response)
			continue
		}
		fmt.Fprintf(out, "  %s\n", response)
	}
	return 0
}

func countPatterns(intents []domain.Intent) int {
	n := 0
	for _, in := range intents {
		n += len(in.Patterns)
	}
	return n
}
