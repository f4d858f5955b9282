package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"

	"petal/internal"
)

const continuationPrompt = "... "

func cmdRepl(args []string) int {
	fs, g := newFlagSet("repl")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, logger, err := g.setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	c := newColor(cfg)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			logger.WithError(err).Warn("cannot save history")
		}
	}()

	interp := internal.NewInterpreter(internal.WithLogger(logger))
	for {
		source, ok := readEntry(ln, cfg.REPL.Prompt)
		if !ok {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" {
			return 0
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		result, err := interp.Run(source)
		if err != nil {
			logger.WithError(err).Warn("entry failed")
			fmt.Fprintln(os.Stderr, c.Red(err))
			continue
		}
		if result.Kind() != internal.KindNull {
			fmt.Println(colorizeValue(c, result))
		}
	}
}

// readEntry reads lines until they form a unit that does not stop parsing
// at end of input. ok is false once the input is closed.
func readEntry(ln *liner.State, prompt string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = continuationPrompt
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		source := b.String()
		if _, err := internal.ProduceAST(source); !internal.IsIncomplete(err) {
			return source, true
		}
	}
}

func colorizeValue(c *color.Color, v internal.Value) string {
	switch v.Kind() {
	case internal.KindNumber, internal.KindBoolean:
		return c.Yellow(v)
	case internal.KindString:
		return c.Green(v)
	case internal.KindFunc, internal.KindNativeFunc:
		return c.Cyan(v)
	case internal.KindObject:
		return c.Blue(v)
	}
	return c.Grey(v)
}
