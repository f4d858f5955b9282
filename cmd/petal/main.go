package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"petal/internal"
)

const appName = "petal"

const (
	exitParse   = 1
	exitRuntime = 2
	exitUsage   = 64
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "ast":
		os.Exit(cmdAST(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(exitUsage)
	}
}

func usage() {
	fmt.Printf(`Usage:
  %[1]s run [flags] <file>          Run a source file
  %[1]s repl [flags]                Start the interactive loop
  %[1]s ast [flags] [-source] <file> Print the syntax tree of a file

Flags:
  -config path      YAML config file (default $%[2]s)
  -log-level level  Override log.level
  -log-format fmt   Override log.format (text, json)
`, appName, internal.ConfigEnvVar)
}

// globalFlags are accepted by every command
type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

func newFlagSet(name string) (*flag.FlagSet, *globalFlags) {
	g := &globalFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&g.config, "config", "", "YAML config file")
	fs.StringVar(&g.logLevel, "log-level", "", "log level")
	fs.StringVar(&g.logFormat, "log-format", "", "log format (text, json)")
	return fs, g
}

// setup loads the config, applies flag overrides and builds the logger
func (g *globalFlags) setup() (*internal.Config, *logrus.Logger, error) {
	cfg, err := internal.LoadConfig(g.config)
	if err != nil {
		return nil, nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// newColor returns a colorizer honoring repl.color for stderr
func newColor(cfg *internal.Config) *color.Color {
	c := color.New()
	if !cfg.ColorEnabled(os.Stderr.Fd()) {
		c.Disable()
	}
	return c
}

func readSource(path string) (string, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", "", err
	}
	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		return "", "", err
	}
	return absPath, string(b), nil
}

func cmdRun(args []string) int {
	fs, g := newFlagSet("run")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [flags] <file>\n", appName)
		return exitUsage
	}

	cfg, logger, err := g.setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	c := newColor(cfg)

	absPath, source, err := readSource(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, c.Red(err))
		return exitUsage
	}

	logger.WithField("file", absPath).Debug("running")
	interp := internal.NewInterpreter(internal.WithLogger(logger))
	if _, err := interp.Run(source); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", absPath, c.Red(err))
		var parseErr *internal.ParseError
		if errors.As(err, &parseErr) {
			return exitParse
		}
		return exitRuntime
	}
	return 0
}

func cmdAST(args []string) int {
	fs, g := newFlagSet("ast")
	asSource := fs.Bool("source", false, "print re-serialized source instead of the tree")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s ast [flags] [-source] <file>\n", appName)
		return exitUsage
	}

	cfg, _, err := g.setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	c := newColor(cfg)

	absPath, source, err := readSource(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, c.Red(err))
		return exitUsage
	}

	program, err := internal.ProduceAST(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", absPath, c.Red(err))
		return exitParse
	}

	if *asSource {
		fmt.Print(internal.FormatProgram(program))
	} else {
		fmt.Print(internal.TreeString(program))
	}
	return 0
}
