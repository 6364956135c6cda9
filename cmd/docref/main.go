/*
Package main is the docref cli tool: resolves documentation versions
against a list of repository refs read from stdin.
*/
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 1
	exitFailure  = 2
	exitNotFound = 3
)

type Options struct {
	// betteralign:ignore

	Verbose bool `short:"v" long:"verbose" description:"Debug logging on stderr"`

	Versions VersionsCommand `command:"versions" description:"Print the version index of the refs on stdin"`
	Resolve  ResolveCommand  `command:"resolve"  description:"Resolve a version token against the refs on stdin"`
	Head     HeadCommand     `command:"head"     description:"Print the head of each ref argument"`
}

// envFiles are loaded in order before flag parsing; missing files are skipped
// and variables already set in the process win.
var envFiles = []string{".env", ".env.local"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	loadEnv(envFiles...)

	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash|flags.AllowBoolValues)
	parser.LongDescription = `docref - documentation ref resolver.
Reads refs/heads/* and refs/tags/* lines from stdin, lists SemVer tags
grouped by head and maps version tokens (v6, 1.2, ^1.2.0, main) to refs.`
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogger(opt.Verbose)
		if cmd == nil {
			return nil
		}

		return cmd.Execute(args)
	}

	_, err := parser.ParseArgs(args)

	var flagErr *flags.Error
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &flagErr):
		if flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagErr.Message)
			return exitOK
		}
		fmt.Fprintln(os.Stderr, flagErr.Message)
		return exitUsage
	case errors.Is(err, errNotFound):
		slog.Debug("no ref matched", "error", err)
		return exitNotFound
	default:
		slog.Error("docref failed", "error", err)
		return exitFailure
	}
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadEnv reads KEY=VALUE files without overriding the process environment.
func loadEnv(paths ...string) {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Warn("skipping env file", "path", p, "error", err)
			}
			continue
		}

		slog.Debug("loaded env file", "path", p)
	}
}
