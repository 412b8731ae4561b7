package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/emrekoca/flowex/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "export":
			exportCmd()
			return
		case "formats":
			formatsCmd()
			return
		case "version":
			fmt.Printf("flowex %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}
	printHelp()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `flowex - Export captured HTTP flows as curl/httpie commands or raw wire bytes

Usage:
  flowex <command> [args] [flags]

Commands:
  export    Export a flow from a HAR capture to stdout, a file, or the clipboard
  formats   List the supported export formats
  version   Print version information
  help      Show this help message

Run 'flowex <command> --help' for more information about a command.
`)
}

// newLogger builds the stderr console logger shared by all commands.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
