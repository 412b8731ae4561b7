package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/emrekoca/flowex/internal/capture"
	"github.com/emrekoca/flowex/internal/config"
	"github.com/emrekoca/flowex/internal/export"
)

func exportCmd() {
	cfg := config.Load()

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	formatFlag := fs.String("format", cfg.DefaultFormat, "Export format: curl, httpie, raw, raw_request, raw_response")
	flowFlag := fs.Int("flow", 0, "Index of the flow to export, in capture order")
	outputFlag := fs.String("output", "", "Output file path (default: stdout)")
	clipFlag := fs.Bool("clip", false, "Copy the export to the system clipboard")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: flowex export <capture.har> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Export a captured flow as a shell command or raw HTTP bytes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  flowex export session.har --format curl\n")
		fmt.Fprintf(os.Stderr, "  flowex export session.har --format raw --flow 3 --output flow.bin\n")
		fmt.Fprintf(os.Stderr, "  flowex export session.har --format httpie --clip\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: capture file path is required\n\n")
		fs.Usage()
		os.Exit(2)
	}
	if *outputFlag != "" && *clipFlag {
		fmt.Fprintf(os.Stderr, "Error: --output and --clip are mutually exclusive\n")
		os.Exit(2)
	}

	flows, err := capture.LoadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading capture: %v\n", err)
		os.Exit(1)
	}
	if *flowFlag < 0 || *flowFlag >= len(flows) {
		fmt.Fprintf(os.Stderr, "Error: flow index %d out of range (capture has %d flows)\n", *flowFlag, len(flows))
		os.Exit(1)
	}
	f := flows[*flowFlag]

	svc := export.NewService(newLogger(cfg.LogLevel))

	switch {
	case *clipFlag:
		if err := svc.Clip(*formatFlag, f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Copied %s export of flow %d to clipboard\n", *formatFlag, *flowFlag)

	case *outputFlag != "":
		if err := svc.File(*formatFlag, f, *outputFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// File logs (rather than returns) sink failures, so only report
		// success if the artifact actually landed on disk.
		if info, err := os.Stat(*outputFlag); err == nil {
			fmt.Fprintf(os.Stderr, "Exported %s (%s) to %s\n",
				*formatFlag, humanize.Bytes(uint64(info.Size())), *outputFlag)
		}

	default:
		if err := svc.Write(os.Stdout, *formatFlag, f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Shell commands get a trailing newline on a terminal; raw bytes
		// are emitted verbatim.
		if !strings.HasPrefix(*formatFlag, "raw") {
			fmt.Println()
		}
	}
}
