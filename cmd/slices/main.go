// cmd/slices/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Use standard log for errors before logger is ready
	"os"

	"github.com/bethropolis/slices/internal/config"
	"github.com/bethropolis/slices/internal/demo"
	"github.com/bethropolis/slices/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	if _, err := flags.ParseFlags(flag.CommandLine, args); err != nil {
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		return 0
	}

	res, err := config.LoadConfig(*flags.ConfigFilePath, &flags)
	if err != nil {
		stlog.Printf("Error loading configuration: %v", err)
		return 1
	}
	cfg := res.Config

	// --- Logger Initialization ---
	output, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("Error opening log output: %v", err)
		return 1
	}
	defer closeLog()

	logger.Init(cfg.Logger, output)
	res.Report()
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)

	opts := demo.Options{
		Text:      cfg.Demo.Text,
		Graphemes: cfg.Demo.Graphemes,
	}
	if cfg.Demo.CopyFirstWord {
		opts.Clipboard = demo.SystemClipboard{}
	}

	if err := demo.Run(os.Stdout, opts); err != nil {
		logger.Errorf("Walkthrough failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Debugf("Walkthrough finished.")
	return 0
}
