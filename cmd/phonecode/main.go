// Copyright 2025 The PhoneCode Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the phonecode command.

phonecode solves the phone number encoding puzzle: every telephone number is
spelled with words from a dictionary, where each letter stands for one keypad
digit. A single digit may fill a gap where no word fits, but never two in a
row.

# Usage

Encode the bundled fixtures:

	phonecode

Use your own lists; the first argument is the dictionary, the second the numbers:

	phonecode words.txt numbers.txt

Either list may be gzip or zstd compressed, and "-" reads numbers from stdin:

	cat numbers.txt | phonecode dict.txt.gz -

# Output

One line per encoding, labeled with the number as written in the input:

	5624-82: mir Tor
	5624-82: Mix Tor
	4824: Tor 4

With -format msgpack a stream of records {"n", "s", "c"} is written instead,
one per number.

# Configuration

Defaults can be kept in a TOML file, read from -config or from the user
config dir (~/.config/phonecode/config.toml on Linux):

	[input]
	words = "testdata/words.txt"
	numbers = "testdata/numbers.txt"

	[search]
	workers = 1
	cache_size = 1024

	[output]
	format = "text"
	show_unencodable = false

	[log]
	level = "warn"

Write a file with the defaults using -init-config path. Flags and positional
arguments override the file.

# Command Line Flags

	-config string
	    Path to a TOML config file
	-init-config string
	    Write a default config file to this path and exit
	-d  Enable debug mode with detailed logging
	-format string
	    Output format: text or msgpack
	-workers int
	    Numbers encoded in parallel
	-cache int
	    Digit sequences whose encodings are cached (0 disables)
	-show-unencodable
	    Print "<number>:" for numbers without any encoding
	-version
	    Show current version

The exit status is 0 on success and 1 when an input cannot be opened, the
configuration is invalid or the run is interrupted by SIGINT or SIGTERM.
Encodings found before an interruption are still written.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/phonecode/internal/logger"
	"github.com/bastiangx/phonecode/internal/utils"
	"github.com/bastiangx/phonecode/pkg/batch"
	"github.com/bastiangx/phonecode/pkg/config"
	"github.com/bastiangx/phonecode/pkg/dictionary"
	"github.com/bastiangx/phonecode/pkg/encode"
	"github.com/bastiangx/phonecode/pkg/output"
)

const (
	Version = "1.0.0"
	AppName = "phonecode"
	gh      = "https://github.com/bastiangx/phonecode"
)

// sigContext returns a context cancelled by SIGINT or SIGTERM.
// The batch run stops at the next number and flushes what it has.
func sigContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	ctx, stop := sigContext()
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "\nExiting...\n")
		}
		log.Fatal(err)
	}
}

// run wires config, dictionary, encoder and output together.
// It does not implement logic for them and only manages the flow.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	defaultConfig := config.DefaultConfig()

	flags := flag.NewFlagSet(AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	showVersion := flags.Bool("version", false, "Show current version")
	configPath := flags.String("config", "", "Path to a TOML config file")
	initConfig := flags.String("init-config", "", "Write a default config file to this path and exit")
	debugMode := flags.Bool("d", false, "Toggle debug mode")
	format := flags.String("format", "", fmt.Sprintf("Output format: text or msgpack (default %q)", defaultConfig.Output.Format))
	workers := flags.Int("workers", 0, fmt.Sprintf("Numbers encoded in parallel (default %d)", defaultConfig.Search.Workers))
	cacheSize := flags.Int("cache", -1, fmt.Sprintf("Digit sequences whose encodings are cached, 0 disables (default %d)", defaultConfig.Search.CacheSize))
	showUnencodable := flags.Bool("show-unencodable", false, "Print \"<number>:\" for numbers without any encoding")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [flags] [words-file [numbers-file]]\n\n", AppName)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		printVersion(stderr)
		return nil
	}

	if *initConfig != "" {
		if _, err := config.InitConfig(*initConfig); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		log.Printf("Config written to %s", utils.GetAbsolutePath(*initConfig))
		return nil
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return fmt.Errorf("failed to initialize path resolver: %w", err)
	}

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath, pathResolver.ConfigPath(config.DefaultFileName))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// flags and arguments win over the file
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *workers > 0 {
		cfg.Search.Workers = *workers
	}
	if *cacheSize >= 0 {
		cfg.Search.CacheSize = *cacheSize
	}
	if *showUnencodable {
		cfg.Output.ShowUnencodable = true
	}
	if *debugMode {
		cfg.Log.Level = "debug"
	}
	rest := flags.Args()
	if len(rest) > 0 {
		cfg.Input.Words = rest[0]
	}
	if len(rest) > 1 {
		cfg.Input.Numbers = rest[1]
	}
	if len(rest) > 2 {
		log.Warnf("Ignoring extra arguments: %v", rest[2:])
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Setup(stderr, cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if usedConfig != "" {
		log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))
	}

	wordsPath := pathResolver.ResolveInput(cfg.Input.Words)
	numbersPath := cfg.Input.Numbers
	if numbersPath != utils.StdinPath {
		numbersPath = pathResolver.ResolveInput(numbersPath)
	}
	log.Debug("Inputs", "words", wordsPath, "numbers", numbersPath)

	dict, err := dictionary.LoadFile(wordsPath)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	numbers, err := utils.OpenInput(numbersPath)
	if err != nil {
		return fmt.Errorf("failed to open numbers: %w", err)
	}
	defer numbers.Close()

	encoder, err := encode.NewEncoder(dict, cfg.Search.CacheSize)
	if err != nil {
		return fmt.Errorf("failed to init encoder: %w", err)
	}

	sink, err := output.New(cfg.Output.Format, stdout, output.Options{
		ShowUnencodable: cfg.Output.ShowUnencodable,
	})
	if err != nil {
		return fmt.Errorf("failed to init output: %w", err)
	}

	log.Debug("Search info:",
		"words", dict.Len(),
		"keys", dict.Keys(),
		"workers", cfg.Search.Workers,
		"cache", cfg.Search.CacheSize,
		"format", cfg.Output.Format)

	runner := batch.NewRunner(encoder, sink, cfg.Search.Workers)
	stats, err := runner.Run(ctx, numbers)
	if err != nil {
		if ctx.Err() != nil {
			log.Warnf("Interrupted after %d numbers", stats.Numbers)
		}
		return fmt.Errorf("run failed: %w", err)
	}

	log.Debugf("Encoded %d numbers into %d solutions in [ %v ] (%d unencodable, %d cache hits)",
		stats.Numbers, stats.Solutions, stats.Elapsed, stats.Unencodable, stats.CacheHits)
	return nil
}

// printVersion shows a short styled banner.
func printVersion(w io.Writer) {
	banner := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ PhoneCode ] Spells phone numbers with dictionary words")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
