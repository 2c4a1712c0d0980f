package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	apppkg "github.com/kk-code-lab/rfm/internal/app"
	"github.com/kk-code-lab/rfm/internal/config"
	fsutil "github.com/kk-code-lab/rfm/internal/fs"
	"github.com/kk-code-lab/rfm/internal/logging"
	"github.com/kk-code-lab/rfm/internal/places"
)

func printHelp() {
	fmt.Printf(`rfm - Terminal file manager

USAGE:
    rfm [OPTIONS] [PATH]

OPTIONS:
    -h, --help            Show this help message and exit

PATH defaults to $%[1]s_START, then to your home directory.

ENVIRONMENT:
%[2]s`, config.Prefix, config.Usage())
}

func main() {
	// UTF-8 fallback keeps non-ASCII file names readable on minimal terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	startArg := ""
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "unknown option %s\n", arg)
			os.Exit(2)
		default:
			startArg = arg
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if startArg != "" {
		cfg.StartPath = startArg
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()

	placeList, err := places.Load(fsutil.DefaultLocation(), cfg.PlacesFile)
	if err != nil {
		logger.Warn("places file ignored", zap.String("file", cfg.PlacesFile), zap.Error(err))
	}

	app, err := apppkg.NewApplication(cfg, logger, placeList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	app.Run()
	if err := app.Close(); err != nil {
		logger.Warn("close failed", zap.Error(err))
	}
}
