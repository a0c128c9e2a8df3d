package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-painter/screen"
	"github.com/sheikhrachel/gol-painter/utils"
)

// loadConfig reads the config file, falling back to defaults, and applies flag overrides
func loadConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "config.json", "path to the JSON configuration file")
		pattern    = fs.String("pattern", "", "initial pattern: paint, blank, glider, blinker, block, random, noise, showcase")
		mode       = fs.String("mode", "", "step mode: manual or auto")
		renderer   = fs.String("renderer", "", "renderer: screen or terminal")
		strategy   = fs.String("strategy", "", "stepping strategy: sequential, parallel or bounded")
		width      = fs.Int("width", 0, "grid width in cells")
		height     = fs.Int("height", 0, "grid height in cells")
		seed       = fs.Int64("seed", 0, "seed for the random and noise patterns, 0 picks one")
	)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	if *pattern != "" {
		config.Pattern = *pattern
	}
	if *mode != "" {
		config.Mode = *mode
	}
	if *renderer != "" {
		config.Renderer = *renderer
	}
	if *strategy != "" {
		config.Strategy = *strategy
	}
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	return config, config.Validate()
}

func main() {
	config, err := loadConfig(os.Args[1:])
	if err != nil {
		exitOnError(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, err := initializeGame(config, os.Stdin, os.Stdout)
	if err != nil {
		exitOnError(err)
	}

	err = g.run(ctx)
	g.close()

	var stopped *stopError
	switch {
	case err == nil:
	case errors.As(err, &stopped):
		fmt.Printf("🏁 Stopped: %s\n", stopped.reason)
	case errors.Is(err, screen.ErrQuit), errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		fmt.Println("🛑 Shutting down gracefully...")
	default:
		exitOnError(err)
	}
	displayFinalStats(g)
}
