package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntoxaBarin/huffman-archiver/internal/archive"
	"github.com/AntoxaBarin/huffman-archiver/internal/config"
	"github.com/AntoxaBarin/huffman-archiver/internal/logger"
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}

func run(prog string, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, config.Usage(prog))
		return 2
	}

	logOut := io.Discard
	if cfg.Verbose {
		logOut = stderr
	}
	arch := archive.NewArchiver(logger.New(logOut))

	info, err := os.Stat(cfg.Input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Input file %s doesn't exist!\n", cfg.Input)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	if info.IsDir() {
		fmt.Fprintf(stderr, "Input %s is a directory\n", cfg.Input)
		return 1
	}

	var stats archive.Stats
	switch cfg.Mode {
	case config.ModeCompress:
		stats, err = arch.Compress(cfg.Input, cfg.Output)
		if err == nil {
			fmt.Fprintf(stdout, "%d\n%d\n%d\n", stats.Uncompressed, stats.Compressed, stats.FrequencyTable)
		}
	case config.ModeDecompress:
		stats, err = arch.Decompress(cfg.Input, cfg.Output)
		if err == nil {
			fmt.Fprintf(stdout, "%d\n%d\n%d\n", stats.Compressed, stats.Uncompressed, stats.FrequencyTable)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cfg.Mode, err)
		return 1
	}
	return 0
}
