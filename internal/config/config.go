// Package config turns command-line arguments into a Config.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

type Mode int

const (
	ModeCompress Mode = iota + 1
	ModeDecompress
)

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeDecompress:
		return "decompress"
	}
	return "unknown"
}

type Config struct {
	Mode    Mode
	Input   string
	Output  string
	Verbose bool
}

var ErrUsage = errors.New("incorrect arguments")

// Load parses args, which exclude the program name. Both the short and the
// long spelling of the file flags are accepted.
func Load(args []string) (Config, error) {
	var (
		cfg                  Config
		compress, decompress bool
	)

	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&compress, "c", false, "compress the input file")
	fs.BoolVar(&decompress, "d", false, "decompress the input file")
	fs.StringVar(&cfg.Input, "f", "", "input file")
	fs.StringVar(&cfg.Input, "file", "", "input file")
	fs.StringVar(&cfg.Output, "o", "", "output file")
	fs.StringVar(&cfg.Output, "output", "", "output file")
	fs.BoolVar(&cfg.Verbose, "v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 0 {
		return Config{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	switch {
	case compress && decompress:
		return Config{}, fmt.Errorf("%w: -c and -d are mutually exclusive", ErrUsage)
	case compress:
		cfg.Mode = ModeCompress
	case decompress:
		cfg.Mode = ModeDecompress
	default:
		return Config{}, fmt.Errorf("%w: one of -c or -d is required", ErrUsage)
	}

	if cfg.Input == "" {
		return Config{}, fmt.Errorf("%w: missing input file", ErrUsage)
	}
	if cfg.Output == "" {
		return Config{}, fmt.Errorf("%w: missing output file", ErrUsage)
	}
	return cfg, nil
}

func Usage(prog string) string {
	return "Usage:\n" +
		"To compress file: " + prog + " -c -f <decompressed_file> -o <compressed_file>\n" +
		"To decompress file: " + prog + " -d -f <compressed_file> -o <decompressed_file>\n"
}
