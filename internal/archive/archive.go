package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/AntoxaBarin/huffman-archiver/internal/huffman"
	"github.com/AntoxaBarin/huffman-archiver/internal/logger"
)

const BUFFER_SIZE = 0x20000

var (
	// ErrMalformedHeader means the stored header contradicts itself.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrTruncated means the input ended before the header or all symbols were read.
	ErrTruncated = errors.New("truncated input")
	// ErrCorruptStream means the bitstream holds a path the code tree cannot follow.
	ErrCorruptStream = errors.New("corrupt bitstream")
	// ErrInputTooLarge means the input length does not fit the 4-byte count.
	ErrInputTooLarge = errors.New("input too large")
	// ErrSameFile means the output path names the input file.
	ErrSameFile = errors.New("input and output are the same file")
)

// Stats holds the sizes of one operation, all in bytes. Compressed counts
// the packed bitstream only; FrequencyTable counts the header.
type Stats struct {
	Uncompressed   int64
	Compressed     int64
	FrequencyTable int64
}

type Archiver struct {
	logger logger.Logger
}

func NewArchiver(l logger.Logger) *Archiver {
	if l == nil {
		l = logger.Discard()
	}
	return &Archiver{
		logger: l,
	}
}

// Encode writes the compressed form of data to w. Empty data produces no
// output at all.
func (arch *Archiver) Encode(w io.Writer, data []byte) (Stats, error) {
	if len(data) == 0 {
		return Stats{}, nil
	}
	if int64(len(data)) > math.MaxInt32 {
		return Stats{}, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(data))
	}

	freq := huffman.Count(data)
	codeTable := huffman.Generate(huffman.Build(freq))

	out := bufio.NewWriterSize(w, BUFFER_SIZE)
	headerLen, err := writeHeader(out, freq)
	if err != nil {
		return Stats{}, err
	}
	bodyLen, err := writeBody(out, data, codeTable)
	if err != nil {
		return Stats{}, err
	}
	if err := out.Flush(); err != nil {
		return Stats{}, err
	}

	return Stats{
		Uncompressed:   int64(len(data)),
		Compressed:     bodyLen,
		FrequencyTable: headerLen,
	}, nil
}

// Decode reads a compressed stream from r and writes the original bytes to
// w. An empty stream decodes to nothing.
func (arch *Archiver) Decode(r io.Reader, w io.Writer) (Stats, error) {
	total, freq, headerLen, err := readHeader(r)
	if errors.Is(err, io.EOF) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{
		Uncompressed:   total,
		FrequencyTable: headerLen,
	}
	if total == 0 {
		return stats, nil
	}

	out := bufio.NewWriterSize(w, BUFFER_SIZE)
	stats.Compressed, err = decodeBody(r, huffman.Build(freq), total, out)
	if err != nil {
		return Stats{}, err
	}
	if err := out.Flush(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// Compress reads the whole file at inputPath and writes its compressed form
// to outputPath.
func (arch *Archiver) Compress(inputPath, outputPath string) (Stats, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		arch.logger.Errorf("compress %s: %v", inputPath, err)
		return Stats{}, fmt.Errorf("read input: %w", err)
	}
	if sameFile(info, outputPath) {
		arch.logger.Errorf("compress %s: %v", inputPath, ErrSameFile)
		return Stats{}, fmt.Errorf("%w: %s", ErrSameFile, outputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		arch.logger.Errorf("compress %s: %v", inputPath, err)
		return Stats{}, fmt.Errorf("read input: %w", err)
	}

	stats, err := arch.writeFile(outputPath, func(w io.Writer) (Stats, error) {
		return arch.Encode(w, data)
	})
	if err != nil {
		arch.logger.Errorf("compress %s: %v", inputPath, err)
		return Stats{}, err
	}
	arch.logger.Infof("compressed %s -> %s: %d -> %d bytes, frequency table %d bytes",
		inputPath, outputPath, stats.Uncompressed, stats.Compressed, stats.FrequencyTable)
	return stats, nil
}

// Decompress restores the file written by Compress at inputPath into
// outputPath.
func (arch *Archiver) Decompress(inputPath, outputPath string) (Stats, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		arch.logger.Errorf("decompress %s: %v", inputPath, err)
		return Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		arch.logger.Errorf("decompress %s: %v", inputPath, err)
		return Stats{}, fmt.Errorf("stat input: %w", err)
	}
	// creating the output first would truncate the archive we are about to read
	if sameFile(info, outputPath) {
		arch.logger.Errorf("decompress %s: %v", inputPath, ErrSameFile)
		return Stats{}, fmt.Errorf("%w: %s", ErrSameFile, outputPath)
	}

	in := bufio.NewReaderSize(file, BUFFER_SIZE)
	stats, err := arch.writeFile(outputPath, func(w io.Writer) (Stats, error) {
		return arch.Decode(in, w)
	})
	if err != nil {
		arch.logger.Errorf("decompress %s: %v", inputPath, err)
		return Stats{}, err
	}
	arch.logger.Infof("decompressed %s -> %s: %d -> %d bytes, frequency table %d bytes",
		inputPath, outputPath, stats.Compressed, stats.Uncompressed, stats.FrequencyTable)
	return stats, nil
}

func sameFile(in os.FileInfo, outputPath string) bool {
	out, err := os.Stat(outputPath)
	return err == nil && os.SameFile(in, out)
}

// writeFile creates path, hands it to fill and removes it again if anything
// fails, so no half-written output is left behind.
func (arch *Archiver) writeFile(path string, fill func(io.Writer) (Stats, error)) (Stats, error) {
	file, err := os.Create(path)
	if err != nil {
		return Stats{}, fmt.Errorf("create output: %w", err)
	}

	stats, err := fill(file)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	if err != nil {
		os.Remove(path)
		return Stats{}, err
	}
	return stats, nil
}
