package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/AntoxaBarin/huffman-archiver/internal/huffman"
)

// Header layout, integers little-endian int32:
//
//	originalByteCount
//	alphabetSize
//	alphabetSize x (symbol byte, frequency int32), signed symbol order
const (
	countSize       = 4
	entrySize       = 1 + countSize
	headerFixedSize = 2 * countSize
	maxAlphabetSize = 256
)

func headerSize(alphabetSize int) int64 {
	return headerFixedSize + int64(entrySize*alphabetSize)
}

func writeHeader(w io.Writer, freq *huffman.FrequencyTable) (int64, error) {
	symbols := freq.Symbols()

	block := make([]byte, 0, headerSize(len(symbols)))
	block = binary.LittleEndian.AppendUint32(block, uint32(freq.Total()))
	block = binary.LittleEndian.AppendUint32(block, uint32(len(symbols)))
	for _, s := range symbols {
		block = append(block, s)
		block = binary.LittleEndian.AppendUint32(block, freq.Frequency(s))
	}

	if _, err := w.Write(block); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	return int64(len(block)), nil
}

// readHeader parses the header and returns the original byte count, the
// rebuilt frequency table and the header length. A reader that is empty
// from the start yields io.EOF unwrapped.
func readHeader(r io.Reader) (int64, *huffman.FrequencyTable, int64, error) {
	var fixed [headerFixedSize]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if err == io.EOF {
			return 0, nil, 0, io.EOF
		}
		return 0, nil, 0, headerReadErr(err)
	}

	total := int32(binary.LittleEndian.Uint32(fixed[0:4]))
	alphabetSize := int32(binary.LittleEndian.Uint32(fixed[4:8]))
	switch {
	case total < 0:
		return 0, nil, 0, fmt.Errorf("%w: negative byte count %d", ErrMalformedHeader, total)
	case alphabetSize < 0 || alphabetSize > maxAlphabetSize:
		return 0, nil, 0, fmt.Errorf("%w: alphabet size %d", ErrMalformedHeader, alphabetSize)
	case alphabetSize == 0 && total > 0:
		return 0, nil, 0, fmt.Errorf("%w: empty alphabet for %d bytes", ErrMalformedHeader, total)
	}

	entries := make([]byte, entrySize*int(alphabetSize))
	if _, err := io.ReadFull(r, entries); err != nil {
		return 0, nil, 0, headerReadErr(err)
	}

	freq := &huffman.FrequencyTable{}
	for i := 0; i < len(entries); i += entrySize {
		symbol := entries[i]
		count := int32(binary.LittleEndian.Uint32(entries[i+1 : i+entrySize]))
		if count <= 0 {
			return 0, nil, 0, fmt.Errorf("%w: frequency %d for byte %#02x", ErrMalformedHeader, count, symbol)
		}
		if freq.Frequency(symbol) != 0 {
			return 0, nil, 0, fmt.Errorf("%w: byte %#02x listed twice", ErrMalformedHeader, symbol)
		}
		freq.Add(symbol, uint32(count))
	}
	if freq.Total() != uint64(total) {
		return 0, nil, 0, fmt.Errorf("%w: frequencies sum to %d, byte count is %d",
			ErrMalformedHeader, freq.Total(), total)
	}

	return int64(total), freq, headerSize(int(alphabetSize)), nil
}

func headerReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: header cut short", ErrTruncated)
	}
	return fmt.Errorf("read header: %w", err)
}
