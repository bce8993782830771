package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/AntoxaBarin/huffman-archiver/internal/huffman"
)

// writeBody packs the code of every byte of data MSB-first and zero-pads the
// last byte. It returns the number of bytes written.
func writeBody(w io.Writer, data []byte, codeTable *huffman.CodeTable) (int64, error) {
	bw := bitio.NewWriter(w)

	var bits int64
	for _, b := range data {
		code, ok := codeTable.Lookup(b)
		if !ok {
			return 0, fmt.Errorf("no code for byte %#02x", b)
		}
		if err := bw.WriteBits(code.Bits, code.Len); err != nil {
			return 0, fmt.Errorf("write body: %w", err)
		}
		bits += int64(code.Len)
	}
	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	return (bits + 7) / 8, nil
}

// decodeBody walks the tree one bit at a time and writes a symbol at every
// leaf, stopping as soon as total symbols are out. Padding after that point
// is never read. It returns the number of bitstream bytes consumed.
func decodeBody(r io.Reader, root *huffman.Node, total int64, w io.ByteWriter) (int64, error) {
	br := bitio.NewReader(r)
	single := root.IsLeaf()

	var emitted, bits int64
	node := root
	for emitted < total {
		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, fmt.Errorf("%w: %d of %d bytes decoded", ErrTruncated, emitted, total)
			}
			return 0, fmt.Errorf("read body: %w", err)
		}
		bits++

		if single {
			// the root is the only leaf and its code is a lone 1 bit
			if !bit {
				return 0, fmt.Errorf("%w: 0 bit at offset %d in a one-symbol stream", ErrCorruptStream, bits-1)
			}
			node = root
		} else if bit {
			node = node.Right
		} else {
			node = node.Left
		}

		if node.IsLeaf() {
			if err := w.WriteByte(node.Data); err != nil {
				return 0, fmt.Errorf("write output: %w", err)
			}
			emitted++
			node = root
		}
	}
	return (bits + 7) / 8, nil
}
