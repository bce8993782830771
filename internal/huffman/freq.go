package huffman

// FrequencyTable maps every byte value to the number of times it occurs.
// The zero value is an empty table ready to use.
type FrequencyTable struct {
	counts [256]uint32
	total  uint64
}

// Count builds the frequency table of data.
func Count(data []byte) *FrequencyTable {
	t := &FrequencyTable{}
	t.Write(data)
	return t
}

// Write counts the bytes of p. It never fails, so a table can sit at the
// end of an io.Copy.
func (t *FrequencyTable) Write(p []byte) (int, error) {
	for _, b := range p {
		t.counts[b]++
	}
	t.total += uint64(len(p))
	return len(p), nil
}

// Add records count more occurrences of symbol. It is used to rebuild a
// table entry by entry from a stored header.
func (t *FrequencyTable) Add(symbol byte, count uint32) {
	t.counts[symbol] += count
	t.total += uint64(count)
}

func (t *FrequencyTable) Frequency(symbol byte) uint32 {
	return t.counts[symbol]
}

// Symbols returns the observed byte values in ascending order of their
// signed value, 0x80 through 0xff first and then 0x00 through 0x7f. This is
// the order archives have always listed and merged symbols in.
func (t *FrequencyTable) Symbols() []byte {
	symbols := make([]byte, 0, t.Len())
	for i := -128; i < 128; i++ {
		if s := byte(int8(i)); t.counts[s] != 0 {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// Len is the alphabet power: the number of distinct symbols seen.
func (t *FrequencyTable) Len() int {
	n := 0
	for _, c := range t.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// Total is the sum of all counts.
func (t *FrequencyTable) Total() uint64 {
	return t.total
}
