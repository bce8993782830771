package archive

import "strings"

// textPRNG is a linear congruential generator so corpora are identical on
// every run and platform.
type textPRNG struct {
	state uint64
}

func (p *textPRNG) next() uint64 {
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return p.state >> 11
}

func (p *textPRNG) intn(n int) int {
	return int(p.next() % uint64(n))
}

var corpusWords = strings.Fields(`
	the of and to in is was that for it with as his on be at by had not are
	but from or have an they which one you were her all she there would their
	we him been has when who will more no if out so said what up its about
	into than them can only other new some could time these two may then do
	first any my now such like our over man me even most made after also did
	many before must through back years where much your way well down should
	because each just those people how too little state good very make world
	still own see men work long get here between both life being under never
	day same another know while last might us great old year off come since
	against go came right used take three compression river winter harbour`)

// naturalText returns at least size bytes of word-like English text with
// sentence punctuation and line breaks.
func naturalText(seed uint64, size int) []byte {
	p := &textPRNG{state: seed}
	var sb strings.Builder
	sb.Grow(size + 64)

	lineLen := 0
	capitalize := true
	for sb.Len() < size {
		w := corpusWords[p.intn(len(corpusWords))]
		if capitalize {
			w = strings.ToUpper(w[:1]) + w[1:]
			capitalize = false
		}
		sb.WriteString(w)
		lineLen += len(w)

		switch r := p.intn(20); {
		case r == 0:
			sb.WriteString(". ")
			capitalize = true
		case r == 1:
			sb.WriteString(", ")
		default:
			sb.WriteByte(' ')
		}
		lineLen += 2

		if lineLen > 72 {
			sb.WriteByte('\n')
			lineLen = 0
		}
	}
	return []byte(sb.String())
}

func randomBytes(seed uint64, size int) []byte {
	p := &textPRNG{state: seed}
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(p.next())
	}
	return out
}
