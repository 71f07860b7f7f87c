package paramgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	defaultMaxLength = 16
	defaultAlphabet  = "abcdefghijklmnopqrstuvwxyz"
)

// StringGen generates strings of random length up to a configured maximum,
// drawn from a configured alphabet. The configuration string is either
// "maxLength" or "maxLength:alphabet"; empty selects length 16 over the
// lowercase latin alphabet.
type StringGen struct {
	maxLength int
	alphabet  string
}

// NewStringGen constructs a StringGen from its configuration string.
func NewStringGen(conf string) (ValueGenerator, error) {
	gen := &StringGen{maxLength: defaultMaxLength, alphabet: defaultAlphabet}
	conf = strings.TrimSpace(conf)
	if conf == "" {
		return gen, nil
	}
	lengthPart := conf
	if idx := strings.Index(conf, ":"); idx >= 0 {
		lengthPart = conf[:idx]
		gen.alphabet = conf[idx+1:]
		if gen.alphabet == "" {
			return nil, fmt.Errorf("string alphabet cannot be empty in %q", conf)
		}
	}
	maxLength, err := strconv.Atoi(strings.TrimSpace(lengthPart))
	if err != nil {
		return nil, fmt.Errorf("invalid max length %q: %w", lengthPart, err)
	}
	if maxLength < 1 {
		return nil, fmt.Errorf("max length must be positive, got %d", maxLength)
	}
	gen.maxLength = maxLength
	return gen, nil
}

func (g *StringGen) Generate(r *rand.Rand) any {
	runes := []rune(g.alphabet)
	length := r.Intn(g.maxLength + 1)
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteRune(runes[r.Intn(len(runes))])
	}
	return b.String()
}
