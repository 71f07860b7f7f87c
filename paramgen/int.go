package paramgen

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const (
	defaultIntBegin = -10
	defaultIntEnd   = 10
)

// parseIntRange parses a "begin:end" configuration string into an inclusive
// integer range bounded by [min, max]. An empty string selects the default
// range.
func parseIntRange(conf string, min, max int64) (int64, int64, error) {
	conf = strings.TrimSpace(conf)
	if conf == "" {
		return defaultIntBegin, defaultIntEnd, nil
	}
	parts := strings.Split(conf, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected configuration in \"begin:end\" form, got %q", conf)
	}
	begin, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range begin %q: %w", parts[0], err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}
	if begin > end {
		return 0, 0, fmt.Errorf("range begin %d is greater than end %d", begin, end)
	}
	if begin < min || end > max {
		return 0, 0, fmt.Errorf("range [%d, %d] exceeds the kind's bounds [%d, %d]", begin, end, min, max)
	}
	if uint64(end)-uint64(begin) >= math.MaxInt64 {
		return 0, 0, fmt.Errorf("range [%d, %d] is too wide to sample", begin, end)
	}
	return begin, end, nil
}

// intRange draws uniformly from the inclusive range [begin, end].
type intRange struct {
	begin, end int64
}

func (g intRange) next(r *rand.Rand) int64 {
	return g.begin + r.Int63n(g.end-g.begin+1)
}

// Int8Gen generates int8 values from an inclusive "begin:end" range.
type Int8Gen struct{ intRange }

// NewInt8Gen constructs an Int8Gen; empty configuration selects [-10, 10].
func NewInt8Gen(conf string) (ValueGenerator, error) {
	begin, end, err := parseIntRange(conf, math.MinInt8, math.MaxInt8)
	if err != nil {
		return nil, err
	}
	return &Int8Gen{intRange{begin, end}}, nil
}

func (g *Int8Gen) Generate(r *rand.Rand) any { return int8(g.next(r)) }

// Int16Gen generates int16 values from an inclusive "begin:end" range.
type Int16Gen struct{ intRange }

// NewInt16Gen constructs an Int16Gen; empty configuration selects [-10, 10].
func NewInt16Gen(conf string) (ValueGenerator, error) {
	begin, end, err := parseIntRange(conf, math.MinInt16, math.MaxInt16)
	if err != nil {
		return nil, err
	}
	return &Int16Gen{intRange{begin, end}}, nil
}

func (g *Int16Gen) Generate(r *rand.Rand) any { return int16(g.next(r)) }

// Int32Gen generates int32 values from an inclusive "begin:end" range.
type Int32Gen struct{ intRange }

// NewInt32Gen constructs an Int32Gen; empty configuration selects [-10, 10].
func NewInt32Gen(conf string) (ValueGenerator, error) {
	begin, end, err := parseIntRange(conf, math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	return &Int32Gen{intRange{begin, end}}, nil
}

func (g *Int32Gen) Generate(r *rand.Rand) any { return int32(g.next(r)) }

// Int64Gen generates int64 values from an inclusive "begin:end" range.
type Int64Gen struct{ intRange }

// NewInt64Gen constructs an Int64Gen; empty configuration selects [-10, 10].
func NewInt64Gen(conf string) (ValueGenerator, error) {
	begin, end, err := parseIntRange(conf, math.MinInt64, math.MaxInt64)
	if err != nil {
		return nil, err
	}
	return &Int64Gen{intRange{begin, end}}, nil
}

func (g *Int64Gen) Generate(r *rand.Rand) any { return g.next(r) }
