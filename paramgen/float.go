package paramgen

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const (
	defaultFloatBegin = -10
	defaultFloatEnd   = 10
)

// parseFloatRange parses a "begin:end" configuration string into a
// half-open float range [begin, end). An empty string selects the default
// range.
func parseFloatRange(conf string) (float64, float64, error) {
	conf = strings.TrimSpace(conf)
	if conf == "" {
		return defaultFloatBegin, defaultFloatEnd, nil
	}
	parts := strings.Split(conf, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected configuration in \"begin:end\" form, got %q", conf)
	}
	begin, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range begin %q: %w", parts[0], err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}
	if math.IsNaN(begin) || math.IsNaN(end) || math.IsInf(begin, 0) || math.IsInf(end, 0) {
		return 0, 0, fmt.Errorf("range bounds must be finite, got [%v, %v]", begin, end)
	}
	if begin >= end {
		return 0, 0, fmt.Errorf("range begin %v must be less than end %v", begin, end)
	}
	return begin, end, nil
}

// Float32Gen generates float32 values from a half-open "begin:end" range.
type Float32Gen struct {
	begin, end float64
}

// NewFloat32Gen constructs a Float32Gen; empty configuration selects [-10, 10).
func NewFloat32Gen(conf string) (ValueGenerator, error) {
	begin, end, err := parseFloatRange(conf)
	if err != nil {
		return nil, err
	}
	return &Float32Gen{begin: begin, end: end}, nil
}

func (g *Float32Gen) Generate(r *rand.Rand) any {
	return float32(g.begin + r.Float64()*(g.end-g.begin))
}

// Float64Gen generates float64 values from a half-open "begin:end" range.
type Float64Gen struct {
	begin, end float64
}

// NewFloat64Gen constructs a Float64Gen; empty configuration selects [-10, 10).
func NewFloat64Gen(conf string) (ValueGenerator, error) {
	begin, end, err := parseFloatRange(conf)
	if err != nil {
		return nil, err
	}
	return &Float64Gen{begin: begin, end: end}, nil
}

func (g *Float64Gen) Generate(r *rand.Rand) any {
	return g.begin + r.Float64()*(g.end-g.begin)
}
