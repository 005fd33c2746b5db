package output

import (
	"fmt"
	"math"
)

// ChannelMode selects how a color component outside [0,1] becomes an 8-bit channel
type ChannelMode int

const (
	// ChannelClamp saturates components to [0,1] before scaling to [0,255]
	ChannelClamp ChannelMode = iota
	// ChannelWrap truncates component*255 to an integer and reduces it modulo 256,
	// keeping the sign of the dividend. Out-of-range colors alias instead of saturating.
	ChannelWrap
)

// String returns the flag spelling of the mode
func (m ChannelMode) String() string {
	switch m {
	case ChannelClamp:
		return "clamp"
	case ChannelWrap:
		return "wrap"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// ParseChannelMode parses "clamp" or "wrap"
func ParseChannelMode(s string) (ChannelMode, error) {
	switch s {
	case "clamp", "":
		return ChannelClamp, nil
	case "wrap":
		return ChannelWrap, nil
	default:
		return ChannelClamp, fmt.Errorf("unknown channel mode %q (want clamp or wrap)", s)
	}
}

// Quantize converts a color component to a channel value. NaN maps to 0.
// In ChannelWrap mode the result lies in (-256, 256).
func Quantize(component float64, mode ChannelMode) int64 {
	if math.IsNaN(component) {
		return 0
	}

	if mode == ChannelWrap {
		return truncate(component*255) % 256
	}
	return int64(max(0, min(1, component)) * 255)
}

// truncate converts toward zero, saturating at the int64 range
func truncate(v float64) int64 {
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(v)
}

// byteChannel maps a quantized value onto [0,255] for byte-based encoders
func byteChannel(v int64) uint8 {
	return uint8(((v % 256) + 256) % 256)
}
