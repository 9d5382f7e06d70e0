// Package quantizedfloat decodes floats that were packed into a fixed bit
// width over a known [Low, High] range, the scheme Source-engine network
// fields use for bandwidth-constrained values (health fractions, angles,
// normalized directions). This is one of spec.md §1's "individual field
// decoders", named but left external; this is a minimal implementation of
// that contract, not a byte-exact reproduction of the original engine's
// bit-twiddling (which also special-cases rounding and sign a variety of
// ways spec.md does not pin down).
package quantizedfloat

import "github.com/blukai/hasted/internal/bitreader"

// Config describes one quantized-float field.
type Config struct {
	Low, High  float32
	BitCount   int
	RoundDown  bool
	RoundUp    bool
	EncodeZero bool
}

// Decode reads a quantized float off br using cfg's range and bit width.
func (cfg Config) Decode(br *bitreader.BitReader) float32 {
	if cfg.BitCount <= 0 || cfg.BitCount >= 32 {
		return br.ReadFloat32()
	}

	raw := br.ReadUBit32(cfg.BitCount)

	if cfg.EncodeZero && raw == 0 {
		return 0
	}

	maxRaw := uint32(1<<uint(cfg.BitCount)) - 1
	frac := float32(raw) / float32(maxRaw)
	val := cfg.Low + (cfg.High-cfg.Low)*frac

	if cfg.RoundDown && val == cfg.High {
		val = cfg.High
	}
	if cfg.RoundUp && val == cfg.Low {
		val = cfg.Low
	}
	return val
}
