package protocol

import (
	"io"

	"github.com/goorgb/goorgb/common"
)

// ColorMode selects how a mode sources its colors.
type ColorMode uint32

const (
	// ColorModeNone means the mode has no colors
	ColorModeNone ColorMode = iota
	// ColorModePerLED means colors are set per LED
	ColorModePerLED
	// ColorModeModeSpecific means the mode carries its own colors
	ColorModeModeSpecific
	// ColorModeRandom means colors are chosen at random
	ColorModeRandom
)

// Size returns the encoded byte length
func (ColorMode) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (m ColorMode) Write(w io.Writer, protocol uint32) error {
	return Uint32(m).Write(w, protocol)
}

// Read decodes the value from r, rejecting unknown values.
func (m *ColorMode) Read(r io.Reader, protocol uint32) error {
	var v Uint32
	if err := v.Read(r, protocol); err != nil {
		return err
	}
	if v > Uint32(ColorModeRandom) {
		return common.NewProtocolError("unknown color mode %d", uint32(v))
	}
	*m = ColorMode(v)
	return nil
}
