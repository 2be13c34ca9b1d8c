package protocol

import (
	"io"

	"github.com/goorgb/goorgb/common"
)

// ZoneType describes the physical layout of a Zone.
type ZoneType uint32

const (
	// ZoneSingle is a single LED zone
	ZoneSingle ZoneType = iota
	// ZoneLinear is a one-dimensional strip of LEDs
	ZoneLinear
	// ZoneMatrix is a two-dimensional grid of LEDs
	ZoneMatrix
)

func (t ZoneType) String() string {
	switch t {
	case ZoneSingle:
		return `Single`
	case ZoneLinear:
		return `Linear`
	case ZoneMatrix:
		return `Matrix`
	}
	return `Invalid`
}

// Size returns the encoded byte length
func (ZoneType) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (t ZoneType) Write(w io.Writer, protocol uint32) error {
	return Uint32(t).Write(w, protocol)
}

// Read decodes the value from r, rejecting unknown values.
func (t *ZoneType) Read(r io.Reader, protocol uint32) error {
	var v Uint32
	if err := v.Read(r, protocol); err != nil {
		return err
	}
	if v > Uint32(ZoneMatrix) {
		return common.NewProtocolError("unknown zone type %d", uint32(v))
	}
	*t = ZoneType(v)
	return nil
}
