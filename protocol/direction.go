package protocol

import (
	"io"

	"github.com/goorgb/goorgb/common"
)

// Direction is the animation direction of a Mode.
type Direction uint32

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionHorizontal
	DirectionVertical
)

// Size returns the encoded byte length
func (Direction) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (d Direction) Write(w io.Writer, protocol uint32) error {
	return Uint32(d).Write(w, protocol)
}

// Read decodes the value from r, rejecting unknown values.
func (d *Direction) Read(r io.Reader, protocol uint32) error {
	var v Uint32
	if err := v.Read(r, protocol); err != nil {
		return err
	}
	if v > Uint32(DirectionVertical) {
		return common.NewProtocolError("unknown direction %d", uint32(v))
	}
	*d = Direction(v)
	return nil
}
