package protocol

import (
	"io"

	"github.com/goorgb/goorgb/common"
)

// ModeFlag is a single mode capability bit.
type ModeFlag uint32

const (
	// HasSpeed means the mode has a speed parameter
	HasSpeed ModeFlag = 1 << iota
	// HasDirectionLR means the mode has a left/right parameter
	HasDirectionLR
	// HasDirectionUD means the mode has an up/down parameter
	HasDirectionUD
	// HasDirectionHV means the mode has a horizontal/vertical parameter
	HasDirectionHV
	// HasBrightness means the mode has a brightness parameter
	HasBrightness
	// HasPerLEDColor means the mode has per-LED colors
	HasPerLEDColor
	// HasModeSpecificColor means the mode has mode-specific colors
	HasModeSpecificColor
	// HasRandomColor means the mode has a random color option
	HasRandomColor
	// ManualSave means the mode can be saved manually
	ManualSave
	// AutomaticSave means the mode saves automatically
	AutomaticSave

	// HasDirection is the union of the three direction bits
	HasDirection = HasDirectionLR | HasDirectionUD | HasDirectionHV
)

// validModeFlags is the full flag vocabulary; any bit outside it is a
// protocol error on decode.
const validModeFlags = HasSpeed | HasDirection | HasBrightness |
	HasPerLEDColor | HasModeSpecificColor | HasRandomColor |
	ManualSave | AutomaticSave

// ModeFlags is a set of ModeFlag bits, encoded as their 32-bit OR.
type ModeFlags uint32

// Has reports whether every bit of flag is present in the set.
func (f ModeFlags) Has(flag ModeFlag) bool {
	return ModeFlag(f)&flag == flag
}

// Size returns the encoded byte length
func (ModeFlags) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (f ModeFlags) Write(w io.Writer, protocol uint32) error {
	return Uint32(f).Write(w, protocol)
}

// Read decodes the value from r, rejecting integers carrying bits outside
// the known vocabulary.
func (f *ModeFlags) Read(r io.Reader, protocol uint32) error {
	var v Uint32
	if err := v.Read(r, protocol); err != nil {
		return err
	}
	if uint32(v)&^uint32(validModeFlags) != 0 {
		return common.NewProtocolError("received invalid mode flag set %d", uint32(v))
	}
	*f = ModeFlags(v)
	return nil
}
