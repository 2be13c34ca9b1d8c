package protocol

import (
	"io"

	"github.com/goorgb/goorgb/common"
)

// Mode is one effect a controller can run.
//
// Several fields are optional: the wire layout always carries a slot for
// them (brightness slots only since protocol version 3), but the value is
// only meaningful when the corresponding flag bit is set.  Optional fields
// are nil when absent.
type Mode struct {
	// Name is the mode name
	Name string
	// Value is the device-specific mode value
	Value int32
	// Flags is the mode capability bit set
	Flags ModeFlags

	// SpeedMin is the minimum speed, set only with the HasSpeed flag
	SpeedMin *uint32
	// SpeedMax is the maximum speed, set only with the HasSpeed flag
	SpeedMax *uint32
	// Speed is the current speed, set only with the HasSpeed flag
	Speed *uint32

	// BrightnessMin is the minimum brightness, set only with the
	// HasBrightness flag on protocol version 3 and later
	BrightnessMin *uint32
	// BrightnessMax is the maximum brightness, set only with the
	// HasBrightness flag on protocol version 3 and later
	BrightnessMax *uint32
	// Brightness is the current brightness, set only with the HasBrightness
	// flag on protocol version 3 and later
	Brightness *uint32

	// ColorsMin is the minimum color count, set only when Colors is
	// non-empty
	ColorsMin *uint32
	// ColorsMax is the maximum color count, set only when Colors is
	// non-empty
	ColorsMax *uint32

	// Direction is the animation direction, set only with the HasDirection
	// flags
	Direction *Direction
	// ColorMode is how the mode sources its colors, always set on decode
	ColorMode *ColorMode
	// Colors is the mode color list
	Colors []Color
}

// Size returns the encoded byte length
func (m Mode) Size(protocol uint32) int {
	size := sizeAll(protocol,
		String(m.Name),
		Int32(m.Value),
		m.Flags,
		orZero(m.SpeedMin),
		orZero(m.SpeedMax),
	)
	if protocol >= 3 {
		size += sizeAll(protocol, orZero(m.BrightnessMin), orZero(m.BrightnessMax))
	}
	size += sizeAll(protocol,
		orZero(m.ColorsMin),
		orZero(m.ColorsMax),
		orZero(m.Speed),
	)
	if protocol >= 3 {
		size += orZero(m.Brightness).Size(protocol)
	}
	size += sizeAll(protocol,
		orDirection(m.Direction),
		orColorMode(m.ColorMode),
		List[Color](m.Colors),
	)
	return size
}

// Write encodes the value onto w.  Every optional slot is written using the
// field value or a zero default when absent; the flags do not suppress
// slots on the write path, only the protocol version does (brightness
// before version 3).
func (m Mode) Write(w io.Writer, protocol uint32) error {
	if err := writeAll(w, protocol,
		String(m.Name),
		Int32(m.Value),
		m.Flags,
		orZero(m.SpeedMin),
		orZero(m.SpeedMax),
	); err != nil {
		return err
	}
	if protocol >= 3 {
		if err := writeAll(w, protocol, orZero(m.BrightnessMin), orZero(m.BrightnessMax)); err != nil {
			return err
		}
	}
	if err := writeAll(w, protocol,
		orZero(m.ColorsMin),
		orZero(m.ColorsMax),
		orZero(m.Speed),
	); err != nil {
		return err
	}
	if protocol >= 3 {
		if err := orZero(m.Brightness).Write(w, protocol); err != nil {
			return err
		}
	}
	return writeAll(w, protocol,
		orDirection(m.Direction),
		orColorMode(m.ColorMode),
		List[Color](m.Colors),
	)
}

// Read decodes the value from r.  All slots present on the wire are read
// first, then reinterpreted against the flag bits: a slot whose flag is
// unset decodes to nil regardless of the raw value.
func (m *Mode) Read(r io.Reader, protocol uint32) error {
	var name String
	var value Int32
	var flags ModeFlags
	var speedMin, speedMax Uint32
	if err := readAll(r, protocol, &name, &value, &flags, &speedMin, &speedMax); err != nil {
		return err
	}
	var brightnessMin, brightnessMax Uint32
	if protocol >= 3 {
		if err := readAll(r, protocol, &brightnessMin, &brightnessMax); err != nil {
			return err
		}
	}
	var colorsMin, colorsMax, speed Uint32
	if err := readAll(r, protocol, &colorsMin, &colorsMax, &speed); err != nil {
		return err
	}
	var brightness Uint32
	if protocol >= 3 {
		if err := brightness.Read(r, protocol); err != nil {
			return err
		}
	}
	var rawDirection Uint32
	var colorMode ColorMode
	if err := readAll(r, protocol, &rawDirection, &colorMode); err != nil {
		return err
	}
	colors, err := ReadList[Color](r, protocol)
	if err != nil {
		return err
	}

	m.Name = string(name)
	m.Value = int32(value)
	m.Flags = flags
	m.SpeedMin = optUint32(flags.Has(HasSpeed), speedMin)
	m.SpeedMax = optUint32(flags.Has(HasSpeed), speedMax)
	m.Speed = optUint32(flags.Has(HasSpeed), speed)
	hasBrightness := protocol >= 3 && flags.Has(HasBrightness)
	m.BrightnessMin = optUint32(hasBrightness, brightnessMin)
	m.BrightnessMax = optUint32(hasBrightness, brightnessMax)
	m.Brightness = optUint32(hasBrightness, brightness)
	m.ColorsMin = optUint32(len(colors) > 0, colorsMin)
	m.ColorsMax = optUint32(len(colors) > 0, colorsMax)
	m.Direction = nil
	if flags.Has(HasDirection) {
		if rawDirection > Uint32(DirectionVertical) {
			return common.NewProtocolError("unknown direction %d", uint32(rawDirection))
		}
		d := Direction(rawDirection)
		m.Direction = &d
	}
	cm := colorMode
	m.ColorMode = &cm
	m.Colors = colors
	return nil
}

// optUint32 returns a pointer to v when present, nil otherwise.
func optUint32(present bool, v Uint32) *uint32 {
	if !present {
		return nil
	}
	u := uint32(v)
	return &u
}

// orZero dereferences p, defaulting to zero when absent.
func orZero(p *uint32) Uint32 {
	if p == nil {
		return 0
	}
	return Uint32(*p)
}

func orDirection(p *Direction) Direction {
	if p == nil {
		return DirectionLeft
	}
	return *p
}

func orColorMode(p *ColorMode) ColorMode {
	if p == nil {
		return ColorModeNone
	}
	return *p
}
