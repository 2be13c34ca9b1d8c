package protocol

import "io"

// LED is a single LED.  LEDs are server-authoritative, so the codec is
// decode-only.
type LED struct {
	// Name is the LED name
	Name string
	// Value is the LED value
	Value uint32
}

// Read decodes the value from r
func (l *LED) Read(r io.Reader, protocol uint32) error {
	var name String
	var value Uint32
	if err := readAll(r, protocol, &name, &value); err != nil {
		return err
	}
	l.Name = string(name)
	l.Value = uint32(value)
	return nil
}
