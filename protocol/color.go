package protocol

import "io"

// Color is a single RGB color.  The wire form is 4 bytes: the three
// channels followed by one zero padding byte that has no in-memory
// counterpart.
type Color struct {
	R, G, B uint8
}

// Size returns the encoded byte length
func (Color) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (c Color) Write(w io.Writer, protocol uint32) error {
	return putBytes(w, []byte{c.R, c.G, c.B, 0})
}

// Read decodes the value from r, discarding the padding byte.
func (c *Color) Read(r io.Reader, protocol uint32) error {
	var buf [4]byte
	if err := getBytes(r, buf[:]); err != nil {
		return err
	}
	c.R, c.G, c.B = buf[0], buf[1], buf[2]
	return nil
}
