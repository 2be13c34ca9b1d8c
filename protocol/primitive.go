package protocol

import (
	"encoding/binary"
	"io"

	"github.com/goorgb/goorgb/common"
)

// Void is the empty payload.  It occupies zero bytes on the wire.
type Void struct{}

// Size returns the encoded byte length
func (Void) Size(protocol uint32) int { return 0 }

// Write encodes the value onto w
func (Void) Write(w io.Writer, protocol uint32) error { return nil }

// Read decodes the value from r
func (*Void) Read(r io.Reader, protocol uint32) error { return nil }

// Uint8 is the single byte codec.
type Uint8 uint8

// Size returns the encoded byte length
func (Uint8) Size(protocol uint32) int { return 1 }

// Write encodes the value onto w
func (v Uint8) Write(w io.Writer, protocol uint32) error {
	return putBytes(w, []byte{byte(v)})
}

// Read decodes the value from r
func (v *Uint8) Read(r io.Reader, protocol uint32) error {
	var buf [1]byte
	if err := getBytes(r, buf[:]); err != nil {
		return err
	}
	*v = Uint8(buf[0])
	return nil
}

// Uint16 is the 2-byte little-endian codec.
type Uint16 uint16

// Size returns the encoded byte length
func (Uint16) Size(protocol uint32) int { return 2 }

// Write encodes the value onto w
func (v Uint16) Write(w io.Writer, protocol uint32) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	return putBytes(w, buf[:])
}

// Read decodes the value from r
func (v *Uint16) Read(r io.Reader, protocol uint32) error {
	var buf [2]byte
	if err := getBytes(r, buf[:]); err != nil {
		return err
	}
	*v = Uint16(binary.LittleEndian.Uint16(buf[:]))
	return nil
}

// Uint32 is the 4-byte little-endian codec.
type Uint32 uint32

// Size returns the encoded byte length
func (Uint32) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (v Uint32) Write(w io.Writer, protocol uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	return putBytes(w, buf[:])
}

// Read decodes the value from r
func (v *Uint32) Read(r io.Reader, protocol uint32) error {
	var buf [4]byte
	if err := getBytes(r, buf[:]); err != nil {
		return err
	}
	*v = Uint32(binary.LittleEndian.Uint32(buf[:]))
	return nil
}

// Int32 is the 4-byte little-endian signed codec.
type Int32 int32

// Size returns the encoded byte length
func (Int32) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (v Int32) Write(w io.Writer, protocol uint32) error {
	return Uint32(uint32(v)).Write(w, protocol)
}

// Read decodes the value from r
func (v *Int32) Read(r io.Reader, protocol uint32) error {
	var u Uint32
	if err := u.Read(r, protocol); err != nil {
		return err
	}
	*v = Int32(int32(u))
	return nil
}

// putBytes writes buf in full, wrapping transport failures as
// CommunicationError.
func putBytes(w io.Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return &common.CommunicationError{Err: err}
	}
	return nil
}

// getBytes fills buf from r, wrapping transport failures as
// CommunicationError.
func getBytes(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return &common.CommunicationError{Err: err}
	}
	return nil
}
