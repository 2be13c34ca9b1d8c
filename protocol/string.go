package protocol

import (
	"io"
	"unicode/utf8"

	"github.com/goorgb/goorgb/common"
)

// String is the standard text codec: a 2-byte length equal to the byte
// count plus one, the UTF-8 bytes, then a single zero terminator.
//
// Known limitation: the length accounting assumes one byte per character,
// which the OpenRGB server shares, so it is preserved as-is rather than
// corrected for multi-byte UTF-8 content.
type String string

// Size returns the encoded byte length
func (s String) Size(protocol uint32) int {
	return 2 + len(s) + 1
}

// Write encodes the value onto w
func (s String) Write(w io.Writer, protocol uint32) error {
	if err := (Uint16(len(s) + 1)).Write(w, protocol); err != nil {
		return err
	}
	return RawString(s).Write(w, protocol)
}

// Read decodes the value from r, validating the content as UTF-8.
func (s *String) Read(r io.Reader, protocol uint32) error {
	var length Uint16
	if err := length.Read(r, protocol); err != nil {
		return err
	}
	buf := make([]byte, int(length))
	if err := getBytes(r, buf); err != nil {
		return err
	}
	if len(buf) > 0 {
		// drop the trailing terminator
		buf = buf[:len(buf)-1]
	}
	if !utf8.Valid(buf) {
		return common.NewProtocolError("failed decoding string %q as UTF-8", buf)
	}
	*s = String(buf)
	return nil
}

// RawString is the non-length-prefixed string variant used for the client
// name field: the bytes followed by a single zero terminator.  The length
// is supplied externally through the packet header, so RawString has no
// decode path.
type RawString string

// Size returns the encoded byte length
func (s RawString) Size(protocol uint32) int {
	return len(s) + 1
}

// Write encodes the value onto w
func (s RawString) Write(w io.Writer, protocol uint32) error {
	return putBytes(w, append([]byte(s), 0))
}
