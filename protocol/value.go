package protocol

import (
	"fmt"
	"io"
)

// Writable is the encode half of the codec contract.  Size must return
// exactly the number of bytes Write produces for the same value and
// protocol version.
type Writable interface {
	// Size returns the encoded byte length under the given protocol version
	Size(protocol uint32) int
	// Write encodes the value onto w
	Write(w io.Writer, protocol uint32) error
}

// Readable is the decode half of the codec contract.  It is implemented on
// pointer receivers; decoding fills the pointed-to value.
type Readable interface {
	// Read decodes the value from r
	Read(r io.Reader, protocol uint32) error
}

func sizeAll(protocol uint32, values ...Writable) int {
	size := 0
	for _, v := range values {
		size += v.Size(protocol)
	}
	return size
}

func writeAll(w io.Writer, protocol uint32, values ...Writable) error {
	for _, v := range values {
		if err := v.Write(w, protocol); err != nil {
			return err
		}
	}
	return nil
}

func readAll(r io.Reader, protocol uint32, values ...Readable) error {
	for _, v := range values {
		if err := v.Read(r, protocol); err != nil {
			return err
		}
	}
	return nil
}

// readComponents decodes tuple components in declared order.  Components
// must be pointers to decodable values.
func readComponents(r io.Reader, protocol uint32, components ...Writable) error {
	for _, c := range components {
		rd, ok := c.(Readable)
		if !ok {
			return fmt.Errorf("goorgb: %T is not decodable, tuple components must be pointers to decodable values", c)
		}
		if err := rd.Read(r, protocol); err != nil {
			return err
		}
	}
	return nil
}
