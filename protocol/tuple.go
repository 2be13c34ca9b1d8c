package protocol

import "io"

// Tuple2 encodes two values back to back in declared order, with no
// padding.  The total size is the sum of the component sizes.
type Tuple2 struct {
	A, B Writable
}

// Size returns the encoded byte length
func (t Tuple2) Size(protocol uint32) int {
	return sizeAll(protocol, t.A, t.B)
}

// Write encodes the value onto w
func (t Tuple2) Write(w io.Writer, protocol uint32) error {
	return writeAll(w, protocol, t.A, t.B)
}

// Read decodes both components in order.  Components must be pointers to
// decodable values.
func (t Tuple2) Read(r io.Reader, protocol uint32) error {
	return readComponents(r, protocol, t.A, t.B)
}

// Tuple3 encodes three values back to back in declared order.
type Tuple3 struct {
	A, B, C Writable
}

// Size returns the encoded byte length
func (t Tuple3) Size(protocol uint32) int {
	return sizeAll(protocol, t.A, t.B, t.C)
}

// Write encodes the value onto w
func (t Tuple3) Write(w io.Writer, protocol uint32) error {
	return writeAll(w, protocol, t.A, t.B, t.C)
}

// Read decodes all components in order.  Components must be pointers to
// decodable values.
func (t Tuple3) Read(r io.Reader, protocol uint32) error {
	return readComponents(r, protocol, t.A, t.B, t.C)
}

// Tuple4 encodes four values back to back in declared order.
type Tuple4 struct {
	A, B, C, D Writable
}

// Size returns the encoded byte length
func (t Tuple4) Size(protocol uint32) int {
	return sizeAll(protocol, t.A, t.B, t.C, t.D)
}

// Write encodes the value onto w
func (t Tuple4) Write(w io.Writer, protocol uint32) error {
	return writeAll(w, protocol, t.A, t.B, t.C, t.D)
}

// Read decodes all components in order.  Components must be pointers to
// decodable values.
func (t Tuple4) Read(r io.Reader, protocol uint32) error {
	return readComponents(r, protocol, t.A, t.B, t.C, t.D)
}
