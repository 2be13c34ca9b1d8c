package protocol

import (
	"io"
	"math"

	"github.com/goorgb/goorgb/common"
)

// List is the ordered sequence codec: a 2-byte element count followed by
// each element's encoding in order.  Sequences longer than 65535 elements
// cannot be encoded and fail with a protocol error.
type List[T Writable] []T

// Size returns the encoded byte length
func (l List[T]) Size(protocol uint32) int {
	size := 2
	for _, e := range l {
		size += e.Size(protocol)
	}
	return size
}

// Write encodes the value onto w
func (l List[T]) Write(w io.Writer, protocol uint32) error {
	if len(l) > math.MaxUint16 {
		return common.NewProtocolError("sequence of %d elements is too large to encode", len(l))
	}
	if err := Uint16(len(l)).Write(w, protocol); err != nil {
		return err
	}
	for _, e := range l {
		if err := e.Write(w, protocol); err != nil {
			return err
		}
	}
	return nil
}

// ReadList decodes an ordered sequence of T: the 2-byte count, then exactly
// that many elements.
func ReadList[T any, PT interface {
	*T
	Readable
}](r io.Reader, protocol uint32) ([]T, error) {
	var count Uint16
	if err := count.Read(r, protocol); err != nil {
		return nil, err
	}
	elems := make([]T, int(count))
	for i := range elems {
		if err := PT(&elems[i]).Read(r, protocol); err != nil {
			return nil, err
		}
	}
	return elems, nil
}
