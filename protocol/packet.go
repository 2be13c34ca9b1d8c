package protocol

import (
	"bytes"
	"io"
	"math"

	"github.com/goorgb/goorgb/common"
)

// Magic is the 4-byte tag that opens every packet.
var Magic = [4]byte{'O', 'R', 'G', 'B'}

// WriteHeader encodes a packet header onto w: the magic tag, the device id,
// the packet id and the payload byte length.  Lengths that do not fit in a
// 4-byte integer fail with a protocol error.
func WriteHeader(w io.Writer, protocol uint32, deviceID uint32, id PacketID, length int) error {
	common.Log.Debugf("sending %v packet of %d bytes...", id, length)
	if length < 0 || uint64(length) > math.MaxUint32 {
		return common.NewProtocolError("data size %d is too large to encode", length)
	}
	if err := putBytes(w, Magic[:]); err != nil {
		return err
	}
	return writeAll(w, protocol, Uint32(deviceID), id, Uint32(length))
}

// ReadHeader decodes a packet header from r and validates it against the
// expected device and packet ids, returning the declared payload length.
// The magic bytes are compared one at a time; any mismatch fails before
// further bytes are consumed.
func ReadHeader(r io.Reader, protocol uint32, deviceID uint32, id PacketID) (int, error) {
	common.Log.Debugf("reading %v packet...", id)
	for i, want := range Magic {
		var got Uint8
		if err := got.Read(r, protocol); err != nil {
			return 0, err
		}
		if byte(got) != want {
			return 0, common.NewProtocolError("expected OpenRGB magic byte %q at offset %d, got %q", want, i, byte(got))
		}
	}
	var gotDevice Uint32
	if err := gotDevice.Read(r, protocol); err != nil {
		return 0, err
	}
	if uint32(gotDevice) != deviceID {
		return 0, common.NewProtocolError("expected device ID %d, got %d", deviceID, uint32(gotDevice))
	}
	var gotID PacketID
	if err := gotID.Read(r, protocol); err != nil {
		return 0, err
	}
	if gotID != id {
		return 0, common.NewProtocolError("expected packet ID %v, got %v", id, gotID)
	}
	var length Uint32
	if err := length.Read(r, protocol); err != nil {
		return 0, err
	}
	return int(length), nil
}

// WritePacket encodes a full packet for the given device and packet ids.
// The packet is assembled in memory and handed to the stream as a single
// write.
func WritePacket(w io.Writer, protocol uint32, deviceID uint32, id PacketID, payload Writable) error {
	buf := new(bytes.Buffer)
	if err := WriteHeader(buf, protocol, deviceID, id, payload.Size(protocol)); err != nil {
		return err
	}
	if err := payload.Write(buf, protocol); err != nil {
		return err
	}
	return putBytes(w, buf.Bytes())
}

// ReadPacket decodes a packet expected to carry the given device and packet
// ids, filling payload from the packet body.  The declared payload length
// is consumed but not reconciled against the bytes the payload decoder
// actually reads.
func ReadPacket(r io.Reader, protocol uint32, deviceID uint32, id PacketID, payload Readable) error {
	if _, err := ReadHeader(r, protocol, deviceID, id); err != nil {
		return err
	}
	return payload.Read(r, protocol)
}

// Request writes a packet and reads back the response packet expected to
// carry the same device and packet ids, decoding its payload into in.  The
// exchange is strictly sequential: the response read does not begin until
// the request write has completed.
func Request(rw io.ReadWriter, protocol uint32, deviceID uint32, id PacketID, out Writable, in Readable) error {
	if err := WritePacket(rw, protocol, deviceID, id, out); err != nil {
		return err
	}
	return ReadPacket(rw, protocol, deviceID, id, in)
}
