package protocol_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/goorgb/goorgb/protocol"
)

// duplexStream keeps the two directions of a connection apart: reads are
// served from in, writes land in out.
type duplexStream struct {
	in  bytes.Buffer
	out bytes.Buffer
}

func (s *duplexStream) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s *duplexStream) Write(p []byte) (int, error) { return s.out.Write(p) }

var _ = Describe("Packets", func() {
	Describe("WritePacket", func() {
		It("encodes the header and payload as one frame", func() {
			w := bytes.NewBuffer([]byte{})

			Expect(protocol.WritePacket(w, proto, 0, protocol.SetClientName,
				protocol.RawString(`test`))).To(Succeed())
			Expect(w.Bytes()).To(Equal([]byte{
				'O', 'R', 'G', 'B',
				0, 0, 0, 0,
				50, 0, 0, 0,
				5, 0, 0, 0,
				't', 'e', 's', 't', 0,
			}))
		})
	})

	Describe("ReadPacket", func() {
		It("decodes a matching packet", func() {
			r := bytes.NewReader([]byte{
				'O', 'R', 'G', 'B',
				0, 0, 0, 0,
				0, 0, 0, 0,
				4, 0, 0, 0,
				3, 0, 0, 0,
			})

			var count protocol.Uint32
			Expect(protocol.ReadPacket(r, proto, 0, protocol.RequestControllerCount, &count)).To(Succeed())
			Expect(count).To(Equal(protocol.Uint32(3)))
		})

		It("rejects a bad magic byte", func() {
			r := bytes.NewReader([]byte{
				'X', 'R', 'G', 'B',
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			})

			var count protocol.Uint32
			err := protocol.ReadPacket(r, proto, 0, protocol.RequestControllerCount, &count)
			expectProtocolError(err)
			Expect(err.Error()).To(ContainSubstring(`magic`))
		})

		It("rejects a mismatched device ID", func() {
			r := bytes.NewReader([]byte{
				'O', 'R', 'G', 'B',
				1, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			})

			var count protocol.Uint32
			expectProtocolError(protocol.ReadPacket(r, proto, 0, protocol.RequestControllerCount, &count))
		})

		It("rejects a mismatched packet ID", func() {
			r := bytes.NewReader([]byte{
				'O', 'R', 'G', 'B',
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			})

			var version protocol.Uint32
			expectProtocolError(protocol.ReadPacket(r, proto, 0, protocol.RequestProtocolVersion, &version))
		})
	})

	Describe("Request", func() {
		It("writes the request then decodes the response", func() {
			s := new(duplexStream)
			Expect(protocol.WritePacket(&s.in, proto, 0, protocol.RequestControllerCount,
				protocol.Uint32(7))).To(Succeed())

			var count protocol.Uint32
			Expect(protocol.Request(s, proto, 0, protocol.RequestControllerCount,
				protocol.Void{}, &count)).To(Succeed())

			Expect(count).To(Equal(protocol.Uint32(7)))
			Expect(s.out.Bytes()).To(Equal([]byte{
				'O', 'R', 'G', 'B',
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			}))
		})
	})
})
