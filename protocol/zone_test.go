package protocol_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/goorgb/goorgb/protocol"
)

// writeFixture appends each value's encoding to buf.
func writeFixture(buf *bytes.Buffer, values ...protocol.Writable) {
	GinkgoHelper()
	for _, v := range values {
		Expect(v.Write(buf, proto)).To(Succeed())
	}
}

var _ = Describe("Zone", func() {
	It("decodes a zone without a matrix", func() {
		buf := new(bytes.Buffer)
		writeFixture(buf,
			protocol.String(`Main`),
			protocol.ZoneLinear,
			protocol.Uint32(0),
			protocol.Uint32(108),
			protocol.Uint32(108),
			protocol.Uint16(0),
		)

		var z protocol.Zone
		Expect(z.Read(buf, proto)).To(Succeed())
		Expect(z).To(Equal(protocol.Zone{
			Name:      `Main`,
			Type:      protocol.ZoneLinear,
			LedsMin:   0,
			LedsMax:   108,
			LedsCount: 108,
		}))
	})

	It("decodes a matrix zone row-major", func() {
		buf := new(bytes.Buffer)
		writeFixture(buf,
			protocol.String(`Keys`),
			protocol.ZoneMatrix,
			protocol.Uint32(6),
			protocol.Uint32(6),
			protocol.Uint32(6),
			protocol.Uint16(32),
			protocol.Uint32(2),
			protocol.Uint32(3),
		)
		for i := uint32(0); i < 6; i++ {
			writeFixture(buf, protocol.Uint32(i))
		}

		var z protocol.Zone
		Expect(z.Read(buf, proto)).To(Succeed())
		Expect(z.Matrix).To(Equal(&protocol.Matrix{
			Height: 2,
			Width:  3,
			Rows: [][]uint32{
				{0, 1, 2},
				{3, 4, 5},
			},
		}))
	})

	It("rejects an unknown zone type", func() {
		buf := new(bytes.Buffer)
		writeFixture(buf,
			protocol.String(`Main`),
			protocol.Uint32(7),
		)

		var z protocol.Zone
		expectProtocolError(z.Read(buf, proto))
	})
})
