package protocol_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/goorgb/goorgb/protocol"
)

var _ = Describe("Color", func() {
	It("encodes as three channels and a padding byte", func() {
		w := bytes.NewBuffer([]byte{})

		Expect(protocol.Color{R: 37, G: 54, B: 126}.Write(w, proto)).To(Succeed())
		Expect(w.Bytes()).To(Equal([]byte{37, 54, 126, 0}))
	})

	It("decodes and discards the padding byte", func() {
		var c protocol.Color

		Expect(c.Read(bytes.NewReader([]byte{37, 54, 126, 42}), proto)).To(Succeed())
		Expect(c).To(Equal(protocol.Color{R: 37, G: 54, B: 126}))
	})
})

var _ = Describe("LED", func() {
	It("decodes a name and value", func() {
		var l protocol.LED

		Expect(l.Read(bytes.NewReader([]byte{
			6, 0, 'L', 'E', 'D', ' ', '1', 0,
			5, 0, 0, 0,
		}), proto)).To(Succeed())
		Expect(l).To(Equal(protocol.LED{Name: `LED 1`, Value: 5}))
	})
})
