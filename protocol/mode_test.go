package protocol_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/goorgb/goorgb/protocol"
)

func u32p(v uint32) *uint32 {
	return &v
}

func colorModeP(m protocol.ColorMode) *protocol.ColorMode {
	return &m
}

func directionP(d protocol.Direction) *protocol.Direction {
	return &d
}

var _ = Describe("Mode", func() {
	var rainbow protocol.Mode

	BeforeEach(func() {
		rainbow = protocol.Mode{
			Name:  `Rainbow`,
			Value: 3,
			Flags: protocol.ModeFlags(protocol.HasSpeed |
				protocol.HasBrightness |
				protocol.HasModeSpecificColor),
			SpeedMin:      u32p(0),
			SpeedMax:      u32p(100),
			Speed:         u32p(50),
			BrightnessMin: u32p(0),
			BrightnessMax: u32p(255),
			Brightness:    u32p(128),
			ColorsMin:     u32p(1),
			ColorsMax:     u32p(2),
			ColorMode:     colorModeP(protocol.ColorModeModeSpecific),
			Colors: []protocol.Color{
				{R: 255},
				{B: 255},
			},
		}
	})

	It("round-trips on protocol version 3", func() {
		w := bytes.NewBuffer([]byte{})
		Expect(rainbow.Write(w, 3)).To(Succeed())
		Expect(w.Len()).To(Equal(rainbow.Size(3)))

		var decoded protocol.Mode
		Expect(decoded.Read(w, 3)).To(Succeed())
		Expect(decoded).To(Equal(rainbow))
	})

	It("omits the brightness slots before protocol version 3", func() {
		w2 := bytes.NewBuffer([]byte{})
		w3 := bytes.NewBuffer([]byte{})
		Expect(rainbow.Write(w2, 2)).To(Succeed())
		Expect(rainbow.Write(w3, 3)).To(Succeed())

		Expect(w2.Len()).To(Equal(rainbow.Size(2)))
		Expect(w3.Len() - w2.Len()).To(Equal(12))
	})

	It("decodes no brightness before protocol version 3", func() {
		w := bytes.NewBuffer([]byte{})
		Expect(rainbow.Write(w, 2)).To(Succeed())

		var decoded protocol.Mode
		Expect(decoded.Read(w, 2)).To(Succeed())

		Expect(decoded.BrightnessMin).To(BeNil())
		Expect(decoded.BrightnessMax).To(BeNil())
		Expect(decoded.Brightness).To(BeNil())
		Expect(decoded.Speed).To(Equal(rainbow.Speed))
		Expect(decoded.Colors).To(Equal(rainbow.Colors))
	})

	It("decodes unflagged slots to nil", func() {
		direct := protocol.Mode{
			Name:      `Direct`,
			ColorMode: colorModeP(protocol.ColorModePerLED),
		}

		w := bytes.NewBuffer([]byte{})
		Expect(direct.Write(w, 3)).To(Succeed())

		var decoded protocol.Mode
		Expect(decoded.Read(w, 3)).To(Succeed())
		Expect(decoded).To(Equal(protocol.Mode{
			Name:      `Direct`,
			ColorMode: colorModeP(protocol.ColorModePerLED),
			Colors:    []protocol.Color{},
		}))
	})

	It("round-trips the direction when all direction bits are set", func() {
		spiral := protocol.Mode{
			Name:      `Spiral`,
			Flags:     protocol.ModeFlags(protocol.HasDirection),
			Direction: directionP(protocol.DirectionRight),
			ColorMode: colorModeP(protocol.ColorModeNone),
		}

		w := bytes.NewBuffer([]byte{})
		Expect(spiral.Write(w, 3)).To(Succeed())

		var decoded protocol.Mode
		Expect(decoded.Read(w, 3)).To(Succeed())
		Expect(decoded.Direction).To(Equal(directionP(protocol.DirectionRight)))
	})

	It("rejects an unknown direction when the direction bits are set", func() {
		broken := protocol.Mode{
			Name:      `Broken`,
			Flags:     protocol.ModeFlags(protocol.HasDirection),
			Direction: directionP(protocol.Direction(9)),
			ColorMode: colorModeP(protocol.ColorModeNone),
		}

		w := bytes.NewBuffer([]byte{})
		Expect(broken.Write(w, 3)).To(Succeed())

		var decoded protocol.Mode
		expectProtocolError(decoded.Read(w, 3))
	})

	It("ignores the direction slot when the direction bits are unset", func() {
		// the slot carries DirectionLeft on the wire regardless
		still := protocol.Mode{
			Name:      `Still`,
			ColorMode: colorModeP(protocol.ColorModeNone),
		}

		w := bytes.NewBuffer([]byte{})
		Expect(still.Write(w, 3)).To(Succeed())

		var decoded protocol.Mode
		Expect(decoded.Read(w, 3)).To(Succeed())
		Expect(decoded.Direction).To(BeNil())
	})
})
