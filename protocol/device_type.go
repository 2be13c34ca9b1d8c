package protocol

import "io"

// DeviceType classifies an RGB controller.
type DeviceType uint32

const (
	DeviceMotherboard DeviceType = iota
	DeviceDRAM
	DeviceGPU
	DeviceCooler
	DeviceLEDStrip
	DeviceKeyboard
	DeviceMouse
	DeviceMouseMat
	DeviceHeadset
	DeviceHeadsetStand
	DeviceGamepad
	DeviceLight
	DeviceSpeaker
	DeviceVirtual
	DeviceUnknown
)

var deviceTypeNames = map[DeviceType]string{
	DeviceMotherboard:  `Motherboard`,
	DeviceDRAM:         `DRAM`,
	DeviceGPU:          `GPU`,
	DeviceCooler:       `Cooler`,
	DeviceLEDStrip:     `LED Strip`,
	DeviceKeyboard:     `Keyboard`,
	DeviceMouse:        `Mouse`,
	DeviceMouseMat:     `Mouse Mat`,
	DeviceHeadset:      `Headset`,
	DeviceHeadsetStand: `Headset Stand`,
	DeviceGamepad:      `Gamepad`,
	DeviceLight:        `Light`,
	DeviceSpeaker:      `Speaker`,
	DeviceVirtual:      `Virtual`,
	DeviceUnknown:      `Unknown`,
}

func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return `Unknown`
}

// Size returns the encoded byte length
func (DeviceType) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (t DeviceType) Write(w io.Writer, protocol uint32) error {
	return Uint32(t).Write(w, protocol)
}

// Read decodes the value from r.  Values outside the known vocabulary fall
// back to DeviceUnknown, unlike the other enumerations.
func (t *DeviceType) Read(r io.Reader, protocol uint32) error {
	var v Uint32
	if err := v.Read(r, protocol); err != nil {
		return err
	}
	if v > Uint32(DeviceUnknown) {
		*t = DeviceUnknown
		return nil
	}
	*t = DeviceType(v)
	return nil
}
