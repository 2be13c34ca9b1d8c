package protocol

import (
	"fmt"
	"io"

	"github.com/goorgb/goorgb/common"
)

// PacketID identifies the operation a packet carries.
//
// See the OpenRGB SDK documentation for the full list:
// https://gitlab.com/CalcProgrammer1/OpenRGB/-/wikis/OpenRGB-SDK-Documentation#packet-ids
type PacketID uint32

const (
	// RequestControllerCount requests the RGBController device count
	RequestControllerCount PacketID = 0
	// RequestControllerData requests an RGBController data block
	RequestControllerData PacketID = 1
	// RequestProtocolVersion requests the server's SDK protocol version
	RequestProtocolVersion PacketID = 40
	// SetClientName sends the client name string to the server
	SetClientName PacketID = 50
	// DeviceListUpdated indicates to clients that the device list changed
	DeviceListUpdated PacketID = 100
	// RequestProfileList requests the profile list
	RequestProfileList PacketID = 150
	// RequestSaveProfile saves the current configuration in a new profile
	RequestSaveProfile PacketID = 151
	// RequestLoadProfile loads a given profile
	RequestLoadProfile PacketID = 152
	// RequestDeleteProfile deletes a given profile
	RequestDeleteProfile PacketID = 153
	// RGBControllerResizeZone maps to RGBController::ResizeZone()
	RGBControllerResizeZone PacketID = 1000
	// RGBControllerUpdateLeds maps to RGBController::UpdateLEDs()
	RGBControllerUpdateLeds PacketID = 1050
	// RGBControllerUpdateZoneLeds maps to RGBController::UpdateZoneLEDs()
	RGBControllerUpdateZoneLeds PacketID = 1051
	// RGBControllerUpdateSingleLed maps to RGBController::UpdateSingleLED()
	RGBControllerUpdateSingleLed PacketID = 1052
	// RGBControllerSetCustomMode maps to RGBController::SetCustomMode()
	RGBControllerSetCustomMode PacketID = 1100
	// RGBControllerUpdateMode maps to RGBController::UpdateMode()
	RGBControllerUpdateMode PacketID = 1101
	// RGBControllerSaveMode maps to RGBController::SaveMode()
	RGBControllerSaveMode PacketID = 1102
)

var packetIDNames = map[PacketID]string{
	RequestControllerCount:       `RequestControllerCount`,
	RequestControllerData:        `RequestControllerData`,
	RequestProtocolVersion:       `RequestProtocolVersion`,
	SetClientName:                `SetClientName`,
	DeviceListUpdated:            `DeviceListUpdated`,
	RequestProfileList:           `RequestProfileList`,
	RequestSaveProfile:           `RequestSaveProfile`,
	RequestLoadProfile:           `RequestLoadProfile`,
	RequestDeleteProfile:         `RequestDeleteProfile`,
	RGBControllerResizeZone:      `RGBControllerResizeZone`,
	RGBControllerUpdateLeds:      `RGBControllerUpdateLeds`,
	RGBControllerUpdateZoneLeds:  `RGBControllerUpdateZoneLeds`,
	RGBControllerUpdateSingleLed: `RGBControllerUpdateSingleLed`,
	RGBControllerSetCustomMode:   `RGBControllerSetCustomMode`,
	RGBControllerUpdateMode:      `RGBControllerUpdateMode`,
	RGBControllerSaveMode:        `RGBControllerSaveMode`,
}

func (id PacketID) String() string {
	if name, ok := packetIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("PacketID(%d)", uint32(id))
}

// Size returns the encoded byte length
func (PacketID) Size(protocol uint32) int { return 4 }

// Write encodes the value onto w
func (id PacketID) Write(w io.Writer, protocol uint32) error {
	return Uint32(id).Write(w, protocol)
}

// Read decodes the value from r, rejecting unknown values.
func (id *PacketID) Read(r io.Reader, protocol uint32) error {
	var v Uint32
	if err := v.Read(r, protocol); err != nil {
		return err
	}
	if _, ok := packetIDNames[PacketID(v)]; !ok {
		return common.NewProtocolError("unknown packet ID %d", uint32(v))
	}
	*id = PacketID(v)
	return nil
}
