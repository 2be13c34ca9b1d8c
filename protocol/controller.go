package protocol

import "io"

// Controller is the root aggregate describing one RGB controller.
// Controllers are server-authoritative, so the codec is decode-only.
type Controller struct {
	// Type is the controller device type
	Type DeviceType
	// Name is the controller name
	Name string
	// Vendor is the controller vendor
	Vendor string
	// Description is the controller description
	Description string
	// Version is the controller version
	Version string
	// Serial is the controller serial
	Serial string
	// Location is the controller location
	Location string
	// ActiveMode is the index of the active mode
	ActiveMode int32
	// Modes are the controller modes
	Modes []Mode
	// Zones are the controller zones
	Zones []Zone
	// Leds are the controller LEDs
	Leds []LED
	// Colors are the controller colors
	Colors []Color
}

// Read decodes the value from r.  The leading 4-byte declared size is
// consumed but otherwise unused.
func (c *Controller) Read(r io.Reader, protocol uint32) error {
	var dataSize Uint32
	var deviceType DeviceType
	var name, vendor, description, version, serial, location String
	var numModes Uint16
	var activeMode Int32
	if err := readAll(r, protocol,
		&dataSize,
		&deviceType,
		&name, &vendor, &description, &version, &serial, &location,
		&numModes,
		&activeMode,
	); err != nil {
		return err
	}
	modes := make([]Mode, int(numModes))
	for i := range modes {
		if err := modes[i].Read(r, protocol); err != nil {
			return err
		}
	}
	zones, err := ReadList[Zone](r, protocol)
	if err != nil {
		return err
	}
	leds, err := ReadList[LED](r, protocol)
	if err != nil {
		return err
	}
	colors, err := ReadList[Color](r, protocol)
	if err != nil {
		return err
	}

	c.Type = deviceType
	c.Name = string(name)
	c.Vendor = string(vendor)
	c.Description = string(description)
	c.Version = string(version)
	c.Serial = string(serial)
	c.Location = string(location)
	c.ActiveMode = int32(activeMode)
	c.Modes = modes
	c.Zones = zones
	c.Leds = leds
	c.Colors = colors
	return nil
}
