package goorgb

import (
	"io"
	"sync"

	"github.com/goorgb/goorgb/common"
	"github.com/goorgb/goorgb/protocol"
)

// Client provides a simple interface for interacting with an OpenRGB SDK
// server.  Client can not be instantiated manually or it will not function
// - always use Connect(), ConnectTo() or NewClient() to obtain a Client
// instance.
//
// A Client owns a single connection.  The embedded mutex serialises
// write-then-read exchanges on it: concurrent callers block until the
// in-flight exchange completes, then proceed one at a time.  It provides
// mutual exclusion only, not fairness or pipelining.  An I/O failure
// surfaces to the caller that triggered it and leaves the connection
// unusable; the client does not reconnect.
type Client struct {
	stream   io.ReadWriter
	protocol uint32
	sync.Mutex
}

// ProtocolVersion returns the protocol version negotiated with the server:
// the lowest of DefaultProtocol and the version the server reported during
// the handshake.  It is fixed for the lifetime of the connection.
func (c *Client) ProtocolVersion() uint32 {
	return c.protocol
}

// SetName sends the client name to the server.
func (c *Client) SetName(name string) error {
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, 0, protocol.SetClientName,
		protocol.RawString(name))
}

// GetControllerCount returns the number of controllers the server exposes.
func (c *Client) GetControllerCount() (uint32, error) {
	c.Lock()
	defer c.Unlock()
	var count protocol.Uint32
	err := protocol.Request(c.stream, c.protocol, 0, protocol.RequestControllerCount,
		protocol.Void{}, &count)
	return uint32(count), err
}

// GetController returns the data block for the given controller.
func (c *Client) GetController(controllerID uint32) (*protocol.Controller, error) {
	c.Lock()
	defer c.Unlock()
	var controller protocol.Controller
	if err := protocol.Request(c.stream, c.protocol, controllerID, protocol.RequestControllerData,
		protocol.Uint32(c.protocol), &controller); err != nil {
		return nil, err
	}
	return &controller, nil
}

// ResizeZone resizes a controller zone.
func (c *Client) ResizeZone(zoneID, newSize int32) error {
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, 0, protocol.RGBControllerResizeZone,
		protocol.Tuple2{A: protocol.Int32(zoneID), B: protocol.Int32(newSize)})
}

// UpdateLED updates a single LED on the given controller.
func (c *Client) UpdateLED(controllerID uint32, ledID int32, color protocol.Color) error {
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, controllerID, protocol.RGBControllerUpdateSingleLed,
		protocol.Tuple2{A: protocol.Int32(ledID), B: color})
}

// UpdateLEDs updates all LEDs on the given controller.
func (c *Client) UpdateLEDs(controllerID uint32, colors []protocol.Color) error {
	c.Lock()
	defer c.Unlock()
	list := protocol.List[protocol.Color](colors)
	return protocol.WritePacket(c.stream, c.protocol, controllerID, protocol.RGBControllerUpdateLeds,
		protocol.Tuple2{A: protocol.Uint32(list.Size(c.protocol)), B: list})
}

// UpdateZoneLEDs updates the LEDs of one zone on the given controller.
func (c *Client) UpdateZoneLEDs(controllerID, zoneID uint32, colors []protocol.Color) error {
	c.Lock()
	defer c.Unlock()
	list := protocol.List[protocol.Color](colors)
	zone := protocol.Uint32(zoneID)
	return protocol.WritePacket(c.stream, c.protocol, controllerID, protocol.RGBControllerUpdateZoneLeds,
		protocol.Tuple3{
			A: protocol.Uint32(zone.Size(c.protocol) + list.Size(c.protocol)),
			B: zone,
			C: list,
		})
}

// GetProfiles returns the profile names known to the server.  Profile
// control requires protocol version 2.
func (c *Client) GetProfiles() ([]string, error) {
	if err := c.checkProfileControl(); err != nil {
		return nil, err
	}
	c.Lock()
	defer c.Unlock()
	var list profileList
	if err := protocol.Request(c.stream, c.protocol, 0, protocol.RequestProfileList,
		protocol.Void{}, &list); err != nil {
		return nil, err
	}
	return list.names, nil
}

// LoadProfile loads the named profile.  Profile control requires protocol
// version 2.
func (c *Client) LoadProfile(name string) error {
	if err := c.checkProfileControl(); err != nil {
		return err
	}
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, 0, protocol.RequestLoadProfile,
		protocol.String(name))
}

// SaveProfile saves the current configuration as the named profile.
// Profile control requires protocol version 2.
func (c *Client) SaveProfile(name string) error {
	if err := c.checkProfileControl(); err != nil {
		return err
	}
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, 0, protocol.RequestSaveProfile,
		protocol.String(name))
}

// DeleteProfile deletes the named profile.  Profile control requires
// protocol version 2.
func (c *Client) DeleteProfile(name string) error {
	if err := c.checkProfileControl(); err != nil {
		return err
	}
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, 0, protocol.RequestDeleteProfile,
		protocol.String(name))
}

// SetCustomMode switches the given controller to its custom mode.
func (c *Client) SetCustomMode(controllerID uint32) error {
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, controllerID, protocol.RGBControllerSetCustomMode,
		protocol.Void{})
}

// UpdateMode updates a mode on the given controller.
func (c *Client) UpdateMode(controllerID uint32, modeID int32, mode protocol.Mode) error {
	c.Lock()
	defer c.Unlock()
	id := protocol.Int32(modeID)
	return protocol.WritePacket(c.stream, c.protocol, controllerID, protocol.RGBControllerUpdateMode,
		protocol.Tuple3{
			A: protocol.Uint32(id.Size(c.protocol) + mode.Size(c.protocol)),
			B: id,
			C: mode,
		})
}

// SaveMode saves a mode on the given controller.  Saving modes requires
// protocol version 3.
func (c *Client) SaveMode(controllerID uint32, mode protocol.Mode) error {
	if err := c.checkModeSaving(); err != nil {
		return err
	}
	c.Lock()
	defer c.Unlock()
	return protocol.WritePacket(c.stream, c.protocol, controllerID, protocol.RGBControllerSaveMode, mode)
}

// Close releases the underlying stream when it is closeable.
func (c *Client) Close() error {
	if closer, ok := c.stream.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Version gates are checked before any bytes are sent, so a rejected
// operation has no effect on the connection.

func (c *Client) checkProfileControl() error {
	if c.protocol < 2 {
		return &common.UnsupportedOperationError{
			Operation: `profile control`,
			Current:   c.protocol,
			Required:  2,
		}
	}
	return nil
}

func (c *Client) checkModeSaving() error {
	if c.protocol < 3 {
		return &common.UnsupportedOperationError{
			Operation: `saving modes`,
			Current:   c.protocol,
			Required:  3,
		}
	}
	return nil
}

// profileList is the RequestProfileList response payload: a declared byte
// size followed by a sequence of profile names.
type profileList struct {
	names []string
}

// Read decodes the value from r
func (p *profileList) Read(r io.Reader, proto uint32) error {
	var size protocol.Uint32
	if err := size.Read(r, proto); err != nil {
		return err
	}
	names, err := protocol.ReadList[protocol.String](r, proto)
	if err != nil {
		return err
	}
	p.names = make([]string, len(names))
	for i, name := range names {
		p.names[i] = string(name)
	}
	return nil
}
