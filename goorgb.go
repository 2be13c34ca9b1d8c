// Package goorgb provides a Go client for the OpenRGB SDK server.
//
// The client speaks the OpenRGB binary protocol over a TCP connection and
// exposes one method per protocol operation: enumerating controllers,
// updating LEDs and zones, managing profiles and modes.
//
// Also included in cmd/orgb is a small CLI utility that allows interacting
// with an OpenRGB server from the shell.
package goorgb

import (
	"io"
	"net"

	"github.com/goorgb/goorgb/common"
	"github.com/goorgb/goorgb/protocol"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`

	// DefaultProtocol is the highest OpenRGB protocol version this client
	// supports.  The negotiated version for a connection is the lowest of
	// this and the server's reported version.
	DefaultProtocol uint32 = 3

	// DefaultAddr is the default OpenRGB SDK server address.
	DefaultAddr = `localhost:6742`
)

// Connect dials the default OpenRGB server and negotiates a protocol
// version.  Use ConnectTo to reach a specific server.
func Connect() (*Client, error) {
	return ConnectTo(DefaultAddr)
}

// ConnectTo dials the OpenRGB server at addr (a host:port pair) and
// negotiates a protocol version.
func ConnectTo(addr string) (*Client, error) {
	common.Log.Debugf("connecting to OpenRGB server at %s...", addr)
	conn, err := net.Dial(`tcp`, addr)
	if err != nil {
		return nil, &common.ConnectionError{Addr: addr, Err: err}
	}
	return NewClient(conn)
}

// NewClient builds a client from an already-connected, ready to use stream
// and performs the protocol version handshake on it.
//
// The handshake bootstraps itself: the version request is encoded at
// DefaultProtocol, which is also the version it carries as payload.
func NewClient(stream io.ReadWriter) (*Client, error) {
	c := &Client{
		stream:   stream,
		protocol: DefaultProtocol,
	}
	var server protocol.Uint32
	if err := protocol.Request(stream, DefaultProtocol, 0, protocol.RequestProtocolVersion,
		protocol.Uint32(DefaultProtocol), &server); err != nil {
		return nil, err
	}
	if uint32(server) < c.protocol {
		c.protocol = uint32(server)
	}
	common.Log.Debugf("connected to OpenRGB server using protocol version %d", c.protocol)
	return c, nil
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  To capture logs generated during client
// creation, this should be called before creating a Client.  Defaults to
// common.StubLogger, which does no logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
