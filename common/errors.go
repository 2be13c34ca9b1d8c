package common

import "fmt"

// ConnectionError is returned when the initial connection to the OpenRGB
// server cannot be established.
type ConnectionError struct {
	// Addr is the address of the server we failed to reach
	Addr string
	// Err is the underlying dial error
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed opening connection to OpenRGB server at %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// CommunicationError is returned when an in-progress exchange with the
// server fails at the transport level.  The connection should be considered
// unusable afterwards.
type CommunicationError struct {
	// Err is the underlying transport error
	Err error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("failed exchanging data with OpenRGB server: %v", e.Err)
}

func (e *CommunicationError) Unwrap() error { return e.Err }

// ProtocolError is returned when structurally invalid data is encountered
// on the wire: bad magic, mismatched ids, unknown enumeration values,
// invalid flag bits, invalid UTF-8 or unencodable lengths.  After a
// ProtocolError on a read the stream position is undefined and no
// resynchronisation is attempted.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "invalid data encountered while communicating with OpenRGB server: " + e.Reason
}

// NewProtocolError builds a ProtocolError from a format string.
func NewProtocolError(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError is returned when the negotiated protocol version
// is below the minimum the requested operation needs.  It is raised before
// any bytes are sent, so the connection remains usable.
type UnsupportedOperationError struct {
	// Operation names the rejected operation
	Operation string
	// Current is the protocol version negotiated for this connection
	Current uint32
	// Required is the minimum protocol version the operation needs
	Required uint32
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is only supported since protocol version %d, but version %d is in use; try upgrading the OpenRGB server", e.Operation, e.Required, e.Current)
}
