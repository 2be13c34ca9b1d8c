// Package protocol implements the OpenRGB SDK server wire protocol.
//
// This package is not designed to be used directly by end users, other than
// through the data types returned by the Client in the goorgb package.
//
// Every value exchanged with the server implements the codec contract in
// value.go: a deterministic byte size plus paired encode and decode
// operations, all parameterised by the protocol version negotiated for the
// connection.  Composite types compose the contract of their fields rather
// than hand-writing byte offsets.
//
// All integers are little-endian.  A packet is framed as
//
//	[4B magic "ORGB"][4B device id][4B packet id][4B payload length][payload]
//
// See the OpenRGB SDK documentation for the layout of individual payloads:
// https://gitlab.com/CalcProgrammer1/OpenRGB/-/wikis/OpenRGB-SDK-Documentation
package protocol
