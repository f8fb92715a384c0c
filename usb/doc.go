// Package usb provides the wire-level SETUP packet format and the HID
// class request codes consumed by the endpoint-0 class-request path.
//
// Only the surface an HID function needs is implemented here: parsing and
// inspecting the 8-byte SETUP packet, the bmRequestType bit fields, and
// the HID 1.11 class request codes. Control-transfer transport, request
// demultiplexing, and descriptor handling belong to the surrounding USB
// stack and are out of scope.
package usb
