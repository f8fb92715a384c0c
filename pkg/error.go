package pkg

import "errors"

// Class-request and wire-format errors.
var (
	// ErrInvalidReportID indicates a Set-Idle request with a nonzero
	// report ID; the report descriptor defines no report IDs.
	ErrInvalidReportID = errors.New("invalid report ID")

	// ErrWrongInterface indicates a class request addressed to an
	// interface other than the configured HID interface.
	ErrWrongInterface = errors.New("wrong interface")

	// ErrInvalidRequest indicates an invalid or unsupported request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSetupPacketTooShort indicates the setup packet data is too short.
	ErrSetupPacketTooShort = errors.New("setup packet too short")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrCancelled indicates a cancelled polling loop.
	ErrCancelled = errors.New("cancelled")
)

// RequestResult represents the outcome of a class-request handler.
type RequestResult int

// Request result values.
const (
	ResultAck    RequestResult = iota // Request accepted, status stage may complete
	ResultReject                      // Request rejected, control transfer should stall
)

// String returns a string representation of the request result.
func (r RequestResult) String() string {
	switch r {
	case ResultAck:
		return "ack"
	case ResultReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ResultFromError maps a handler error to a request result.
func ResultFromError(err error) RequestResult {
	if err == nil {
		return ResultAck
	}
	return ResultReject
}

// Error returns the corresponding error for the request result.
func (r RequestResult) Error() error {
	switch r {
	case ResultAck:
		return nil
	case ResultReject:
		return ErrInvalidRequest
	default:
		return ErrInvalidRequest
	}
}
