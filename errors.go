package usbrelay

import "errors"

var (
	// ErrNotOpen is returned when the transport does not report open
	// after an open attempt, or when I/O is tried on a closed port.
	ErrNotOpen = errors.New("usbrelay: port not open")

	// ErrStillOpen is returned when the transport still reports open
	// after a close attempt, which points at a driver-level failure to
	// release the port.
	ErrStillOpen = errors.New("usbrelay: port still open after close")

	// ErrWriteFailed is returned when a write completed without error
	// but did not put the byte on the wire.
	ErrWriteFailed = errors.New("usbrelay: write did not complete")

	// ErrReadTimeout is returned when the board did not answer within
	// the per-byte read timeout.
	ErrReadTimeout = errors.New("usbrelay: read timed out")

	// ErrHandshake wraps any send or receive failure during Init.
	ErrHandshake = errors.New("usbrelay: handshake failed")

	// ErrStateLength is returned by SetStates when the array length
	// does not match the board's relay count.
	ErrStateLength = errors.New("usbrelay: state array length does not match relay count")
)
