package usbrelay

import "time"

// BaudRate is the fixed speed of the relay board protocol.
const BaudRate = 9600

// ScanBaudRate is the speed used when probing candidate ports during
// discovery. Discovery only checks that a port can be opened, so the
// rate does not need to match the protocol.
const ScanBaudRate = 115200

// command bytes
const (
	cmdProbe     = 0x50 // ask the board to identify itself
	cmdConfigure = 0x51 // post-handshake configuration
	cmdAllClear  = 0xFF // all relays off, in the board's native encoding
)

// identity bytes returned by the board in response to cmdProbe.
const (
	idTwoRelay   = 0xAD
	idFourRelay  = 0xAB
	idEightRelay = 0xAC
)

// Settle delays mandated by the boards. Sending faster than this makes
// the firmware drop commands.
const (
	openDelay   = time.Millisecond
	probeDelay  = 200 * time.Millisecond
	configDelay = 10 * time.Millisecond
	stateDelay  = 50 * time.Millisecond
)

// readTimeout bounds every single-byte read from the board.
const readTimeout = 500 * time.Millisecond

// historyDepth is the capacity of the transmit and receive logs.
const historyDepth = 16
