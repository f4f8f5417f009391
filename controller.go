package usbrelay

import (
	"fmt"
	"time"
)

// Controller owns a session with one relay board. It is not safe for
// concurrent use: the transport handle and the history logs are
// mutated in place, and every send blocks the caller for the board's
// mandated settle time.
type Controller struct {
	transport Transport
	port      string
	variant   Variant

	tx *history // bytes written, most recent first
	rx *history // bytes read, most recent first

	sleep func(time.Duration)
}

// New returns a Controller for the board at port, driven through a
// SerialTransport. relays is the caller's guess at the relay count
// (2, 4 or 8; anything else means unknown) and stays in effect until
// Init learns the real count from the board.
func New(port string, relays int) *Controller {
	return NewWithTransport(&SerialTransport{}, port, relays)
}

// NewWithTransport is New with a caller-supplied Transport.
func NewWithTransport(t Transport, port string, relays int) *Controller {
	return &Controller{
		transport: t,
		port:      port,
		variant:   variantForCount(relays),
		tx:        newHistory(historyDepth),
		rx:        newHistory(historyDepth),
		sleep:     time.Sleep,
	}
}

// Open opens the serial link at the protocol's fixed baud rate and
// gives the board a moment to settle before any traffic.
func (c *Controller) Open() error {
	if err := c.transport.Open(c.port, BaudRate); err != nil {
		return fmt.Errorf("usbrelay: open %s: %w", c.port, err)
	}
	c.sleep(openDelay)
	if !c.transport.IsOpen() {
		return ErrNotOpen
	}
	return nil
}

// Close releases the serial link. The Controller must not be used for
// I/O afterwards until reopened.
func (c *Controller) Close() error {
	if err := c.transport.Close(); err != nil {
		return fmt.Errorf("usbrelay: close %s: %w", c.port, err)
	}
	if c.transport.IsOpen() {
		return ErrStillOpen
	}
	return nil
}

// SetPort retargets the Controller. Only meaningful before Open or
// after Close.
func (c *Controller) SetPort(port string) {
	c.port = port
}

// Send logs b in the transmit history, writes it to the board and
// then blocks for delay to respect the board's processing latency.
// The log entry stays even when the write fails.
func (c *Controller) Send(b byte, delay time.Duration) error {
	c.tx.Insert(b)
	if err := c.transport.WriteByte(b); err != nil {
		return fmt.Errorf("usbrelay: send %02x: %w", b, err)
	}
	c.sleep(delay)
	return nil
}

// Receive reads n bytes one at a time, logging each in the receive
// history as it arrives. It stops at the first read that does not
// produce exactly one byte and returns that failure; bytes received
// up to that point remain logged.
func (c *Controller) Receive(n int) error {
	for k := 0; k < n; k++ {
		b, err := c.transport.ReadByte(readTimeout)
		c.rx.Insert(b)
		if err != nil {
			return fmt.Errorf("usbrelay: receive byte %d of %d: %w", k+1, n, err)
		}
	}
	return nil
}

// LastReceived returns the most recently received byte.
func (c *Controller) LastReceived() byte {
	return c.rx.Head()
}

// Sent returns a copy of the transmit log, most recent byte first.
func (c *Controller) Sent() []byte {
	return c.tx.Snapshot()
}

// Received returns a copy of the receive log, most recent byte first.
func (c *Controller) Received() []byte {
	return c.rx.Snapshot()
}

// Init runs the identification handshake: probe the board, read its
// identity byte and, for a recognized identity, push the default
// all-off configuration. The returned Variant is what the board
// answered.
//
// An unrecognized identity byte is deliberately not an error: Init
// returns (VariantUnknown, nil), the previous relay count stays in
// effect and no configuration bytes are sent. Existing integrations
// depend on that lenient behavior, so it is preserved here; callers
// that want strictness can check the returned Variant.
func (c *Controller) Init() (Variant, error) {
	if err := c.Send(cmdProbe, probeDelay); err != nil {
		return c.variant, fmt.Errorf("%w: probe: %w", ErrHandshake, err)
	}
	if err := c.Receive(1); err != nil {
		return c.variant, fmt.Errorf("%w: identity: %w", ErrHandshake, err)
	}
	v := variantFor(c.LastReceived())
	if v == VariantUnknown {
		return VariantUnknown, nil
	}
	c.variant = v
	for _, b := range []byte{cmdConfigure, cmdAllClear} {
		if err := c.Send(b, configDelay); err != nil {
			return v, fmt.Errorf("%w: configure: %w", ErrHandshake, err)
		}
	}
	return v, nil
}

// encode maps a logical relay bitmask (bit set = relay on) onto the
// wire byte for the current board. The 2-relay variant takes the mask
// directly, clipped to its two relays; the larger boards invert every
// bit on the wire.
func (c *Controller) encode(mask byte) byte {
	if c.variant == VariantTwoRelay {
		return mask & 0b11
	}
	return ^mask
}

// decode is the inverse of encode.
func (c *Controller) decode(wire byte) byte {
	if c.variant == VariantTwoRelay {
		return wire
	}
	return ^wire
}

// SetState switches the relays to the given bitmask: bit i set means
// relay i on. The mask is translated per the board's polarity and
// sent as one command byte.
func (c *Controller) SetState(mask byte) error {
	return c.Send(c.encode(mask), stateDelay)
}

// SetStates is SetState with one boolean per relay, indexed 0..N-1.
// The array length must match the board's relay count. For equal
// inputs both forms put the identical byte on the wire.
func (c *Controller) SetStates(states []bool) error {
	n := c.variant.Relays()
	if n == 0 || len(states) != n {
		return ErrStateLength
	}
	var mask byte
	for i := n - 1; i >= 0; i-- {
		mask <<= 1
		if states[i] {
			mask |= 1
		}
	}
	return c.SetState(mask)
}

// State reports the relay states as a logical bitmask, decoded from
// the last command byte sent. The board offers no state query, so the
// transmit log is the sole source of truth; before the first SetState
// the result is meaningless.
func (c *Controller) State() byte {
	return c.decode(c.tx.Head())
}

// RelayCount returns the number of relays on the board, 0 if the
// variant is unknown.
func (c *Controller) RelayCount() int {
	return c.variant.Relays()
}

// Variant returns the board variant currently in effect.
func (c *Controller) Variant() Variant {
	return c.variant
}

// Speed returns the protocol baud rate.
func (c *Controller) Speed() int {
	return BaudRate
}

// Port returns the configured serial port path.
func (c *Controller) Port() string {
	return c.port
}

// Bits spreads a state byte into per-relay booleans, index 0 being
// relay 1. Convenience for callers displaying State().
func Bits(b byte) [8]bool {
	var out [8]bool
	for i := range out {
		out[i] = b&(1<<i) != 0
	}
	return out
}
