package usbrelay

import (
	"log"
	"time"

	"github.com/goburrow/serial"
)

// Transport is the serial link a Controller drives. Implementations
// own at most one underlying port at a time; Open on an already-open
// transport is a no-op.
type Transport interface {
	Open(port string, baud int) error
	IsOpen() bool
	Close() error
	WriteByte(b byte) error
	ReadByte(timeout time.Duration) (byte, error)
}

// pollInterval is how long a single underlying read may block before
// ReadByte re-checks its deadline.
const pollInterval = 50 * time.Millisecond

// SerialTransport implements Transport on top of a real serial port.
// The zero value is ready to use. Logger, when set, receives a line
// per byte exchanged.
type SerialTransport struct {
	Logger *log.Logger

	port serial.Port
}

func (t *SerialTransport) Open(address string, baud int) error {
	if t.port != nil {
		return nil
	}
	port, err := serial.Open(&serial.Config{
		Address:  address,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  pollInterval,
	})
	if err != nil {
		return err
	}
	t.port = port
	t.logf("serial: opened %s at %d baud", address, baud)
	return nil
}

func (t *SerialTransport) IsOpen() bool {
	return t.port != nil
}

func (t *SerialTransport) Close() error {
	if t.port == nil {
		return nil
	}
	if err := t.port.Close(); err != nil {
		return err
	}
	t.port = nil
	t.logf("serial: closed")
	return nil
}

func (t *SerialTransport) WriteByte(b byte) error {
	if t.port == nil {
		return ErrNotOpen
	}
	n, err := t.port.Write([]byte{b})
	if err != nil {
		return err
	}
	if n != 1 {
		return ErrWriteFailed
	}
	t.logf("serial: sent %02x", b)
	return nil
}

// ReadByte reads a single byte, waiting at most timeout for it. The
// underlying port is polled in pollInterval slices so the deadline
// holds regardless of how the driver rounds its own timeout.
func (t *SerialTransport) ReadByte(timeout time.Duration) (byte, error) {
	if t.port == nil {
		return 0, ErrNotOpen
	}
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 1)
	for {
		n, err := t.port.Read(buf)
		if n == 1 {
			t.logf("serial: received %02x", buf[0])
			return buf[0], nil
		}
		if err != nil && err != serial.ErrTimeout {
			return 0, err
		}
		if !time.Now().Before(deadline) {
			return 0, ErrReadTimeout
		}
	}
}

func (t *SerialTransport) logf(format string, v ...interface{}) {
	if t.Logger != nil {
		t.Logger.Printf(format, v...)
	}
}
