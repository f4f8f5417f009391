//go:build linux

package usbrelay

import (
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// openPair opens a SerialTransport on the slave end of a PTY so tests
// can play the board from the master end.
func openPair(t *testing.T) (*SerialTransport, *ptyBoard) {
	t.Helper()
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	tr := &SerialTransport{}
	require.NoError(t, tr.Open(slave.Name(), BaudRate))
	t.Cleanup(func() { tr.Close() })

	return tr, &ptyBoard{master: master}
}

type ptyBoard struct {
	master interface {
		Read(p []byte) (int, error)
		Write(p []byte) (int, error)
	}
}

func (b *ptyBoard) write(t *testing.T, data byte) {
	t.Helper()
	n, err := b.master.Write([]byte{data})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func (b *ptyBoard) read(t *testing.T) byte {
	t.Helper()
	buf := make([]byte, 1)
	n, err := b.master.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	return buf[0]
}

func TestSerialTransportOpenClose(t *testing.T) {
	tr, _ := openPair(t)
	require.True(t, tr.IsOpen())
	require.NoError(t, tr.Close())
	require.False(t, tr.IsOpen())
	// closing again is a no-op
	require.NoError(t, tr.Close())
}

func TestSerialTransportOpenTwice(t *testing.T) {
	tr, _ := openPair(t)
	// a second open on the same transport is a no-op
	require.NoError(t, tr.Open("/dev/null", BaudRate))
	require.True(t, tr.IsOpen())
}

func TestSerialTransportOpenMissingPort(t *testing.T) {
	tr := &SerialTransport{}
	err := tr.Open("/dev/nonexistent-usbrelay-port", BaudRate)
	require.Error(t, err)
	require.False(t, tr.IsOpen())
}

func TestSerialTransportWriteByte(t *testing.T) {
	tr, board := openPair(t)
	require.NoError(t, tr.WriteByte(0x50))
	require.Equal(t, byte(0x50), board.read(t))
}

func TestSerialTransportReadByte(t *testing.T) {
	tr, board := openPair(t)
	board.write(t, 0xAD)
	b, err := tr.ReadByte(500 * time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, byte(0xAD), b)
}

func TestSerialTransportReadByteTimeout(t *testing.T) {
	tr, _ := openPair(t)
	start := time.Now()
	_, err := tr.ReadByte(150 * time.Millisecond)
	require.ErrorIs(t, err, ErrReadTimeout)
	require.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestSerialTransportClosedIO(t *testing.T) {
	tr := &SerialTransport{}
	require.ErrorIs(t, tr.WriteByte(0x00), ErrNotOpen)
	_, err := tr.ReadByte(time.Millisecond)
	require.ErrorIs(t, err, ErrNotOpen)
}
