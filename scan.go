package usbrelay

import (
	"fmt"
	"runtime"

	"github.com/goburrow/serial"
)

// PortNamer produces the candidate port name for a probe index. The
// index runs from 1 to scanMaxIndex inclusive.
type PortNamer func(index int) string

const scanMaxIndex = 98

// DefaultNamer returns the candidate naming scheme for the current
// platform: \\.\COM1.. on Windows, /dev/ttyACM0.. elsewhere.
func DefaultNamer() PortNamer {
	if runtime.GOOS == "windows" {
		return func(i int) string { return fmt.Sprintf(`\\.\COM%d`, i) }
	}
	return func(i int) string { return fmt.Sprintf("/dev/ttyACM%d", i-1) }
}

// Scan brute-forces the platform's candidate port names and returns
// those that could be opened. The list is purely advisory: an entry
// only means the open succeeded, not that a relay board answers there.
func Scan() []string {
	return ScanWith(DefaultNamer(), probePort)
}

// ScanWith is Scan with a caller-supplied naming scheme and probe.
func ScanWith(namer PortNamer, probe func(name string) bool) []string {
	var ports []string
	for i := 1; i <= scanMaxIndex; i++ {
		if name := namer(i); probe(name) {
			ports = append(ports, name)
		}
	}
	return ports
}

// probePort checks that a port exists by opening and immediately
// closing it.
func probePort(name string) bool {
	port, err := serial.Open(&serial.Config{
		Address:  name,
		BaudRate: ScanBaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  pollInterval,
	})
	if err != nil {
		return false
	}
	port.Close()
	return true
}
