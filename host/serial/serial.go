package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing against in-memory readers)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this, UART bridges do not)
	Baud int

	// Read timeout in milliseconds. Zero means blocking reads, which
	// is what the line-oriented monitor wants; a timeout makes Read
	// return empty and trips bufio's no-progress check.
	ReadTimeout int
}

// DefaultConfig returns a default configuration for a Pico console
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
