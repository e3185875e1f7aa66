// Package serial provides a serial transport for Aila devices attached
// through a USB-MIDI serial bridge.
//
// The Aila MIDI API is fire-and-forget: frames are written to the port and
// nothing is ever read back, so this transport has no read loop. Disconnects
// are detected when a write fails.
package serial

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kabili207/aila-go/transport"
	"go.bug.st/serial"
)

// Compile-time interface check.
var _ transport.Transport = (*Transport)(nil)

// DefaultBaudRate is the default baud rate for Aila serial bridges.
const DefaultBaudRate = 115200

// Config holds the configuration for a serial transport.
type Config struct {
	// Port is the serial port path (e.g., "/dev/ttyACM0" or "COM3").
	Port string
	// BaudRate is the serial baud rate. Defaults to 115200.
	BaudRate int
	// Logger is the logger to use. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Transport implements transport.Transport over a serial connection.
type Transport struct {
	cfg          Config
	log          *slog.Logger
	mu           sync.RWMutex
	port         serial.Port
	connected    bool
	stateHandler transport.StateHandler
}

// New creates a new serial transport with the given configuration.
func New(cfg Config) *Transport {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Transport{
		cfg: cfg,
		log: cfg.Logger.WithGroup("serial"),
	}
}

// Start opens the serial port.
func (t *Transport) Start(_ context.Context) error {
	if t.cfg.Port == "" {
		return errors.New("serial port is required")
	}

	mode := &serial.Mode{
		BaudRate: t.cfg.BaudRate,
	}

	port, err := serial.Open(t.cfg.Port, mode)
	if err != nil {
		return fmt.Errorf("opening serial port: %w", err)
	}

	t.mu.Lock()
	t.port = port
	t.connected = true
	handler := t.stateHandler
	t.mu.Unlock()

	t.log.Info("connected to serial port", "port", t.cfg.Port, "baud", t.cfg.BaudRate)

	if handler != nil {
		handler(t, transport.EventConnected)
	}

	return nil
}

// Stop closes the serial port.
func (t *Transport) Stop() error {
	t.mu.Lock()
	connected := t.connected
	t.connected = false
	port := t.port
	t.port = nil
	handler := t.stateHandler
	t.mu.Unlock()

	var err error
	if port != nil {
		err = port.Close()
	}

	if connected && handler != nil {
		handler(t, transport.EventDisconnected)
	}

	return err
}

// IsConnected returns true if the serial port is open.
func (t *Transport) IsConnected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.connected
}

// SetStateHandler sets the callback for transport state changes.
func (t *Transport) SetStateHandler(fn transport.StateHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stateHandler = fn
}

// SendFrame writes an encoded USB-MIDI frame to the serial port.
func (t *Transport) SendFrame(frame []byte) error {
	t.mu.RLock()
	port := t.port
	connected := t.connected
	t.mu.RUnlock()

	if !connected || port == nil {
		return errors.New("not connected")
	}

	if _, err := port.Write(frame); err != nil {
		t.handleDisconnect(err)
		return fmt.Errorf("writing to serial port: %w", err)
	}

	t.log.Debug("wrote frame to serial port", "bytes", len(frame))
	return nil
}

func (t *Transport) handleDisconnect(err error) {
	t.mu.Lock()
	t.connected = false
	handler := t.stateHandler
	t.mu.Unlock()

	if err != nil {
		t.log.Error("serial disconnected", "error", err)
	}

	if handler != nil {
		handler(t, transport.EventDisconnected)
	}
}
