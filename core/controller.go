// Package core ties the Aila codec to a transport and provides the
// high-level command entry points.
package core

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/kabili207/aila-go/core/codec"
	"github.com/kabili207/aila-go/transport"
)

// StatusHandler receives a human-readable status message for each terminal
// command outcome. Status text is for display only and is not part of the
// wire format.
type StatusHandler func(status string)

// Config holds the configuration for a Controller.
type Config struct {
	// Transport delivers encoded frames to the device. Required.
	Transport transport.Transport
	// Logger is the logger to use. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Controller issues Aila commands over a transport. It owns the session's
// sequence counter; each command draws the next sequence number, including
// commands that later fail to send (sequence numbers need not be contiguous
// at the receiver).
type Controller struct {
	tr  transport.Transport
	log *slog.Logger
	seq codec.Sequence

	mu            sync.RWMutex
	statusHandler StatusHandler
}

// NewController creates a controller sending over the given transport.
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		tr:  cfg.Transport,
		log: logger,
	}
}

// SetStatusHandler sets the callback for human-readable status messages.
func (c *Controller) SetStatusHandler(fn StatusHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statusHandler = fn
}

// EncodeCommand runs the full encoding pipeline: resolve the command against
// the catalog, build a checksummed packet with the next sequence number, and
// chunk it into a USB-MIDI frame ready for transmission.
func (c *Controller) EncodeCommand(name string, args codec.Args) ([]byte, error) {
	pkt, err := codec.BuildPacket(name, args, c.seq.Next())
	if err != nil {
		return nil, err
	}
	return codec.EncodeEvents(pkt), nil
}

// SendCommand encodes a command and hands the frame to the transport.
// Sends are never retried; a transport failure is surfaced to the caller.
func (c *Controller) SendCommand(name string, args codec.Args) error {
	frame, err := c.EncodeCommand(name, args)
	if err != nil {
		c.status(fmt.Sprintf("Failed to create %s command", name))
		return err
	}

	if err := c.tr.SendFrame(frame); err != nil {
		c.status(fmt.Sprintf("Error sending %s command: %v", name, err))
		return fmt.Errorf("sending %s command: %w", name, err)
	}

	c.log.Debug("sent command", "command", name, "frame_bytes", len(frame))
	c.status(fmt.Sprintf("%s command sent", name))
	return nil
}

// Beep asks the device to sound its buzzer. A zero duration selects the
// device default.
func (c *Controller) Beep(duration uint16) error {
	return c.SendCommand("beep", codec.Args{Duration: duration})
}

// Flash asks the device to flash its LEDs. A zero duration selects the
// device default.
func (c *Controller) Flash(duration uint16) error {
	return c.SendCommand("flash", codec.Args{Duration: duration})
}

func (c *Controller) status(msg string) {
	c.mu.RLock()
	handler := c.statusHandler
	c.mu.RUnlock()

	if handler != nil {
		handler(msg)
	}
}
