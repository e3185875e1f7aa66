// Package transport provides transport interfaces and implementations for
// delivering encoded USB-MIDI frames to Aila devices.
package transport

import "context"

// Transport is the base interface for all transport implementations.
// The Aila MIDI API is one-directional; transports only carry frames
// toward the device.
type Transport interface {
	// Start opens the transport's connection. The provided context controls
	// the transport's lifetime.
	Start(ctx context.Context) error
	// Stop gracefully shuts down the transport.
	Stop() error
	// IsConnected returns true if the transport is currently connected.
	IsConnected() bool
	// SetStateHandler sets the callback for transport state changes.
	SetStateHandler(fn StateHandler)
	// SendFrame transmits an encoded USB-MIDI frame over the transport.
	// Sends are never retried by the transport.
	SendFrame(frame []byte) error
}

// StateHandler is called when the transport state changes.
type StateHandler func(transport Transport, event Event)

// Event represents transport state change events.
type Event int

const (
	// EventConnected is fired when the transport connects.
	EventConnected Event = iota
	// EventDisconnected is fired when the transport disconnects.
	EventDisconnected
	// EventReconnecting is fired when the transport is attempting to reconnect.
	EventReconnecting
	// EventError is fired when an error occurs.
	EventError
)

func (e Event) String() string {
	switch e {
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventReconnecting:
		return "reconnecting"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}
