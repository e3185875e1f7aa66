package codec

import (
	"errors"
	"fmt"
)

// USB-MIDI event packet status bytes used for SysEx transfers. Each event
// packet is 4 bytes: a status byte followed by three data bytes, of which
// the status says how many are valid.
const (
	// EventSysExContinue carries three valid data bytes; the message continues.
	EventSysExContinue = 0x04
	// EventSysExEnd1 terminates a message; only the first data byte is valid.
	EventSysExEnd1 = 0x05
	// EventSysExEnd2 terminates a message; the first two data bytes are valid.
	EventSysExEnd2 = 0x06
	// EventSysExEnd3 terminates a message with three valid data bytes. The
	// encoder never emits it: a message whose length is a multiple of three
	// ends on EventSysExContinue, matching the firmware's expectations as
	// observed. Kept for the decode path.
	EventSysExEnd3 = 0x07

	// EventSize is the size of one USB-MIDI event packet.
	EventSize = 4
)

var (
	ErrTruncatedEvent     = errors.New("truncated USB-MIDI event")
	ErrUnknownEventStatus = errors.New("unknown USB-MIDI event status")
)

// EncodeEvents repackages raw into a stream of 4-byte USB-MIDI event
// packets, consuming the input in groups of up to three bytes. Short
// terminal groups are zero-padded. The output is always
// 4*ceil(len(raw)/3) bytes; an empty input produces an empty stream.
func EncodeEvents(raw []byte) []byte {
	events := make([]byte, 0, (len(raw)+2)/3*EventSize)

	for len(raw) > 0 {
		switch {
		case len(raw) >= 3:
			events = append(events, EventSysExContinue, raw[0], raw[1], raw[2])
			raw = raw[3:]
		case len(raw) == 2:
			events = append(events, EventSysExEnd2, raw[0], raw[1], 0x00)
			raw = nil
		default:
			events = append(events, EventSysExEnd1, raw[0], 0x00, 0x00)
			raw = nil
		}
	}

	return events
}

// DecodeEvents extracts the raw bytes carried by a stream of USB-MIDI event
// packets. EventSysExEnd3 is accepted even though EncodeEvents never
// produces it.
func DecodeEvents(events []byte) ([]byte, error) {
	if len(events)%EventSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedEvent, len(events))
	}

	raw := make([]byte, 0, len(events)/EventSize*3)
	for i := 0; i < len(events); i += EventSize {
		switch events[i] {
		case EventSysExContinue, EventSysExEnd3:
			raw = append(raw, events[i+1], events[i+2], events[i+3])
		case EventSysExEnd2:
			raw = append(raw, events[i+1], events[i+2])
		case EventSysExEnd1:
			raw = append(raw, events[i+1])
		default:
			return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownEventStatus, events[i])
		}
	}

	return raw, nil
}
