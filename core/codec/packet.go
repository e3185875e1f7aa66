// Package codec implements the Aila MIDI API wire format: checksummed,
// length-framed command packets and the USB-MIDI event stream that carries
// them to the device.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// SyncByte marks the start of every command packet.
	SyncByte = 0x62

	// Footer is the fixed 2-byte terminator closing every command packet.
	Footer uint16 = 0x2323

	// HeaderSize is sync(1) + checksum(4) + sequence(2) + opcode(2) +
	// payload length(1).
	HeaderSize = 10

	// FooterSize is the size of the packet terminator.
	FooterSize = 2

	// MaxPayloadSize is the largest payload the 1-byte length field can
	// describe.
	MaxPayloadSize = 255

	// checksumStart is the offset of the first byte covered by the checksum
	// (the start of the sequence field). The checksum runs from there through
	// the footer; it never covers the sync byte or itself.
	checksumStart = 5
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrPayloadTooLarge = errors.New("payload exceeds maximum size")
)

// Packet represents a single Aila command packet before USB-MIDI chunking.
type Packet struct {
	Sequence uint16
	Opcode   uint16
	Payload  []byte // Up to 255 bytes
}

// Size returns the wire format length of this packet.
func (p *Packet) Size() int {
	return HeaderSize + len(p.Payload) + FooterSize
}

// WriteTo encodes the packet to raw bytes and finalizes the checksum.
// The returned slice is not retained; the packet is immutable on the wire
// once the checksum is written.
func (p *Packet) WriteTo() ([]byte, error) {
	if len(p.Payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(p.Payload))
	}

	data := make([]byte, p.Size())
	data[0] = SyncByte

	// Bytes 1-4 stay zero until every checksummed field is in place.
	binary.BigEndian.PutUint16(data[5:7], p.Sequence)
	binary.BigEndian.PutUint16(data[7:9], p.Opcode)
	data[9] = uint8(len(p.Payload))
	copy(data[HeaderSize:], p.Payload)
	binary.BigEndian.PutUint16(data[len(data)-FooterSize:], Footer)

	binary.BigEndian.PutUint32(data[1:checksumStart], Checksum(data[checksumStart:]))

	return data, nil
}
