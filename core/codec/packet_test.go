package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestPacket_WriteTo_Layout(t *testing.T) {
	tests := []struct {
		name string
		pkt  Packet
	}{
		{
			name: "no payload",
			pkt:  Packet{Sequence: 1, Opcode: OpcodeBuzzerBeep},
		},
		{
			name: "duration payload",
			pkt:  Packet{Sequence: 42, Opcode: OpcodeLEDsFlash, Payload: []byte{0x01, 0xF4}},
		},
		{
			name: "max payload",
			pkt:  Packet{Sequence: 0xFFFF, Opcode: OpcodeBuzzerBeep, Payload: make([]byte, MaxPayloadSize)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.pkt.WriteTo()
			if err != nil {
				t.Fatalf("WriteTo() error = %v", err)
			}

			wantLen := HeaderSize + len(tt.pkt.Payload) + FooterSize
			if len(data) != wantLen {
				t.Fatalf("packet length = %d, want %d", len(data), wantLen)
			}
			if data[0] != SyncByte {
				t.Errorf("sync byte = %02x, want %02x", data[0], SyncByte)
			}
			if got := binary.BigEndian.Uint16(data[5:7]); got != tt.pkt.Sequence {
				t.Errorf("sequence = %d, want %d", got, tt.pkt.Sequence)
			}
			if got := binary.BigEndian.Uint16(data[7:9]); got != tt.pkt.Opcode {
				t.Errorf("opcode = %04x, want %04x", got, tt.pkt.Opcode)
			}
			if int(data[9]) != len(tt.pkt.Payload) {
				t.Errorf("payload length byte = %d, want %d", data[9], len(tt.pkt.Payload))
			}
			if !bytes.Equal(data[HeaderSize:len(data)-FooterSize], tt.pkt.Payload) {
				t.Errorf("payload bytes do not match")
			}
			if got := binary.BigEndian.Uint16(data[len(data)-FooterSize:]); got != Footer {
				t.Errorf("footer = %04x, want %04x", got, Footer)
			}
		})
	}
}

func TestPacket_WriteTo_ChecksumCoversSequenceThroughFooter(t *testing.T) {
	pkt := Packet{Sequence: 7, Opcode: OpcodeLEDsFlash, Payload: []byte{0x00, 0x64}}

	data, err := pkt.WriteTo()
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	stored := binary.BigEndian.Uint32(data[1:5])
	recomputed := Checksum(data[5:])
	if stored != recomputed {
		t.Errorf("stored checksum %08x, recomputed %08x", stored, recomputed)
	}

	// The sync byte and checksum field must not influence the checksum.
	if covered := Checksum(data); covered == stored {
		t.Errorf("checksum unexpectedly covers the full packet")
	}
}

func TestPacket_WriteTo_PayloadTooLarge(t *testing.T) {
	pkt := Packet{Sequence: 1, Opcode: OpcodeBuzzerBeep, Payload: make([]byte, MaxPayloadSize+1)}
	if _, err := pkt.WriteTo(); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("WriteTo() error = %v, want %v", err, ErrPayloadTooLarge)
	}
}

func TestPacket_Size(t *testing.T) {
	pkt := Packet{Payload: []byte{0x00, 0x00}}
	if got := pkt.Size(); got != 14 {
		t.Errorf("Size() = %d, want 14", got)
	}
}
