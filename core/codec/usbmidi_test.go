package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeEvents_ChunkLaws(t *testing.T) {
	tests := []struct {
		name       string
		inputLen   int
		wantEvents int
		wantLast   byte // status of the final event packet
	}{
		{
			name:       "14 bytes, two left over",
			inputLen:   14,
			wantEvents: 5,
			wantLast:   EventSysExEnd2,
		},
		{
			name:       "12 bytes, exact multiple of three",
			inputLen:   12,
			wantEvents: 4,
			wantLast:   EventSysExContinue, // 0x07 is never emitted
		},
		{
			name:       "13 bytes, one left over",
			inputLen:   13,
			wantEvents: 5,
			wantLast:   EventSysExEnd1,
		},
		{
			name:       "single byte",
			inputLen:   1,
			wantEvents: 1,
			wantLast:   EventSysExEnd1,
		},
		{
			name:       "two bytes",
			inputLen:   2,
			wantEvents: 1,
			wantLast:   EventSysExEnd2,
		},
		{
			name:       "three bytes",
			inputLen:   3,
			wantEvents: 1,
			wantLast:   EventSysExContinue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, tt.inputLen)
			for i := range raw {
				raw[i] = byte(i + 1)
			}

			events := EncodeEvents(raw)
			if len(events) != tt.wantEvents*EventSize {
				t.Fatalf("output length = %d, want %d", len(events), tt.wantEvents*EventSize)
			}
			if got := events[len(events)-EventSize]; got != tt.wantLast {
				t.Errorf("final status = %02x, want %02x", got, tt.wantLast)
			}
			for i := 0; i < len(events)-EventSize; i += EventSize {
				if events[i] != EventSysExContinue {
					t.Errorf("event %d status = %02x, want %02x", i/EventSize, events[i], EventSysExContinue)
				}
			}
		})
	}
}

func TestEncodeEvents_Padding(t *testing.T) {
	events := EncodeEvents([]byte{0xAA})
	want := []byte{EventSysExEnd1, 0xAA, 0x00, 0x00}
	if !bytes.Equal(events, want) {
		t.Errorf("EncodeEvents([AA]) = % 02x, want % 02x", events, want)
	}

	events = EncodeEvents([]byte{0xAA, 0xBB})
	want = []byte{EventSysExEnd2, 0xAA, 0xBB, 0x00}
	if !bytes.Equal(events, want) {
		t.Errorf("EncodeEvents([AA BB]) = % 02x, want % 02x", events, want)
	}
}

func TestEncodeEvents_Empty(t *testing.T) {
	if got := EncodeEvents(nil); len(got) != 0 {
		t.Errorf("EncodeEvents(nil) produced %d bytes", len(got))
	}
}

func TestEncodeDecodeEvents(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{
			name: "single byte",
			raw:  []byte{0x42},
		},
		{
			name: "exact multiple of three",
			raw:  []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
		},
		{
			name: "typical packet size",
			raw:  bytes.Repeat([]byte{0x5A}, 14),
		},
		{
			name: "max packet size",
			raw:  make([]byte, HeaderSize+MaxPayloadSize+FooterSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := EncodeEvents(tt.raw)

			decoded, err := DecodeEvents(events)
			if err != nil {
				t.Fatalf("DecodeEvents() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.raw) {
				t.Errorf("round trip mismatch: got % 02x, want % 02x", decoded, tt.raw)
			}
		})
	}
}

func TestDecodeEvents_ReservedTerminal(t *testing.T) {
	// 0x07 is in the documented status space even though the encoder never
	// produces it.
	decoded, err := DecodeEvents([]byte{EventSysExEnd3, 0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("DecodeEvents() error = %v", err)
	}
	if !bytes.Equal(decoded, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("decoded = % 02x, want 01 02 03", decoded)
	}
}

func TestDecodeEvents_Errors(t *testing.T) {
	tests := []struct {
		name    string
		events  []byte
		wantErr error
	}{
		{
			name:    "truncated event",
			events:  []byte{EventSysExContinue, 0x01},
			wantErr: ErrTruncatedEvent,
		},
		{
			name:    "unknown status",
			events:  []byte{0x0F, 0x01, 0x02, 0x03},
			wantErr: ErrUnknownEventStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeEvents(tt.events); !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeEvents() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
