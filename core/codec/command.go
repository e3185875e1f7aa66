package codec

import (
	"encoding/binary"
	"fmt"
)

// Opcodes assigned by the Aila MIDI API.
const (
	OpcodeBuzzerBeep uint16 = 0x0100
	OpcodeLEDsFlash  uint16 = 0x0202
)

// Args carries the arguments for a catalog command. Beep and flash both take
// a duration; future commands reuse or extend this struct.
type Args struct {
	// Duration in milliseconds. Zero selects the device default.
	Duration uint16
}

// PayloadEncoder produces the payload bytes for a command. Encoders are pure
// functions of their arguments.
type PayloadEncoder func(args Args) ([]byte, error)

// CommandSpec describes one entry in the command catalog.
type CommandSpec struct {
	Name          string
	Opcode        uint16
	EncodePayload PayloadEncoder
}

var commands = map[string]CommandSpec{
	"beep":  {Name: "beep", Opcode: OpcodeBuzzerBeep, EncodePayload: encodeDuration},
	"flash": {Name: "flash", Opcode: OpcodeLEDsFlash, EncodePayload: encodeDuration},
}

// Resolve looks up a command by name.
func Resolve(name string) (CommandSpec, error) {
	spec, ok := commands[name]
	if !ok {
		return CommandSpec{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return spec, nil
}

// Register adds a command to the catalog. Adding a command requires no
// changes elsewhere. Intended for init-time use; not safe to call
// concurrently with Resolve.
func Register(spec CommandSpec) {
	commands[spec.Name] = spec
}

// encodeDuration encodes the 2-byte duration payload shared by beep and
// flash. Big-endian, matching every other multi-byte field in the packet.
func encodeDuration(args Args) ([]byte, error) {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, args.Duration)
	return data, nil
}
