package codec

// BuildPacket resolves name against the command catalog, encodes the payload,
// and lays out a complete wire-format packet using the supplied sequence
// number. The sequence counter is owned by the caller; a failed build never
// mutates any other shared state.
func BuildPacket(name string, args Args, seq uint16) ([]byte, error) {
	spec, err := Resolve(name)
	if err != nil {
		return nil, err
	}

	payload, err := spec.EncodePayload(args)
	if err != nil {
		return nil, err
	}

	pkt := &Packet{
		Sequence: seq,
		Opcode:   spec.Opcode,
		Payload:  payload,
	}
	return pkt.WriteTo()
}
