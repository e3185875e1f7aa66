package codec

// checksumPoly is the CRC-32 generator polynomial, applied MSB-first.
const checksumPoly = 0x04C11DB7

// Checksum computes the Aila MIDI API packet checksum.
//
// The accumulator starts at all-ones and each input byte is XORed into the
// top 8 bits before 8 shift/XOR rounds. Unlike the common CRC-32 used in
// archive formats there is no input/output reflection and no final XOR, so
// hash/crc32 cannot be substituted. This matches the Android client's
// calculateCRC; bit-for-bit agreement with the firmware and iOS
// implementations has not been independently verified.
func Checksum(data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc ^= uint32(b) << 24
		for i := 0; i < 8; i++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ checksumPoly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
