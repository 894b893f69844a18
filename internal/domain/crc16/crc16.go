// Package crc16 implements CRC-16/CCITT-FALSE as used by EMV QR payloads:
// polynomial 0x1021, initial register 0xFFFF, no reflection, no final XOR.
package crc16

import "fmt"

const (
	Polynomial uint16 = 0x1021
	Initial    uint16 = 0xFFFF
)

var table = func() [256]uint16 {
	var t [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ Polynomial
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}()

func Checksum(data []byte) uint16 {
	crc := Initial
	for _, b := range data {
		crc = table[byte(crc>>8)^b] ^ (crc << 8)
	}
	return crc
}

// Format renders a checksum as exactly four upper-case hex digits.
func Format(crc uint16) string {
	return fmt.Sprintf("%04X", crc)
}

// Append computes the checksum of partial and appends it. partial must
// already end with the checksum tag and length ("6304"); calling Append on
// its own output yields a different, invalid payload.
func Append(partial string) string {
	return partial + Format(Checksum([]byte(partial)))
}
