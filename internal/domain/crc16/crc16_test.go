package crc16_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xausdorf/maemanee-qr/internal/domain/crc16"
)

func TestChecksum_ReferenceVector(t *testing.T) {
	got := crc16.Checksum([]byte("00020101021129370016A000000677010111011300660000000005802TH53037646304"))
	assert.Equal(t, uint16(0x8956), got)
}

func TestChecksum_StandardCheckValue(t *testing.T) {
	assert.Equal(t, uint16(0x29B1), crc16.Checksum([]byte("123456789")))
}

func TestChecksum_EmptyInputIsInitialRegister(t *testing.T) {
	assert.Equal(t, crc16.Initial, crc16.Checksum(nil))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0000", crc16.Format(0))
	assert.Equal(t, "8956", crc16.Format(0x8956))
	assert.Equal(t, "02F8", crc16.Format(0x02F8))
	assert.Equal(t, "ABCD", crc16.Format(0xabcd))
}

func TestAppend_LeadingZero(t *testing.T) {
	partial := "00020101021130730016A000000677010112011501075360001028602150140000008209100311Supatipanno" +
		"5303764540840007.005802TH6220071600000000000852346304"

	got := crc16.Append(partial)

	assert.Equal(t, partial+"02F8", got)
	assert.Len(t, got, len(partial)+4)
}
