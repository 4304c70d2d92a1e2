package joydev

import (
	"encoding/binary"
	"encoding/hex"
)

// newGUID derives the 128-bit device identity from the evdev identity fields,
// in the layout used by SDL's controller mapping databases: each 16-bit field
// little-endian, padded with zero bytes.
func newGUID(bustype, vendor, product, version uint16) (guid [16]byte) {
	binary.LittleEndian.PutUint16(guid[0:2], bustype)
	// bytes 2-3 hold a CRC16 of a description string in SDL, zero here
	binary.LittleEndian.PutUint16(guid[4:6], vendor)
	binary.LittleEndian.PutUint16(guid[8:10], product)
	binary.LittleEndian.PutUint16(guid[12:14], version)
	// bytes 14-15 hold SDL's driver signature and driver data, zero here
	return guid
}

// guidString renders a GUID as 32 lowercase hex digits.
func guidString(guid [16]byte) string {
	return hex.EncodeToString(guid[:])
}
