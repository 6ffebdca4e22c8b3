// Package byteorder provides the byte-swapping primitive that the
// Cineon/DPX codec treats as an external collaborator: on-disk words are
// either big- or little-endian relative to the host, and the core never
// assumes which.
package byteorder

import (
	"encoding/binary"
	"math/bits"
)

// hostIsBigEndian probes the platform's native byte order without unsafe.
// {0x00, 0x01} decodes to 1 under big-endian and 256 under little-endian.
var hostIsBigEndian = binary.NativeEndian.Uint16([]byte{0x00, 0x01}) == 0x0001

// Swap32 returns v byte-swapped iff the on-disk word order (isMSB, true
// for big-endian) differs from the host's native order.
func Swap32(v uint32, isMSB bool) uint32 {
	if isMSB == hostIsBigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

// Swap16 returns v byte-swapped iff the on-disk word order (isMSB, true
// for big-endian) differs from the host's native order.
func Swap16(v uint16, isMSB bool) uint16 {
	if isMSB == hostIsBigEndian {
		return v
	}
	return bits.ReverseBytes16(v)
}

// HostIsBigEndian reports whether the running platform is big-endian.
func HostIsBigEndian() bool {
	return hostIsBigEndian
}
