package wire

import (
	"encoding/binary"

	"github.com/anirudhraja/packetcodec/schema"
)

// HostByteOrder reports the runtime's native integer byte order.
func HostByteOrder() schema.ByteOrder {
	if isLittleEndianHost() {
		return schema.Little
	}
	return schema.Big
}

func isLittleEndianHost() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}

// NeedsSwap reports whether a value declared in order, once assembled as if
// laid out in host order, must be byte-swapped to reflect its true value.
// Native never swaps: a Native field is defined to already be in host
// order.
func NeedsSwap(order schema.ByteOrder) bool {
	switch order {
	case schema.Native:
		return false
	default:
		return order != HostByteOrder()
	}
}

// SwapBytes reverses the byte order of the low width bytes of v. width must
// be 1, 2, 4, or 8.
func SwapBytes(v uint64, width int) uint64 {
	switch width {
	case 1:
		return v
	case 2:
		v16 := uint16(v)
		return uint64(v16>>8 | v16<<8)
	case 4:
		v32 := uint32(v)
		return uint64(v32>>24 | (v32>>8)&0x0000FF00 | (v32<<8)&0x00FF0000 | v32<<24)
	case 8:
		return v>>56 | (v>>40)&0x000000000000FF00 | (v>>24)&0x0000000000FF0000 | (v>>8)&0x00000000FF000000 |
			(v<<8)&0x000000FF00000000 | (v<<24)&0x0000FF0000000000 | (v<<40)&0x00FF000000000000 | v<<56
	default:
		panic(invalidWidth("swap width must be 1, 2, 4, or 8"))
	}
}

// ConvertUint takes v as assembled from raw bytes laid out in host order and
// corrects it to its true value given the field's declared order.
func ConvertUint(v uint64, width int, declared schema.ByteOrder) uint64 {
	if !NeedsSwap(declared) {
		return v
	}
	return SwapBytes(v, width)
}
