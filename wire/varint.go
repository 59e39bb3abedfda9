/*
NAME
  varint.go

DESCRIPTION
  Variable-length encoding for unsigned 32-bit integers, used for context
  reference indices.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wire

import "github.com/ausocean/aill"

// EncodeVarInt encodes v in the shortest width that can hold it:
//
//	0xxxxxxx                        1 byte,  0..127
//	10xxxxxx xxxxxxxx               2 bytes, 128..16383
//	110xxxxx xxxxxxxx xxxxxxxx      3 bytes, up to 2^21-1
//	1110xxxx * 3 more bytes         4 bytes, up to 2^28-1
//	1111xxxx + 4 big-endian bytes   5 bytes, full uint32
func EncodeVarInt(v uint32) []byte {
	switch {
	case v <= 0x7F:
		return []byte{byte(v)}
	case v <= 0x3FFF:
		return []byte{0x80 | byte(v>>8), byte(v)}
	case v <= 0x1FFFFF:
		return []byte{0xC0 | byte(v>>16), byte(v >> 8), byte(v)}
	case v <= 0xFFFFFFF:
		return []byte{0xE0 | byte(v>>24), byte(v >> 16), byte(v >> 8), byte(v)}
	default:
		return []byte{0xF0, byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	}
}

// DecodeVarInt decodes a variable-length integer from the front of b,
// returning the value and the number of bytes consumed. It fails with
// InvalidVarInt if b is too short for the width its first byte declares.
func DecodeVarInt(b []byte) (uint32, int, error) {
	if len(b) == 0 {
		return 0, 0, aill.Errorf(aill.KindInvalidVarInt, "")
	}
	first := b[0]
	switch {
	case first&0x80 == 0:
		return uint32(first), 1, nil
	case first&0xC0 == 0x80:
		if len(b) < 2 {
			return 0, 0, aill.Errorf(aill.KindInvalidVarInt, "")
		}
		return uint32(first&0x3F)<<8 | uint32(b[1]), 2, nil
	case first&0xE0 == 0xC0:
		if len(b) < 3 {
			return 0, 0, aill.Errorf(aill.KindInvalidVarInt, "")
		}
		return uint32(first&0x1F)<<16 | uint32(b[1])<<8 | uint32(b[2]), 3, nil
	case first&0xF0 == 0xE0:
		if len(b) < 4 {
			return 0, 0, aill.Errorf(aill.KindInvalidVarInt, "")
		}
		return uint32(first&0x0F)<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), 4, nil
	default: // 1111xxxx
		if len(b) < 5 {
			return 0, 0, aill.Errorf(aill.KindInvalidVarInt, "")
		}
		return uint32(b[1])<<24 | uint32(b[2])<<16 | uint32(b[3])<<8 | uint32(b[4]), 5, nil
	}
}
