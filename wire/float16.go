/*
NAME
  float16.go

DESCRIPTION
  Big-endian IEEE-754 binary16 encoding, widened to float32 at the codec
  boundary (used for MetaHeader confidence and the PREDICTED modal
  horizon).

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

import "github.com/x448/float16"

// EncodeFloat16 converts v to its nearest big-endian binary16
// representation.
func EncodeFloat16(v float32) []byte {
	h := float16.Fromfloat32(v)
	return []byte{byte(h >> 8), byte(h)}
}

// DecodeFloat16 widens a big-endian binary16 value to float32.
func DecodeFloat16(b [2]byte) float32 {
	h := float16.Float16(uint16(b[0])<<8 | uint16(b[1]))
	return h.Float32()
}
