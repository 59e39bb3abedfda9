/*
NAME
  crc8.go

DESCRIPTION
  CRC-8/CCITT checksum used to protect epoch frames.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wire implements the primitive byte-level building blocks of the
// AILL codec: CRC-8 checksums, variable-length integers, binary16 floats
// and forward byte cursors.
package wire

// poly8 is the CRC-8/CCITT polynomial, 0x07, used unreflected in a
// most-significant-bit-first table, the same construction as
// container/mts/psi's CRC-32 table builder generalised to 8 bits.
const poly8 = 0x07

var crc8Table [256]byte

func init() {
	for i := range crc8Table {
		crc := byte(i)
		for j := 0; j < 8; j++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ poly8
			} else {
				crc <<= 1
			}
		}
		crc8Table[i] = crc
	}
}

// CRC8 computes the CRC-8/CCITT checksum of b, with initial value 0x00,
// no input reflection and no output XOR. CRC8(nil) is 0x00 and
// CRC8([]byte("123456789")) is 0xF4.
func CRC8(b []byte) byte {
	var crc byte
	for _, v := range b {
		crc = crc8Table[crc^v]
	}
	return crc
}
