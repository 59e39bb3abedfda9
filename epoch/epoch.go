/*
NAME
  epoch.go

DESCRIPTION
  Builds and decodes length-delimited, CRC-8-protected epoch frames:
  the framing layer between the wire codec's byte stream and the
  acoustic (or any other) transport.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package epoch implements the AILL epoch framer: fixed-header,
// CRC-protected frames of the form [seq u16][len u16][payload][crc8].
package epoch

import (
	"github.com/ausocean/aill"
	"github.com/ausocean/aill/ast"
	"github.com/ausocean/aill/wire"
)

// MaxEpochPayload is the pending-payload size at which a Builder
// flushes a frame. A single write larger than this is not split: it
// becomes one frame whose payload exceeds MaxEpochPayload.
const MaxEpochPayload = 8192

// Builder accumulates bytes into epoch frames, flushing automatically
// once the pending payload would exceed MaxEpochPayload.
type Builder struct {
	seq     uint16
	epochs  [][]byte
	current *wire.Writer
}

// NewBuilder returns an empty Builder starting at sequence 0.
func NewBuilder() *Builder {
	return &Builder{current: wire.NewWriter()}
}

// Write appends data to the current epoch, flushing first if data
// would push the pending payload past MaxEpochPayload.
func (b *Builder) Write(data []byte) {
	if b.current.Len()+len(data) > MaxEpochPayload {
		b.Flush()
	}
	b.current.Write(data)
}

// Flush finalizes the current payload into a CRC-protected frame and
// starts a new one. It is a no-op if nothing is pending.
func (b *Builder) Flush() {
	if b.current.Len() == 0 {
		return
	}
	payload := b.current.Bytes()

	frame := wire.NewWriter()
	frame.WriteUint16(b.seq)
	frame.WriteUint16(uint16(len(payload)))
	frame.Write(payload)

	header := frame.Bytes()
	checksum := wire.CRC8(header)
	frame.WriteByte(checksum)

	b.epochs = append(b.epochs, frame.Bytes())
	b.seq++
	b.current = wire.NewWriter()
}

// Epochs flushes any pending payload and returns every completed
// frame built so far.
func (b *Builder) Epochs() [][]byte {
	b.Flush()
	out := make([][]byte, len(b.epochs))
	copy(out, b.epochs)
	return out
}

// DecodeEpoch decodes a single frame from data starting at offset,
// returning the decoded frame and the number of bytes consumed.
// CrcOK is a flag, not an error: a caller may still use Payload when
// CrcOK is false, at its own risk.
func DecodeEpoch(data []byte, offset int) (ast.DecodedEpoch, int, error) {
	if len(data)-offset < 5 {
		return ast.DecodedEpoch{}, 0, aill.Errorf(aill.KindInvalidStructure, "Insufficient data for epoch header")
	}

	seqNum := uint16(data[offset])<<8 | uint16(data[offset+1])
	payloadLen := int(uint16(data[offset+2])<<8 | uint16(data[offset+3]))

	if len(data)-offset < 4+payloadLen+1 {
		return ast.DecodedEpoch{}, 0, aill.Errorf(aill.KindInvalidStructure, "Incomplete epoch payload (expected %d bytes)", payloadLen)
	}

	payload := append([]byte(nil), data[offset+4:offset+4+payloadLen]...)
	receivedCRC := data[offset+4+payloadLen]
	computedCRC := wire.CRC8(data[offset : offset+4+payloadLen])
	crcOK := receivedCRC == computedCRC

	totalConsumed := 4 + payloadLen + 1
	return ast.DecodedEpoch{SeqNum: seqNum, Payload: payload, CrcOK: crcOK}, totalConsumed, nil
}

// DecodeAll decodes every frame in data, stopping at the first
// structural error (e.g. a truncated trailing frame).
func DecodeAll(data []byte) ([]ast.DecodedEpoch, error) {
	var out []ast.DecodedEpoch
	offset := 0
	for offset < len(data) {
		ep, consumed, err := DecodeEpoch(data, offset)
		if err != nil {
			return out, err
		}
		out = append(out, ep)
		offset += consumed
	}
	return out, nil
}
