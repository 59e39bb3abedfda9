/*
NAME
  encoder.go

DESCRIPTION
  Fluent builder for encoding AILL utterances into wire-format bytes.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package codec implements the AILL wire codec: a builder for encoding
// utterances into tagged, self-describing bytes, and a decoder for
// recovering an ast.Node tree (and a pretty-printer for it) from those
// bytes.
package codec

import (
	"github.com/ausocean/aill/codebook"
	"github.com/ausocean/aill/wire"
)

// Encoder is a fluent builder for AILL utterances. An Encoder returned
// by NewEncoder is ready to use; calls chain by returning the receiver.
type Encoder struct {
	w          *wire.Writer
	uuid       [16]byte
	inUtterance bool
}

// NewEncoder returns an Encoder with no source UUID set.
func NewEncoder() *Encoder {
	return &Encoder{w: wire.NewWriter()}
}

// NewEncoderWithUUID returns an Encoder that stores uuid. No Encoder
// method reads the stored value; SourceAgent takes its UUID as an
// argument.
func NewEncoderWithUUID(uuid [16]byte) *Encoder {
	return &Encoder{w: wire.NewWriter(), uuid: uuid}
}

func (e *Encoder) code(c byte) *Encoder {
	e.w.WriteByte(c)
	return e
}

// ── Utterance framing ──

// StartUtterance begins an utterance with the protocol default meta
// header: confidence 1.0, priority 3, timestamp 0, no optional fields.
func (e *Encoder) StartUtterance() *Encoder {
	return e.StartUtteranceWith(1.0, 3, 0, nil, nil)
}

// StartUtteranceWith begins an utterance with an explicit meta header.
// destAgent and seqnum are optional; pass nil/nil to omit them.
func (e *Encoder) StartUtteranceWith(confidence float32, priority uint8, timestampUS int64, destAgent *[16]byte, seqnum *uint32) *Encoder {
	e.code(codebook.StartUtterance)

	e.code(codebook.Confidence)
	e.w.WriteFloat16(confidence)
	e.code(codebook.Priority)
	e.w.WriteByte(priority)
	e.code(codebook.TimestampMeta)
	e.w.WriteInt64(timestampUS)

	if destAgent != nil {
		e.code(codebook.DestAgent)
		e.w.WriteUUID(*destAgent)
	}
	if seqnum != nil {
		e.code(codebook.Seqnum)
		e.w.WriteUint32(*seqnum)
	}

	e.inUtterance = true
	return e
}

// EndUtterance closes the utterance and returns the accumulated bytes.
func (e *Encoder) EndUtterance() []byte {
	e.code(codebook.EndUtterance)
	e.inUtterance = false
	return e.w.Bytes()
}

// ── Pragmatic acts ──

// Pragma emits a raw pragmatic act opcode.
func (e *Encoder) Pragma(act byte) *Encoder { return e.code(act) }

func (e *Encoder) Query() *Encoder       { return e.code(codebook.Query) }
func (e *Encoder) Assert() *Encoder      { return e.code(codebook.Assert) }
func (e *Encoder) Request() *Encoder     { return e.code(codebook.Request) }
func (e *Encoder) Command() *Encoder     { return e.code(codebook.Command) }
func (e *Encoder) Acknowledge() *Encoder { return e.code(codebook.Acknowledge) }
func (e *Encoder) Warn() *Encoder        { return e.code(codebook.Warn) }
func (e *Encoder) Propose() *Encoder     { return e.code(codebook.Propose) }
func (e *Encoder) AcceptPragma() *Encoder { return e.code(codebook.Accept) }
func (e *Encoder) Reject() *Encoder      { return e.code(codebook.Reject) }

// ── Modality ──

// Modality emits a raw modality opcode.
func (e *Encoder) Modality(m byte) *Encoder { return e.code(m) }

func (e *Encoder) Observed() *Encoder { return e.code(codebook.Observed) }
func (e *Encoder) Inferred() *Encoder { return e.code(codebook.Inferred) }

// Predicted emits PREDICTED with its horizon qualifier, encoded as
// binary16.
func (e *Encoder) Predicted(horizonMS float32) *Encoder {
	e.code(codebook.Predicted)
	e.w.WriteFloat16(horizonMS)
	return e
}

// ── Temporal ──

// Temporal emits a raw temporal opcode.
func (e *Encoder) Temporal(t byte) *Encoder { return e.code(t) }

// ── Structure ──

func (e *Encoder) BeginStruct() *Encoder { return e.code(codebook.BeginStruct) }
func (e *Encoder) EndStruct() *Encoder   { return e.code(codebook.EndStruct) }

// Field emits a FIELD_ID tag followed by the 16-bit field code; the
// value itself follows as a separate call.
func (e *Encoder) Field(fieldCode uint16) *Encoder {
	e.code(codebook.FieldID)
	e.w.WriteUint16(fieldCode)
	return e
}

func (e *Encoder) BeginList(count uint16) *Encoder {
	e.code(codebook.BeginList)
	e.w.WriteUint16(count)
	return e
}
func (e *Encoder) EndList() *Encoder { return e.code(codebook.EndList) }

func (e *Encoder) BeginMap(count uint16) *Encoder {
	e.code(codebook.BeginMap)
	e.w.WriteUint16(count)
	return e
}
func (e *Encoder) EndMap() *Encoder { return e.code(codebook.EndMap) }

// ── Typed values ──

func (e *Encoder) Int8(v int8) *Encoder {
	e.code(codebook.TypeInt8)
	e.w.WriteByte(byte(v))
	return e
}

func (e *Encoder) Int16(v int16) *Encoder {
	e.code(codebook.TypeInt16)
	e.w.WriteUint16(uint16(v))
	return e
}

func (e *Encoder) Int32(v int32) *Encoder {
	e.code(codebook.TypeInt32)
	e.w.WriteUint32(uint32(v))
	return e
}

func (e *Encoder) Int64(v int64) *Encoder {
	e.code(codebook.TypeInt64)
	e.w.WriteInt64(v)
	return e
}

func (e *Encoder) Uint8(v uint8) *Encoder {
	e.code(codebook.TypeUint8)
	e.w.WriteByte(v)
	return e
}

func (e *Encoder) Uint16(v uint16) *Encoder {
	e.code(codebook.TypeUint16)
	e.w.WriteUint16(v)
	return e
}

func (e *Encoder) Uint32(v uint32) *Encoder {
	e.code(codebook.TypeUint32)
	e.w.WriteUint32(v)
	return e
}

func (e *Encoder) Uint64(v uint64) *Encoder {
	e.code(codebook.TypeUint64)
	e.w.WriteUint64(v)
	return e
}

func (e *Encoder) Float16(v float32) *Encoder {
	e.code(codebook.TypeFloat16)
	e.w.WriteFloat16(v)
	return e
}

func (e *Encoder) Float32(v float32) *Encoder {
	e.code(codebook.TypeFloat32)
	e.w.WriteFloat32(v)
	return e
}

func (e *Encoder) Float64(v float64) *Encoder {
	e.code(codebook.TypeFloat64)
	e.w.WriteFloat64(v)
	return e
}

func (e *Encoder) Bool(v bool) *Encoder {
	e.code(codebook.TypeBool)
	if v {
		e.w.WriteByte(0x01)
	} else {
		e.w.WriteByte(0x00)
	}
	return e
}

func (e *Encoder) String(v string) *Encoder {
	e.code(codebook.TypeString)
	e.w.WriteString(v)
	return e
}

// Bytes emits a TYPE_BYTES literal: a u16 length prefix then the raw
// payload, matching decodeLiteral's TYPE_BYTES handling.
func (e *Encoder) Bytes(v []byte) *Encoder {
	e.code(codebook.TypeBytes)
	e.w.WriteUint16(uint16(len(v)))
	e.w.Write(v)
	return e
}

func (e *Encoder) Null() *Encoder { return e.code(codebook.TypeNull) }

func (e *Encoder) Timestamp(v int64) *Encoder {
	e.code(codebook.TypeTimestamp)
	e.w.WriteInt64(v)
	return e
}

// ── Convenience: typed lists ──

func (e *Encoder) ListOfFloat32(values []float32) *Encoder {
	e.BeginList(uint16(len(values)))
	for _, v := range values {
		e.Float32(v)
	}
	return e.EndList()
}

func (e *Encoder) ListOfInt32(values []int32) *Encoder {
	e.BeginList(uint16(len(values)))
	for _, v := range values {
		e.Int32(v)
	}
	return e.EndList()
}

// ── Domain codebook references ──

func (e *Encoder) L1Ref(code uint16) *Encoder {
	e.code(codebook.EscapeL1)
	e.w.WriteUint16(code)
	return e
}

func (e *Encoder) L2Ref(code uint16) *Encoder {
	e.code(codebook.EscapeL2)
	e.w.WriteUint16(code)
	return e
}

func (e *Encoder) L3Ref(code uint16) *Encoder {
	e.code(codebook.EscapeL3)
	e.w.WriteUint16(code)
	return e
}

// ── Operators ──

func (e *Encoder) Op(opcode byte) *Encoder { return e.code(opcode) }
func (e *Encoder) Add() *Encoder           { return e.code(0xA0) }
func (e *Encoder) Sub() *Encoder           { return e.code(0xA1) }
func (e *Encoder) Mul() *Encoder           { return e.code(0xA2) }
func (e *Encoder) Div() *Encoder           { return e.code(0xA3) }
func (e *Encoder) Distance() *Encoder      { return e.code(0xBF) }
func (e *Encoder) Norm() *Encoder          { return e.code(0xB9) }
func (e *Encoder) Eq() *Encoder            { return e.code(0x50) }
func (e *Encoder) Lt() *Encoder            { return e.code(0x52) }
func (e *Encoder) Gt() *Encoder            { return e.code(0x53) }

// ── Quantifiers ──

func (e *Encoder) Forall() *Encoder { return e.code(0x30) }
func (e *Encoder) Exists() *Encoder { return e.code(0x31) }

// ── Annotations ──

func (e *Encoder) Confidence(v float32) *Encoder {
	e.code(codebook.Confidence)
	e.w.WriteFloat16(v)
	return e
}

func (e *Encoder) Label(text string) *Encoder {
	e.code(codebook.Label)
	e.w.WriteString(text)
	return e
}

func (e *Encoder) ContextRef(sctIndex uint32) *Encoder {
	e.code(codebook.ContextRef)
	e.w.WriteVarInt(sctIndex)
	return e
}

// ── Meta field helpers ──

// SourceAgent emits SOURCE_AGENT followed by 16 UUID bytes, truncating
// or zero-padding uuid to exactly 16 bytes.
func (e *Encoder) SourceAgent(uuid []byte) *Encoder {
	e.code(codebook.SourceAgent)
	var buf [16]byte
	n := len(uuid)
	if n > 16 {
		n = 16
	}
	copy(buf[:n], uuid[:n])
	e.w.WriteUUID(buf)
	return e
}

func (e *Encoder) Topic(topicID uint16) *Encoder {
	e.code(codebook.Topic)
	e.w.WriteUint16(topicID)
	return e
}

// ── Raw byte access ──

// Raw appends data verbatim, with no opcode prefix.
func (e *Encoder) Raw(data []byte) *Encoder {
	e.w.Write(data)
	return e
}

// CurrentSize reports the number of bytes accumulated so far.
func (e *Encoder) CurrentSize() int { return e.w.Len() }
