/*
NAME
  node.go

DESCRIPTION
  The decoded AST node types for AILL expressions: literals, compound
  structures, pragmatic/modal/temporal wrappers, domain and context
  references, and bare codebook codes.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ast defines the decoded abstract syntax tree for AILL
// utterances: the node types produced by codec's Decoder.DecodeUtterance
// and consumed by codec.PrettyPrint.
package ast

// Node is any decoded AILL AST node. The concrete types below are the
// exhaustive set; a type switch on Node is the idiomatic way to
// traverse a tree.
type Node interface {
	astNode()
}

// LiteralKind identifies the concrete type carried by a Literal.
type LiteralKind int

const (
	KindInt8 LiteralKind = iota
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat16
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindBytes
	KindTimestamp
	KindNull
)

// Literal is a typed scalar value. Exactly one of the fields matching
// Kind is meaningful; Float16 and Float32 both widen to the Value
// field, matching the wire codec's promotion of binary16 to float32
// at the API boundary.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Uint  uint64
	Value float64 // holds Float16/Float32/Float64; Timestamp (microseconds) is held in Int
	Bool  bool
	Str   string
	Bytes []byte
}

func (Literal) astNode() {}

// Utterance is a complete decoded message: a meta header plus an
// ordered body of nodes.
type Utterance struct {
	Meta MetaHeader
	Body []Node
}

func (Utterance) astNode() {}

// Struct is an ordered-by-field-id collection of fields, keyed by a
// 16-bit field identifier.
type Struct struct {
	Fields map[uint16]Node
	// Order preserves field encounter order, since Go maps don't.
	Order []uint16
}

func (Struct) astNode() {}

// List is a homogeneous-in-practice, heterogeneous-in-principle
// ordered collection.
type List struct {
	// Count is the wire-declared element count, which may exceed
	// len(Elements) if the list was truncated by short input.
	Count    uint16
	Elements []Node
}

func (List) astNode() {}

// MapPair is a single key/value pair of a Map node.
type MapPair struct {
	Key   Node
	Value Node
}

// Map is an ordered collection of key/value pairs.
type Map struct {
	Pairs []MapPair
}

func (Map) astNode() {}

// Pragmatic wraps an expression with a speech act (QUERY, ASSERT,
// COMMAND, ...).
type Pragmatic struct {
	Act        string
	Expression Node
}

func (Pragmatic) astNode() {}

// Modal wraps an expression with an epistemic or deontic modality
// (CERTAIN, PROBABLE, OBLIGATORY, ...). Extra carries the float16
// value that follows PREDICTED on the wire; for every other modality
// HasExtra is false.
type Modal struct {
	Modality   string
	Expression Node
	Extra      float64
	HasExtra   bool
}

func (Modal) astNode() {}

// Temporal wraps an expression with a temporal relation (PAST,
// T_BEFORE, T_DURING, ...).
type Temporal struct {
	Modifier   string
	Expression Node
}

func (Temporal) astNode() {}

// DomainRef references an entry in one of the domain sub-codebooks by
// registry ID (Level) and 16-bit code.
type DomainRef struct {
	Level      byte
	DomainCode uint16
}

func (DomainRef) astNode() {}

// ContextRef references an entry in the sender's shared context table
// (SCT) by index.
type ContextRef struct {
	SCTIndex uint32
}

func (ContextRef) astNode() {}

// Code is a bare base-codebook opcode with no associated payload.
type Code struct {
	Code     byte
	Mnemonic string
}

func (Code) astNode() {}

// Annotated is a body node for an inline CONFIDENCE or LABEL
// annotation. Mnemonic summarises the annotation's payload (e.g.
// "CONFIDENCE(0.85)"); the expression that follows the annotation on
// the wire is consumed and not kept.
type Annotated struct {
	Code     byte
	Mnemonic string
}

func (Annotated) astNode() {}

// AnnotationKind identifies the shape of an AnnotationValue.
type AnnotationKind int

const (
	AnnotationU16 AnnotationKind = iota
	AnnotationU64
	AnnotationPair
)

// AnnotationValue is a value attached to a MetaHeader annotation.
type AnnotationValue struct {
	Kind       AnnotationKind
	U16        uint16
	U64        uint64
	PairFirst  uint16
	PairSecond uint16
}

// MetaHeader is the per-utterance metadata block: confidence,
// priority and timestamp are mandatory (decoding fails when one is
// absent). SourceAgent, DestAgent and Seqnum are optional fields of
// their own; the other optional meta values are recorded in
// Annotations under the keys "trace_id", "ttl", "topic" and "version".
type MetaHeader struct {
	Confidence  float32
	Priority    uint8
	TimestampUS int64

	SourceAgent []byte // 16-byte UUID, nil if absent
	DestAgent   []byte // 16-byte UUID, nil if absent
	Seqnum      *uint32

	Annotations map[string]AnnotationValue
}

// DefaultMetaHeader returns the header the decoder starts from before
// reading the meta fields; its values match those StartUtterance
// encodes.
func DefaultMetaHeader() MetaHeader {
	return MetaHeader{
		Confidence:  1.0,
		Priority:    3,
		TimestampUS: 0,
		Annotations: map[string]AnnotationValue{},
	}
}

// DecodedEpoch is a single length-delimited, CRC-protected frame
// recovered from an epoch stream. CrcOK is a flag, not an error: a
// caller may still inspect Payload when CrcOK is false.
type DecodedEpoch struct {
	SeqNum  uint16
	Payload []byte
	CrcOK   bool
}
