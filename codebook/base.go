/*
NAME
  base.go

DESCRIPTION
  The 256-entry base opcode table partitioned into categorical byte
  ranges: frame control, type markers, structure, quantifiers, logic,
  relational, temporal, modality, pragmatic acts, meta/annotations,
  arithmetic, reserved and escape codes.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package codebook holds the constant opcode and domain lookup tables
// used by the AILL wire codec: the 256-entry base table and the seven
// domain sub-codebooks (NAV-1, PERCEPT-1, MANIP-1, COMM-1, DIAG-1,
// PLAN-1, SAFETY-1).
package codebook

// CodeEntry describes one base opcode.
type CodeEntry struct {
	Code     byte
	Mnemonic string
	Category string
}

// Frame control 0x00-0x0F.
const (
	StartUtterance byte = 0x00
	EndUtterance   byte = 0x01
	Abort          byte = 0x02
	Pause          byte = 0x03
	Resume         byte = 0x04
	Retransmit     byte = 0x05
	AckEpoch       byte = 0x06
	NackEpoch      byte = 0x07
	SyncMark       byte = 0x08
	FragmentStart  byte = 0x09
	FragmentCont   byte = 0x0A
	FragmentEnd    byte = 0x0B
	EchoRequest    byte = 0x0C
	EchoReply      byte = 0x0D
)

// Type markers 0x10-0x1F.
const (
	TypeInt8      byte = 0x10
	TypeInt16     byte = 0x11
	TypeInt32     byte = 0x12
	TypeInt64     byte = 0x13
	TypeUint8     byte = 0x14
	TypeUint16    byte = 0x15
	TypeUint32    byte = 0x16
	TypeUint64    byte = 0x17
	TypeFloat16   byte = 0x18
	TypeFloat32   byte = 0x19
	TypeFloat64   byte = 0x1A
	TypeBool      byte = 0x1B
	TypeString    byte = 0x1C
	TypeBytes     byte = 0x1D
	TypeTimestamp byte = 0x1E
	TypeNull      byte = 0x1F
)

// Structure 0x20-0x2F.
const (
	BeginStruct byte = 0x20
	EndStruct   byte = 0x21
	FieldSep    byte = 0x22
	BeginList   byte = 0x23
	EndList     byte = 0x24
	BeginMap    byte = 0x25
	EndMap      byte = 0x26
	BeginTuple  byte = 0x27
	EndTuple    byte = 0x28
	FieldID     byte = 0x29
	BeginUnion  byte = 0x2A
	EndUnion    byte = 0x2B
	BeginOption byte = 0x2C
	EndOption   byte = 0x2D
	SchemaRef   byte = 0x2E
)

// Temporal 0x60-0x6F.
const (
	Past          byte = 0x60
	Present       byte = 0x61
	Future        byte = 0x62
	Duration      byte = 0x63
	TBefore       byte = 0x64
	TAfter        byte = 0x65
	TDuring       byte = 0x66
	TSimultaneous byte = 0x67
	TStarts       byte = 0x68
	TFinishes     byte = 0x69
	TOverlaps     byte = 0x6A
	TMeets        byte = 0x6B
	TElapsed      byte = 0x6C
	TNow          byte = 0x6D
	TDeadline     byte = 0x6E
)

// Modality 0x70-0x7F.
const (
	Certain        byte = 0x70
	Probable       byte = 0x71
	Possible       byte = 0x72
	Unlikely       byte = 0x73
	Uncertain      byte = 0x74
	Hypothetical   byte = 0x75
	Counterfactual byte = 0x76
	Obligatory     byte = 0x77
	Permitted      byte = 0x78
	Forbidden      byte = 0x79
	Inferred       byte = 0x7A
	Observed       byte = 0x7B
	Reported       byte = 0x7C
	Predicted      byte = 0x7D
	Desired        byte = 0x7E
	Undesired      byte = 0x7F
)

// Pragmatic acts 0x80-0x8F.
const (
	Query       byte = 0x80
	Assert      byte = 0x81
	Request     byte = 0x82
	Command     byte = 0x83
	Acknowledge byte = 0x84
	Reject      byte = 0x85
	Clarify     byte = 0x86
	Correct     byte = 0x87
	Propose     byte = 0x88
	Accept      byte = 0x89
	Warn        byte = 0x8A
	Promise     byte = 0x8B
	Inform      byte = 0x8C
	Suggest     byte = 0x8D
	Greet       byte = 0x8E
	Farewell    byte = 0x8F
)

// Meta & annotations 0x90-0x9F.
const (
	Confidence     byte = 0x90
	Priority       byte = 0x91
	SourceAgent    byte = 0x92
	DestAgent      byte = 0x93
	TimestampMeta  byte = 0x94
	Seqnum         byte = 0x95
	HashRef        byte = 0x96
	Topic          byte = 0x97
	ContextRef     byte = 0x98
	EpochBoundary  byte = 0x99
	Label          byte = 0x9A
	VersionTag     byte = 0x9B
	TraceID        byte = 0x9C
	Cost           byte = 0x9D
	TTL            byte = 0x9E
)

// Escape codes 0xF0-0xFF.
const (
	EscapeL1      byte = 0xF0
	EscapeL2      byte = 0xF1
	EscapeL3      byte = 0xF2
	LiteralBytes  byte = 0xF3
	CodebookRef   byte = 0xF4
	Extension     byte = 0xF5
	ExtAck        byte = 0xF6
	ExtNack       byte = 0xF7
	CodebookDef   byte = 0xF8
	CodebookAck   byte = 0xF9
	CodebookNack  byte = 0xFA
	StreamID      byte = 0xFB
	Xref          byte = 0xFC
	Comment       byte = 0xFD
	Nop           byte = 0xFE
)

// namedEntries lists every opcode with a defined mnemonic; everything
// else in the 256-entry space defaults to RESERVED/UNKNOWN, the same
// sparse-then-fill construction as the reference base codebook.
var namedEntries = []CodeEntry{
	{0x00, "START_UTTERANCE", "frame_control"}, {0x01, "END_UTTERANCE", "frame_control"},
	{0x02, "ABORT", "frame_control"}, {0x03, "PAUSE", "frame_control"},
	{0x04, "RESUME", "frame_control"}, {0x05, "RETRANSMIT", "frame_control"},
	{0x06, "ACK_EPOCH", "frame_control"}, {0x07, "NACK_EPOCH", "frame_control"},
	{0x08, "SYNC_MARK", "frame_control"}, {0x09, "FRAGMENT_START", "frame_control"},
	{0x0A, "FRAGMENT_CONT", "frame_control"}, {0x0B, "FRAGMENT_END", "frame_control"},
	{0x0C, "ECHO_REQUEST", "frame_control"}, {0x0D, "ECHO_REPLY", "frame_control"},
	{0x0E, "RESERVED_0E", "frame_control"}, {0x0F, "RESERVED_0F", "frame_control"},

	{0x10, "TYPE_INT8", "type_marker"}, {0x11, "TYPE_INT16", "type_marker"},
	{0x12, "TYPE_INT32", "type_marker"}, {0x13, "TYPE_INT64", "type_marker"},
	{0x14, "TYPE_UINT8", "type_marker"}, {0x15, "TYPE_UINT16", "type_marker"},
	{0x16, "TYPE_UINT32", "type_marker"}, {0x17, "TYPE_UINT64", "type_marker"},
	{0x18, "TYPE_FLOAT16", "type_marker"}, {0x19, "TYPE_FLOAT32", "type_marker"},
	{0x1A, "TYPE_FLOAT64", "type_marker"}, {0x1B, "TYPE_BOOL", "type_marker"},
	{0x1C, "TYPE_STRING", "type_marker"}, {0x1D, "TYPE_BYTES", "type_marker"},
	{0x1E, "TYPE_TIMESTAMP", "type_marker"}, {0x1F, "TYPE_NULL", "type_marker"},

	{0x20, "BEGIN_STRUCT", "structure"}, {0x21, "END_STRUCT", "structure"},
	{0x22, "FIELD_SEP", "structure"}, {0x23, "BEGIN_LIST", "structure"},
	{0x24, "END_LIST", "structure"}, {0x25, "BEGIN_MAP", "structure"},
	{0x26, "END_MAP", "structure"}, {0x27, "BEGIN_TUPLE", "structure"},
	{0x28, "END_TUPLE", "structure"}, {0x29, "FIELD_ID", "structure"},
	{0x2A, "BEGIN_UNION", "structure"}, {0x2B, "END_UNION", "structure"},
	{0x2C, "BEGIN_OPTION", "structure"}, {0x2D, "END_OPTION", "structure"},
	{0x2E, "SCHEMA_REF", "structure"}, {0x2F, "RESERVED_2F", "structure"},

	{0x30, "FORALL", "quantifier"}, {0x31, "EXISTS", "quantifier"},
	{0x32, "EXISTS_UNIQUE", "quantifier"}, {0x33, "EXACTLY_N", "quantifier"},
	{0x34, "AT_LEAST_N", "quantifier"}, {0x35, "AT_MOST_N", "quantifier"},
	{0x36, "COUNT", "quantifier"}, {0x37, "ZERO", "quantifier"},
	{0x38, "ONE", "quantifier"}, {0x39, "FEW", "quantifier"},
	{0x3A, "MANY", "quantifier"}, {0x3B, "ALL", "quantifier"},
	{0x3C, "NONE_Q", "quantifier"}, {0x3D, "MOST", "quantifier"},
	{0x3E, "PROPORTION", "quantifier"}, {0x3F, "RESERVED_3F", "quantifier"},

	{0x40, "AND", "logic"}, {0x41, "OR", "logic"}, {0x42, "NOT", "logic"},
	{0x43, "XOR", "logic"}, {0x44, "IMPLIES", "logic"}, {0x45, "IFF", "logic"},
	{0x46, "NAND", "logic"}, {0x47, "NOR", "logic"}, {0x48, "IF_THEN_ELSE", "logic"},
	{0x49, "COALESCE", "logic"}, {0x4A, "IS_NULL", "logic"}, {0x4B, "IS_TYPE", "logic"},
	{0x4C, "RESERVED_4C", "logic"}, {0x4D, "RESERVED_4D", "logic"},
	{0x4E, "RESERVED_4E", "logic"}, {0x4F, "RESERVED_4F", "logic"},

	{0x50, "EQ", "relational"}, {0x51, "NEQ", "relational"}, {0x52, "LT", "relational"},
	{0x53, "GT", "relational"}, {0x54, "LTE", "relational"}, {0x55, "GTE", "relational"},
	{0x56, "APPROX", "relational"}, {0x57, "CONTAINS", "relational"},
	{0x58, "SUBSET", "relational"}, {0x59, "SUPERSET", "relational"},
	{0x5A, "IN_RANGE", "relational"}, {0x5B, "MATCHES", "relational"},
	{0x5C, "STARTS_WITH", "relational"}, {0x5D, "ENDS_WITH", "relational"},
	{0x5E, "BETWEEN", "relational"}, {0x5F, "RESERVED_5F", "relational"},

	{0x60, "PAST", "temporal"}, {0x61, "PRESENT", "temporal"}, {0x62, "FUTURE", "temporal"},
	{0x63, "DURATION", "temporal"}, {0x64, "T_BEFORE", "temporal"}, {0x65, "T_AFTER", "temporal"},
	{0x66, "T_DURING", "temporal"}, {0x67, "T_SIMULTANEOUS", "temporal"},
	{0x68, "T_STARTS", "temporal"}, {0x69, "T_FINISHES", "temporal"},
	{0x6A, "T_OVERLAPS", "temporal"}, {0x6B, "T_MEETS", "temporal"},
	{0x6C, "T_ELAPSED", "temporal"}, {0x6D, "T_NOW", "temporal"},
	{0x6E, "T_DEADLINE", "temporal"}, {0x6F, "RESERVED_6F", "temporal"},

	{0x70, "CERTAIN", "modality"}, {0x71, "PROBABLE", "modality"}, {0x72, "POSSIBLE", "modality"},
	{0x73, "UNLIKELY", "modality"}, {0x74, "UNCERTAIN", "modality"},
	{0x75, "HYPOTHETICAL", "modality"}, {0x76, "COUNTERFACTUAL", "modality"},
	{0x77, "OBLIGATORY", "modality"}, {0x78, "PERMITTED", "modality"},
	{0x79, "FORBIDDEN", "modality"}, {0x7A, "INFERRED", "modality"},
	{0x7B, "OBSERVED", "modality"}, {0x7C, "REPORTED", "modality"},
	{0x7D, "PREDICTED", "modality"}, {0x7E, "DESIRED", "modality"},
	{0x7F, "UNDESIRED", "modality"},

	{0x80, "QUERY", "pragmatic"}, {0x81, "ASSERT", "pragmatic"}, {0x82, "REQUEST", "pragmatic"},
	{0x83, "COMMAND", "pragmatic"}, {0x84, "ACKNOWLEDGE", "pragmatic"}, {0x85, "REJECT", "pragmatic"},
	{0x86, "CLARIFY", "pragmatic"}, {0x87, "CORRECT", "pragmatic"}, {0x88, "PROPOSE", "pragmatic"},
	{0x89, "ACCEPT", "pragmatic"}, {0x8A, "WARN", "pragmatic"}, {0x8B, "PROMISE", "pragmatic"},
	{0x8C, "INFORM", "pragmatic"}, {0x8D, "SUGGEST", "pragmatic"}, {0x8E, "GREET", "pragmatic"},
	{0x8F, "FAREWELL", "pragmatic"},

	{0x90, "CONFIDENCE", "meta"}, {0x91, "PRIORITY", "meta"}, {0x92, "SOURCE_AGENT", "meta"},
	{0x93, "DEST_AGENT", "meta"}, {0x94, "TIMESTAMP_META", "meta"}, {0x95, "SEQNUM", "meta"},
	{0x96, "HASH_REF", "meta"}, {0x97, "TOPIC", "meta"}, {0x98, "CONTEXT_REF", "meta"},
	{0x99, "EPOCH_BOUNDARY", "meta"}, {0x9A, "LABEL", "meta"}, {0x9B, "VERSION_TAG", "meta"},
	{0x9C, "TRACE_ID", "meta"}, {0x9D, "COST", "meta"}, {0x9E, "TTL", "meta"},
	{0x9F, "RESERVED_9F", "meta"},

	{0xA0, "ADD", "arithmetic"}, {0xA1, "SUB", "arithmetic"}, {0xA2, "MUL", "arithmetic"},
	{0xA3, "DIV", "arithmetic"}, {0xA4, "MOD", "arithmetic"}, {0xA5, "POW", "arithmetic"},
	{0xA6, "SQRT", "arithmetic"}, {0xA7, "LOG", "arithmetic"}, {0xA8, "LOG10", "arithmetic"},
	{0xA9, "LOG2", "arithmetic"}, {0xAA, "ABS", "arithmetic"}, {0xAB, "NEG", "arithmetic"},
	{0xAC, "ROUND", "arithmetic"}, {0xAD, "FLOOR", "arithmetic"}, {0xAE, "CEIL", "arithmetic"},
	{0xAF, "TRUNC", "arithmetic"}, {0xB0, "MIN", "arithmetic"}, {0xB1, "MAX", "arithmetic"},
	{0xB2, "SUM", "arithmetic"}, {0xB3, "MEAN", "arithmetic"}, {0xB4, "MEDIAN", "arithmetic"},
	{0xB5, "STDDEV", "arithmetic"}, {0xB6, "VARIANCE", "arithmetic"},
	{0xB7, "DOT_PRODUCT", "arithmetic"}, {0xB8, "CROSS_PRODUCT", "arithmetic"},
	{0xB9, "NORM", "arithmetic"}, {0xBA, "CLAMP", "arithmetic"}, {0xBB, "LERP", "arithmetic"},
	{0xBC, "SIN", "arithmetic"}, {0xBD, "COS", "arithmetic"}, {0xBE, "ATAN2", "arithmetic"},
	{0xBF, "DISTANCE", "arithmetic"},

	{0xF0, "ESCAPE_L1", "escape"}, {0xF1, "ESCAPE_L2", "escape"}, {0xF2, "ESCAPE_L3", "escape"},
	{0xF3, "LITERAL_BYTES", "escape"}, {0xF4, "CODEBOOK_REF", "escape"},
	{0xF5, "EXTENSION", "escape"}, {0xF6, "EXT_ACK", "escape"}, {0xF7, "EXT_NACK", "escape"},
	{0xF8, "CODEBOOK_DEF", "escape"}, {0xF9, "CODEBOOK_ACK", "escape"},
	{0xFA, "CODEBOOK_NACK", "escape"}, {0xFB, "STREAM_ID", "escape"},
	{0xFC, "XREF", "escape"}, {0xFD, "COMMENT", "escape"}, {0xFE, "NOP", "escape"},
	{0xFF, "RESERVED_FF", "escape"},
}

// Base is the complete 256-entry opcode table, indexed directly by
// opcode value. Unlisted opcodes in 0xC0-0xEF fall back to a RESERVED
// entry; any other gap falls back to UNKNOWN.
var Base [256]CodeEntry

func init() {
	for i := range Base {
		Base[i] = CodeEntry{Code: byte(i), Mnemonic: "UNKNOWN", Category: "unknown"}
	}
	for r := 0xC0; r <= 0xEF; r++ {
		Base[r] = CodeEntry{Code: byte(r), Mnemonic: "RESERVED", Category: "reserved"}
	}
	for _, e := range namedEntries {
		Base[e.Code] = e
	}
}

// MnemonicFor returns the mnemonic name for a base codebook byte.
func MnemonicFor(code byte) string { return Base[code].Mnemonic }
