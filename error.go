/*
NAME
  error.go

DESCRIPTION
  error.go defines the closed error taxonomy shared by every AILL codec
  package: wire primitives, codebook lookups, the wire codec, the epoch
  framer and the acoustic codec all report failures through Error.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package aill defines the error taxonomy shared across the AILL codec
// packages (wire, codebook, codec, epoch, acoustic, wavio).
package aill

import (
	"errors"
	"fmt"
)

// Kind identifies which of the closed set of AILL failure modes an Error
// represents. The set is closed deliberately: callers are expected to
// switch on Kind exhaustively rather than match arbitrary error strings.
type Kind int

const (
	// KindInvalidOpCode means a byte was encountered where no AST node
	// could begin.
	KindInvalidOpCode Kind = iota
	// KindCrcMismatch means a computed CRC did not match a transmitted
	// one. Only used where a mismatch is raised rather than reported
	// as a flag (see epoch.DecodeEpoch, which reports crc_ok instead).
	KindCrcMismatch
	// KindUnexpectedEOF means a read ran past the end of its input.
	KindUnexpectedEOF
	// KindInvalidStructure means a structural invariant was violated:
	// a missing terminator, a malformed header, a sync chirp that
	// could not be found, and similar.
	KindInvalidStructure
	// KindInvalidVarInt means a variable-length integer's declared
	// width extended past the available input.
	KindInvalidVarInt
	// KindUTF8 means a string payload was not valid UTF-8.
	KindUTF8
	// KindEncoder means the encoder was asked to do something it
	// cannot: encode empty or oversize input, or a live-audio device
	// fault.
	KindEncoder
)

// Error is the single error type returned by every AILL codec package.
type Error struct {
	Kind Kind

	// Message carries free-form detail for Kind values that need it
	// (InvalidStructure, UTF8, Encoder).
	Message string

	// OpCode is set for KindInvalidOpCode.
	OpCode byte

	// Expected and Actual are set for KindCrcMismatch.
	Expected, Actual byte

	// Offset and Needed are set for KindUnexpectedEOF.
	Offset, Needed int
}

// Error implements the error interface, reproducing the reference
// implementation's display strings verbatim.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidOpCode:
		return fmt.Sprintf("Invalid opcode: 0x%02X", e.OpCode)
	case KindCrcMismatch:
		return fmt.Sprintf("CRC mismatch: expected 0x%02X, got 0x%02X", e.Expected, e.Actual)
	case KindUnexpectedEOF:
		return fmt.Sprintf("[offset %d] Unexpected end of data, need %d more bytes", e.Offset, e.Needed)
	case KindInvalidStructure:
		return fmt.Sprintf("Invalid structure: %s", e.Message)
	case KindInvalidVarInt:
		return "Invalid variable-length integer"
	case KindUTF8:
		return fmt.Sprintf("UTF-8 error: %s", e.Message)
	case KindEncoder:
		return fmt.Sprintf("Encoder error: %s", e.Message)
	default:
		return "unknown AILL error"
	}
}

// InvalidOpCode builds a KindInvalidOpCode Error.
func InvalidOpCode(code byte) *Error { return &Error{Kind: KindInvalidOpCode, OpCode: code} }

// CrcMismatch builds a KindCrcMismatch Error.
func CrcMismatch(expected, actual byte) *Error {
	return &Error{Kind: KindCrcMismatch, Expected: expected, Actual: actual}
}

// UnexpectedEOF builds a KindUnexpectedEOF Error.
func UnexpectedEOF(offset, needed int) *Error {
	return &Error{Kind: KindUnexpectedEOF, Offset: offset, Needed: needed}
}

// Errorf builds an Error of the given Kind with a formatted message. It is
// used for the Kind values that carry free-form text (InvalidStructure,
// UTF8, Encoder) as well as InvalidVarInt, whose message is ignored.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an AILL Error of the given Kind, unwrapping
// as necessary.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
