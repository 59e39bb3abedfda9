/*
NAME
  cursor.go

DESCRIPTION
  A forward-only byte reader and writer over an in-memory buffer, the
  slice-backed analogue of codec/h264/h264dec/bits.BitReader adapted from
  bit-level io.Reader wrapping to byte-level slice indexing.

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

import (
	"unicode/utf8"

	"github.com/ausocean/aill"
)

// Reader is a forward-only cursor over a byte slice with big-endian
// integer, length-prefixed string/bytes, and fixed-width UUID helpers.
// Reads past the end of data fail with a KindUnexpectedEOF Error
// naming the offset and the number of bytes that were needed, except
// ReadVarInt, which fails with KindInvalidVarInt.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential reading.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Peek returns the next byte without advancing the cursor.
func (r *Reader) Peek() (byte, bool) {
	if r.Remaining() < 1 {
		return 0, false
	}
	return r.data[r.pos], true
}

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return aill.UnexpectedEOF(r.pos, n-r.Remaining())
	}
	return nil
}

// ReadByte reads one byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadN reads n raw bytes.
func (r *Reader) ReadN(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint16 reads a big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadN(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadN(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// ReadUint64 reads a big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadN(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}

// ReadInt64 reads a big-endian two's-complement int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat16 reads a binary16 value and widens it to float32.
func (r *Reader) ReadFloat16() (float32, error) {
	b, err := r.ReadN(2)
	if err != nil {
		return 0, err
	}
	return DecodeFloat16([2]byte{b[0], b[1]}), nil
}

// ReadFloat32 reads a big-endian IEEE-754 binary32 value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return float32FromBits(v), nil
}

// ReadFloat64 reads a big-endian IEEE-754 binary64 value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return float64FromBits(v), nil
}

// ReadString reads a u16-length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	b, err := r.ReadN(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", aill.Errorf(aill.KindUTF8, "invalid UTF-8 in string payload")
	}
	return string(b), nil
}

// ReadBytes reads a u16-length-prefixed raw byte payload.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	return r.ReadN(int(n))
}

// ReadUUID reads a fixed 16-byte identifier.
func (r *Reader) ReadUUID() ([16]byte, error) {
	var out [16]byte
	b, err := r.ReadN(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadVarInt reads a variable-length unsigned integer.
func (r *Reader) ReadVarInt() (uint32, error) {
	v, n, err := DecodeVarInt(r.data[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// Writer accumulates encoded bytes. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated byte slice.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) *Writer {
	w.buf = append(w.buf, b)
	return w
}

// Write appends raw bytes.
func (w *Writer) Write(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// WriteUint16 appends a big-endian uint16.
func (w *Writer) WriteUint16(v uint16) *Writer {
	return w.Write([]byte{byte(v >> 8), byte(v)})
}

// WriteUint32 appends a big-endian uint32.
func (w *Writer) WriteUint32(v uint32) *Writer {
	return w.Write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// WriteUint64 appends a big-endian uint64.
func (w *Writer) WriteUint64(v uint64) *Writer {
	return w.Write([]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	})
}

// WriteInt64 appends a big-endian two's-complement int64.
func (w *Writer) WriteInt64(v int64) *Writer { return w.WriteUint64(uint64(v)) }

// WriteFloat16 appends a big-endian binary16 value.
func (w *Writer) WriteFloat16(v float32) *Writer { return w.Write(EncodeFloat16(v)) }

// WriteFloat32 appends a big-endian IEEE-754 binary32 value.
func (w *Writer) WriteFloat32(v float32) *Writer { return w.WriteUint32(float32Bits(v)) }

// WriteFloat64 appends a big-endian IEEE-754 binary64 value.
func (w *Writer) WriteFloat64(v float64) *Writer { return w.WriteUint64(float64Bits(v)) }

// WriteString appends a u16-length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) *Writer {
	w.WriteUint16(uint16(len(s)))
	return w.Write([]byte(s))
}

// WriteBytes appends a u16-length-prefixed raw byte payload.
func (w *Writer) WriteBytes(b []byte) *Writer {
	w.WriteUint16(uint16(len(b)))
	return w.Write(b)
}

// WriteUUID appends a fixed 16-byte identifier.
func (w *Writer) WriteUUID(id [16]byte) *Writer { return w.Write(id[:]) }

// WriteVarInt appends a variable-length unsigned integer.
func (w *Writer) WriteVarInt(v uint32) *Writer { return w.Write(EncodeVarInt(v)) }
