package wire

import "testing"

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteByte(0x42).
		WriteUint16(0xBEEF).
		WriteUint32(0xDEADBEEF).
		WriteInt64(-12345).
		WriteFloat32(3.5).
		WriteString("hello").
		WriteBytes([]byte{1, 2, 3}).
		WriteVarInt(200)

	r := NewReader(w.Bytes())
	if b, err := r.ReadByte(); err != nil || b != 0x42 {
		t.Fatalf("ReadByte: %v, %v", b, err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 0xBEEF {
		t.Fatalf("ReadUint16: %v, %v", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadUint32: %v, %v", v, err)
	}
	if v, err := r.ReadInt64(); err != nil || v != -12345 {
		t.Fatalf("ReadInt64: %v, %v", v, err)
	}
	if v, err := r.ReadFloat32(); err != nil || v != 3.5 {
		t.Fatalf("ReadFloat32: %v, %v", v, err)
	}
	if s, err := r.ReadString(); err != nil || s != "hello" {
		t.Fatalf("ReadString: %v, %v", s, err)
	}
	if b, err := r.ReadBytes(); err != nil || string(b) != "\x01\x02\x03" {
		t.Fatalf("ReadBytes: %v, %v", b, err)
	}
	if v, err := r.ReadVarInt(); err != nil || v != 200 {
		t.Fatalf("ReadVarInt: %v, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.ReadUint32(); err == nil {
		t.Fatal("expected error reading past end")
	}
}
