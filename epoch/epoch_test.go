package epoch

import (
	"bytes"
	"testing"
)

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.Write([]byte("hello"))
	b.Write([]byte(" world"))
	epochs := b.Epochs()
	if len(epochs) != 1 {
		t.Fatalf("got %d epochs, want 1", len(epochs))
	}

	ep, consumed, err := DecodeEpoch(epochs[0], 0)
	if err != nil {
		t.Fatalf("DecodeEpoch: %v", err)
	}
	if consumed != len(epochs[0]) {
		t.Errorf("consumed = %d, want %d", consumed, len(epochs[0]))
	}
	if !ep.CrcOK {
		t.Error("CrcOK = false, want true")
	}
	if !bytes.Equal(ep.Payload, []byte("hello world")) {
		t.Errorf("payload = %q, want %q", ep.Payload, "hello world")
	}
	if ep.SeqNum != 0 {
		t.Errorf("seqnum = %d, want 0", ep.SeqNum)
	}
}

func TestBuilderFlushesAtMaxPayload(t *testing.T) {
	b := NewBuilder()
	b.Write(make([]byte, MaxEpochPayload))
	b.Write([]byte("overflow"))
	epochs := b.Epochs()
	if len(epochs) != 2 {
		t.Fatalf("got %d epochs, want 2", len(epochs))
	}
}

func TestDecodeEpochCorruptedCRC(t *testing.T) {
	b := NewBuilder()
	b.Write([]byte("data"))
	epochs := b.Epochs()
	corrupted := append([]byte(nil), epochs[0]...)
	corrupted[len(corrupted)-1] ^= 0xFF

	ep, _, err := DecodeEpoch(corrupted, 0)
	if err != nil {
		t.Fatalf("DecodeEpoch: %v", err)
	}
	if ep.CrcOK {
		t.Error("CrcOK = true, want false after corrupting the checksum byte")
	}
}

func TestDecodeEpochShortInput(t *testing.T) {
	if _, _, err := DecodeEpoch([]byte{0x00, 0x01}, 0); err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestDecodeAllMultipleFrames(t *testing.T) {
	b := NewBuilder()
	b.Write([]byte("one"))
	b.Flush()
	b.Write([]byte("two"))
	data := append(append([]byte(nil), b.Epochs()[0]...), b.Epochs()[1]...)

	eps, err := DecodeAll(data)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(eps) != 2 {
		t.Fatalf("got %d epochs, want 2", len(eps))
	}
	if eps[0].SeqNum != 0 || eps[1].SeqNum != 1 {
		t.Errorf("seqnums = %d, %d, want 0, 1", eps[0].SeqNum, eps[1].SeqNum)
	}
}
