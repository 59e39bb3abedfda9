package wire

import "testing"

func TestVarIntRoundTrip(t *testing.T) {
	vals := []uint32{0, 1, 127, 128, 16383, 16384, 0x1FFFFF, 0x200000, 0xFFFFFFF, 0x10000000, 0xFFFFFFFF}
	for _, v := range vals {
		enc := EncodeVarInt(v)
		got, n, err := DecodeVarInt(enc)
		if err != nil {
			t.Fatalf("DecodeVarInt(%v): %v", enc, err)
		}
		if got != v || n != len(enc) {
			t.Errorf("round-trip %d: got (%d, %d), want (%d, %d)", v, got, n, v, len(enc))
		}
	}
}

func TestVarIntMinimalWidth(t *testing.T) {
	cases := []struct {
		v    uint32
		want int
	}{
		{0, 1}, {127, 1}, {128, 2}, {16383, 2}, {16384, 3},
		{0x1FFFFF, 3}, {0x200000, 4}, {0xFFFFFFF, 4}, {0x10000000, 5},
	}
	for _, c := range cases {
		if got := len(EncodeVarInt(c.v)); got != c.want {
			t.Errorf("EncodeVarInt(%d) length = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestVarIntTruncated(t *testing.T) {
	full := EncodeVarInt(0x12345678)
	for n := 0; n < len(full); n++ {
		if _, _, err := DecodeVarInt(full[:n]); err == nil {
			t.Errorf("DecodeVarInt(%d bytes of %d): expected error", n, len(full))
		}
	}
}
