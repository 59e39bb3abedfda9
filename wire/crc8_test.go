package wire

import "testing"

func TestCRC8Vectors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want byte
	}{
		{"empty", nil, 0x00},
		{"check-string", []byte("123456789"), 0xF4},
	}
	for _, c := range cases {
		got := CRC8(c.in)
		if got != c.want {
			t.Errorf("%s: CRC8(%q) = 0x%02X, want 0x%02X", c.name, c.in, got, c.want)
		}
	}
}

func TestCRC8BitFlipDetected(t *testing.T) {
	msg := []byte("Hello AILL")
	want := CRC8(msg)
	flipped := append([]byte(nil), msg...)
	flipped[5] ^= 0x01
	if got := CRC8(flipped); got == want {
		t.Errorf("CRC8 unchanged after bit flip: got 0x%02X for both", got)
	}
}
