package wire

import "testing"

func TestFloat16RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.5, 1.0, -1.0, 3.25, 0.85} {
		enc := EncodeFloat16(v)
		got := DecodeFloat16([2]byte{enc[0], enc[1]})
		if diff := float64(got) - float64(v); diff > 0.001 || diff < -0.001 {
			t.Errorf("round-trip %v: got %v, diff %v exceeds 0.001", v, got, diff)
		}
	}
}
