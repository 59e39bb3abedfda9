/*
NAME
  acoustic_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acoustic

import (
	"math"
	"testing"
)

func TestEncodeProducesCorrectDuration(t *testing.T) {
	enc := NewEncoder()
	wireBytes := []byte{0x01, 0x02, 0x03}
	out, err := enc.Encode(wireBytes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := float32(syncDuration) + float32(len(wireBytes))*2*float32(frameTime) + float32(endDuration)
	if math.Abs(float64(out.Duration-want)) > 1e-6 {
		t.Errorf("duration = %v, want %v", out.Duration, want)
	}

	wantSamples := int(math.Ceil(float64(want * float32(out.SampleRate))))
	if len(out.Samples) != wantSamples {
		t.Errorf("len(samples) = %d, want %d", len(out.Samples), wantSamples)
	}
}

func TestEncodeEmptyFails(t *testing.T) {
	_, err := NewEncoder().Encode(nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestEncodeOversizeFails(t *testing.T) {
	_, err := NewEncoder().Encode(make([]byte, MaxEncodeBytes+1))
	if err == nil {
		t.Fatal("expected error for oversized input")
	}
}

func TestSamplesWithinRange(t *testing.T) {
	out, err := NewEncoder().Encode([]byte{0xFF, 0xAA, 0x55, 0x00})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i, s := range out.Samples {
		if s < -1.0 || s > 1.0 {
			t.Fatalf("sample %d = %v, out of [-1, 1]", i, s)
		}
	}
}

func TestSilentNibbleNearSilence(t *testing.T) {
	enc := NewEncoder()
	out, err := enc.Encode([]byte{0x00})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	sr := float64(out.SampleRate)
	dataStart := int(math.Round(syncDuration * sr))
	frameSamples := int(math.Round(frameTime * sr))

	var maxAbs float32
	for i := dataStart; i < dataStart+frameSamples*2 && i < len(out.Samples); i++ {
		v := out.Samples[i]
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}
	if maxAbs >= 0.01 {
		t.Errorf("max abs sample for 0x00 byte = %v, want < 0.01", maxAbs)
	}
}

func TestFreqToBin(t *testing.T) {
	bin := freqToBin(600.0, 48000)
	if bin != 51 {
		t.Errorf("freqToBin(600, 48000) = %d, want 51", bin)
	}
}

func TestReassembleNormalOrder(t *testing.T) {
	syms := []symbol{{halfHi, 0x4}, {halfLo, 0x2}}
	got := reassembleBytes(syms)
	if len(got) != 1 || got[0] != 0x42 {
		t.Errorf("reassembleBytes = %v, want [0x42]", got)
	}
}

func TestReassembleReversedOrder(t *testing.T) {
	syms := []symbol{{halfLo, 0x2}, {halfHi, 0x4}}
	got := reassembleBytes(syms)
	if len(got) != 1 || got[0] != 0x42 {
		t.Errorf("reassembleBytes = %v, want [0x42]", got)
	}
}

func TestReassembleSkipMismatch(t *testing.T) {
	syms := []symbol{{halfHi, 0xA}, {halfHi, 0xB}, {halfLo, 0x3}}
	got := reassembleBytes(syms)
	if len(got) != 1 || got[0] != 0xB3 {
		t.Errorf("reassembleBytes = %v, want [0xB3]", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	wireBytes := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}

	out, err := NewEncoder().Encode(wireBytes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := NewDecoder().Decode(out.Samples)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(decoded) < len(wireBytes) {
		t.Fatalf("decoded %d bytes, want at least %d", len(decoded), len(wireBytes))
	}
	for i, b := range wireBytes {
		if decoded[i] != b {
			t.Errorf("decoded[%d] = 0x%02X, want 0x%02X", i, decoded[i], b)
		}
	}
}

func TestDecodeTooShortFails(t *testing.T) {
	_, err := NewDecoder().Decode(make([]float32, FFTSize-1))
	if err == nil {
		t.Fatal("expected error for audio shorter than FFT window")
	}
}
