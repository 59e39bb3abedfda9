package wavio

import (
	"math"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	samples := make([]float32, 1000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	data, err := Write(samples, 48000)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, rate, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rate != 48000 {
		t.Errorf("rate = %d, want 48000", rate)
	}
	if len(got) != len(samples) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(samples))
	}
	for i := range samples {
		if math.Abs(float64(got[i]-samples[i])) > 1e-3 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	data, err := Write(nil, 48000)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty WAV header for empty sample set")
	}
}
