/*
NAME
  encode.go

DESCRIPTION
  Encodes AILL wire-format bytes into acoustic PCM audio: a rising
  sync chirp, two FSK symbol frames per byte, and a falling end chirp.

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
	"fmt"
	"math"

	"github.com/ausocean/aill"
)

// EncodedAudio is the result of acoustic encoding: mono f32 PCM in
// [-1, 1] plus the parameters it was synthesized with.
type EncodedAudio struct {
	Samples    []float32
	SampleRate int
	Duration   float32
}

// Encoder synthesizes PCM audio for AILL wire bytes.
type Encoder struct {
	sampleRate int
}

// NewEncoder returns an Encoder at DefaultSampleRate.
func NewEncoder() *Encoder { return &Encoder{sampleRate: DefaultSampleRate} }

// NewEncoderWithSampleRate returns an Encoder at the given rate. It
// panics if rate is below MinSampleRate, the same invariant the
// reference implementation enforces with an assertion: a rate that
// low cannot represent the highest carrier below Nyquist.
func NewEncoderWithSampleRate(rate int) *Encoder {
	if rate < MinSampleRate {
		panic(fmt.Sprintf("sample rate %d too low (minimum %d): Nyquist must exceed highest carrier", rate, MinSampleRate))
	}
	return &Encoder{sampleRate: rate}
}

// Encode turns wireBytes into PCM audio.
func (e *Encoder) Encode(wireBytes []byte) (*EncodedAudio, error) {
	if len(wireBytes) == 0 {
		return nil, aill.Errorf(aill.KindEncoder, "Empty input")
	}
	if len(wireBytes) > MaxEncodeBytes {
		return nil, aill.Errorf(aill.KindEncoder, "Input too large (%d bytes, maximum %d)", len(wireBytes), MaxEncodeBytes)
	}

	sr := float32(e.sampleRate)
	duration := float32(syncDuration) + float32(len(wireBytes))*2*float32(frameTime) + float32(endDuration)
	totalSamples := int(math.Ceil(float64(duration * sr)))
	samples := make([]float32, totalSamples)

	offset := e.writeChirp(samples, 0, syncFreqStart, syncFreqEnd, syncDuration)

	for _, b := range wireBytes {
		hi := (b >> 4) & 0x0F
		lo := b & 0x0F
		offset = e.writeSymbol(samples, offset, hi, hiCarrierOff)
		offset = e.writeSymbol(samples, offset, lo, loCarrierOff)
	}

	e.writeChirp(samples, offset, endFreqStart, endFreqEnd, endDuration)

	return &EncodedAudio{Samples: samples, SampleRate: e.sampleRate, Duration: duration}, nil
}

// writeChirp writes a phase-correct linear frequency sweep with a
// linear attack/release envelope, returning the offset just past it.
func (e *Encoder) writeChirp(samples []float32, start int, f0, f1, duration float64) int {
	sr := float64(e.sampleRate)
	numSamples := int(math.Round(duration * sr))
	attackSamples := maxInt(int(math.Round(chirpAttack*sr)), 1)
	releaseSamples := maxInt(int(math.Round(chirpRelease*sr)), 1)

	for i := 0; i < numSamples; i++ {
		if start+i >= len(samples) {
			break
		}
		t := float64(i) / sr

		phase := 2 * math.Pi * (f0*t + (f1-f0)*t*t/(2*duration))
		signal := math.Sin(phase)

		var env float64
		switch {
		case i < attackSamples:
			env = float64(i) / float64(attackSamples)
		case i >= numSamples-releaseSamples:
			env = float64(numSamples-1-i) / float64(releaseSamples)
		default:
			env = 1.0
		}

		samples[start+i] += float32(signal * env * masterGain)
	}

	return start + numSamples
}

// writeSymbol writes one FSK frame: the carriers set in nibble's bits
// are summed at carrierOffset+bit, each with a short attack/release
// envelope; unset bits contribute silence. Returns the offset past the
// full frame (symbol + guard).
func (e *Encoder) writeSymbol(samples []float32, start int, nibble byte, carrierOffset int) int {
	sr := float64(e.sampleRate)
	symSamples := int(math.Round(symbolDuration * sr))
	frameSamples := int(math.Round(frameTime * sr))
	attackSamples := maxInt(int(math.Round(toneAttack*sr)), 1)
	releaseSamples := maxInt(int(math.Round(toneRelease*sr)), 1)

	for bit := 0; bit < bitsPerNibble; bit++ {
		if nibble&(1<<uint(bit)) == 0 {
			continue
		}
		freq := float64(CarrierFreqs[carrierOffset+bit])

		for i := 0; i < symSamples; i++ {
			if start+i >= len(samples) {
				break
			}
			t := float64(i) / sr
			signal := math.Sin(2 * math.Pi * freq * t)

			var env float64
			switch {
			case i < attackSamples:
				env = toneAmplitude * float64(i) / float64(attackSamples)
			case i >= symSamples-releaseSamples:
				env = toneAmplitude * float64(symSamples-1-i) / float64(releaseSamples)
			default:
				env = toneAmplitude
			}

			samples[start+i] += float32(signal * env * masterGain)
		}
	}

	return start + frameSamples
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
