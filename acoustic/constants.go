/*
NAME
  constants.go

DESCRIPTION
  Acoustic (FSK) physical-layer constants: carrier frequencies, symbol
  timing, chirp envelopes, and decoder thresholds.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package acoustic implements the AILL acoustic physical layer: an
// 8-carrier FSK encoder/decoder that turns epoch bytes into audible
// PCM and back, bracketed by phase-correct linear chirp preambles.
package acoustic

// ── Carrier frequencies ──

const (
	baseFreq     = 600.0
	toneSpacing  = 100.0
	numCarriers  = 8
	loCarrierOff = 0
	hiCarrierOff = 4
	bitsPerNibble = 4
)

// CarrierFreqs lists the 8 active carriers: 600, 700, ..., 1300 Hz.
var CarrierFreqs = [numCarriers]float32{600, 700, 800, 900, 1000, 1100, 1200, 1300}

// ── Timing ──

const (
	symbolDuration = 0.05
	guardTime      = 0.01
	frameTime      = 0.06
)

// ── Sync chirp (rising: 300 -> 1800 Hz) ──

const (
	syncFreqStart = 300.0
	syncFreqEnd   = 1800.0
	syncDuration  = 0.15
)

// ── End chirp (falling: 1800 -> 300 Hz) ──

const (
	endFreqStart = 1800.0
	endFreqEnd   = 300.0
	endDuration  = 0.10
)

// ── Chirp envelope ──

const (
	chirpAttack  = 0.01
	chirpRelease = 0.01
)

// ── Data tone envelope ──

const (
	toneAttack    = 0.003
	toneAmplitude = 0.8
	toneRelease   = 0.003
	masterGain    = 0.15
)

// ── FFT / decoder ──

const (
	// FFTSize is the analysis window used by the decoder, in samples.
	FFTSize = 4096

	// AbsThreshold is the absolute floor below which an FFT magnitude
	// is considered silence, chosen for the encoder's signal levels
	// (peak amplitude around 0.12 after MASTER_GAIN).
	AbsThreshold = 0.005

	// DefaultSampleRate is used when no explicit rate is requested.
	DefaultSampleRate = 48000

	// MinSampleRate is the lowest rate at which the highest carrier
	// still sits safely below Nyquist.
	MinSampleRate = 4000

	// MaxEncodeBytes bounds a single Encode call. Not fixed by any
	// carried-over constant; chosen as MaxDecodeFrames/2, so a decoder
	// run against the frame budget below can always recover an
	// encoder's output in one pass.
	MaxEncodeBytes = 500

	// MaxDecodeFrames bounds how many symbol frames the decoder will
	// scan before giving up; each byte takes 2 frames.
	MaxDecodeFrames = 1000
)

// ── Decoder sync detection bands ──

type band struct{ lo, hi float32 }

var (
	syncLoBand = band{250, 550}
	syncHiBand = band{1400, 1900}
)

const (
	syncMinElapsedMS     = 60.0
	syncMaxElapsedMS     = 400.0
	symbolSampleFraction = 0.75
	minSymbols           = 4
)
