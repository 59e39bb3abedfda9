/*
NAME
  decode.go

DESCRIPTION
  Decodes acoustic PCM audio back into AILL wire-format bytes: sync
  chirp detection, adaptive tone thresholding, per-symbol FFT analysis,
  and nibble-pair byte reassembly.

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
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/ausocean/aill"
)

// half identifies which nibble of a byte a symbol carries.
type half int

const (
	halfHi half = iota
	halfLo
)

// symbol is one decoded FSK tone: which half it belongs to and its
// 4-bit value.
type symbol struct {
	half  half
	value byte
}

// Decoder recovers wire bytes from acoustic PCM.
type Decoder struct {
	sampleRate int
	hannWindow []float64
}

// NewDecoder returns a Decoder at DefaultSampleRate.
func NewDecoder() *Decoder { return NewDecoderWithSampleRate(DefaultSampleRate) }

// NewDecoderWithSampleRate returns a Decoder at the given rate,
// precomputing the Hann analysis window. It panics if rate is below
// MinSampleRate, the same invariant NewEncoderWithSampleRate enforces:
// a rate that low cannot represent the highest carrier below Nyquist.
func NewDecoderWithSampleRate(rate int) *Decoder {
	if rate < MinSampleRate {
		panic(fmt.Sprintf("sample rate %d too low (minimum %d): Nyquist must exceed highest carrier", rate, MinSampleRate))
	}
	return &Decoder{sampleRate: rate, hannWindow: window.Hann(FFTSize)}
}

// Decode recovers the original wire bytes from samples.
func (d *Decoder) Decode(samples []float32) ([]byte, error) {
	if len(samples) < FFTSize {
		return nil, aill.Errorf(aill.KindInvalidStructure, "Audio too short for FFT analysis")
	}

	dataStart, err := d.findSync(samples)
	if err != nil {
		return nil, err
	}

	threshold := d.computeToneThreshold(samples, dataStart)

	syms := d.decodeSymbolsFixed(samples, dataStart, threshold)

	decoded := reassembleBytes(syms)
	if len(decoded) == 0 {
		return nil, aill.Errorf(aill.KindInvalidStructure, "No bytes recovered from audio")
	}
	return decoded, nil
}

// findSync locates where symbol data begins by detecting the rising
// sync chirp's low-then-high energy signature, then its end.
func (d *Decoder) findSync(samples []float32) (int, error) {
	sr := float64(d.sampleRate)
	hop := int(math.Round(0.008 * sr))
	if hop < 1 {
		hop = 1
	}

	type frameEnergy struct {
		pos    int
		energy float32
	}
	var loEnergies, hiEnergies []frameEnergy

	for pos := 0; pos+FFTSize <= len(samples); pos += hop {
		mags := d.computeMagnitudes(samples[pos : pos+FFTSize])
		lo := bandEnergy(mags, syncLoBand, d.sampleRate)
		hi := bandEnergy(mags, syncHiBand, d.sampleRate)
		loEnergies = append(loEnergies, frameEnergy{pos, lo})
		hiEnergies = append(hiEnergies, frameEnergy{pos, hi})
	}

	if len(loEnergies) == 0 {
		return 0, aill.Errorf(aill.KindInvalidStructure, "No significant energy — cannot find sync chirp")
	}

	var maxLo, maxHi float32
	for i := range loEnergies {
		if loEnergies[i].energy > maxLo {
			maxLo = loEnergies[i].energy
		}
		if hiEnergies[i].energy > maxHi {
			maxHi = hiEnergies[i].energy
		}
	}
	if maxLo < 1e-7 || maxHi < 1e-7 {
		return 0, aill.Errorf(aill.KindInvalidStructure, "No significant energy — cannot find sync chirp")
	}

	loThresh := maxLo * 0.3
	hiThresh := maxHi * 0.3

	chirpStartIdx := -1
	for i := range loEnergies {
		if loEnergies[i].energy > loThresh && hiEnergies[i].energy < hiThresh {
			chirpStartIdx = i
			break
		}
	}
	if chirpStartIdx < 0 {
		return 0, aill.Errorf(aill.KindInvalidStructure, "Could not detect sync chirp start")
	}
	chirpStartPos := loEnergies[chirpStartIdx].pos

	chirpEndIdx := -1
	for i := chirpStartIdx; i < len(hiEnergies); i++ {
		elapsedMS := float64(hiEnergies[i].pos-chirpStartPos) / sr * 1000.0
		if hiEnergies[i].energy > hiThresh && elapsedMS > syncMinElapsedMS && elapsedMS < syncMaxElapsedMS {
			chirpEndIdx = i
			break
		}
	}
	if chirpEndIdx < 0 {
		return 0, aill.Errorf(aill.KindInvalidStructure, "Could not detect sync chirp end")
	}
	chirpEndPos := hiEnergies[chirpEndIdx].pos + FFTSize/2

	syncBased := chirpStartPos + int(math.Round(syncDuration*sr))
	dataStart := syncBased
	if chirpEndPos > dataStart {
		dataStart = chirpEndPos
	}
	return dataStart, nil
}

// computeToneThreshold samples the first 20 symbol frames to estimate
// an adaptive per-carrier activity threshold from their magnitude
// distribution.
func (d *Decoder) computeToneThreshold(samples []float32, dataStart int) float32 {
	sr := float64(d.sampleRate)
	frameSamples := int(math.Round(frameTime * sr))
	symCenterOffset := int(math.Round(symbolDuration * sr / 2))

	var allMags []float32
	for n := 0; n < 20; n++ {
		center := dataStart + n*frameSamples + symCenterOffset
		start := center - FFTSize/2
		if start < 0 || start+FFTSize > len(samples) {
			break
		}
		mags := d.computeMagnitudes(samples[start : start+FFTSize])
		for _, f := range CarrierFreqs {
			allMags = append(allMags, getBinMag(mags, float64(f), d.sampleRate))
		}
	}

	if len(allMags) == 0 {
		return AbsThreshold
	}

	sort.Slice(allMags, func(i, j int) bool { return allMags[i] < allMags[j] })
	median := allMags[len(allMags)/2]
	p85Idx := int(float64(len(allMags)) * 0.85)
	if p85Idx >= len(allMags) {
		p85Idx = len(allMags) - 1
	}
	p85 := allMags[p85Idx]

	var threshold float32
	switch {
	case p85 > median*3.0 && median > 0.0:
		threshold = (median*2.0 + p85) / 4.0
	case p85 > AbsThreshold*2.0:
		threshold = p85 * 0.4
	default:
		threshold = AbsThreshold
	}

	if threshold < AbsThreshold {
		threshold = AbsThreshold
	}
	return threshold
}

// decodeSymbolsFixed walks fixed-duration symbol frames from
// dataStart, classifying each as a tone symbol or (when below
// threshold or silent) as a gap, and fills each gap itself with a
// zero nibble whose parity matches the frame's position.
func (d *Decoder) decodeSymbolsFixed(samples []float32, dataStart int, threshold float32) []symbol {
	sr := float64(d.sampleRate)
	frameSamples := int(math.Round(frameTime * sr))
	symCenterOffset := int(math.Round(symbolDuration * sr / 2))

	frameResults := make([]*symbol, 0, MaxDecodeFrames)

	for n := 0; n < MaxDecodeFrames; n++ {
		center := dataStart + n*frameSamples + symCenterOffset
		start := center - FFTSize/2
		if start < 0 || start+FFTSize > len(samples) {
			break
		}

		mags := d.computeMagnitudes(samples[start : start+FFTSize])
		hiBand := bandEnergy(mags, syncHiBand, d.sampleRate)

		var carrierMags [numCarriers]float32
		var maxCarrier float32
		for i, f := range CarrierFreqs {
			m := getBinMag(mags, float64(f), d.sampleRate)
			carrierMags[i] = m
			if m > maxCarrier {
				maxCarrier = m
			}
		}

		if len(frameResults) > 2 && hiBand > threshold && maxCarrier < threshold*1.5 {
			break
		}

		frameResults = append(frameResults, decodeToneSymbol(carrierMags, threshold))
	}

	lastToneIdx := 0
	for i := len(frameResults) - 1; i >= 0; i-- {
		if frameResults[i] != nil {
			lastToneIdx = i
			break
		}
	}

	var dataEnd int
	if lastToneIdx+1 < len(frameResults) {
		if lastToneIdx%2 == 0 {
			dataEnd = lastToneIdx + 2
		} else {
			dataEnd = lastToneIdx + 1
		}
		if dataEnd > len(frameResults) {
			dataEnd = len(frameResults)
		}
	} else {
		dataEnd = len(frameResults)
	}

	syms := make([]symbol, 0, dataEnd)
	for n := 0; n < dataEnd; n++ {
		if frameResults[n] != nil {
			syms = append(syms, *frameResults[n])
			continue
		}
		h := halfHi
		if n%2 != 0 {
			h = halfLo
		}
		syms = append(syms, symbol{half: h, value: 0})
	}
	return syms
}

// computeMagnitudes applies the Hann window and returns the first
// half of the FFT magnitude spectrum, scaled to match tone amplitude.
func (d *Decoder) computeMagnitudes(frame []float32) []float32 {
	windowed := make([]float64, FFTSize)
	for i, s := range frame {
		windowed[i] = float64(s) * d.hannWindow[i]
	}
	spectrum := fft.FFTReal(windowed)

	out := make([]float32, FFTSize/2)
	scale := 2.0 / float64(FFTSize)
	for i := 0; i < FFTSize/2; i++ {
		out[i] = float32(cmplxAbs(spectrum[i]) * scale)
	}
	return out
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func freqToBin(freq float64, sampleRate int) int {
	return int(math.Round(freq * FFTSize / float64(sampleRate)))
}

// bandEnergy averages magnitude across the bins spanning [b.lo, b.hi].
func bandEnergy(mags []float32, b band, sampleRate int) float32 {
	loBin := freqToBin(float64(b.lo), sampleRate)
	hiBin := freqToBin(float64(b.hi), sampleRate)
	if loBin < 0 {
		loBin = 0
	}
	if hiBin >= len(mags) {
		hiBin = len(mags) - 1
	}
	if loBin > hiBin {
		return 0
	}
	var sum float32
	count := 0
	for i := loBin; i <= hiBin; i++ {
		sum += mags[i]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float32(count)
}

// getBinMag returns the peak magnitude of freq's bin and its
// immediate neighbors, to tolerate small frequency drift.
func getBinMag(mags []float32, freq float64, sampleRate int) float32 {
	bin := freqToBin(freq, sampleRate)
	var peak float32
	for _, b := range []int{bin - 1, bin, bin + 1} {
		if b < 0 || b >= len(mags) {
			continue
		}
		if mags[b] > peak {
			peak = mags[b]
		}
	}
	return peak
}

// decodeToneSymbol classifies one frame's 8 carrier magnitudes into a
// symbol, resolving a hi/lo collision by comparing aggregate band
// strength. Returns nil if neither half is active.
func decodeToneSymbol(carrierMags [numCarriers]float32, threshold float32) *symbol {
	var loAny, hiAny bool
	var loNibble, hiNibble byte
	var loStrength, hiStrength float32

	for i := 0; i < 4; i++ {
		loStrength += carrierMags[loCarrierOff+i]
		if carrierMags[loCarrierOff+i] > threshold {
			loAny = true
			loNibble |= 1 << uint(i)
		}
	}
	for i := 0; i < 4; i++ {
		hiStrength += carrierMags[hiCarrierOff+i]
		if carrierMags[hiCarrierOff+i] > threshold {
			hiAny = true
			hiNibble |= 1 << uint(i)
		}
	}

	switch {
	case !loAny && !hiAny:
		return nil
	case hiAny && !loAny:
		return &symbol{half: halfHi, value: hiNibble}
	case loAny && !hiAny:
		return &symbol{half: halfLo, value: loNibble}
	default:
		if hiStrength > loStrength {
			return &symbol{half: halfHi, value: hiNibble}
		}
		return &symbol{half: halfLo, value: loNibble}
	}
}

// reassembleBytes pairs adjacent Hi/Lo symbols into bytes, accepting
// either order and skipping a symbol when its neighbor doesn't
// complete a pair.
func reassembleBytes(syms []symbol) []byte {
	var out []byte
	i := 0
	for i < len(syms) {
		if i+1 >= len(syms) {
			break
		}
		s1, s2 := syms[i], syms[i+1]
		switch {
		case s1.half == halfHi && s2.half == halfLo:
			out = append(out, (s1.value<<4)|s2.value)
			i += 2
		case s1.half == halfLo && s2.half == halfHi:
			out = append(out, (s2.value<<4)|s1.value)
			i += 2
		default:
			i++
		}
	}
	return out
}
