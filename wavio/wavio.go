/*
NAME
  wavio.go

DESCRIPTION
  Reads and writes mono float32 PCM as 16-bit WAV files, the on-disk
  container for acoustically-encoded AILL signals.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wavio converts between mono float32 PCM slices and WAV file
// bytes, so acoustic.EncodedAudio can be saved, inspected, and
// reloaded with ordinary tools.
package wavio

import (
	"bytes"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ausocean/aill"
)

const (
	bitDepth  = 16
	wavFormat = 1 // PCM
	maxInt16  = 32767
)

// writeSeeker implements a memory-backed io.WriteSeeker, the
// interface wav.NewEncoder requires for writing its header's data
// length back after all samples are known.
type writeSeeker struct {
	buf []byte
	pos int
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	minCap := ws.pos + len(p)
	if minCap > cap(ws.buf) {
		buf2 := make([]byte, len(ws.buf), minCap+len(p))
		copy(buf2, ws.buf)
		ws.buf = buf2
	}
	if minCap > len(ws.buf) {
		ws.buf = ws.buf[:minCap]
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos += len(p)
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	newPos := 0
	switch whence {
	case io.SeekStart:
		newPos = int(offset)
	case io.SeekCurrent:
		newPos = ws.pos + int(offset)
	case io.SeekEnd:
		newPos = len(ws.buf) + int(offset)
	}
	if newPos < 0 {
		return 0, aill.Errorf(aill.KindEncoder, "negative seek position")
	}
	ws.pos = newPos
	return int64(newPos), nil
}

// Write encodes mono f32 samples at sampleRate as 16-bit PCM WAV
// bytes.
func Write(samples []float32, sampleRate int) ([]byte, error) {
	ws := &writeSeeker{}
	enc := wav.NewEncoder(ws, sampleRate, bitDepth, 1, wavFormat)

	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
		}
		if s < -1.0 {
			s = -1.0
		}
		data[i] = int(s * maxInt16)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return nil, aill.Errorf(aill.KindEncoder, "Failed to write WAV samples: %s", err)
	}
	if err := enc.Close(); err != nil {
		return nil, aill.Errorf(aill.KindEncoder, "Failed to finalize WAV header: %s", err)
	}
	return ws.buf, nil
}

// Read decodes mono f32 samples and their sample rate from WAV bytes.
func Read(data []byte) ([]float32, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, aill.Errorf(aill.KindInvalidStructure, "Failed to decode WAV data: %s", err)
	}
	bits := dec.SampleBitDepth()
	if bits == 0 {
		bits = bitDepth
	}
	scale := float32(int(1) << (uint(bits) - 1))

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	samples := make([]float32, len(buf.Data)/channels)
	for i := range samples {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += float32(buf.Data[i*channels+c]) / scale
		}
		samples[i] = sum / float32(channels)
	}
	return samples, buf.Format.SampleRate, nil
}
