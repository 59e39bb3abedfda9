/*
NAME
  live.go

DESCRIPTION
  Plays and records mono f32 PCM through the default ALSA sound
  device, for sending and receiving AILL acoustic signals live.

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
	"encoding/binary"
	"math"
	"time"

	yalsa "github.com/yobert/alsa"

	"github.com/ausocean/aill"
)

// MaxRecordDuration bounds a single RecordAudio call to prevent runaway
// allocations from a mistaken caller-supplied duration.
const MaxRecordDuration = 300 * time.Second

// openDevice finds the first ALSA PCM device matching want (playback
// or capture) and negotiates mono, 16-bit signed, at sampleRate.
func openDevice(sampleRate int, wantPlay bool) (*yalsa.Device, error) {
	cards, err := yalsa.OpenCards()
	if err != nil {
		return nil, aill.Errorf(aill.KindEncoder, "Failed to open sound cards: %s", err)
	}
	defer yalsa.CloseCards(cards)

	var dev *yalsa.Device
	for _, card := range cards {
		devices, err := card.Devices()
		if err != nil {
			continue
		}
		for _, d := range devices {
			if d.Type != yalsa.PCM {
				continue
			}
			if wantPlay && d.Play {
				dev = d
				break
			}
			if !wantPlay && d.Record {
				dev = d
				break
			}
		}
		if dev != nil {
			break
		}
	}
	if dev == nil {
		if wantPlay {
			return nil, aill.Errorf(aill.KindEncoder, "No output audio device available")
		}
		return nil, aill.Errorf(aill.KindEncoder, "No input audio device available")
	}

	if err := dev.Open(); err != nil {
		return nil, aill.Errorf(aill.KindEncoder, "Failed to open device: %s", err)
	}

	if _, err := dev.NegotiateChannels(1); err != nil {
		dev.Close()
		return nil, aill.Errorf(aill.KindEncoder, "Device is unable to run in mono: %s", err)
	}
	if _, err := dev.NegotiateRate(sampleRate); err != nil {
		dev.Close()
		return nil, aill.Errorf(aill.KindEncoder, "Failed to negotiate sample rate: %s", err)
	}
	if _, err := dev.NegotiateFormat(yalsa.S16_LE); err != nil {
		dev.Close()
		return nil, aill.Errorf(aill.KindEncoder, "Failed to negotiate sample format: %s", err)
	}
	if _, err := dev.NegotiateBufferSize(sampleRate / 4); err != nil {
		dev.Close()
		return nil, aill.Errorf(aill.KindEncoder, "Failed to negotiate buffer size: %s", err)
	}
	if err := dev.Prepare(); err != nil {
		dev.Close()
		return nil, aill.Errorf(aill.KindEncoder, "Failed to prepare device: %s", err)
	}
	return dev, nil
}

// PlayAudio plays mono f32 samples through the default output device,
// blocking until playback completes.
func PlayAudio(samples []float32, sampleRate int) error {
	if len(samples) == 0 {
		return aill.Errorf(aill.KindEncoder, "No audio samples to play")
	}
	if sampleRate <= 0 {
		return aill.Errorf(aill.KindEncoder, "Sample rate must be > 0")
	}

	dev, err := openDevice(sampleRate, true)
	if err != nil {
		return err
	}
	defer dev.Close()

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], floatToInt16(s))
	}

	if err := dev.Write(buf); err != nil {
		return aill.Errorf(aill.KindEncoder, "Failed to play audio: %s", err)
	}
	return nil
}

// RecordAudio records mono f32 samples from the default input device
// for duration, at sampleRate. duration must be positive and at most
// MaxRecordDuration.
func RecordAudio(duration time.Duration, sampleRate int) ([]float32, error) {
	if sampleRate <= 0 {
		return nil, aill.Errorf(aill.KindEncoder, "Sample rate must be > 0")
	}
	if duration <= 0 || duration > MaxRecordDuration {
		return nil, aill.Errorf(aill.KindEncoder, "Recording duration must be between 0 and %s", MaxRecordDuration)
	}

	dev, err := openDevice(sampleRate, false)
	if err != nil {
		return nil, err
	}
	defer dev.Close()

	numSamples := int(math.Ceil(duration.Seconds() * float64(sampleRate)))
	buf := make([]byte, numSamples*2)

	if err := dev.Read(buf); err != nil {
		return nil, aill.Errorf(aill.KindEncoder, "Failed to record audio: %s", err)
	}

	samples := make([]float32, numSamples)
	for i := range samples {
		samples[i] = int16ToFloat(int16(binary.LittleEndian.Uint16(buf[i*2:])))
	}
	return samples, nil
}

func floatToInt16(f float32) uint16 {
	if f > 1.0 {
		f = 1.0
	}
	if f < -1.0 {
		f = -1.0
	}
	return uint16(int16(f * 32767.0))
}

func int16ToFloat(v int16) float32 {
	return float32(v) / 32768.0
}
