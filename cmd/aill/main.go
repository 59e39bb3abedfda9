/*
NAME
  main.go

DESCRIPTION
  aill is a command-line tool for sending and receiving AILL wire
  bytes over the acoustic physical layer: encode-and-play, record-and-
  decode, and a round-trip self-test.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command aill sends and receives AILL messages acoustically.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/aill/acoustic"
)

const (
	logPath      = "aill.log"
	logMaxSize   = 50 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days

	maxRxSeconds = 60.0
)

var logWriter io.Writer

func main() {
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	defer fileLog.Close()
	logWriter = io.MultiWriter(os.Stdout, fileLog)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "tx":
		err = runTx(os.Args[2:])
	case "rx":
		err = runRx(os.Args[2:])
	case "roundtrip":
		err = runRoundtrip(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(io.MultiWriter(os.Stderr, fileLog), "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: aill <tx|rx|roundtrip> [args]")
	fmt.Fprintln(os.Stderr, "  tx <hex>          encode hex wire bytes and play them")
	fmt.Fprintln(os.Stderr, "  rx <seconds>      record, decode, and print hex wire bytes")
	fmt.Fprintln(os.Stderr, "  roundtrip <hex>   play and record concurrently, verify a match")
}

func logf(format string, args ...interface{}) {
	fmt.Fprintf(logWriter, format+"\n", args...)
}

func runTx(args []string) error {
	fs := flag.NewFlagSet("tx", flag.ExitOnError)
	sampleRate := fs.Int("rate", acoustic.DefaultSampleRate, "sample rate in Hz")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("tx requires exactly one hex argument")
	}
	wireBytes, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "invalid hex input")
	}

	enc := acoustic.NewEncoderWithSampleRate(*sampleRate)
	audio, err := enc.Encode(wireBytes)
	if err != nil {
		return errors.Wrap(err, "encode failed")
	}

	logf("playing %d bytes as %.2fs of audio", len(wireBytes), audio.Duration)
	if err := acoustic.PlayAudio(audio.Samples, audio.SampleRate); err != nil {
		return errors.Wrap(err, "playback failed")
	}
	return nil
}

func runRx(args []string) error {
	fs := flag.NewFlagSet("rx", flag.ExitOnError)
	sampleRate := fs.Int("rate", acoustic.DefaultSampleRate, "sample rate in Hz")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("rx requires exactly one duration argument (seconds)")
	}
	var seconds float64
	if _, err := fmt.Sscanf(fs.Arg(0), "%f", &seconds); err != nil {
		return errors.Wrap(err, "invalid duration")
	}
	if seconds <= 0 || seconds > maxRxSeconds {
		return fmt.Errorf("duration must be between 0 and %g seconds", maxRxSeconds)
	}

	logf("recording for %.2fs", seconds)
	samples, err := acoustic.RecordAudio(time.Duration(seconds*float64(time.Second)), *sampleRate)
	if err != nil {
		return errors.Wrap(err, "recording failed")
	}

	dec := acoustic.NewDecoderWithSampleRate(*sampleRate)
	wireBytes, err := dec.Decode(samples)
	if err != nil {
		return errors.Wrap(err, "decode failed")
	}

	fmt.Println(hex.EncodeToString(wireBytes))
	return nil
}

func runRoundtrip(args []string) error {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	sampleRate := fs.Int("rate", acoustic.DefaultSampleRate, "sample rate in Hz")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("roundtrip requires exactly one hex argument")
	}
	wireBytes, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "invalid hex input")
	}

	enc := acoustic.NewEncoderWithSampleRate(*sampleRate)
	audio, err := enc.Encode(wireBytes)
	if err != nil {
		return errors.Wrap(err, "encode failed")
	}

	recordDuration := time.Duration(float64(audio.Duration)*float64(time.Second)) + time.Second

	var wg sync.WaitGroup
	var recorded []float32
	var recordErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		recorded, recordErr = acoustic.RecordAudio(recordDuration, *sampleRate)
	}()

	logf("playing %d bytes as %.2fs of audio", len(wireBytes), audio.Duration)
	if err := acoustic.PlayAudio(audio.Samples, audio.SampleRate); err != nil {
		wg.Wait()
		return errors.Wrap(err, "playback failed")
	}

	wg.Wait()
	if recordErr != nil {
		return errors.Wrap(recordErr, "recording failed")
	}

	dec := acoustic.NewDecoderWithSampleRate(*sampleRate)
	decoded, err := dec.Decode(recorded)
	if err != nil {
		return errors.Wrap(err, "decode failed")
	}

	if hex.EncodeToString(decoded) != hex.EncodeToString(wireBytes) {
		return fmt.Errorf("round-trip mismatch: sent %s, recovered %s", hex.EncodeToString(wireBytes), hex.EncodeToString(decoded))
	}

	logf("round-trip verified: %s", hex.EncodeToString(wireBytes))
	return nil
}
