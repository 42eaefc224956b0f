// SPDX-License-Identifier: EPL-2.0

// Command linresample converts an audio file to a WAV file at another sample
// rate.
//
//	linresample [-config file.yaml] [-rate N] [-block N] [-bits N] [-channels N] [-log-level L] <input> <output.wav>
//
// The input format is picked from its extension. An output of "-" writes the
// WAV to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ik5/linresample/audio"
	"github.com/ik5/linresample/formats"
	"github.com/ik5/linresample/formats/wav"
	"github.com/ik5/linresample/internal/config"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage: linresample [flags] <input> <output.wav>")

func main() {
	logrus.SetOutput(os.Stderr)

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("linresample failed")
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("linresample", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	rate := fs.Int("rate", config.DefaultTargetRate, "target sample rate in Hz")
	block := fs.Int("block", config.DefaultBlockSize, "samples per output block")
	bits := fs.Int("bits", config.DefaultBitDepth, "output bit depth (16, 24 or 32)")
	channels := fs.Int("channels", config.DefaultChannels, "output channel count")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return errUsage
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			cfg.Resample.TargetRate = *rate
		case "block":
			cfg.Resample.BlockSize = *block
		case "bits":
			cfg.Output.BitDepth = *bits
		case "channels":
			cfg.Output.Channels = *channels
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	logrus.SetLevel(level)

	mono, srcRate, err := decode(inPath)
	if err != nil {
		return err
	}

	out, err := audio.ResampleAll(mono, float64(cfg.Resample.TargetRate), cfg.Resample.BlockSize)
	if err != nil {
		return fmt.Errorf("resampling %s: %w", inPath, err)
	}

	if err := write(outPath, stdout, cfg, out); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "run",
		"input":       inPath,
		"output":      outPath,
		"source_rate": srcRate,
		"target_rate": cfg.Resample.TargetRate,
		"block_size":  cfg.Resample.BlockSize,
		"samples":     len(out),
		"bit_depth":   cfg.Output.BitDepth,
		"channels":    cfg.Output.Channels,
	}).Info("Resampled audio file")

	return nil
}

// decode loads inPath into a mono buffer at its own rate.
func decode(inPath string) (*audio.SourceBuffer, int, error) {
	dec, err := formats.ForPath(formats.NewRegistry(), inPath)
	if err != nil {
		return nil, 0, err
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		return nil, 0, fmt.Errorf("opening input: %w", err)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	logrus.WithFields(logrus.Fields{
		"function":    "decode",
		"input":       inPath,
		"sample_rate": src.SampleRate(),
		"channels":    src.Channels(),
	}).Debug("Decoded input header")

	mono, err := audio.Load(src)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", inPath, err)
	}

	return mono, src.SampleRate(), nil
}

func write(outPath string, stdout io.Writer, cfg *config.Config, samples []float32) error {
	if outPath == "-" {
		return wav.WritePCM(stdout, cfg.Resample.TargetRate, cfg.Output.BitDepth, cfg.Output.Channels, samples)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := wav.Encode(outFile, cfg.Resample.TargetRate, cfg.Output.BitDepth, cfg.Output.Channels, samples); err != nil {
		outFile.Close()
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	return outFile.Close()
}
