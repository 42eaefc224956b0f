// SPDX-License-Identifier: EPL-2.0

// Package audio provides the resampling engine and the streaming primitives
// around it.
//
// This package contains:
//   - SourceBuffer and OutputBlock, the data the engine reads and writes
//   - Engine, a block-driven linear-interpolation resampler
//   - ResampleAll and Resampler, ready-made drivers for the block loop
//   - Source interface, MonoMixer and Load for getting decoded audio in
//   - Format registry for decoder registration
//
// # Engine
//
// The Engine maps each output slot to a fractional position in the source,
// reads the two neighbouring source samples and interpolates linearly between
// them. The read position lives on the SourceBuffer as Playhead, so one call
// leaves it exactly where the next call has to continue:
//
//	src := audio.NewSourceBuffer(44100, samples)
//	engine := audio.NewEngine(256)
//	block := engine.NewOutputBlock(22050)
//
//	for !src.Done() {
//	    engine.Resample(src, block)
//	    out = append(out, block.Slots...)
//	}
//
// Any split of the output into blocks gives the same samples, up to float64
// rounding of the playhead. Positions before the first or after the last
// source sample read as silence, which is why the last block of a session is
// padded with zeros.
//
// Resample does not allocate and does not validate its arguments. Use
// Engine.Validate once per session when the inputs come from outside.
//
// # Source Interface
//
// Decoders produce a streaming Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Load drains a Source through a MonoMixer into a SourceBuffer. Resampler goes
// the other way and exposes a SourceBuffer at a new rate as a Source.
//
// # Sample Format
//
// Audio samples are float32, conventionally in [-1.0, 1.0]. Nothing in this
// package clamps; quantization back to integers is left to the writer.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
