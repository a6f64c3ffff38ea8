// Command eqplay runs a test signal through the equalizer engine and
// plays it on the default audio device. It doubles as a small example of
// hosting the engine: the host owns the buffers and the block loop, the
// engine only sees borrowed channel slices per call.
//
// Usage:
//
//	eqplay [flags]
//
// Examples:
//
//	eqplay -tone 440 -seconds 3
//	eqplay -noise -gains -12,0,6,0,-12 -volume -6
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

const blockSize = 1024

func main() {
	var (
		rate    = flag.Int("rate", 48000, "sample rate in Hz")
		tone    = flag.Float64("tone", 440, "test tone frequency in Hz")
		noise   = flag.Bool("noise", false, "use white noise instead of a tone")
		seconds = flag.Float64("seconds", 2, "playback duration")
		volume  = flag.Float64("volume", -12, "output volume in dB")
		gains   = flag.String("gains", "", "comma-separated band gains in dB")
	)
	flag.Parse()

	if err := run(*rate, *tone, *noise, *seconds, *volume, *gains); err != nil {
		log.Fatalln("eqplay:", err)
	}
}

func run(rate int, tone float64, noise bool, seconds, volume float64, gains string) error {
	engine := eq.New(eq.WithSampleRate(float64(rate)))
	engine.SetParameterValue(0, volume)

	if err := applyGains(engine, gains); err != nil {
		return err
	}

	engine.Activate()

	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  blockSize,
	}

	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer sdl.CloseAudioDevice(dev)

	in := make([]float64, blockSize)
	out := make([]float64, blockSize)
	pcm := make([]byte, 4*blockSize)

	rng := rand.New(rand.NewSource(1))
	step := 2 * math.Pi * tone / float64(rate)
	phase := 0.0

	totalBlocks := int(seconds*float64(rate)) / blockSize
	for range totalBlocks {
		if noise {
			for i := range in {
				in[i] = rng.Float64()*2 - 1
			}
		} else {
			for i := range in {
				in[i] = math.Sin(phase)
				phase += step
			}
		}

		engine.Process([][]float64{in}, [][]float64{out}, blockSize)

		for i, v := range out {
			binary.LittleEndian.PutUint32(pcm[4*i:], math.Float32bits(float32(v)))
		}

		if err := sdl.QueueAudio(dev, pcm); err != nil {
			return fmt.Errorf("queue audio: %w", err)
		}
	}

	sdl.PauseAudioDevice(dev, false)

	// Drain the queue before closing the device.
	for sdl.GetQueuedAudioSize(dev) > 0 {
		sdl.Delay(50)
	}

	return nil
}

func applyGains(engine *eq.Engine, gains string) error {
	if gains == "" {
		return nil
	}

	parts := strings.Split(gains, ",")
	if len(parts) > engine.NumBands() {
		fmt.Fprintf(os.Stderr, "eqplay: %d gains given, using the first %d\n", len(parts), engine.NumBands())
		parts = parts[:engine.NumBands()]
	}

	for i, part := range parts {
		gain, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("bad gain %q: %w", part, err)
		}

		engine.SetParameterValue(9+4*i+1, gain)
	}

	return nil
}
