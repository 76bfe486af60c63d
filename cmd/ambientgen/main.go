// Command ambientgen renders a procedural ambient stream to a WAV file
// and/or the sound device, chunk by chunk. Scene parameters come from
// flags or a JSON bundle and can be re-rolled every few chunks.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	ambient "github.com/cwbudde/algo-ambient"
	"github.com/cwbudde/algo-ambient/dsp/note"
	"github.com/cwbudde/algo-ambient/dsp/synth"
)

func main() {
	chunkSec := flag.Float64("chunk", 5.0, "Chunk duration in seconds")
	chunks := flag.Int("chunks", 12, "Number of chunks to render")
	tempo := flag.Float64("tempo", 60, "Tempo in BPM")
	scale := flag.String("scale", note.ScaleMinor, "Scale: "+strings.Join(note.ScaleNames(), "|"))
	instrument := flag.String("instrument", synth.WaveSine, "Instrument: "+strings.Join(synth.WaveformNames(), "|"))
	arpeggio := flag.Bool("arpeggio", false, "Arpeggiate chords instead of block chords")
	seed := flag.Int64("seed", 0, "Random seed (0: derive from the clock)")
	outPath := flag.String("out", "ambient.wav", "Output WAV path (empty: no file)")
	play := flag.Bool("play", false, "Also play the stream live")
	paramsPath := flag.String("params", "", "Parameter bundle JSON path (overrides composition flags)")
	rerollEvery := flag.Int("reroll-every", 0, "Re-roll the scene every N chunks (0: never)")
	modulate := flag.Bool("modulate", true, "Apply volume/pan LFO modulation between chunks")
	timbre := flag.Bool("timbre", false, "Also wobble the low-pass cutoff")
	flag.Parse()

	logger := log.New(os.Stderr, "ambientgen: ", log.LstdFlags)

	if *chunks < 1 {
		die("chunks must be >= 1")
	}
	if *outPath == "" && !*play {
		die("nothing to do: set -out and/or -play")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	p := ambient.DefaultParams()
	p.DurationSec = *chunkSec
	p.TempoBPM = *tempo
	p.Scale = *scale
	p.Instrument = *instrument
	p.UseArpeggio = *arpeggio
	if *paramsPath != "" {
		loaded, err := loadParams(*paramsPath)
		if err != nil {
			die("failed to load params: %v", err)
		}
		p = loaded
	}

	engine, err := ambient.NewEngine(ambient.WithSeed(*seed))
	if err != nil {
		die("engine setup: %v", err)
	}
	router := ambient.NewDefaultModulationRouter(*timbre)
	sceneRNG := rand.New(rand.NewSource(*seed + 1))
	sampleRate := int(engine.Config().SampleRate)

	var wav *wavWriter
	if *outPath != "" {
		wav, err = newWAVWriter(*outPath, sampleRate, 2)
		if err != nil {
			die("%v", err)
		}
	}
	var out *playback
	if *play {
		out, err = startPlayback(sampleRate)
		if err != nil {
			die("%v", err)
		}
	}

	logger.Printf("rendering %d chunks of %.1fs (seed %d)", *chunks, p.DurationSec, *seed)
	for i := 0; i < *chunks; i++ {
		if *rerollEvery > 0 && i > 0 && i%*rerollEvery == 0 {
			p = rerollScene(sceneRNG, p)
			logger.Printf("scene re-roll: scale=%s instrument=%s tempo=%.0f", p.Scale, p.Instrument, p.TempoBPM)
		}

		q := p
		if *modulate {
			q = router.Apply(p, p.DurationSec)
		}

		chunk, err := engine.GenerateChunk(q)
		if err != nil {
			die("render chunk %d: %v", i, err)
		}

		if wav != nil {
			if err := wav.WriteFrames(chunk.InterleaveInt16()); err != nil {
				die("%v", err)
			}
		}
		if out != nil {
			if err := out.WriteChunk(chunk.InterleaveFloat32()); err != nil {
				die("%v", err)
			}
		}
		logger.Printf("chunk %d/%d done", i+1, *chunks)
	}

	if out != nil {
		if err := out.Close(); err != nil {
			die("close playback: %v", err)
		}
	}
	if wav != nil {
		if err := wav.Close(); err != nil {
			die("close wav: %v", err)
		}
		logger.Printf("wrote %s", *outPath)
	}
}

// loadParams reads a JSON parameter bundle, with absent fields keeping
// their defaults.
func loadParams(path string) (ambient.Params, error) {
	p := ambient.DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// rerollScene randomizes the musical surface of the bundle while
// keeping the chunk duration and master gain.
func rerollScene(rng *rand.Rand, p ambient.Params) ambient.Params {
	scales := note.ScaleNames()
	instruments := synth.WaveformNames()

	p.Scale = scales[rng.Intn(len(scales))]
	p.Instrument = instruments[rng.Intn(len(instruments))]
	p.TempoBPM = 50 + rng.Float64()*40
	p.UseArpeggio = rng.Float64() < 0.5
	p.Reverb = 0.2 + rng.Float64()*0.4
	p.Delay = 0.1 + rng.Float64()*0.4
	p.Chorus = rng.Float64() * 0.5
	p.Phaser = rng.Float64() * 0.3
	p.Widen = rng.Float64() * 0.6
	p.LowpassHz = 2000 + rng.Float64()*14000
	return p
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ambientgen: "+format+"\n", args...)
	os.Exit(1)
}
