package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

// playback streams rendered chunks to the sound device as 32-bit float
// stereo frames. The pipe gives the render loop backpressure from the
// device: writes block until the player has drained earlier chunks.
type playback struct {
	player *oto.Player
	w      *io.PipeWriter
}

func startPlayback(sampleRate int) (*playback, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	pr, pw := io.Pipe()
	player := ctx.NewPlayer(pr)
	player.Play()
	return &playback{player: player, w: pw}, nil
}

// WriteChunk queues one chunk of interleaved frames.
func (p *playback) WriteChunk(frames []float32) error {
	if err := binary.Write(p.w, binary.LittleEndian, frames); err != nil {
		return fmt.Errorf("queue audio: %w", err)
	}
	return nil
}

// Close drains the queued audio and releases the player.
func (p *playback) Close() error {
	p.w.Close()
	for p.player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}
	return p.player.Close()
}
