package ambient

import "github.com/cwbudde/algo-ambient/dsp/core"

// Chunk is one rendered stereo buffer.
type Chunk struct {
	Left  []float64
	Right []float64
}

// Frames returns the per-channel frame count.
func (c *Chunk) Frames() int {
	return len(c.Left)
}

// InterleaveFloat32 returns the chunk as interleaved 32-bit stereo
// frames, the layout playback sinks and file writers consume.
func (c *Chunk) InterleaveFloat32() []float32 {
	out := make([]float32, 2*len(c.Left))
	for i := range c.Left {
		out[2*i] = float32(c.Left[i])
		out[2*i+1] = float32(c.Right[i])
	}
	return out
}

// InterleaveInt16 returns the chunk as interleaved 16-bit PCM frames,
// clipping each sample to [-1, 1] before quantizing.
func (c *Chunk) InterleaveInt16() []int16 {
	out := make([]int16, 2*len(c.Left))
	for i := range c.Left {
		out[2*i] = pcm16(c.Left[i])
		out[2*i+1] = pcm16(c.Right[i])
	}
	return out
}

func pcm16(s float64) int16 {
	return int16(core.Clip(s) * 32767)
}
