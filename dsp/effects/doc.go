// Package effects provides the chunk-level DSP stages of the ambient
// engine: a fixed-delay reverb comb, a recursive feedback delay, a
// sine-modulated chorus and phaser, a mid/side stereo widener, and
// one-pole low/high-pass filters.
//
// All stages are stateless across chunk boundaries: delay lines and
// filter memories start from silence for every buffer, so each chunk is
// a pure function of its input. Reverb, delay, chorus, and phaser
// operate on one channel at a time; callers process left and right
// independently with separate instances.
package effects
