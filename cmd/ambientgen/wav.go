package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// wavHeader is a canonical 44-byte RIFF/WAVE PCM header.
type wavHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// wavWriter streams 16-bit stereo PCM to a file, patching the RIFF
// sizes on Close.
type wavWriter struct {
	f         *os.File
	header    wavHeader
	dataBytes uint32
}

func newWAVWriter(path string, sampleRate, channels int) (*wavWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create wav: %w", err)
	}

	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8
	w := &wavWriter{
		f: f,
		header: wavHeader{
			ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
			Format:        [4]byte{'W', 'A', 'V', 'E'},
			Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
			Subchunk1Size: 16,
			AudioFormat:   1, // PCM
			NumChannels:   uint16(channels),
			SampleRate:    uint32(sampleRate),
			ByteRate:      uint32(sampleRate * blockAlign),
			BlockAlign:    uint16(blockAlign),
			BitsPerSample: bitsPerSample,
			Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		},
	}
	// Placeholder header; sizes are patched on Close once the data
	// length is known.
	if err := binary.Write(f, binary.LittleEndian, w.header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write wav header: %w", err)
	}
	return w, nil
}

// WriteFrames appends interleaved PCM samples to the data chunk.
func (w *wavWriter) WriteFrames(frames []int16) error {
	if err := binary.Write(w.f, binary.LittleEndian, frames); err != nil {
		return fmt.Errorf("write wav frames: %w", err)
	}
	w.dataBytes += uint32(2 * len(frames))
	return nil
}

// Close patches the chunk sizes and closes the file.
func (w *wavWriter) Close() error {
	w.header.Subchunk2Size = w.dataBytes
	w.header.ChunkSize = 36 + w.dataBytes

	if _, err := w.f.Seek(0, io.SeekStart); err != nil {
		w.f.Close()
		return fmt.Errorf("patch wav header: %w", err)
	}
	if err := binary.Write(w.f, binary.LittleEndian, w.header); err != nil {
		w.f.Close()
		return fmt.Errorf("patch wav header: %w", err)
	}
	return w.f.Close()
}
