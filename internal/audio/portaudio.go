package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// minAmplification keeps the input gain positive.
const minAmplification = 0.1

// PortAudioCapturer reads the default input device through PortAudio,
// down-mixing to mono and applying a fixed gain.
type PortAudioCapturer struct {
	mu            sync.Mutex
	capturing     bool
	stream        *portaudio.Stream
	latest        []float32
	frameSize     int
	sampleRate    int
	channels      int
	amplification float32
}

// NewPortAudioCapturer initializes PortAudio. frameSize counts mono samples.
func NewPortAudioCapturer(frameSize, sampleRate, channels int) (*PortAudioCapturer, error) {
	if frameSize <= 0 || sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("invalid capture settings: frame=%d rate=%d channels=%d", frameSize, sampleRate, channels)
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	return &PortAudioCapturer{
		latest:        make([]float32, 0, frameSize),
		frameSize:     frameSize,
		sampleRate:    sampleRate,
		channels:      channels,
		amplification: 1,
	}, nil
}

// Start opens the default input stream
func (c *PortAudioCapturer) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capturing {
		return ErrAlreadyCapturing
	}

	stream, err := portaudio.OpenDefaultStream(
		c.channels, // input channels
		0,          // no output
		float64(c.sampleRate),
		c.frameSize, // frames per buffer
		c.process,
	)
	if err != nil {
		return fmt.Errorf("failed to open input stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("failed to start input stream: %w", err)
	}

	c.stream = stream
	c.capturing = true
	return nil
}

// Stop closes the stream and releases PortAudio
func (c *PortAudioCapturer) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.capturing {
		return ErrNotCapturing
	}
	c.capturing = false

	if err := c.stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop input stream: %w", err)
	}
	if err := c.stream.Close(); err != nil {
		return fmt.Errorf("failed to close input stream: %w", err)
	}
	return portaudio.Terminate()
}

// process is the PortAudio callback. Interleaved channels are averaged.
func (c *PortAudioCapturer) process(in, _ []float32) {
	mono := make([]float32, len(in)/c.channels)

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range mono {
		sum := float32(0)
		for ch := 0; ch < c.channels; ch++ {
			sum += in[i*c.channels+ch]
		}
		mono[i] = sum / float32(c.channels) * c.amplification
	}
	c.latest = mono
}

// Frame returns a copy of the latest captured frame
func (c *PortAudioCapturer) Frame() (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.capturing {
		return nil, ErrNotCapturing
	}
	if len(c.latest) == 0 {
		return nil, ErrNoFrame
	}

	samples := make([]float32, len(c.latest))
	copy(samples, c.latest)
	return &Frame{Samples: samples, SampleRate: c.sampleRate}, nil
}

// IsCapturing returns true if currently capturing audio
func (c *PortAudioCapturer) IsCapturing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capturing
}

// SetAmplification sets the input gain
func (c *PortAudioCapturer) SetAmplification(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if factor < minAmplification {
		factor = minAmplification
	}
	c.amplification = factor
}
