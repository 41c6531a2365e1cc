package pitch

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/0xlemi/raagnote/internal/audio"
)

// FFTEstimator estimates pitch from the strongest spectral peak in range
type FFTEstimator struct {
	minFrequency  float64 // Lowest frequency to detect (Hz)
	maxFrequency  float64 // Highest frequency to detect (Hz)
	silenceRMS    float64 // Frames quieter than this are skipped
	peakThreshold float64 // Minimum peak height as fraction of highest peak
}

// NewFFTEstimator creates an estimator searching [minHz, maxHz]
func NewFFTEstimator(minHz, maxHz float64) (*FFTEstimator, error) {
	if minHz <= 0 || maxHz <= minHz {
		return nil, fmt.Errorf("invalid frequency range %.1f-%.1f Hz", minHz, maxHz)
	}
	return &FFTEstimator{
		minFrequency:  minHz,
		maxFrequency:  maxHz,
		silenceRMS:    0.0005,
		peakThreshold: 0.2,
	}, nil
}

// Estimate analyzes a frame and reports the strongest in-range peak.
func (e *FFTEstimator) Estimate(frame *audio.Frame) (Reading, error) {
	if frame == nil || len(frame.Samples) == 0 {
		return Reading{}, ErrEmptyFrame
	}

	rms, _ := frame.Level()
	if rms < e.silenceRMS {
		return Reading{}, ErrBelowThreshold
	}

	samples := make([]float64, len(frame.Samples))
	for i, s := range frame.Samples {
		samples[i] = float64(s)
	}
	window.Apply(samples, window.Hann)
	spectrum := fft.FFTReal(samples)

	// Only the first half carries information (Nyquist)
	half := spectrum[:len(spectrum)/2]
	magnitudes := make([]float64, len(half))
	for i, c := range half {
		magnitudes[i] = cmplx.Abs(c)
	}

	binHz := float64(frame.SampleRate) / float64(len(spectrum))
	minBin := max(int(e.minFrequency/binHz), 1) // skip DC
	maxBin := min(int(e.maxFrequency/binHz), len(magnitudes)-2)
	if maxBin <= minBin+1 {
		return Reading{}, ErrNoPitch
	}

	peaks := e.findPeaks(magnitudes, minBin, maxBin, binHz)
	if len(peaks) == 0 {
		return Reading{}, ErrNoPitch
	}
	fundamental := peaks[0]
	if fundamental.Frequency < e.minFrequency || fundamental.Frequency > e.maxFrequency {
		return Reading{}, ErrNoPitch
	}

	return Reading{
		Frequency: fundamental.Frequency,
		Clarity:   clarity(magnitudes, minBin, maxBin),
		RMS:       rms,
	}, nil
}

// Peak is a local maximum of the magnitude spectrum
type Peak struct {
	Bin       int
	Magnitude float64
	Frequency float64
}

// findPeaks returns local maxima above the peak threshold, strongest first.
func (e *FFTEstimator) findPeaks(mag []float64, minBin, maxBin int, binHz float64) []Peak {
	highest := slices.Max(mag[minBin : maxBin+1])
	if highest == 0 {
		return nil
	}

	var peaks []Peak
	for i := minBin + 1; i < maxBin; i++ {
		prev, cur, next := mag[i-1], mag[i], mag[i+1]
		if cur <= prev || cur <= next || cur < highest*e.peakThreshold {
			continue
		}

		// Quadratic interpolation of the peak position:
		// delta = 0.5 * (R[k-1] - R[k+1]) / (R[k-1] - 2*R[k] + R[k+1])
		freq := float64(i) * binHz
		if denom := prev - 2*cur + next; denom != 0 {
			freq = (float64(i) + 0.5*(prev-next)/denom) * binHz
		}
		peaks = append(peaks, Peak{Bin: i, Magnitude: cur, Frequency: freq})
	}

	slices.SortStableFunc(peaks, func(a, b Peak) int {
		switch {
		case a.Magnitude > b.Magnitude:
			return -1
		case a.Magnitude < b.Magnitude:
			return 1
		}
		return 0
	})
	return peaks
}

// clarity is one minus the spectral flatness of the in-range power
// spectrum: near 1 for a tone and its harmonics, near 0.44 for white noise.
func clarity(mag []float64, minBin, maxBin int) float64 {
	sumLog, sum := 0.0, 0.0
	for i := minBin; i <= maxBin; i++ {
		power := mag[i] * mag[i]
		sum += power
		sumLog += math.Log(power + 1e-30)
	}
	if sum == 0 {
		return 0
	}
	n := float64(maxBin - minBin + 1)
	flatness := math.Exp(sumLog/n) / (sum / n)
	return max(0, min(1, 1-flatness))
}
