// Package audio implements the secondary feature-extraction pipeline: a
// direct (non-FFT) spectral transform over a Hann-windowed frame, scalar
// spectral summaries, and an overlapping-frame spectrogram.
package audio

import (
	"errors"
	"math"
)

// SampleRate is the fixed sample rate every input is assumed to carry.
const SampleRate = 44100

// FFTSize is the analysis window length.
const FFTSize = 1024

// Hop is the frame advance used by Spectrogram.
const Hop = 512

// ErrSegmentTooShort is returned by ExtractFeatures when the input is
// shorter than FFTSize.
var ErrSegmentTooShort = errors.New("audio: segment shorter than FFT window")

// band is a half-open frequency range in Hz, used for band-energy features.
type band struct{ lo, hi float64 }

var bands = [4]band{
	{0, 1000},
	{1000, 4000},
	{4000, 8000},
	{8000, 22050},
}

// Features holds the eight scalar spectral features ExtractFeatures
// produces, in their fixed order.
type Features struct {
	Centroid      float64
	Bandwidth     float64
	Rolloff       float64
	ZeroCrossRate float64
	BandEnergy    [4]float64
}

// hannWindow returns the Hann window coefficients for a frame of size n.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// directDFT computes the magnitude spectrum of a windowed frame of length
// FFTSize over bins [0, FFTSize/2], using the direct O(n^2) summation the
// specification calls for in place of an FFT.
func directDFT(frame []float64) []float64 {
	w := hannWindow(len(frame))
	nBins := len(frame)/2 + 1
	mag := make([]float64, nBins)

	for k := 0; k < nBins; k++ {
		var re, im float64
		theta := -2 * math.Pi * float64(k) / float64(len(frame))
		for n, s := range frame {
			windowed := s * w[n]
			angle := theta * float64(n)
			re += windowed * math.Cos(angle)
			im += windowed * math.Sin(angle)
		}
		mag[k] = math.Hypot(re, im)
	}
	return mag
}

// binFrequency returns the centre frequency, in Hz, of magnitude bin k out
// of nBins total bins.
func binFrequency(k, nBins int) float64 {
	return float64(k) * SampleRate / (2 * float64(nBins-1))
}

// ExtractFeatures computes the eight fixed-order spectral features of one
// segment: spectral centroid, spectral bandwidth, 0.85 spectral rolloff,
// zero-crossing rate, and four band energies. Fails with
// ErrSegmentTooShort when len(samples) < FFTSize.
func ExtractFeatures(samples []float64) (Features, error) {
	if len(samples) < FFTSize {
		return Features{}, ErrSegmentTooShort
	}

	mag := directDFT(samples[:FFTSize])
	nBins := len(mag)

	var energySum, weightedFreqSum float64
	for k, m := range mag {
		f := binFrequency(k, nBins)
		energySum += m
		weightedFreqSum += f * m
	}

	var f Features
	if energySum > 0 {
		f.Centroid = weightedFreqSum / energySum

		var variance float64
		for k, m := range mag {
			d := binFrequency(k, nBins) - f.Centroid
			variance += d * d * m
		}
		f.Bandwidth = math.Sqrt(variance / energySum)

		threshold := 0.85 * energySum
		cumulative := 0.0
		f.Rolloff = binFrequency(nBins-1, nBins) // Nyquist fallback
		for k, m := range mag {
			cumulative += m
			if cumulative >= threshold {
				f.Rolloff = binFrequency(k, nBins)
				break
			}
		}
	} else {
		f.Rolloff = binFrequency(nBins-1, nBins)
	}

	f.ZeroCrossRate = zeroCrossingRate(samples[:FFTSize])

	for k, m := range mag {
		freq := binFrequency(k, nBins)
		for i, b := range bands {
			if freq >= b.lo && freq < b.hi {
				f.BandEnergy[i] += m
				break
			}
		}
	}

	return f, nil
}

func zeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples))
}

// Spectrogram emits an (nframes, FFTSize/2+1) magnitude matrix over
// overlapping frames of length FFTSize advancing by Hop. A frame whose
// feature extraction would fail (only possible at the tail, and guarded
// against by the frame-count formula) yields an all-zero row instead of
// aborting the whole call.
func Spectrogram(samples []float64) [][]float64 {
	if len(samples) < FFTSize {
		return nil
	}
	nFrames := (len(samples)-FFTSize)/Hop + 1
	nBins := FFTSize/2 + 1

	out := make([][]float64, nFrames)
	for i := 0; i < nFrames; i++ {
		start := i * Hop
		end := start + FFTSize
		if end > len(samples) {
			out[i] = make([]float64, nBins)
			continue
		}
		out[i] = directDFT(samples[start:end])
	}
	return out
}
