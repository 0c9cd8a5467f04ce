package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Hum tone range, mapped from the spin fraction
const (
	humMinFreq = 90.0
	humMaxFreq = 330.0
	humMinGain = 0.02
	humMaxGain = 0.15

	// Per-sample approach rate toward target gain and frequency, avoids clicks on jumps
	humSlew = 0.0005
)

// HumGenerator is an endless sine whose pitch and loudness follow targets set from
// another goroutine; the phase stays continuous across changes
type HumGenerator struct {
	sr    beep.SampleRate
	phase float64
	freq  float64
	gain  float64

	targetFreq atomic.Uint64 // float64 bits
	targetGain atomic.Uint64
}

// NewHumGenerator starts silent at the lowest pitch
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	g := &HumGenerator{sr: sr, freq: humMinFreq}
	g.Set(humMinFreq, 0)
	return g
}

// Set changes the target frequency in Hz and gain in [0,1]
func (g *HumGenerator) Set(freq, gain float64) {
	if math.IsNaN(freq) || freq <= 0 {
		freq = humMinFreq
	}
	if math.IsNaN(gain) || gain < 0 {
		gain = 0
	}
	g.targetFreq.Store(math.Float64bits(freq))
	g.targetGain.Store(math.Float64bits(math.Min(gain, 1)))
}

// Target returns the current target frequency and gain
func (g *HumGenerator) Target() (float64, float64) {
	return math.Float64frombits(g.targetFreq.Load()), math.Float64frombits(g.targetGain.Load())
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	freq, gain := g.Target()
	for i := range samples {
		g.freq += (freq - g.freq) * humSlew
		g.gain += (gain - g.gain) * humSlew

		// Fundamental plus a quiet octave for body
		s := g.gain * (0.8*math.Sin(2*math.Pi*g.phase) + 0.2*math.Sin(4*math.Pi*g.phase))
		samples[i][0] = s
		samples[i][1] = s

		g.phase += g.freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= math.Floor(g.phase)
		}
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// HumFor maps a spin fraction in [0,1] to hum frequency and gain
func HumFor(frac float64) (freq, gain float64) {
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	}
	frac = math.Min(frac, 1)
	return humMinFreq + (humMaxFreq-humMinFreq)*frac, humMinGain + (humMaxGain-humMinGain)*frac
}

// TickGenerator is a short decaying click marking one decay step
type TickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewTickGenerator creates a click at freq Hz
func NewTickGenerator(sr beep.SampleRate, freq float64) *TickGenerator {
	return &TickGenerator{sr: sr, freq: freq}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		s := 0.12 * math.Exp(-t*60) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}
