// Package synth renders the game's sound effects as raw PCM so they need no
// audio files.
package synth

import (
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/barr/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// BytesPerFrame is one 16-bit little-endian stereo sample.
const BytesPerFrame = 4

// slideSteps is how many fixed-pitch segments approximate a frequency slide.
const slideSteps = 8

// TailSilence is appended to every tone so playback ends on zero samples.
const TailSilence = 5 * time.Millisecond

// pcm16 is the sample layout ebiten/audio plays.
func pcm16(sampleRate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 2, Precision: 2}
}

// Stream builds t as a beep streamer: square waves stepping from StartHz to
// EndHz, each step quieter than the last, followed by TailSilence. It also
// returns the streamer's length in samples.
func Stream(t cfg.Tone, sampleRate int) (beep.Streamer, int, error) {
	if sampleRate <= 0 || t.Duration <= 0 {
		return beep.Silence(0), 0, nil
	}
	sr := beep.SampleRate(sampleRate)
	n := sr.N(time.Duration(t.Duration * float64(time.Second)))
	volume := math.Max(0, math.Min(1, t.Volume))

	steps := make([]beep.Streamer, 0, slideSteps+1)
	for i := 0; i < slideSteps; i++ {
		from, to := n*i/slideSteps, n*(i+1)/slideSteps
		if to == from {
			continue
		}
		progress := float64(i) / slideSteps
		hz := t.StartHz + (t.EndHz-t.StartHz)*progress

		tone, err := generators.SquareTone(sr, hz)
		if err != nil {
			return nil, 0, fmt.Errorf("square tone %.0fHz: %w", hz, err)
		}
		// Gain scales samples by 1+Gain.
		steps = append(steps, &effects.Gain{
			Streamer: beep.Take(to-from, tone),
			Gain:     volume*(1-progress) - 1,
		})
	}

	tail := sr.N(TailSilence)
	steps = append(steps, beep.Silence(tail))
	return beep.Seq(steps...), n + tail, nil
}

// Render drains t into 16-bit little-endian stereo PCM at sampleRate.
func Render(t cfg.Tone, sampleRate int) ([]byte, error) {
	s, n, err := Stream(t, sampleRate)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return Drain(s, n, pcm16(sampleRate)), nil
}

// Drain reads up to n samples from s and encodes them in format.
func Drain(s beep.Streamer, n int, format beep.Format) []byte {
	frame := format.Width()
	out := make([]byte, 0, n*frame)
	buf := make([][2]float64, 512)
	sample := make([]byte, frame)

	for n > 0 {
		want := min(len(buf), n)
		got, ok := s.Stream(buf[:want])
		for _, v := range buf[:got] {
			format.EncodeSigned(sample, v)
			out = append(out, sample...)
		}
		n -= got
		if !ok || got == 0 {
			break
		}
	}
	return out
}
