package synth

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/barr/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameAt(pcm []byte, i int) (l, r int16) {
	l = int16(binary.LittleEndian.Uint16(pcm[i*BytesPerFrame:]))
	r = int16(binary.LittleEndian.Uint16(pcm[i*BytesPerFrame+2:]))
	return l, r
}

func TestRenderLength(t *testing.T) {
	tail := 44100 * 5 / 1000
	tests := []struct {
		name string
		tone cfg.Tone
		rate int
		want int
	}{
		{"tenth of a second", cfg.Tone{StartHz: 440, EndHz: 440, Duration: 0.1, Volume: 1}, 44100, (4410 + tail) * BytesPerFrame},
		{"zero duration", cfg.Tone{StartHz: 440, Duration: 0}, 44100, 0},
		{"zero rate", cfg.Tone{StartHz: 440, Duration: 1}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm, err := Render(tt.tone, tt.rate)
			require.NoError(t, err)
			assert.Len(t, pcm, tt.want)
		})
	}
}

func TestRenderFadesToSilence(t *testing.T) {
	pcm, err := Render(cfg.Tone{StartHz: 200, EndHz: 400, Duration: 0.1, Volume: 0.5}, 8000)
	require.NoError(t, err)
	frames := len(pcm) / BytesPerFrame
	tail := 8000 * 5 / 1000

	peak := func(from, to int) int16 {
		var p int16
		for i := from; i < to; i++ {
			l, r := frameAt(pcm, i)
			assert.Equal(t, l, r)
			if l < 0 {
				l = -l
			}
			p = max(p, l)
		}
		return p
	}

	head := peak(0, frames/8)
	assert.Positive(t, head)
	assert.LessOrEqual(t, head, int16(16384))
	assert.Less(t, peak(frames*5/8, frames-tail), head)
	assert.Zero(t, peak(frames-tail, frames))
}

func TestDefaultTonesRender(t *testing.T) {
	for id, tone := range cfg.Audio.Tones {
		pcm, err := Render(tone, cfg.Audio.SampleRate)
		require.NoError(t, err, "sound %d", id)
		assert.NotEmpty(t, pcm, "sound %d", id)
	}
}
