package assets

import (
	"sync"

	"github.com/automoto/barr/assets/synth"
	cfg "github.com/automoto/barr/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ebiten allows a single audio context per process.
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

func sharedContext() *audio.Context {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// SoundBoard plays the generated sound effects.
type SoundBoard struct {
	context  *audio.Context
	sfxCache map[cfg.SoundID][]byte // Rendered PCM per sound
	volume   float64
	muted    bool
}

func NewSoundBoard(volume float64) *SoundBoard {
	return &SoundBoard{
		context:  sharedContext(),
		sfxCache: make(map[cfg.SoundID][]byte),
		volume:   volume,
	}
}

// Preload renders every configured tone so the first Play does no work.
func (b *SoundBoard) Preload() {
	for id := range cfg.Audio.Tones {
		b.pcm(id)
	}
	log.Debug("sound effects rendered", "count", len(b.sfxCache))
}

func (b *SoundBoard) pcm(id cfg.SoundID) []byte {
	if data, ok := b.sfxCache[id]; ok {
		return data
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil
	}
	data, err := synth.Render(tone, b.context.SampleRate())
	if err != nil {
		log.Warn("sound effect unavailable", "sound", id, "err", err)
	}
	b.sfxCache[id] = data
	return data
}

func (b *SoundBoard) Play(id cfg.SoundID) {
	if b == nil || b.muted || b.volume <= 0 {
		return
	}
	data := b.pcm(id)
	if len(data) == 0 {
		return
	}
	player := b.context.NewPlayerFromBytes(data)
	player.SetVolume(b.volume)
	player.Play()
}

func (b *SoundBoard) Muted() bool { return b.muted }

func (b *SoundBoard) SetMuted(muted bool) {
	if b != nil {
		b.muted = muted
	}
}
