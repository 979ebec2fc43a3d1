package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundPickup
	SoundRejected
	SoundGoal
	SoundHit
	SoundMenuSelect
)

// Tone describes a generated sound effect: a square wave sliding from
// StartHz to EndHz over Duration seconds.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Tones      map[SoundID]Tone
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]Tone{
			SoundJump:       {StartHz: 330, EndHz: 660, Duration: 0.12, Volume: 0.6},
			SoundPickup:     {StartHz: 880, EndHz: 1320, Duration: 0.10, Volume: 0.7},
			SoundRejected:   {StartHz: 220, EndHz: 180, Duration: 0.20, Volume: 0.6},
			SoundGoal:       {StartHz: 523, EndHz: 1046, Duration: 0.35, Volume: 0.7},
			SoundHit:        {StartHz: 160, EndHz: 60, Duration: 0.25, Volume: 0.8},
			SoundMenuSelect: {StartHz: 660, EndHz: 660, Duration: 0.06, Volume: 0.5},
		},
	}
}
