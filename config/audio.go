package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundGrunt
	SoundClang
	SoundGun
	SoundRicochet
	SoundStart
	SoundBoom
	SoundStar
	SoundPowerDown
	SoundBounce
	SoundCount // Must be last - used for array sizing
)

func (s SoundID) String() string {
	switch s {
	case SoundGrunt:
		return "grunt"
	case SoundClang:
		return "clang"
	case SoundGun:
		return "gun"
	case SoundRicochet:
		return "ricochet"
	case SoundStart:
		return "start"
	case SoundBoom:
		return "boom"
	case SoundStar:
		return "star"
	case SoundPowerDown:
		return "powerdown"
	case SoundBounce:
		return "bounce"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized sound effect
type Tone struct {
	Freq     float64 // Start frequency in Hz
	EndFreq  float64 // Frequency at the end of the sweep
	Duration float64 // Seconds
	Noise    float64 // 0 = pure square wave, 1 = pure noise
	Volume   float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundGrunt:     {Freq: 180, EndFreq: 90, Duration: 0.15, Noise: 0.3, Volume: 0.8},
			SoundClang:     {Freq: 900, EndFreq: 700, Duration: 0.12, Noise: 0.1, Volume: 0.6},
			SoundGun:       {Freq: 600, EndFreq: 120, Duration: 0.08, Noise: 0.6, Volume: 0.5},
			SoundRicochet:  {Freq: 1400, EndFreq: 2200, Duration: 0.1, Noise: 0.2, Volume: 0.4},
			SoundStart:     {Freq: 330, EndFreq: 880, Duration: 0.5, Volume: 0.6},
			SoundBoom:      {Freq: 120, EndFreq: 30, Duration: 0.6, Noise: 0.9, Volume: 1.0},
			SoundStar:      {Freq: 880, EndFreq: 1760, Duration: 0.25, Volume: 0.6},
			SoundPowerDown: {Freq: 880, EndFreq: 220, Duration: 0.4, Volume: 0.6},
			SoundBounce:    {Freq: 200, EndFreq: 700, Duration: 0.2, Volume: 0.7},
		},
	}
}
