package client

import (
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/synth"
	"github.com/automoto/runnin-gunner/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Audio plays the sound requests the simulation queues. Waveforms are
// synthesized once and cached as PCM.
type Audio struct {
	context *audio.Context
	cache   map[cfg.SoundID][]byte
	playing []*audio.Player
	volume  float64
	muted   bool
}

// NewAudio reuses the process-wide audio context when one already exists.
func NewAudio(sampleRate int) *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Audio{
		context: ctx,
		cache:   make(map[cfg.SoundID][]byte),
		volume:  cfg.Audio.DefaultSFXVol,
	}
}

// Preload renders every configured sound to avoid a stall on first play.
func (a *Audio) Preload() {
	for id := cfg.SoundNone + 1; id < cfg.SoundCount; id++ {
		a.pcm(id)
	}
}

func (a *Audio) pcm(id cfg.SoundID) []byte {
	if b, ok := a.cache[id]; ok {
		return b
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil
	}
	b := synth.Render(tone, a.context.SampleRate())
	a.cache[id] = b
	return b
}

// Play starts a new voice for the sound.
func (a *Audio) Play(id cfg.SoundID) {
	if a.muted || a.volume <= 0 {
		return
	}
	pcm := a.pcm(id)
	if len(pcm) == 0 {
		return
	}
	p := a.context.NewPlayerFromBytes(pcm)
	p.SetVolume(a.volume)
	p.Play()
	a.playing = append(a.playing, p)
}

// StopAll silences every voice.
func (a *Audio) StopAll() {
	for _, p := range a.playing {
		p.Pause()
		_ = p.Close()
	}
	a.playing = a.playing[:0]
}

func (a *Audio) SetVolume(v float64) {
	a.volume = max(0, min(1, v))
	for _, p := range a.playing {
		p.SetVolume(a.volume)
	}
}

func (a *Audio) Volume() float64 { return a.volume }

func (a *Audio) SetMuted(muted bool) {
	a.muted = muted
	if muted {
		a.StopAll()
	}
}

func (a *Audio) Muted() bool { return a.muted }

// Update drains the world's sound queue. Register it as a system after the
// simulation step.
func (a *Audio) Update(e *ecs.ECS) {
	stopAll, sounds := systems.DrainSounds(e.World)
	if stopAll {
		a.StopAll()
	}
	for _, id := range sounds {
		a.Play(id)
	}
	a.prune()
}

// prune closes finished voices.
func (a *Audio) prune() {
	live := a.playing[:0]
	for _, p := range a.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	a.playing = live
}
