package systems

import (
	"slices"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// PlaySound queues a sound effect to be played by the audio client.
// A sound already queued this frame is not queued again.
func PlaySound(w donburi.World, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	if slices.Contains(audio.PendingSFX, soundID) {
		return
	}
	audio.PendingSFX = append(audio.PendingSFX, soundID)
}

// StopSounds asks the audio client to silence everything already playing.
// Sounds queued afterwards in the same frame still play.
func StopSounds(w donburi.World) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.StopAll = true
	audio.PendingSFX = audio.PendingSFX[:0]
}

// DrainSounds hands the queued requests to the caller and empties the queue.
func DrainSounds(w donburi.World) (stopAll bool, sounds []cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return false, nil
	}
	audio := components.Audio.Get(entry)
	stopAll, sounds = audio.StopAll, slices.Clone(audio.PendingSFX)
	audio.StopAll = false
	audio.PendingSFX = audio.PendingSFX[:0]
	return stopAll, sounds
}
