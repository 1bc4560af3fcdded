package synth

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/runnin-gunner/config"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLength(t *testing.T) {
	tone := config.Tone{Freq: 440, EndFreq: 440, Duration: 0.5, Volume: 1}
	pcm := Render(tone, 44100)
	assert.Len(t, pcm, 22050*BytesPerFrame)
}

func TestRenderEmpty(t *testing.T) {
	assert.Nil(t, Render(config.Tone{Freq: 440, Duration: 0}, 44100))
	assert.Nil(t, Render(config.Tone{Freq: 440, Duration: 1}, 0))
}

func TestRenderIsDeterministic(t *testing.T) {
	tone := config.Sound.Tones[config.SoundBoom]
	assert.Equal(t, Render(tone, 22050), Render(tone, 22050))
}

func TestRenderStereoChannelsMatch(t *testing.T) {
	pcm := Render(config.Sound.Tones[config.SoundGun], 22050)
	require.NotEmpty(t, pcm)
	for i := 0; i+BytesPerFrame <= len(pcm); i += BytesPerFrame {
		require.Equal(t, pcm[i:i+2], pcm[i+2:i+4])
	}
}

func TestRenderStartsAndEndsQuiet(t *testing.T) {
	pcm := Render(config.Tone{Freq: 440, EndFreq: 440, Duration: 0.2, Volume: 1}, 44100)
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-BytesPerFrame:]))
	assert.Equal(t, int16(0), first)
	assert.InDelta(t, 0, float64(last), 400)
}

func TestEnvelope(t *testing.T) {
	assert.Equal(t, 0.0, Envelope(-1, 1))
	assert.Equal(t, 0.0, Envelope(1, 1))
	assert.InDelta(t, 0.5, Envelope(attack/2, 1), 1e-9)
	assert.InDelta(t, 1.0, Envelope(attack, 1), 1e-9)
	assert.Less(t, Envelope(0.9, 1), Envelope(0.1, 1))
}

func TestEveryConfiguredSoundRenders(t *testing.T) {
	for id := config.SoundNone + 1; id < config.SoundCount; id++ {
		tone, ok := config.Sound.Tones[id]
		require.True(t, ok, id.String())
		assert.NotEmpty(t, Render(tone, config.Audio.SampleRate), id.String())
	}
}

func TestStreamStopsAtToneLength(t *testing.T) {
	s := Stream(config.Tone{Freq: 100, EndFreq: 200, Duration: 0.25, Volume: 1}, beep.SampleRate(1000))
	buf := make([][2]float64, 400)

	n, _ := s.Stream(buf)
	assert.Equal(t, 250, n)
	for _, frame := range buf[:n] {
		require.LessOrEqual(t, frame[0], 1.0)
		require.GreaterOrEqual(t, frame[0], -1.0)
	}

	n, ok := s.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestSilentToneRendersZeros(t *testing.T) {
	pcm := Render(config.Tone{Freq: 440, EndFreq: 880, Duration: 0.1, Noise: 0.5, Volume: 0}, 8000)
	require.Len(t, pcm, 800*BytesPerFrame)
	for _, b := range pcm {
		require.Zero(t, b)
	}
}

func TestNoiseOnlyToneIsNotSquare(t *testing.T) {
	square := Render(config.Tone{Freq: 440, EndFreq: 440, Duration: 0.1, Volume: 1}, 8000)
	noisy := Render(config.Tone{Freq: 440, EndFreq: 440, Duration: 0.1, Noise: 1, Volume: 1}, 8000)
	assert.NotEqual(t, square, noisy)

	// Noise spreads samples over many levels.
	levels := map[int16]bool{}
	for i := 100; i < 200; i++ {
		levels[int16(binary.LittleEndian.Uint16(noisy[i*BytesPerFrame:]))] = true
	}
	assert.Greater(t, len(levels), 10)
}
