// Package synth renders the game's sound effects as raw PCM. Tones are built
// from beep streamers and drained into bytes, so nothing here needs an audio
// device and the waveforms can be tested headless.
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/automoto/runnin-gunner/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// BytesPerFrame is one stereo frame of signed 16-bit little-endian samples,
// the layout ebiten's audio players expect.
const BytesPerFrame = 4

// attack and release are in seconds and keep the square wave from clicking.
const (
	attack  = 0.005
	release = 0.03
)

// headroom scales full-scale samples so overlapping sounds do not clip.
const headroom = 0.5

// Render produces the PCM bytes for a tone at the given sample rate.
// The noise source is seeded so the same tone always renders the same bytes.
func Render(tone config.Tone, sampleRate int) []byte {
	if sampleRate <= 0 {
		return nil
	}
	rate := beep.SampleRate(sampleRate)
	frames := rate.N(time.Duration(tone.Duration * float64(time.Second)))
	if frames <= 0 {
		return nil
	}
	return drain(Stream(tone, rate), frames)
}

// Stream returns the tone as a beep streamer of exactly the tone's length:
// a swept square wave mixed with noise, shaped by Envelope.
func Stream(tone config.Tone, rate beep.SampleRate) beep.Streamer {
	frames := rate.N(time.Duration(tone.Duration * float64(time.Second)))
	square := &sweep{from: tone.Freq, to: tone.EndFreq, frames: frames, rate: rate}
	mixed := beep.Mix(
		newVolume(beep.Take(frames, square), 1-tone.Noise),
		newVolume(beep.Take(frames, &noise{seed: 0x9e3779b9}), tone.Noise),
	)
	shaped := &envelope{Streamer: mixed, duration: tone.Duration, rate: rate}
	return beep.Take(frames, newVolume(shaped, tone.Volume))
}

func drain(s beep.Streamer, frames int) []byte {
	out := make([]byte, frames*BytesPerFrame)
	buf := make([][2]float64, 512)
	for at := 0; at < frames; {
		want := min(len(buf), frames-at)
		n, ok := s.Stream(buf[:want])
		for i := range n {
			putSample(out[(at+i)*BytesPerFrame:], buf[i][0])
			putSample(out[(at+i)*BytesPerFrame+2:], buf[i][1])
		}
		at += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func putSample(b []byte, v float64) {
	s := int16(clamp(v, -1, 1) * math.MaxInt16 * headroom)
	binary.LittleEndian.PutUint16(b, uint16(s))
}

// sweep is a square wave whose frequency slides linearly from from to to
// over frames samples.
type sweep struct {
	from, to float64
	frames   int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		progress := float64(s.pos) / float64(max(s.frames, 1))
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)

		v := 1.0
		if s.phase >= 0.5 {
			v = -1
		}
		samples[i] = [2]float64{v, v}
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is xorshift white noise in [-1, 1].
type noise struct {
	seed uint32
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n.seed ^= n.seed << 13
		n.seed ^= n.seed >> 17
		n.seed ^= n.seed << 5
		v := float64(n.seed)/float64(math.MaxUint32)*2 - 1
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope multiplies a stream by Envelope at each sample's time.
type envelope struct {
	beep.Streamer
	duration float64
	rate     beep.SampleRate
	pos      int
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Streamer.Stream(samples)
	for i := range n {
		g := Envelope(float64(e.pos)/float64(e.rate), e.duration)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

// newVolume scales s linearly by gain. effects.Volume works in powers of
// Base, and log2(0) is -Inf, so zero gain is silence.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Envelope is the amplitude at time t of a sound lasting duration seconds:
// a short linear attack, a decay to half volume, then a linear release.
func Envelope(t, duration float64) float64 {
	if t < 0 || t >= duration {
		return 0
	}
	if t < attack {
		return t / attack
	}
	if left := duration - t; left < release {
		return 0.5 * left / release
	}
	return 1 - 0.5*(t-attack)/math.Max(duration-attack-release, attack)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
