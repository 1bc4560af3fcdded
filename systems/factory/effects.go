package factory

import (
	"github.com/automoto/runnin-gunner/archetypes"
	"github.com/automoto/runnin-gunner/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateParticle turns an effect request into a particle. Scale grows over
// the scale-in fraction of its life, holds, then shrinks over the scale-out
// fraction; alpha holds and fades over the fade-out fraction.
func CreateParticle(w donburi.World, desc components.EffectDesc) *donburi.Entry {
	p := desc.Particle
	particle := archetypes.Particle.Spawn(w)

	in := p.ScaleIn * p.Life
	out := p.ScaleOut * p.Life
	fade := p.FadeOut * p.Life

	scale := gween.NewSequence()
	addTween(scale, 0, p.MaxScale, in)
	addTween(scale, p.MaxScale, p.MaxScale, p.Life-in-out)
	addTween(scale, p.MaxScale, 0, out)

	alpha := gween.NewSequence()
	addTween(alpha, 1, 1, p.Life-fade)
	addTween(alpha, 1, 0, fade)

	startScale := p.MaxScale
	if in > 0 {
		startScale = 0
	}

	components.Particle.SetValue(particle, components.ParticleData{
		Effect:     p.Effect,
		Pos:        desc.Pos,
		Tint:       p.Tint,
		Life:       p.Life,
		Scale:      startScale,
		Alpha:      1,
		ScaleTween: scale,
		AlphaTween: alpha,
	})
	return particle
}

// addTween skips empty segments so a zero fraction never stalls the sequence.
func addTween(seq *gween.Sequence, begin, end, duration float64) {
	if duration <= 0 {
		return
	}
	seq.Add(gween.New(float32(begin), float32(end), float32(duration), ease.Linear))
}
