package systems

import (
	"math"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/yohamta/donburi"
)

// CreateEffect queues a particle burst. It becomes a particle when the frame's
// spawns are flushed.
func CreateEffect(w donburi.World, desc components.EffectDesc) {
	entry, ok := components.EffectQueue.First(w)
	if !ok {
		return
	}
	queue := components.EffectQueue.Get(entry)
	queue.Pending = append(queue.Pending, desc)
}

// UpdateParticles advances particle tweens and drops expired particles.
func UpdateParticles(w donburi.World) {
	dt := clock(w).Dt
	var expired []donburi.Entity
	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Age += dt
		if p.ScaleTween != nil {
			scale, _, _ := p.ScaleTween.Update(float32(dt))
			p.Scale = float64(scale)
		}
		if p.AlphaTween != nil {
			alpha, _, _ := p.AlphaTween.Update(float32(dt))
			p.Alpha = float64(alpha)
		}
		if p.Age >= p.Life {
			expired = append(expired, e.Entity())
		}
	})
	for _, e := range expired {
		w.Remove(e)
	}
}

// ClearParticles removes every particle.
func ClearParticles(w donburi.World) {
	var all []donburi.Entity
	components.Particle.Each(w, func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, e := range all {
		w.Remove(e)
	}
}

func flushEffects(w donburi.World) {
	entry, ok := components.EffectQueue.First(w)
	if !ok {
		return
	}
	queue := components.EffectQueue.Get(entry)
	for _, desc := range queue.Pending {
		factory.CreateParticle(w, desc)
	}
	queue.Pending = queue.Pending[:0]
}

// TriggerScreenShake starts a camera shake. A weaker shake never replaces a
// stronger one already running.
func TriggerScreenShake(w donburi.World, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// updateScreenShake writes the decaying shake offset into the camera and
// removes the shake when it runs out.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	progress := math.Max(0, (shake.Duration-shake.Elapsed)/shake.Duration)
	intensity := shake.Intensity * progress

	// oscillate at roughly the frame rate the shake was tuned at
	phase := shake.Elapsed * float64(cfg.Sim.TickRate)
	camera.Shake.X = math.Sin(phase*1.1) * intensity
	camera.Shake.Y = math.Cos(phase*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}
