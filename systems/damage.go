package systems

import (
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// damagePlayer applies a hit the player is not immune to.
func damagePlayer(w donburi.World, e *donburi.Entry, amount uint) {
	if !alive(e) {
		return
	}
	health := components.Health.Get(e)
	if health.Damage(amount) {
		killPlayer(w, e)
		return
	}
	PlaySound(w, cfg.SoundGrunt)
	damageTint(e)
}

// contactDamage hurts the player at most once per cooldown for each hostile
// kind. Invincibility blocks it.
func contactDamage(w donburi.World, e *donburi.Entry, kind cfg.Kind) {
	tuning := cfg.Hostiles[kind]
	player := components.Player.Get(e)
	if tuning.ContactDamage == 0 || player.Invincible {
		return
	}
	now := clock(w).Now
	if last, ok := player.LastContact[kind]; ok && now-last < tuning.ContactCooldown {
		return
	}
	player.LastContact[kind] = now
	damagePlayer(w, e, tuning.ContactDamage)
}

// hitByCreeper applies a detonation: lethal at low health, heavy damage
// otherwise. Invincibility blocks it.
func hitByCreeper(w donburi.World, e *donburi.Entry) {
	if !alive(e) || components.Player.Get(e).Invincible {
		return
	}
	if components.Health.Get(e).Current <= cfg.Player.CreeperLethal {
		killPlayer(w, e)
		return
	}
	damagePlayer(w, e, cfg.Player.CreeperDamage)
}

// killPlayer ends the player's life and clears the director's handle.
func killPlayer(w donburi.World, e *donburi.Entry) {
	entity := components.Entity.Get(e)
	if !entity.Alive {
		return
	}
	components.Health.Get(e).Zero()
	PlaySound(w, cfg.SoundBoom)
	if d := director(w); d != nil {
		d.Player = donburi.Null
		d.DeathPos = gamemath.Add(entity.Pos, gamemath.Scale(gamemath.Up, cfg.Director.BannerOffset))
	}
	Kill(w, e)
}

// damageHostile applies a bullet hit to a hostile.
func damageHostile(w donburi.World, e *donburi.Entry) {
	if !alive(e) {
		return
	}
	if components.Health.Get(e).Damage(1) {
		killHostile(w, e)
		return
	}
	PlaySound(w, cfg.SoundClang)
	damageTint(e)
}

func killHostile(w donburi.World, e *donburi.Entry) {
	if !alive(e) {
		return
	}
	components.Health.Get(e).Zero()
	PlaySound(w, cfg.SoundBoom)
	Kill(w, e)
}
