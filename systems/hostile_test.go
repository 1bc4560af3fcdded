package systems

import (
	"math"
	"testing"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestBatFlipsExactlyOncePerInterval(t *testing.T) {
	w := newBareWorld()
	bat := spawnHostile(t, w, cfg.KindBat, 300, 300)
	heading := components.Bat.Get(bat).Heading

	var flipFrames []int
	for i := 1; i <= 190; i++ {
		clock(w).Now += frame
		setFrame(w, frame)
		UpdateBat(w, bat)
		if h := components.Bat.Get(bat).Heading; h != heading {
			flipFrames = append(flipFrames, i)
			heading = h
		}
	}

	require.Len(t, flipFrames, 3)
	for i := 1; i < len(flipFrames); i++ {
		assert.GreaterOrEqual(t, flipFrames[i]-flipFrames[i-1], 59)
	}
}

func TestBatPatrolsVertically(t *testing.T) {
	w := newBareWorld()
	bat := spawnHostile(t, w, cfg.KindBat, 300, 300)
	setNow(w, 0.5)
	setFrame(w, frame)

	UpdateBat(w, bat)
	pos := components.Entity.Get(bat).Pos
	assert.Equal(t, 300.0, pos.X)
	assert.InDelta(t, 300+cfg.Hostiles[cfg.KindBat].PatrolSpeed*clock(w).Delta, pos.Y, 1e-9)
}

func TestBatTurnsToPlayerBeforeFiring(t *testing.T) {
	w := newBareWorld()
	spawnPlayer(w, 100, 300)
	bat := spawnHostile(t, w, cfg.KindBat, 300, 300)
	setNow(w, 0.5)

	// Documented current behavior: the bat only shoots once
	// dot(view, normalize(bat - player)) < 0, so the first frame is spent
	// turning.
	// facing away: turn around, no shot
	UpdateBat(w, bat)
	assert.True(t, components.Bat.Get(bat).FlipAim)
	assert.True(t, components.Appearance.Get(bat).Mirror)
	assert.InDelta(t, math.Pi, components.Entity.Get(bat).Roll, 1e-9)
	assert.Empty(t, pendingSpawns(w))

	// facing the player but the gate is closed
	UpdateBat(w, bat)
	assert.Empty(t, pendingSpawns(w))
	assert.True(t, components.Bat.Get(bat).FlipAim, "stays facing the player")

	setNow(w, 1.0)
	UpdateBat(w, bat)
	spawns := pendingSpawns(w)
	require.Len(t, spawns, 1)
	assert.Equal(t, cfg.KindBullet2, spawns[0].Kind)
	assert.InDelta(t, math.Pi, math.Abs(spawns[0].Roll), 1e-9)
	assert.Equal(t, bat.Entity(), spawns[0].Owner)
	assert.Less(t, spawns[0].Pos.X, 300.0, "spawned on the player's side")
}

func TestCreeperChargesOnceAligned(t *testing.T) {
	w := newBareWorld()
	spawnPlayer(w, 0, 0)
	creeper := spawnHostile(t, w, cfg.KindCreeper, 400, 0)
	entity := components.Entity.Get(creeper)
	setFrame(w, frame)

	UpdateCreeper(w, creeper)
	assert.Equal(t, 0.0, entity.Speed, "not facing the player yet")
	assert.NotZero(t, entity.RotSpeed)

	entity.Roll = math.Pi
	entity.Pos.X = 400
	UpdateCreeper(w, creeper)
	top := cfg.Hostiles[cfg.KindCreeper].TopSpeed
	assert.Equal(t, top, entity.Speed)
	assert.InDelta(t, 400-top*clock(w).Delta, entity.Pos.X, 1e-9)

	// speed is never reset once charging
	entity.Roll = 0
	UpdateCreeper(w, creeper)
	assert.Equal(t, top, entity.Speed)
}

func TestCreeperDetonation(t *testing.T) {
	w := newBareWorld()
	p := spawnPlayer(w, 0, 0)
	creeper := spawnHostile(t, w, cfg.KindCreeper, 60, 0)

	UpdateCreeper(w, creeper)

	assert.False(t, components.Entity.Get(creeper).Alive)
	assert.True(t, components.Creeper.Get(creeper).Detonated)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Player.CreeperDamage, components.Health.Get(p).Current)

	effects := pendingEffects(w)
	require.Len(t, effects, 1, "explosion replaces the usual death effects")
	assert.Equal(t, cfg.EffectCreeperExplosion, effects[0].Particle.Effect)
	assert.Contains(t, pendingSounds(w), cfg.SoundBoom)

	cameraEntry, _ := components.Camera.First(w)
	assert.True(t, cameraEntry.HasComponent(components.ScreenShake))
}

func TestCreeperDetonatesBehindItToo(t *testing.T) {
	w := newBareWorld()
	spawnPlayer(w, 0, 0)
	creeper := spawnHostile(t, w, cfg.KindCreeper, 60, 0)
	components.Entity.Get(creeper).Roll = 0 // facing away

	// Documented current behavior: the trigger compares the absolute value of a
	// signed distance, so a target behind the creeper still sets it off.

	assert.Negative(t, signedDistance(components.Entity.Get(creeper), components.Entity.Get(mustPlayer(t, w))))
	UpdateCreeper(w, creeper)
	assert.False(t, components.Entity.Get(creeper).Alive)
}

func TestCreeperKillsWeakPlayer(t *testing.T) {
	w := newBareWorld()
	p := spawnPlayer(w, 0, 0)
	components.Health.Get(p).Damage(cfg.Player.MaxHealth - cfg.Player.CreeperLethal)
	creeper := spawnHostile(t, w, cfg.KindCreeper, 60, 0)

	UpdateCreeper(w, creeper)
	assert.False(t, components.Entity.Get(p).Alive)
	_, ok := PlayerEntry(w)
	assert.False(t, ok)
}

func TestCreeperExplodesHarmlesslyOnInvinciblePlayer(t *testing.T) {
	w := newBareWorld()
	p := spawnPlayer(w, 0, 0)
	components.Player.Get(p).Invincible = true
	creeper := spawnHostile(t, w, cfg.KindCreeper, 60, 0)

	UpdateCreeper(w, creeper)
	assert.False(t, components.Entity.Get(creeper).Alive)
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(p).Current)
}

func TestCreeperIdleWithoutPlayer(t *testing.T) {
	w := newBareWorld()
	creeper := spawnHostile(t, w, cfg.KindCreeper, 60, 0)
	components.Entity.Get(creeper).RotSpeed = 3

	UpdateCreeper(w, creeper)
	assert.Zero(t, components.Entity.Get(creeper).RotSpeed)
	assert.True(t, components.Entity.Get(creeper).Alive)
}

func TestTurretFiresWhenLinedUp(t *testing.T) {
	w := newBareWorld()
	spawnPlayer(w, 300, 0)
	turret := spawnHostile(t, w, cfg.KindTurret, 0, 0)

	UpdateTurret(w, turret)
	assert.Empty(t, pendingSpawns(w), "gate closed")
	assert.False(t, components.Turret.Get(turret).Scanning)

	setNow(w, 1)
	UpdateTurret(w, turret)
	spawns := pendingSpawns(w)
	require.Len(t, spawns, 1)
	assert.Equal(t, cfg.KindBullet, spawns[0].Kind)
	assert.Contains(t, pendingSounds(w), cfg.SoundGun)
}

func TestTurretTracksAndScans(t *testing.T) {
	w := newBareWorld()
	turret := spawnHostile(t, w, cfg.KindTurret, 0, 0)
	setFrame(w, frame)

	UpdateTurret(w, turret)
	assert.True(t, components.Turret.Get(turret).Scanning)
	assert.Equal(t, cfg.Hostiles[cfg.KindTurret].ScanSpeed, components.Entity.Get(turret).RotSpeed)
	assert.Positive(t, components.Entity.Get(turret).Roll)

	spawnPlayer(w, 0, 300) // below, a quarter turn away
	setNow(w, 5)
	UpdateTurret(w, turret)
	assert.Equal(t, cfg.Hostiles[cfg.KindTurret].TrackingSpeed, components.Entity.Get(turret).RotSpeed)
	assert.Empty(t, pendingSpawns(w), "not lined up")
}

func TestSwooperReversesOnTimerAndWalls(t *testing.T) {
	w := newBareWorld()
	swooper := spawnHostile(t, w, cfg.KindSwooper, 300, 100)
	s := components.Swooper.Get(swooper)
	start := s.Heading

	setNow(w, 1)
	setFrame(w, frame)
	UpdateSwooper(w, swooper)
	assert.Equal(t, start, s.Heading)
	assert.InDelta(t, 300+start*cfg.Hostiles[cfg.KindSwooper].PatrolSpeed*clock(w).Delta, components.Entity.Get(swooper).Pos.X, 1e-9)

	setNow(w, cfg.Hostiles[cfg.KindSwooper].FlipInterval)
	UpdateSwooper(w, swooper)
	assert.Equal(t, -start, s.Heading)

	// normals point away from the wall
	wallBehind := dmath.Vec2{X: 1}
	wallAhead := dmath.Vec2{X: -1}
	floor := dmath.Vec2{Y: -1}

	s.Heading = 1
	swooperTileContact(w, swooper, wallBehind)
	swooperTileContact(w, swooper, floor)
	assert.Equal(t, 1.0, s.Heading)
	swooperTileContact(w, swooper, wallAhead)
	assert.Equal(t, -1.0, s.Heading)
}

func TestBulletKillsHostileAtOneHealth(t *testing.T) {
	w := newBareWorld()
	p := spawnPlayer(w, 0, 0)
	g := factory.CreateGrappler(w, components.Entity.Get(p).Pos, false)
	bat := spawnHostile(t, w, cfg.KindBat, 500, 0)
	health := components.Health.Get(bat)

	FireSingle(w, g, cfg.KindBullet2)
	FlushSpawns(w)
	bullet := lastOfKind(w, cfg.KindBullet2)
	require.NotNil(t, bullet)

	respond(w, bat, bullet)
	respond(w, bullet, bat)
	assert.Equal(t, uint(2), health.Current)
	assert.Contains(t, pendingSounds(w), cfg.SoundClang)
	assert.False(t, components.Entity.Get(bullet).Alive)

	health.Current = 1
	damageHostile(w, bat)
	assert.False(t, components.Entity.Get(bat).Alive)
	assert.Equal(t, uint(0), health.Current)
	assert.Contains(t, pendingSounds(w), cfg.SoundBoom)
}

func TestSpikesKillHostiles(t *testing.T) {
	w := newBareWorld()
	creeper := spawnHostile(t, w, cfg.KindCreeper, 0, 0)
	spike := spawnStatic(t, w, cfg.KindSpike, 0, 0)

	respond(w, creeper, spike)
	assert.False(t, components.Entity.Get(creeper).Alive)
	assert.Len(t, pendingEffects(w), 2, "smoke and spark, not an explosion")
}
