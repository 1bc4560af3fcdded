package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestParseKindRoundTrip(t *testing.T) {
	for k := KindNone + 1; k < KindCount; k++ {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	_, ok := ParseKind("dragon")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, KindBullet.IsBullet())
	assert.True(t, KindBullet2.IsBullet())
	assert.False(t, KindPlayer.IsBullet())

	for _, k := range []Kind{KindBat, KindCreeper, KindTurret, KindSwooper} {
		assert.True(t, k.IsHostile(), k.String())
	}
	assert.False(t, KindSpike.IsHostile())

	assert.True(t, KindHealthPack.IsPickup())
	assert.False(t, KindDoor.IsPickup())
	assert.False(t, KindLaunchPad.IsPickup())

	single := map[Kind]func(Kind) bool{
		KindPlayer:     Kind.IsPlayer,
		KindGrappler:   Kind.IsGrappler,
		KindSpike:      Kind.IsSpike,
		KindDoor:       Kind.IsDoor,
		KindStar:       Kind.IsStar,
		KindHealthPack: Kind.IsHealthPack,
		KindOneUp:      Kind.IsOneUp,
		KindShotgun:    Kind.IsShotgun,
		KindLaunchPad:  Kind.IsLaunchPad,
		KindCreeper:    Kind.IsCreeper,
		KindSwooper:    Kind.IsSwooper,
	}
	for want, is := range single {
		for k := KindNone + 1; k < KindCount; k++ {
			assert.Equal(t, k == want, is(k), "%s vs %s", want, k)
		}
	}

	assert.True(t, KindDoor.IsStatic())
	assert.False(t, KindPlayer.IsStatic())
	assert.False(t, KindCreeper.IsStatic())
}

func TestRadiusUsesLargerSide(t *testing.T) {
	assert.Equal(t, 32.0, Radius(KindPlayer))
	assert.Equal(t, 48.0, Radius(KindDoor))
	assert.Equal(t, 0.0, Radius(KindNone))
}

func TestParseTuningKeepsUnsetValues(t *testing.T) {
	restoreTuning(t)

	err := ParseTuning([]byte(`
player:
  top_speed: 20
hostiles:
  creeper:
    trigger_distance: 120
director:
  starting_lives: 5
`))
	require.NoError(t, err)

	assert.Equal(t, 20.0, Player.TopSpeed)
	assert.Equal(t, 0.3, Player.Acceleration)
	assert.Equal(t, uint(12), Player.MaxHealth)
	assert.Equal(t, 120.0, Hostiles[KindCreeper].TriggerDistance)
	assert.Equal(t, 8.0, Hostiles[KindCreeper].TopSpeed)
	assert.Equal(t, KindBullet2, Hostiles[KindBat].Bullet)
	assert.Equal(t, 5, Director.StartingLives)
	assert.Equal(t, 3.0, Director.WaitTime)
}

func TestParseTuningRejectsBadYAML(t *testing.T) {
	restoreTuning(t)

	err := ParseTuning([]byte("player: [oops"))
	assert.Error(t, err)
	assert.Equal(t, 15.0, Player.TopSpeed)
}

func TestLoadTuningCustomPath(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bullet:\n  speed: 250\n"), 0o644))

	applied, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, path, applied)
	assert.Equal(t, 250.0, Bullet.Speed)
	assert.Equal(t, 2.0, Bullet.Lifespan)
}

func TestLoadTuningMissingCustomPath(t *testing.T) {
	restoreTuning(t)

	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
