package systems

import (
	"testing"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// Bat hovering in the top row, centre (352, 96).
const batSpawn = `  <object id="3" type="bat" x="320" y="64" width="64" height="64"/>`

func lives(w donburi.World) *components.LivesData {
	entry, _ := directorEntry(w)
	return components.Lives.Get(entry)
}

// stepUntil steps one frame at a time until done reports true.
func stepUntil(t *testing.T, w donburi.World, maxFrames int, done func() bool) {
	t.Helper()
	for range maxFrames {
		require.NoError(t, Step(w, cfg.Sim.MaxFrameTime))
		if done() {
			return
		}
	}
	t.Fatalf("condition not reached in %d frames", maxFrames)
}

func TestNewGameBeginsLevel(t *testing.T) {
	w := newGame(t, playerSpawn+doorSpawn)

	d := director(w)
	assert.Equal(t, components.DirectorPlaying, d.State)
	assert.Equal(t, 0, d.Hostiles)
	assert.Equal(t, cfg.Director.StartingLives, lives(w).Lives)
	assert.Equal(t, 1, countKind(w, cfg.KindPlayer))
	assert.Equal(t, 1, countKind(w, cfg.KindGrappler))
	assert.Equal(t, 1, countKind(w, cfg.KindDoor))

	stopAll, sounds := DrainSounds(w)
	assert.True(t, stopAll)
	assert.Equal(t, []cfg.SoundID{cfg.SoundStart}, sounds)

	cameraEntry, _ := components.Camera.First(w)
	assert.Equal(t, 320.0, components.Camera.Get(cameraEntry).Position.X, "room narrower than the window is centred")
}

func TestDoorUnlocksOnlyWhenHostilesAreGone(t *testing.T) {
	w := newGame(t, playerSpawn+doorSpawn+batSpawn)
	door := lastOfKind(w, cfg.KindDoor)
	bat := lastOfKind(w, cfg.KindBat)

	stepFrames(t, w, 10)
	assert.True(t, components.Door.Get(door).Locked)
	assert.Equal(t, 1, director(w).Hostiles)

	killHostile(w, bat)
	stepFrames(t, w, 1)
	assert.Equal(t, 0, director(w).Hostiles)
	assert.False(t, components.Door.Get(door).Locked)
}

func TestDoorStaysLockedWithoutPlayer(t *testing.T) {
	w := newGame(t, playerSpawn+doorSpawn)
	door := lastOfKind(w, cfg.KindDoor)
	killPlayer(w, mustPlayer(t, w))

	stepFrames(t, w, 1)
	assert.True(t, components.Door.Get(door).Locked)
}

func TestPlayerDeathCostsALife(t *testing.T) {
	w := newGame(t, playerSpawn)
	first := mustPlayer(t, w).Entity()
	killPlayer(w, mustPlayer(t, w))

	stepFrames(t, w, 1)
	d := director(w)
	assert.Equal(t, components.DirectorDying, d.State)
	assert.Equal(t, 1, d.Deaths)
	_, _, ok := LoseBanner(w)
	assert.True(t, ok)

	stepFrames(t, w, 30)
	assert.Equal(t, components.DirectorDying, d.State, "still waiting")
	assert.Equal(t, cfg.Director.StartingLives, lives(w).Lives)

	stepUntil(t, w, 100, func() bool { return d.State == components.DirectorPlaying })
	assert.Equal(t, components.OutcomeLifeLost, d.Outcome)
	assert.Equal(t, cfg.Director.StartingLives-1, lives(w).Lives)
	assert.NotEqual(t, first, mustPlayer(t, w).Entity())
	assert.Equal(t, 0, levelData(w).LevelIndex)
}

func TestGameOverRestartsCampaign(t *testing.T) {
	w := newGame(t, playerSpawn)
	levelData(w).LevelIndex = 1
	require.NoError(t, BeginLevel(w))
	lives(w).Lives = 1

	killPlayer(w, mustPlayer(t, w))
	d := director(w)
	stepFrames(t, w, 1)
	stepUntil(t, w, 100, func() bool { return d.State == components.DirectorPlaying })

	assert.Equal(t, components.OutcomeGameOver, d.Outcome)
	assert.Equal(t, cfg.Director.StartingLives, lives(w).Lives)
	assert.Equal(t, 0, levelData(w).LevelIndex)
}

func TestWinnerAdvancesAndWraps(t *testing.T) {
	w := newGame(t, playerSpawn)

	components.Player.Get(mustPlayer(t, w)).Winner = true
	stepFrames(t, w, 1)
	assert.Equal(t, 1, levelData(w).LevelIndex)
	assert.Equal(t, components.OutcomeLevelComplete, director(w).Outcome)

	components.Player.Get(mustPlayer(t, w)).Winner = true
	stepFrames(t, w, 1)
	assert.Equal(t, 0, levelData(w).LevelIndex, "wraps to the first level")
	assert.Equal(t, 2, director(w).LevelsCompleted)
	assert.Equal(t, 1, countKind(w, cfg.KindPlayer))
}

func TestOneUpAddsALife(t *testing.T) {
	w := newGame(t, playerSpawn)
	player := components.Player.Get(mustPlayer(t, w))
	player.HasOneUp = true

	stepFrames(t, w, 1)
	assert.Equal(t, cfg.Director.StartingLives+1, lives(w).Lives)
	assert.False(t, player.HasOneUp)

	stepFrames(t, w, 1)
	assert.Equal(t, cfg.Director.StartingLives+1, lives(w).Lives, "granted once")
}

func TestShotgunPickupArmsGrapplerForTheLevel(t *testing.T) {
	w := newGame(t, playerSpawn)
	components.Player.Get(mustPlayer(t, w)).Shotgun = true

	stepFrames(t, w, 1)
	assert.True(t, components.Grappler.Get(grappler(t, w)).Shotgun)

	require.NoError(t, BeginLevel(w))
	assert.False(t, components.Grappler.Get(grappler(t, w)).Shotgun, "each level starts with the normal gun")
}

func TestRestartAndSkipCommands(t *testing.T) {
	w := newGame(t, playerSpawn)
	first := mustPlayer(t, w).Entity()

	press(w, cfg.ActionRestart)
	stepFrames(t, w, 1)
	assert.NotEqual(t, first, mustPlayer(t, w).Entity())
	assert.Equal(t, 0, levelData(w).LevelIndex)

	// held keys do not repeat
	stepFrames(t, w, 1)
	press(w, cfg.ActionRestart)
	second := mustPlayer(t, w).Entity()
	stepFrames(t, w, 1)
	assert.Equal(t, second, mustPlayer(t, w).Entity())

	press(w, cfg.ActionSkipLevel)
	stepFrames(t, w, 1)
	assert.Equal(t, 1, levelData(w).LevelIndex)
}

func TestStepOnEmptyWorld(t *testing.T) {
	w := donburi.NewWorld()
	assert.NoError(t, Step(w, frame))
}
