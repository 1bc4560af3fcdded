package headless

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/runnin-gunner/assets"
	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	campaign, err := assets.LoadCampaign()
	require.NoError(t, err)
	r, err := New(campaign, assets.Levels(), opts)
	require.NoError(t, err)
	return r
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	r := newRunner(t, Options{MaxFrames: 120})

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, report.Frames)
	assert.Equal(t, 2*time.Second, report.SimTime.Round(time.Millisecond))
	assert.Equal(t, 0, report.Level)
	assert.Equal(t, cfg.Director.StartingLives, report.Lives)
	assert.Equal(t, 0, report.Deaths)
}

func TestRunHonorsCancellation(t *testing.T) {
	r := newRunner(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Frames)
}

func TestRealtimeRunCanBeStopped(t *testing.T) {
	r := newRunner(t, Options{Realtime: true, TickRate: 240})
	go func() {
		time.Sleep(50 * time.Millisecond)
		r.Stop()
		r.Stop()
	}()

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Positive(t, report.Frames)
}

func TestStartLevelIsWrapped(t *testing.T) {
	campaign, err := assets.LoadCampaign()
	require.NoError(t, err)

	r := newRunner(t, Options{Level: campaign.Len() + 1, MaxFrames: 1})
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.StartLevel)
}

// scripted holds fixed actions every frame.
type scripted []cfg.ActionID

func (s scripted) Drive(_ donburi.World, in *components.InputData) {
	for _, a := range s {
		in.Current[a] = true
	}
}

func TestSkipThroughCampaignWraps(t *testing.T) {
	campaign, err := assets.LoadCampaign()
	require.NoError(t, err)

	r := newRunner(t, Options{Driver: scripted{}})
	for i := range campaign.Len() {
		// the skip key must be released between presses
		r.opts.Driver = scripted{cfg.ActionSkipLevel}
		require.NoError(t, r.Tick())
		r.opts.Driver = scripted{}
		require.NoError(t, r.Tick())

		level, _ := components.Level.First(r.World())
		assert.Equal(t, campaign.Wrap(i+1), components.Level.Get(level).LevelIndex)
		_, ok := systems.PlayerEntry(r.World())
		assert.True(t, ok, "every level has a player")
	}
}

func TestSoundsAreCounted(t *testing.T) {
	r := newRunner(t, Options{MaxFrames: 1})
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sounds[cfg.SoundStart], "level start")
}

func TestAutoPilotMovesAndShoots(t *testing.T) {
	r := newRunner(t, Options{Driver: NewAutoPilot(cfg.BotDifficultyHard), MaxFrames: 600})
	p, ok := systems.PlayerEntry(r.World())
	require.True(t, ok)
	start := components.Entity.Get(p).Pos

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	if p, ok := systems.PlayerEntry(r.World()); ok && report.Deaths == 0 && report.LevelsCompleted == 0 {
		assert.NotEqual(t, start, components.Entity.Get(p).Pos)
	}
	assert.Equal(t, 600, report.Frames)
}
