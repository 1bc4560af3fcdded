// Package headless steps the simulation without a window, either as fast
// as possible or paced by a ticker.
package headless

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/automoto/runnin-gunner/components"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/automoto/runnin-gunner/systems"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// Options configures a run.
type Options struct {
	Level     int
	TickRate  int  // frames per simulated second, cfg.Sim.TickRate when zero
	Realtime  bool // pace frames with a ticker instead of running flat out
	MaxFrames int  // stop after this many frames, zero for no limit
	MaxLevels int  // stop after this many completed levels, zero for no limit
	Driver    Driver
}

// Report summarizes a finished run.
type Report struct {
	Frames          int
	SimTime         time.Duration
	StartLevel      int
	Level           int
	Lives           int
	LevelsCompleted int
	Deaths          int
	GameOvers       int
	Sounds          map[cfg.SoundID]int
}

type Runner struct {
	world    donburi.World
	opts     Options
	dt       float64
	report   Report
	stopChan chan struct{}
	stopOnce sync.Once
}

// New builds a world for the campaign and begins opts.Level.
func New(campaign *leveldata.Campaign, fsys fs.FS, opts Options) (*Runner, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Sim.TickRate
	}
	if opts.Driver == nil {
		opts.Driver = Idle{}
	}

	w := donburi.NewWorld()
	if err := systems.NewGame(w, campaign, fsys, opts.Level); err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	level, _ := components.Level.First(w)

	return &Runner{
		world: w,
		opts:  opts,
		dt:    1 / float64(opts.TickRate),
		report: Report{
			StartLevel: components.Level.Get(level).LevelIndex,
			Sounds:     make(map[cfg.SoundID]int),
		},
		stopChan: make(chan struct{}),
	}, nil
}

// World exposes the simulated world, mainly for tests.
func (r *Runner) World() donburi.World {
	return r.world
}

// Run steps until a limit is reached, ctx is cancelled or Stop is called.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	log.Info("headless run started", "level", r.report.StartLevel, "tick_rate", r.opts.TickRate, "realtime", r.opts.Realtime)

	var ticks <-chan time.Time
	if r.opts.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickRate))
		defer ticker.Stop()
		ticks = ticker.C
	}

	for !r.done() {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return r.finish(), ctx.Err()
			case <-r.stopChan:
				return r.finish(), nil
			case <-ticks:
			}
		} else {
			select {
			case <-ctx.Done():
				return r.finish(), ctx.Err()
			case <-r.stopChan:
				return r.finish(), nil
			default:
			}
		}
		if err := r.Tick(); err != nil {
			return r.finish(), err
		}
	}
	return r.finish(), nil
}

// Stop ends a running Run after the current frame.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

// Tick runs one frame: input from the driver, the step, then the audio drain.
func (r *Runner) Tick() error {
	inputEntry, ok := components.Input.First(r.world)
	if ok {
		in := components.Input.Get(inputEntry)
		in.Advance()
		r.opts.Driver.Drive(r.world, in)
	}

	if err := systems.Step(r.world, r.dt); err != nil {
		return fmt.Errorf("frame %d: %w", r.report.Frames, err)
	}
	r.report.Frames++
	r.report.SimTime += time.Duration(r.dt * float64(time.Second))

	_, sounds := systems.DrainSounds(r.world)
	for _, s := range sounds {
		r.report.Sounds[s]++
	}
	r.recordOutcome()
	return nil
}

func (r *Runner) recordOutcome() {
	entry, ok := components.Director.First(r.world)
	if !ok {
		return
	}
	d := components.Director.Get(entry)
	level, _ := components.Level.First(r.world)
	index := components.Level.Get(level).LevelIndex

	switch d.Outcome {
	case components.OutcomeLevelComplete:
		log.Info("level complete", "frame", r.report.Frames, "next", index)
	case components.OutcomeLifeLost:
		log.Info("life lost", "frame", r.report.Frames, "lives", components.Lives.Get(entry).Lives)
	case components.OutcomeGameOver:
		r.report.GameOvers++
		log.Info("game over", "frame", r.report.Frames)
	}
}

func (r *Runner) done() bool {
	if r.opts.MaxFrames > 0 && r.report.Frames >= r.opts.MaxFrames {
		return true
	}
	if r.opts.MaxLevels > 0 {
		if d, ok := components.Director.First(r.world); ok && components.Director.Get(d).LevelsCompleted >= r.opts.MaxLevels {
			return true
		}
	}
	return false
}

// finish copies the director's totals into the report.
func (r *Runner) finish() Report {
	if entry, ok := components.Director.First(r.world); ok {
		d := components.Director.Get(entry)
		r.report.LevelsCompleted = d.LevelsCompleted
		r.report.Deaths = d.Deaths
		r.report.Lives = components.Lives.Get(entry).Lives
	}
	if level, ok := components.Level.First(r.world); ok {
		r.report.Level = components.Level.Get(level).LevelIndex
	}
	log.Info("headless run finished",
		"frames", r.report.Frames,
		"levels", r.report.LevelsCompleted,
		"deaths", r.report.Deaths,
		"level", r.report.Level,
	)
	return r.report
}
