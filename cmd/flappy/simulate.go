package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

var (
	flagTicks    int
	flagMargin   int
	flagSimSave  bool
	flagSimRetry bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot",
	Long: `Run the simulation without a terminal UI. An autopilot presses start,
then flaps whenever the avatar sinks below the next pipe opening.
Time is simulated, so the run takes as long as the CPU needs.

Examples:
  flappy simulate
  flappy simulate --seed 42 --ticks 20000
  flappy simulate --margin 4 --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate")
	simulateCmd.Flags().IntVar(&flagMargin, "margin", 8, "Autopilot: flap when this close to the bottom of the opening")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run to the replay database")
	simulateCmd.Flags().BoolVar(&flagSimRetry, "restart", false, "Press ok after a crash and keep going until --ticks")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg, atlas, err := loadAssets()
	if err != nil {
		fail("%v", err)
	}

	seed := resolveSeed()
	machine := flappy.NewMachine(cfg, atlas, flappy.WithSeed(seed), flappy.WithLogger(logger))

	var rec *replay.Recorder
	var runnerOpts []flappy.RunnerOption
	if flagSimSave {
		rec, err = replay.NewRecorder(machine, flagFPS)
		if err != nil {
			fail("%v", err)
		}
		runnerOpts = append(runnerOpts, flappy.WithRecorder(rec.Record))
	}
	runner := flappy.NewRunner(machine, flagFPS, runnerOpts...)
	pilot := autopilot{margin: flagMargin, floorY: cfg.Floor.OriginY}

	rounds, best := 0, 0
	for range flagTicks {
		for _, ev := range pilot.decide(machine) {
			runner.Push(ev)
		}
		f := runner.Tick()

		if f.Mode == flappy.ModeGameOver && pilot.lastMode == flappy.ModePlaying {
			rounds++
			best = max(best, f.Score)
			logger.Info("round over", "round", rounds, "score", f.Score, "tick", f.Tick)
			if !flagSimRetry {
				break
			}
		}
		pilot.lastMode = f.Mode
	}

	fmt.Printf("seed:   %d\n", seed)
	fmt.Printf("ticks:  %d\n", machine.Ticks())
	fmt.Printf("mode:   %s\n", machine.Mode())
	fmt.Printf("score:  %d\n", machine.Score())
	if flagSimRetry {
		fmt.Printf("rounds: %d (best %d)\n", rounds, best)
	}

	if rec != nil {
		id, err := saveRecording(rec, machine)
		if err != nil {
			fail("saving replay: %v", err)
		}
		fmt.Printf("replay: #%d\n", id)
	}
}

// autopilot plays by pressing the visible button and flapping whenever the
// avatar's bottom edge sinks near the bottom of the next opening.
type autopilot struct {
	margin   int
	floorY   int
	lastMode flappy.Mode
}

func (p *autopilot) decide(m *flappy.Machine) []core.Event {
	switch m.Mode() {
	case flappy.ModeIntro, flappy.ModeGameOver:
		if ctrl, ok := m.ActiveControl(); ok {
			x, y := ctrl.Center()
			return []core.Event{core.PointerDownEvent(x, y)}
		}
	case flappy.ModeInstructions:
		return []core.Event{core.KeyDownEvent(core.KeySpace)}
	case flappy.ModePlaying:
		a := m.Avatar()
		if a.Velocity() > 0 && a.Rect().Bottom() >= p.target(m)-p.margin {
			return []core.Event{core.KeyDownEvent(core.KeySpace)}
		}
	}
	return nil
}

// target is the y the avatar should stay above: the bottom of the first
// opening still ahead of it, or the floor when none is.
func (p *autopilot) target(m *flappy.Machine) int {
	left := m.Avatar().Rect().X
	for _, g := range m.Gates() {
		if g.Rect.Right() > left {
			return g.Rect.Bottom()
		}
	}
	return p.floorY
}
