package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRecord bool
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W   - Flap
  Enter/Click  - Press the on-screen button (start, ok)
  Ctrl+S       - Save a text screenshot
  Q/Esc/Ctrl+C - Quit

Examples:
  flappy play
  flappy play --sound
  flappy play --seed 7 --record
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session to the replay database")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logs must not reach the terminal while the alt screen is up.
	logger, closer, err := newLogger(nil)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg, atlas, err := loadAssets()
	if err != nil {
		fail("%v", err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = resolveSeed()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	machine := flappy.NewMachine(cfg, atlas, flappy.WithSeed(rt.Seed), flappy.WithLogger(logger))

	runnerOpts := []flappy.RunnerOption{flappy.WithClock(core.NewMonotonicClock())}
	var rec *replay.Recorder
	if flagRecord {
		rec, err = replay.NewRecorder(machine, rt.TickRate)
		if err != nil {
			fail("%v", err)
		}
		runnerOpts = append(runnerOpts, flappy.WithRecorder(rec.Record))
	}
	runner := flappy.NewRunner(machine, rt.TickRate, runnerOpts...)

	opts := tui.Options{
		TickRate: rt.TickRate,
		Width:    rt.ScreenW,
		Height:   rt.ScreenH,
		Logger:   logger,
	}
	if flagSound {
		sound := audio.NewSoundManager(flagVolume)
		if err := sound.Initialize(); err != nil {
			// Continue without sound - game still works
			warn(os.Stderr, logger, "sound disabled", err)
		} else {
			defer sound.Close()
			opts.Sound = sound
		}
	}

	logger.Info("session started", "seed", rt.Seed, "fps", rt.TickRate, "record", flagRecord)
	runErr := tui.Run(runner, atlas, opts)

	if rec != nil {
		// The game has already ended normally; a failed save only warns.
		id, err := saveRecording(rec, machine)
		if err != nil {
			warn(os.Stderr, logger, "could not save replay", err)
		} else {
			logger.Info("replay saved", "id", id, "events", rec.Len(), "score", machine.Score())
			fmt.Printf("Saved replay #%d (score %d). Verify with: flappy replay %d\n", id, machine.Score(), id)
		}
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// saveRecording stores a finished session and returns its ID.
func saveRecording(rec *replay.Recorder, machine *flappy.Machine) (int64, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	return store.SaveRun(rec.Run(machine))
}
