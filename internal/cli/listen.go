package cli

import (
	"context"
	"errors"
	"math"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/0xlemi/raagnote/internal/audio"
	"github.com/0xlemi/raagnote/internal/listen"
	"github.com/0xlemi/raagnote/internal/logger"
	"github.com/0xlemi/raagnote/internal/pitch"
	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/recorder"
	"github.com/0xlemi/raagnote/internal/swara"
	"github.com/0xlemi/raagnote/internal/ui"
)

var (
	listenDemo      bool
	listenPlain     bool
	listenDuration  time.Duration
	listenMaxSwaras int
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listen to the microphone and identify swaras live",
	Long: `Captures audio from the default input device and shows the current
swara, Western note and tuning in a terminal UI.

Controls:
  r      - Start recording / stop and match raags
  s      - Toggle Latin / Devanagari swaras
  q      - Quit

When stdout is not a terminal (or with --plain) recorded swaras are printed
one per line and the sequence is matched when listening ends.`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().BoolVar(&listenDemo, "demo", false, "use a synthetic Yaman phrase instead of the microphone")
	listenCmd.Flags().BoolVar(&listenPlain, "plain", false, "print swaras line by line instead of the UI")
	listenCmd.Flags().DurationVar(&listenDuration, "duration", 0, "stop after this long in plain mode (0 = until interrupted)")
	listenCmd.Flags().IntVar(&listenMaxSwaras, "max-swaras", 0, "stop after recording this many swaras in plain mode (0 = no limit)")
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, _ []string) error {
	tonic, err := resolveTonic(cmd)
	if err != nil {
		return err
	}
	script, err := resolveScript(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	engine := raag.NewEngine(catalog, raag.WithMinConfidence(cfg.Matching.MinConfidence))

	capturer, err := newCapturer(tonic)
	if err != nil {
		return err
	}
	estimator, err := pitch.NewFFTEstimator(cfg.Detection.MinFrequency, cfg.Detection.MaxFrequency)
	if err != nil {
		return err
	}

	rec := recorder.New(cfg.Recording.Options())
	l := &listen.Listener{
		Capturer:  capturer,
		Estimator: estimator,
		Filter:    cfg.Detection.Filter(),
		Tonic:     tonic,
		Recorder:  rec,
		Interval:  listen.DefaultInterval,
	}
	logger.L().Debug("listening", "tonic", tonic.String(), "demo", listenDemo,
		"buffer", cfg.Audio.BufferSize, "rate", cfg.Audio.SampleRate)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if listenPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if listenDuration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, listenDuration)
			defer cancel()
		}
		return listenLines(ctx, cmd, l, engine, script, listenMaxSwaras)
	}
	return listenUI(ctx, l, engine, tonic, script)
}

func newCapturer(tonic swara.Tonic) (audio.Capturer, error) {
	if listenDemo {
		hold := int(cfg.Recording.Options().Debounce/listen.DefaultInterval) + 2
		return audio.NewToneSource(cfg.Audio.BufferSize, cfg.Audio.SampleRate, demoPhrase(tonic, hold)...), nil
	}
	c, err := audio.NewPortAudioCapturer(cfg.Audio.BufferSize, cfg.Audio.SampleRate, 1)
	if err != nil {
		return nil, err
	}
	c.SetAmplification(cfg.Audio.Amplification)
	return c, nil
}

// demoPhrase is Yaman's aroha and avaroha over the tonic, each swara held
// for the given number of frames and followed by a short rest.
func demoPhrase(tonic swara.Tonic, hold int) []audio.Tone {
	semitones := []int{0, 2, 4, 6, 7, 9, 11, 12, 11, 9, 7, 6, 4, 2, 0}
	sa := tonic.Frequency()
	tones := make([]audio.Tone, 0, len(semitones)+1)
	for _, st := range semitones {
		tone := audio.Drone(0.5, sa*math.Pow(2, float64(st)/12))
		tone.Frames = hold
		tones = append(tones, tone)
	}
	return append(tones, audio.Tone{Frames: hold})
}

// listenUI runs the capture loop and the terminal UI together; whichever
// ends first stops the other.
func listenUI(ctx context.Context, l *listen.Listener, engine *raag.Engine, tonic swara.Tonic, script swara.Script) error {
	model := ui.NewModel(l.Recorder, engine, tonic, script)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		err := l.Run(ctx, func(e listen.Event) {
			p.Send(ui.EventMsg(e))
		})
		if err != nil {
			p.Quit()
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	return g.Wait()
}

// listenLines records from the start and prints each recorded swara, then
// matches the session when ctx ends or maxSwaras have been recorded.
func listenLines(ctx context.Context, cmd *cobra.Command, l *listen.Listener, engine *raag.Engine, script swara.Script, maxSwaras int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := l.Recorder.Start()
	cmd.Printf("Listening with Sa = %s (session %s). Press Ctrl+C to stop.\n", l.Tonic, session.ID)

	recorded := 0
	err := l.Run(ctx, func(e listen.Event) {
		note, ok := e.(listen.NoteEvent)
		if !ok || !note.Recorded {
			return
		}
		recorded++
		cmd.Printf("%-6s %-4s %8.2f Hz %+6.1f¢\n",
			note.Mapping.In(script), note.Mapping.Western(), note.Reading.Frequency, note.Mapping.Cents)
		if maxSwaras > 0 && recorded >= maxSwaras {
			cancel()
		}
	})
	if err != nil {
		return err
	}

	session = l.Recorder.Stop()
	logger.L().Info("session finished", "id", session.ID, "swaras", len(session.Sequence),
		"duration", session.Duration().Round(time.Millisecond))
	cmd.Println()
	return outputMatchTable(cmd, session.Sequence, engine.Match(session.Sequence), false)
}
