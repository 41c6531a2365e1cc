// Package cli implements the raagnote command line.
package cli

import (
	"fmt"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/0xlemi/raagnote/internal/config"
	"github.com/0xlemi/raagnote/internal/logger"
	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/swara"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3"
var version = "dev"

var (
	cfgFile     string
	verbose     bool
	tonicFlag   string
	octaveFlag  int
	scriptFlag  string
	catalogFlag string

	// cfg is loaded before every command runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "raagnote",
	Short: "Map pitches to swaras and recognise raags",
	Long: `raagnote maps pitch to sargam swaras relative to a tonic (Sa) and
estimates which Hindustani raags a sequence of swaras most resembles.

Use "raagnote listen" for live input from the microphone, or the map and
match commands for one-shot conversions.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.raagnote/config.toml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&tonicFlag, "tonic", "t", "C",
		fmt.Sprintf(`tonic pitch class (%s), optionally with octave, e.g. "A3"`, strings.Join(swara.NoteNames(), " ")))
	flags.IntVar(&octaveFlag, "octave", 4, "tonic octave")
	flags.StringVar(&scriptFlag, "script", "latin", "swara script: latin or devanagari")
	flags.StringVar(&catalogFlag, "catalog", "", "YAML raag catalog (default built-in)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.Setup(cmd.ErrOrStderr(), verbose)

	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.L().Debug("no home directory, using default config", "error", err)
			cfg = config.Default()
			return nil
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	logger.L().Debug("config loaded", "path", path)
	return nil
}

// resolveTonic applies --tonic and --octave over the configured tonic.
// An octave may be given inline in --tonic or with --octave, not both.
func resolveTonic(cmd *cobra.Command) (swara.Tonic, error) {
	name, octave := cfg.Tonic.PitchClass, cfg.Tonic.Octave
	if cmd.Flags().Changed("octave") {
		octave = octaveFlag
	}
	if cmd.Flags().Changed("tonic") {
		name = tonicFlag
		if strings.IndexFunc(tonicFlag, unicode.IsDigit) >= 0 {
			if cmd.Flags().Changed("octave") {
				return swara.Tonic{}, fmt.Errorf("%w: --tonic %q already has an octave, drop --octave", swara.ErrInvalidInput, tonicFlag)
			}
			return swara.ParseTonic(tonicFlag)
		}
	}
	return swara.NewTonic(name, octave)
}

func resolveScript(cmd *cobra.Command) (swara.Script, error) {
	name := cfg.Tonic.Script
	if cmd.Flags().Changed("script") {
		name = scriptFlag
	}
	return swara.ParseScript(name)
}

// loadCatalog returns the --catalog or configured catalog, or nil for the built-in one
func loadCatalog(cmd *cobra.Command) (*raag.Catalog, error) {
	path := cfg.Matching.Catalog
	if cmd.Flags().Changed("catalog") {
		path = catalogFlag
	}
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	catalog, err := raag.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	logger.L().Debug("catalog loaded", "path", path, "raags", catalog.Len())
	return catalog, nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
