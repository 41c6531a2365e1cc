package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/0xlemi/raagnote/internal/swara"
)

var mapJSON bool

var mapCmd = &cobra.Command{
	Use:   "map <frequency>...",
	Short: "Map frequencies to swaras",
	Long: `Maps one or more frequencies in Hz to swaras relative to the tonic.

Swaras below the tonic's octave are prefixed with "*", swaras above it are
suffixed with "*". Cents show the deviation from the nearest equal-tempered
pitch.`,
	Example: `  raagnote map 261.63 293.66 523.25
  raagnote map --tonic A3 220 330 --script devanagari`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().BoolVar(&mapJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(mapCmd)
}

// mappingOutput is the JSON shape of one mapped frequency
type mappingOutput struct {
	Frequency float64     `json:"frequency"`
	Note      string      `json:"note"`
	MIDI      int         `json:"midi"`
	Swara     swara.Label `json:"swara"`
	Degree    int         `json:"degree"`
	Saptak    int         `json:"saptak"`
	Cents     float64     `json:"cents"`
}

func runMap(cmd *cobra.Command, args []string) error {
	tonic, err := resolveTonic(cmd)
	if err != nil {
		return err
	}
	script, err := resolveScript(cmd)
	if err != nil {
		return err
	}

	out := make([]mappingOutput, 0, len(args))
	for _, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid frequency %q: %w", arg, err)
		}
		m, err := swara.MapFrequencyIn(f, tonic, script)
		if err != nil {
			return err
		}
		out = append(out, mappingOutput{
			Frequency: m.Frequency,
			Note:      m.Western(),
			MIDI:      m.MIDI,
			Swara:     m.Swara,
			Degree:    int(m.Degree),
			Saptak:    m.Saptak,
			Cents:     m.Cents,
		})
	}

	if mapJSON {
		return outputJSON(cmd, out)
	}
	return outputMapTable(cmd, tonic, out)
}

func outputMapTable(cmd *cobra.Command, tonic swara.Tonic, out []mappingOutput) error {
	cmd.Printf("Sa = %s (%.2f Hz)\n\n", tonic, tonic.Frequency())
	for _, m := range out {
		cmd.Printf("  %9.2f Hz  %-4s %-6s %+6.1f¢\n", m.Frequency, m.Note, m.Swara, m.Cents)
	}
	return nil
}
