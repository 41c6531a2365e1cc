package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xlemi/raagnote/internal/swara"
)

var droneCmd = &cobra.Command{
	Use:   "drone",
	Short: "Print the Sa and Pa drone frequencies for the tonic",
	Long: `Prints the two tanpura drone pitches for the tonic: Sa, and Pa a perfect
fifth above it in the same octave number.`,
	Args: cobra.NoArgs,
	RunE: runDrone,
}

func init() {
	rootCmd.AddCommand(droneCmd)
}

func runDrone(cmd *cobra.Command, _ []string) error {
	tonic, err := resolveTonic(cmd)
	if err != nil {
		return err
	}
	script, err := resolveScript(cmd)
	if err != nil {
		return err
	}

	sa, pa := tonic.Drone()
	paName := swara.NoteName(swara.PerfectFifth(tonic.PitchClass))

	cmd.Printf("%-4s %-4s %8.2f Hz\n", swara.Sa.In(script), tonic, sa)
	cmd.Printf("%-4s %-4s %8.2f Hz\n", swara.Pa.In(script), fmt.Sprintf("%s%d", paName, tonic.Octave), pa)
	return nil
}
