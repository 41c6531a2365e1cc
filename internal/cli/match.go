package cli

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/recorder"
	"github.com/0xlemi/raagnote/internal/swara"
)

var (
	matchJSON          bool
	matchStripSaptak   bool
	matchMinConfidence float64
	matchDetails       bool
)

var matchCmd = &cobra.Command{
	Use:   "match <swara>...",
	Short: "Rank raags for a swara sequence",
	Long: `Ranks catalog raags by how closely a swara sequence follows their aroha,
avaroha and pakad. Swaras may be given as separate arguments or as one quoted
string, in Latin or Devanagari. Komal swaras take a "♭" or "b" prefix and
teevra Ma is written "Ma#".

At least 3 swaras are needed for a match.`,
	Example: `  raagnote match Sa Re Ga Ma# Pa Dha Ni Sa
  raagnote match "Sa bRe Ga Ma Pa bDha Ni Sa*" --strip-saptak`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	matchCmd.Flags().BoolVar(&matchStripSaptak, "strip-saptak", false, "ignore octave markers (*)")
	matchCmd.Flags().Float64Var(&matchMinConfidence, "min-confidence", raag.MinConfidence, "minimum confidence to report")
	matchCmd.Flags().BoolVarP(&matchDetails, "details", "d", false, "show the score breakdown")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.Fields(arg)...)
	}
	seq, err := swara.ParseSequence(tokens, matchStripSaptak)
	if err != nil {
		return err
	}
	if matchStripSaptak {
		// Sa Sa* records as a single Sa once the markers are gone
		seq = recorder.Collapse(seq)
	}

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	minConfidence := cfg.Matching.MinConfidence
	if cmd.Flags().Changed("min-confidence") {
		minConfidence = matchMinConfidence
	}

	engine := raag.NewEngine(catalog, raag.WithMinConfidence(minConfidence))
	matches := engine.Match(seq)

	if matchJSON {
		return outputJSON(cmd, matches)
	}
	return outputMatchTable(cmd, seq, matches, matchDetails)
}

func outputMatchTable(cmd *cobra.Command, seq swara.Sequence, matches []raag.Match, details bool) error {
	cmd.Printf("Sequence: %s\n\n", strings.Join(seq.Strings(), " "))

	if len(seq) < raag.MinSequenceLength {
		cmd.Printf("Need at least %d swaras to match.\n", raag.MinSequenceLength)
		return nil
	}
	if len(matches) == 0 {
		cmd.Println("No raag matched with enough confidence.")
		return nil
	}

	for i, m := range matches {
		cmd.Printf("  %-4s %-18s %5.1f%%  %s thaat, %s\n",
			humanize.Ordinal(i+1), m.Name, m.Confidence*100, m.Thaat, m.Time)
		if details {
			cmd.Printf("       presence %.2f  sequence %.2f  noise %.2f  vadi/samvadi +%.2f\n",
				m.PresenceScore, m.SequenceScore, m.NoisePenalty, m.VadiSamvadiBonus)
			cmd.Printf("       matched %d/%d", m.MatchedSwaraCount, m.RaagSwaraCount)
			if len(m.ExtraSwaras) > 0 {
				cmd.Printf("  extra %s", joinLabels(m.ExtraSwaras))
			}
			cmd.Println()
		}
	}
	return nil
}

func joinLabels(ls []swara.Label) string {
	return strings.Join(swara.Sequence(ls).Strings(), " ")
}
